package item

import (
	"strconv"
	"strings"

	"github.com/Om136/rentals/domain"
)

// FilterFromQuery builds a validated filter specification from raw query
// string parameters. Defaults per field:
//
//	search       "" (no text clause)
//	categories   empty set; comma separated, blank entries dropped
//	status       "" (no status clause)
//	lng/lat      unset unless both parse as numbers
//	maxDistance  10000 m
//	sortBy       "created_at"
//	sortOrder    "desc"
//	minPrice/maxPrice  unset unless numeric
//	isRental     unset unless exactly "true" or "false"
//
// Unparseable numeric values leave the field unset instead of failing the
// request; the query builder then omits the matching clause.
func FilterFromQuery(query map[string]string) domain.ItemFilter {
	filter := domain.ItemFilter{
		SearchTerm: query["search"],
		Status:     query["status"],
		SortBy:     "created_at",
		SortOrder:  "desc",
	}

	if raw := query["categories"]; raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				filter.Categories = append(filter.Categories, c)
			}
		}
	}

	filter.Lng = parseFloat(query["lng"])
	filter.Lat = parseFloat(query["lat"])
	if d := parseFloat(query["maxDistance"]); d != nil {
		filter.MaxDistance = d
	} else {
		def := domain.DefaultMaxDistance
		filter.MaxDistance = &def
	}

	if v := query["sortBy"]; v != "" {
		filter.SortBy = v
	}
	if v := query["sortOrder"]; v != "" {
		filter.SortOrder = v
	}

	filter.MinPrice = parseFloat(query["minPrice"])
	filter.MaxPrice = parseFloat(query["maxPrice"])

	switch query["isRental"] {
	case "true":
		t := true
		filter.IsRental = &t
	case "false":
		f := false
		filter.IsRental = &f
	}

	return filter
}

func parseFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
