package item

import (
	"math"
	"strings"

	"github.com/Om136/rentals/domain"
)

const baseColumns = "id, user_id, title, description, category, images, status, created_at, price, rental_rate, is_rental"

// queryBuilder accumulates SQL text and bound arguments together, so the
// placeholder count and the argument list can never drift apart. Values are
// never written into the SQL text, only `?` placeholders (GORM rebinds them
// to $N for Postgres).
type queryBuilder struct {
	sql  strings.Builder
	args []interface{}
}

func (b *queryBuilder) write(sql string) {
	b.sql.WriteString(sql)
}

func (b *queryBuilder) writeArgs(sql string, args ...interface{}) {
	b.sql.WriteString(sql)
	b.args = append(b.args, args...)
}

// BuildFilterQuery translates a filter specification into a parameterized
// SELECT against the items table. Filter clauses are appended conjunctively
// in a fixed order and each is independently omittable. The lng/lat
// projection and the computed distance column are emitted only when both
// origin coordinates are present, together with the ST_DWithin bound.
//
// With extended off, MinPrice, MaxPrice, IsRental and SortOrder are accepted
// but ignored. No LIMIT is applied; the caller receives the full row set.
func BuildFilterQuery(f domain.ItemFilter, extended bool) (string, []interface{}, error) {
	categories := make([]string, 0, len(f.Categories))
	for _, c := range f.Categories {
		if strings.TrimSpace(c) == "" {
			return "", nil, domain.ErrInvalidFilter
		}
		categories = append(categories, strings.ToLower(c))
	}

	lng := finite(f.Lng)
	lat := finite(f.Lat)
	hasOrigin := lng != nil && lat != nil

	b := &queryBuilder{}
	b.write("SELECT " + baseColumns)
	if hasOrigin {
		b.writeArgs(", ST_X(location::geometry) AS lng, ST_Y(location::geometry) AS lat, "+
			"ST_Distance(location::geography, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography) AS distance",
			*lng, *lat)
	}
	b.write(" FROM items WHERE 1=1")

	if f.SearchTerm != "" {
		pattern := "%" + f.SearchTerm + "%"
		b.writeArgs(" AND (title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}

	if len(categories) > 0 {
		b.writeArgs(" AND LOWER(category) IN ?", categories)
	}

	if f.Status != "" {
		b.writeArgs(" AND status = ?", f.Status)
	}

	if hasOrigin {
		maxDistance := domain.DefaultMaxDistance
		if d := finite(f.MaxDistance); d != nil && *d > 0 {
			maxDistance = *d
		}
		b.writeArgs(" AND ST_DWithin(location::geography, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)",
			*lng, *lat, maxDistance)
	}

	if extended {
		if p := finite(f.MinPrice); p != nil {
			b.writeArgs(" AND price >= ?", *p)
		}
		if p := finite(f.MaxPrice); p != nil {
			b.writeArgs(" AND price <= ?", *p)
		}
		if f.IsRental != nil {
			b.writeArgs(" AND is_rental = ?", *f.IsRental)
		}
	}

	if f.SortBy == "nearest" && hasOrigin {
		b.write(" ORDER BY distance")
	} else if extended && strings.EqualFold(f.SortOrder, "asc") {
		b.write(" ORDER BY created_at ASC")
	} else {
		b.write(" ORDER BY created_at DESC")
	}

	return b.sql.String(), b.args, nil
}

// finite returns v unless it is nil, NaN or infinite. A non-finite number
// must drop its clause rather than be bound.
func finite(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}
