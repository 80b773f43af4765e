package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

// DefaultMaxDistance is the distance bound in meters applied when the caller
// gives an origin point without an explicit maxDistance.
const DefaultMaxDistance = 10000.0

var (
	MessageSuccessCreateItem = "item created successfully"
	MessageSuccessGetItems   = "items retrieved successfully"
	MessageSuccessGetItem    = "item retrieved successfully"
	MessageSuccessUpdateItem = "item updated successfully"
	MessageSuccessDeleteItem = "item deleted successfully"
	MessageSuccessGetMyItems = "user items retrieved successfully"

	MessageFailedCreateItem = "item creation failed"
	MessageFailedGetItems   = "failed to fetch items"
	MessageFailedGetItem    = "failed to get item"
	MessageFailedUpdateItem = "failed to update item"
	MessageFailedDeleteItem = "failed to delete item"
	MessageFailedGetMyItems = "failed to fetch user items"
	MessageItemNotFound     = "item not found"

	ErrItemNotFound           = errors.New("item not found")
	ErrUnauthorizedItemAccess = errors.New("unauthorized access to item")
	ErrInvalidFilter          = errors.New("invalid item filter")
	ErrInvalidCoordinates     = errors.New("invalid coordinates")
)

type (
	CreateItemRequest struct {
		Title       string                `json:"title" form:"title" validate:"required"`
		Description string                `json:"description" form:"description" validate:"required"`
		Category    string                `json:"category" form:"category" validate:"required,oneof=Home Vehicles Electronics Photography Clothing Furniture Tools Sports Others"`
		Lng         *float64              `json:"lng" form:"lng" validate:"omitempty,longitude"`
		Lat         *float64              `json:"lat" form:"lat" validate:"omitempty,latitude"`
		Price       float64               `json:"price" form:"price" validate:"omitempty,gte=0"`
		RentalRate  float64               `json:"rental_rate" form:"rental_rate" validate:"omitempty,gte=0"`
		IsRental    bool                  `json:"is_rental" form:"is_rental"`
		Image       *multipart.FileHeader `json:"image" form:"image"`
	}

	UpdateItemRequest struct {
		Title       string  `json:"title" validate:"required"`
		Description string  `json:"description" validate:"required"`
		Category    string  `json:"category" validate:"required,oneof=Home Vehicles Electronics Photography Clothing Furniture Tools Sports Others"`
		Price       float64 `json:"price" validate:"omitempty,gte=0"`
		RentalRate  float64 `json:"rental_rate" validate:"omitempty,gte=0"`
		IsRental    bool    `json:"is_rental"`
	}

	// Item is the row shape returned by item queries. Lng, Lat and Distance
	// are only populated when the query projects them (see ItemFilter).
	Item struct {
		ID          uint      `json:"id"`
		UserID      uint      `json:"user_id,omitempty"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Category    string    `json:"category"`
		Images      []string  `json:"images"`
		Status      string    `json:"status"`
		CreatedAt   time.Time `json:"created_at"`
		Price       float64   `json:"price"`
		RentalRate  float64   `json:"rental_rate"`
		IsRental    bool      `json:"is_rental"`
		Lng         *float64  `json:"lng,omitempty"`
		Lat         *float64  `json:"lat,omitempty"`
		Distance    *float64  `json:"distance,omitempty"`
	}

	// ItemFilter is the validated filter specification for item search.
	// MinPrice, MaxPrice, IsRental and SortOrder are only applied when the
	// extended-filters flag is enabled; otherwise they are accepted and
	// ignored, matching the behavior the search endpoint always had.
	ItemFilter struct {
		SearchTerm  string
		Categories  []string
		Status      string
		Lng         *float64
		Lat         *float64
		MaxDistance *float64
		MinPrice    *float64
		MaxPrice    *float64
		IsRental    *bool
		SortBy      string
		SortOrder   string
	}
)

// HasOrigin reports whether both origin coordinates are present and finite.
// A single coordinate is treated as no origin at all: the distance projection
// and the distance bound are emitted together or not at all.
func (f ItemFilter) HasOrigin() bool {
	return f.Lng != nil && f.Lat != nil
}
