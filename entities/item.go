package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ImageList stores the ordered image URLs of an item as a jsonb column.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for ImageList", value)
	}
}

type Item struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	Title       string    `json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `json:"category"` // Home, Vehicles, Electronics, Photography, Clothing, Furniture, Tools, Sports, Others
	Location    *string   `gorm:"type:geography(Point,4326)" json:"-"`
	Images      ImageList `gorm:"type:jsonb" json:"images"`
	Price       float64   `json:"price"`
	RentalRate  float64   `json:"rental_rate"`
	IsRental    bool      `json:"is_rental"`
	Status      string    `gorm:"default:active" json:"status"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
