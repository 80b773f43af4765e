package entities

type Payment struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	UserID     uint    `gorm:"not null" json:"user_id"`
	ItemID     uint    `json:"item_id"`
	OrderID    string  `gorm:"uniqueIndex;not null" json:"order_id"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	RentalDays int     `json:"rental_days"`
	Status     string  `json:"status"` // pending, succeeded, failed
	SnapToken  string  `json:"-"`

	User *User `gorm:"foreignKey:UserID"`
	Item *Item `gorm:"foreignKey:ItemID"`
	Timestamp
}
