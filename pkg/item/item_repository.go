package item

import (
	"context"
	"time"

	"github.com/Om136/rentals/domain"
	"github.com/Om136/rentals/entities"
	"gorm.io/gorm"
)

type (
	ItemRepository interface {
		CreateItem(ctx context.Context, item *entities.Item, lng, lat *float64) (*domain.Item, error)
		GetItemByID(ctx context.Context, id uint) (*domain.Item, error)
		GetFilteredItems(ctx context.Context, filter domain.ItemFilter, extended bool) ([]*domain.Item, error)
		UpdateItem(ctx context.Context, id uint, req domain.UpdateItemRequest) (*domain.Item, error)
		DeleteItem(ctx context.Context, id uint) (*domain.Item, error)
		GetItemsByOwner(ctx context.Context, userID uint) ([]*domain.Item, error)
	}

	itemRepository struct {
		db *gorm.DB
	}

	// itemRow carries scanned query results, including the conditionally
	// projected lng/lat/distance columns.
	itemRow struct {
		ID          uint
		UserID      uint
		Title       string
		Description string
		Category    string
		Images      entities.ImageList
		Status      string
		CreatedAt   time.Time
		Price       float64
		RentalRate  float64
		IsRental    bool
		Lng         *float64
		Lat         *float64
		Distance    *float64
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (row *itemRow) toDomain() *domain.Item {
	return &domain.Item{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Description: row.Description,
		Category:    row.Category,
		Images:      row.Images,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
		Price:       row.Price,
		RentalRate:  row.RentalRate,
		IsRental:    row.IsRental,
		Lng:         row.Lng,
		Lat:         row.Lat,
		Distance:    row.Distance,
	}
}

func toDomainList(rows []*itemRow) []*domain.Item {
	items := make([]*domain.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
	}
	return items
}

func (r *itemRepository) CreateItem(ctx context.Context, item *entities.Item, lng, lat *float64) (*domain.Item, error) {
	var row itemRow

	// The geography point is computed server-side; a missing coordinate pair
	// stores a NULL location.
	query := `INSERT INTO items (title, description, category, location, images, user_id, price, rental_rate, is_rental, created_at, updated_at)
		VALUES (?, ?, ?, ST_SetSRID(ST_MakePoint(?, ?), 4326), ?, ?, ?, ?, ?, NOW(), NOW())
		RETURNING ` + baseColumns + `, ST_X(location::geometry) AS lng, ST_Y(location::geometry) AS lat`
	args := []interface{}{
		item.Title, item.Description, item.Category, lng, lat,
		item.Images, item.UserID, item.Price, item.RentalRate, item.IsRental,
	}
	if lng == nil || lat == nil {
		query = `INSERT INTO items (title, description, category, location, images, user_id, price, rental_rate, is_rental, created_at, updated_at)
			VALUES (?, ?, ?, NULL, ?, ?, ?, ?, ?, NOW(), NOW())
			RETURNING ` + baseColumns
		args = []interface{}{
			item.Title, item.Description, item.Category,
			item.Images, item.UserID, item.Price, item.RentalRate, item.IsRental,
		}
	}

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&row).Error; err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *itemRepository) GetItemByID(ctx context.Context, id uint) (*domain.Item, error) {
	var row itemRow
	res := r.db.WithContext(ctx).Raw(
		`SELECT `+baseColumns+`,
			ST_X(location::geometry) AS lng,
			ST_Y(location::geometry) AS lat
		FROM items WHERE id = ?`, id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return row.toDomain(), nil
}

func (r *itemRepository) GetFilteredItems(ctx context.Context, filter domain.ItemFilter, extended bool) ([]*domain.Item, error) {
	query, args, err := BuildFilterQuery(filter, extended)
	if err != nil {
		return nil, err
	}

	var rows []*itemRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainList(rows), nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, id uint, req domain.UpdateItemRequest) (*domain.Item, error) {
	var row itemRow
	res := r.db.WithContext(ctx).Raw(
		`UPDATE items
		SET title = ?, description = ?, category = ?, price = ?, rental_rate = ?, is_rental = ?, updated_at = NOW()
		WHERE id = ?
		RETURNING `+baseColumns,
		req.Title, req.Description, req.Category, req.Price, req.RentalRate, req.IsRental, id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return row.toDomain(), nil
}

func (r *itemRepository) DeleteItem(ctx context.Context, id uint) (*domain.Item, error) {
	var row itemRow
	res := r.db.WithContext(ctx).Raw(
		`DELETE FROM items WHERE id = ? RETURNING `+baseColumns, id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return row.toDomain(), nil
}

func (r *itemRepository) GetItemsByOwner(ctx context.Context, userID uint) ([]*domain.Item, error) {
	var rows []*itemRow
	if err := r.db.WithContext(ctx).Raw(
		`SELECT `+baseColumns+` FROM items WHERE user_id = ? ORDER BY created_at DESC`, userID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainList(rows), nil
}
