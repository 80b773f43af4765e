package item

import (
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/Om136/rentals/domain"
	"github.com/Om136/rentals/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeItemRepository struct {
	items        map[uint]*domain.Item
	nextID       uint
	lastExtended bool
	lastFilter   domain.ItemFilter
	deleted      []uint
}

func newFakeItemRepository() *fakeItemRepository {
	return &fakeItemRepository{items: map[uint]*domain.Item{}, nextID: 1}
}

func (r *fakeItemRepository) CreateItem(_ context.Context, item *entities.Item, lng, lat *float64) (*domain.Item, error) {
	created := &domain.Item{
		ID:          r.nextID,
		UserID:      item.UserID,
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		Images:      item.Images,
		Status:      "active",
		Price:       item.Price,
		RentalRate:  item.RentalRate,
		IsRental:    item.IsRental,
		Lng:         lng,
		Lat:         lat,
	}
	r.items[created.ID] = created
	r.nextID++
	return created, nil
}

func (r *fakeItemRepository) GetItemByID(_ context.Context, id uint) (*domain.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *fakeItemRepository) GetFilteredItems(_ context.Context, filter domain.ItemFilter, extended bool) ([]*domain.Item, error) {
	r.lastFilter = filter
	r.lastExtended = extended
	if _, _, err := BuildFilterQuery(filter, extended); err != nil {
		return nil, err
	}
	items := make([]*domain.Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	return items, nil
}

func (r *fakeItemRepository) UpdateItem(_ context.Context, id uint, req domain.UpdateItemRequest) (*domain.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	item.Title = req.Title
	item.Description = req.Description
	item.Category = req.Category
	item.Price = req.Price
	item.RentalRate = req.RentalRate
	item.IsRental = req.IsRental
	return item, nil
}

func (r *fakeItemRepository) DeleteItem(_ context.Context, id uint) (*domain.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	r.deleted = append(r.deleted, id)
	return item, nil
}

func (r *fakeItemRepository) GetItemsByOwner(_ context.Context, userID uint) ([]*domain.Item, error) {
	items := make([]*domain.Item, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

type fakeS3 struct {
	uploaded []string
	removed  []string
}

func (s *fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	key := folder + "/" + fileName + ".png"
	s.uploaded = append(s.uploaded, key)
	return key, nil
}

func (s *fakeS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}

func (s *fakeS3) DeleteFile(objectKey string) error {
	s.removed = append(s.removed, objectKey)
	return nil
}

func (s *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}

func (s *fakeS3) GetObjectKeyFromLink(link string) string {
	const prefix = "https://bucket.s3.region.amazonaws.com/"
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}

func seedItem(repo *fakeItemRepository, userID uint) *domain.Item {
	item, _ := repo.CreateItem(context.Background(), &entities.Item{
		UserID:   userID,
		Title:    "Cordless drill",
		Category: "Tools",
		Price:    45,
	}, nil, nil)
	return item
}

func TestItemServiceCreateItemWithoutImage(t *testing.T) {
	repo := newFakeItemRepository()
	s3 := &fakeS3{}
	service := NewItemService(repo, s3, false)

	lng, lat := 77.209, 28.6139
	item, err := service.CreateItem(context.Background(), domain.CreateItemRequest{
		Title:    "Tent",
		Category: "Sports",
		Price:    30,
		IsRental: true,
		Lng:      &lng,
		Lat:      &lat,
	}, 7)

	require.NoError(t, err)
	assert.Equal(t, uint(7), item.UserID)
	assert.Empty(t, item.Images)
	assert.Empty(t, s3.uploaded)
	require.NotNil(t, item.Lng)
	assert.Equal(t, lng, *item.Lng)
}

func TestItemServiceGetItemByIDNotFound(t *testing.T) {
	service := NewItemService(newFakeItemRepository(), &fakeS3{}, false)

	_, err := service.GetItemByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestItemServiceUpdateItemOwnership(t *testing.T) {
	repo := newFakeItemRepository()
	service := NewItemService(repo, &fakeS3{}, false)
	item := seedItem(repo, 7)

	req := domain.UpdateItemRequest{Title: "Hammer drill", Category: "Tools", Price: 60}

	_, err := service.UpdateItem(context.Background(), item.ID, req, 8)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedItemAccess)
	assert.Equal(t, "Cordless drill", repo.items[item.ID].Title)

	updated, err := service.UpdateItem(context.Background(), item.ID, req, 7)
	require.NoError(t, err)
	assert.Equal(t, "Hammer drill", updated.Title)
}

func TestItemServiceUpdateItemNotFound(t *testing.T) {
	service := NewItemService(newFakeItemRepository(), &fakeS3{}, false)

	_, err := service.UpdateItem(context.Background(), 42, domain.UpdateItemRequest{}, 7)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestItemServiceDeleteItemOwnership(t *testing.T) {
	repo := newFakeItemRepository()
	s3 := &fakeS3{}
	service := NewItemService(repo, s3, false)
	item := seedItem(repo, 7)
	item.Images = entities.ImageList{"https://bucket.s3.region.amazonaws.com/items/item-abc.png"}

	_, err := service.DeleteItem(context.Background(), item.ID, 8)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedItemAccess)
	assert.Empty(t, repo.deleted)

	deleted, err := service.DeleteItem(context.Background(), item.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, item.ID, deleted.ID)
	assert.Equal(t, []uint{item.ID}, repo.deleted)
	assert.Equal(t, []string{"items/item-abc.png"}, s3.removed)
}

func TestItemServiceSearchItemsHonorsExtendedFlag(t *testing.T) {
	repo := newFakeItemRepository()
	service := NewItemService(repo, &fakeS3{}, true)

	_, err := service.SearchItems(context.Background(), domain.ItemFilter{Status: "active"})
	require.NoError(t, err)
	assert.True(t, repo.lastExtended)
	assert.Equal(t, "active", repo.lastFilter.Status)
}

func TestItemServiceSearchItemsRejectsBlankCategory(t *testing.T) {
	service := NewItemService(newFakeItemRepository(), &fakeS3{}, false)

	_, err := service.SearchItems(context.Background(), domain.ItemFilter{Categories: []string{""}})
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestItemServiceGetUserItems(t *testing.T) {
	repo := newFakeItemRepository()
	service := NewItemService(repo, &fakeS3{}, false)
	seedItem(repo, 7)
	seedItem(repo, 8)

	items, err := service.GetUserItems(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(7), items[0].UserID)
}
