package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/Om136/rentals/domain"
	"github.com/Om136/rentals/entities"
	"github.com/Om136/rentals/internal/utils/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ItemService interface {
		CreateItem(ctx context.Context, req domain.CreateItemRequest, userID uint) (*domain.Item, error)
		GetItemByID(ctx context.Context, id uint) (*domain.Item, error)
		SearchItems(ctx context.Context, filter domain.ItemFilter) ([]*domain.Item, error)
		UpdateItem(ctx context.Context, id uint, req domain.UpdateItemRequest, userID uint) (*domain.Item, error)
		DeleteItem(ctx context.Context, id uint, userID uint) (*domain.Item, error)
		GetUserItems(ctx context.Context, userID uint) ([]*domain.Item, error)
	}

	itemService struct {
		itemRepository  ItemRepository
		s3              storage.AwsS3
		extendedFilters bool
	}
)

func NewItemService(itemRepository ItemRepository, s3 storage.AwsS3, extendedFilters bool) ItemService {
	return &itemService{
		itemRepository:  itemRepository,
		s3:              s3,
		extendedFilters: extendedFilters,
	}
}

func (s *itemService) CreateItem(ctx context.Context, req domain.CreateItemRequest, userID uint) (*domain.Item, error) {
	images := entities.ImageList{}
	if req.Image != nil {
		fileName := fmt.Sprintf("item-%s", uuid.New().String())
		objectKey, err := s.s3.UploadFile(fileName, req.Image, "items", storage.AllowImage...)
		if err != nil {
			return nil, err
		}
		images = append(images, s.s3.GetPublicLinkKey(objectKey))
	}

	item := &entities.Item{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Images:      images,
		Price:       req.Price,
		RentalRate:  req.RentalRate,
		IsRental:    req.IsRental,
	}

	return s.itemRepository.CreateItem(ctx, item, req.Lng, req.Lat)
}

func (s *itemService) GetItemByID(ctx context.Context, id uint) (*domain.Item, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) SearchItems(ctx context.Context, filter domain.ItemFilter) ([]*domain.Item, error) {
	return s.itemRepository.GetFilteredItems(ctx, filter, s.extendedFilters)
}

func (s *itemService) UpdateItem(ctx context.Context, id uint, req domain.UpdateItemRequest, userID uint) (*domain.Item, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	if item.UserID != userID {
		return nil, domain.ErrUnauthorizedItemAccess
	}

	updated, err := s.itemRepository.UpdateItem(ctx, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id uint, userID uint) (*domain.Item, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	if item.UserID != userID {
		return nil, domain.ErrUnauthorizedItemAccess
	}

	for _, imageURL := range item.Images {
		if objectKey := s.s3.GetObjectKeyFromLink(imageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	deleted, err := s.itemRepository.DeleteItem(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return deleted, nil
}

func (s *itemService) GetUserItems(ctx context.Context, userID uint) ([]*domain.Item, error) {
	return s.itemRepository.GetItemsByOwner(ctx, userID)
}
