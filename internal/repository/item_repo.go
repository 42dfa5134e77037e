package repository

import (
	"context"

	"github.com/ekozlova/shareit/internal/models"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	FindByID(ctx context.Context, id uint) (*models.Item, error)
	FindByOwner(ctx context.Context, ownerID uint, page Page) ([]models.Item, error)
	FindByRequestIDs(ctx context.Context, requestIDs []uint) ([]models.Item, error)
	Search(ctx context.Context, text string, page Page) ([]models.Item, error)
	Save(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id uint) error
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) FindByOwner(ctx context.Context, ownerID uint, page Page) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) FindByRequestIDs(ctx context.Context, requestIDs []uint) ([]models.Item, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("request_id IN ?", requestIDs).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Search matches available items whose name or description contains the text,
// case-insensitively.
func (r *itemRepository) Search(ctx context.Context, text string, page Page) ([]models.Item, error) {
	var items []models.Item
	pattern := "%" + text + "%"
	err := r.db.WithContext(ctx).
		Where("available = true AND (name ILIKE ? OR description ILIKE ?)", pattern, pattern).
		Order("id ASC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Item{}, id).Error
}
