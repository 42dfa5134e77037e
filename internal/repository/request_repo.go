package repository

import (
	"context"

	"github.com/ekozlova/shareit/internal/models"
	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(ctx context.Context, request *models.ItemRequest) error
	FindByID(ctx context.Context, id uint) (*models.ItemRequest, error)
	FindByRequestor(ctx context.Context, requestorID uint) ([]models.ItemRequest, error)
	FindAllExcept(ctx context.Context, requestorID uint, page Page) ([]models.ItemRequest, error)
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *models.ItemRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) FindByID(ctx context.Context, id uint) (*models.ItemRequest, error) {
	var request models.ItemRequest
	if err := r.db.WithContext(ctx).First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) FindByRequestor(ctx context.Context, requestorID uint) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := r.db.WithContext(ctx).
		Where("requestor_id = ?", requestorID).
		Order("created ASC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// FindAllExcept lists other users' requests, oldest first.
func (r *requestRepository) FindAllExcept(ctx context.Context, requestorID uint, page Page) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := r.db.WithContext(ctx).
		Where("requestor_id <> ?", requestorID).
		Order("created ASC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
