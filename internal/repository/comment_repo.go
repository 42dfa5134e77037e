package repository

import (
	"context"

	"github.com/ekozlova/shareit/internal/models"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByItem(ctx context.Context, itemID uint) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) FindByItem(ctx context.Context, itemID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("item_id = ?", itemID).
		Order("created ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
