package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ekozlova/shareit/internal/models"
	"github.com/ekozlova/shareit/internal/repository"
	"gorm.io/gorm"
)

type UserService interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Read(ctx context.Context, id uint) (*models.User, error)
	ReadAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id uint, name, email *string) (*models.User, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	taken, err := s.userRepo.ExistsByEmail(ctx, user.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: %s", ErrEmailConflict, user.Email)
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) Read(ctx context.Context, id uint) (*models.User, error) {
	return s.findUser(ctx, id)
}

func (s *userService) ReadAll(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindAll(ctx)
}

// Update overwrites only the supplied fields; email uniqueness is re-checked
// when the email changes.
func (s *userService) Update(ctx context.Context, id uint, name, email *string) (*models.User, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		user.Name = *name
	}
	if email != nil && *email != user.Email {
		taken, err := s.userRepo.ExistsByEmail(ctx, *email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: %s", ErrEmailConflict, *email)
		}
		user.Email = *email
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	if _, err := s.findUser(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

func (s *userService) findUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
		}
		return nil, err
	}
	return user, nil
}
