package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ekozlova/shareit/internal/models"
	"github.com/ekozlova/shareit/internal/repository"
	"gorm.io/gorm"
)

// RequestDetails is a request joined with the items listed in answer to it.
type RequestDetails struct {
	Request models.ItemRequest
	Items   []models.Item
}

type RequestService interface {
	Create(ctx context.Context, actorID uint, description string) (*models.ItemRequest, error)
	Read(ctx context.Context, actorID uint) ([]RequestDetails, error)
	ReadOne(ctx context.Context, actorID, requestID uint) (*RequestDetails, error)
	ReadAll(ctx context.Context, actorID uint, from, size int) ([]RequestDetails, error)
}

type requestService struct {
	requestRepo repository.RequestRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
	}
}

func (s *requestService) Create(ctx context.Context, actorID uint, description string) (*models.ItemRequest, error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}

	request := &models.ItemRequest{
		Description: description,
		RequestorID: actorID,
		Created:     time.Now(),
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return request, nil
}

func (s *requestService) Read(ctx context.Context, actorID uint) ([]RequestDetails, error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.FindByRequestor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, requests)
}

func (s *requestService) ReadOne(ctx context.Context, actorID, requestID uint) (*RequestDetails, error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrRequestNotFound, requestID)
		}
		return nil, err
	}

	items, err := s.itemRepo.FindByRequestIDs(ctx, []uint{request.ID})
	if err != nil {
		return nil, err
	}
	return &RequestDetails{Request: *request, Items: items}, nil
}

func (s *requestService) ReadAll(ctx context.Context, actorID uint, from, size int) ([]RequestDetails, error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.FindAllExcept(ctx, actorID, repository.NewPage(from, size))
	if err != nil {
		return nil, err
	}
	return s.join(ctx, requests)
}

// join groups answering items under their originating requests in one query.
func (s *requestService) join(ctx context.Context, requests []models.ItemRequest) ([]RequestDetails, error) {
	ids := make([]uint, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}

	items, err := s.itemRepo.FindByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byRequest := make(map[uint][]models.Item, len(requests))
	for _, item := range items {
		if item.RequestID == nil {
			continue
		}
		byRequest[*item.RequestID] = append(byRequest[*item.RequestID], item)
	}

	details := make([]RequestDetails, 0, len(requests))
	for _, r := range requests {
		details = append(details, RequestDetails{Request: r, Items: byRequest[r.ID]})
	}
	return details, nil
}

func (s *requestService) requireUser(ctx context.Context, userID uint) error {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: id %d", ErrUserNotFound, userID)
	}
	return nil
}
