package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ekozlova/shareit/internal/cache"
	"github.com/ekozlova/shareit/internal/models"
	"github.com/ekozlova/shareit/internal/repository"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ItemDetails is an item enriched with its booking summary and comments.
type ItemDetails struct {
	Item        models.Item
	LastBooking *models.Booking
	NextBooking *models.Booking
	Comments    []models.Comment
}

type ItemService interface {
	Create(ctx context.Context, actorID uint, item *models.Item) (*models.Item, error)
	Read(ctx context.Context, actorID, itemID uint) (*ItemDetails, error)
	ReadAll(ctx context.Context, actorID uint, from, size int) ([]ItemDetails, error)
	Update(ctx context.Context, actorID, itemID uint, name, description *string, available *bool) (*models.Item, error)
	Delete(ctx context.Context, actorID, itemID uint) error
	Search(ctx context.Context, actorID uint, text string, from, size int) ([]models.Item, error)
	CreateComment(ctx context.Context, actorID, itemID uint, text string) (*models.Comment, error)
}

type itemService struct {
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	commentRepo repository.CommentRepository
	requestRepo repository.RequestRepository
	searchCache *cache.SearchCache
	log         zerolog.Logger
}

func NewItemService(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	commentRepo repository.CommentRepository,
	requestRepo repository.RequestRepository,
	searchCache *cache.SearchCache,
	log zerolog.Logger,
) ItemService {
	return &itemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		requestRepo: requestRepo,
		searchCache: searchCache,
		log:         log,
	}
}

func (s *itemService) Create(ctx context.Context, actorID uint, item *models.Item) (*models.Item, error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}
	item.OwnerID = actorID

	if item.RequestID != nil {
		if _, err := s.requestRepo.FindByID(ctx, *item.RequestID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: id %d", ErrRequestNotFound, *item.RequestID)
			}
			return nil, err
		}
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	s.invalidateSearch(ctx)
	return item, nil
}

func (s *itemService) Read(ctx context.Context, actorID, itemID uint) (*ItemDetails, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *item, time.Now())
}

func (s *itemService) ReadAll(ctx context.Context, actorID uint, from, size int) ([]ItemDetails, error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindByOwner(ctx, actorID, repository.NewPage(from, size))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	details := make([]ItemDetails, 0, len(items))
	for _, item := range items {
		d, err := s.enrich(ctx, item, now)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

func (s *itemService) Update(ctx context.Context, actorID, itemID uint, name, description *string, available *bool) (*models.Item, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != actorID {
		return nil, ErrNotOwner
	}

	if name != nil {
		item.Name = *name
	}
	if description != nil {
		item.Description = *description
	}
	if available != nil {
		item.Available = available
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	s.invalidateSearch(ctx)
	return item, nil
}

func (s *itemService) Delete(ctx context.Context, actorID, itemID uint) error {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return err
	}
	if item.OwnerID != actorID {
		return ErrNotOwner
	}
	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.invalidateSearch(ctx)
	return nil
}

func (s *itemService) Search(ctx context.Context, actorID uint, text string, from, size int) ([]models.Item, error) {
	// Blank queries produce an empty result without touching storage.
	if strings.TrimSpace(text) == "" {
		return []models.Item{}, nil
	}

	key := cache.Key(text, from, size)
	if s.searchCache != nil {
		if items, ok, err := s.searchCache.Get(ctx, key); err != nil {
			s.log.Warn().Err(err).Msg("search cache read failed")
		} else if ok {
			return items, nil
		}
	}

	items, err := s.itemRepo.Search(ctx, text, repository.NewPage(from, size))
	if err != nil {
		return nil, err
	}

	if s.searchCache != nil {
		if err := s.searchCache.Set(ctx, key, items); err != nil {
			s.log.Warn().Err(err).Msg("search cache write failed")
		}
	}
	return items, nil
}

func (s *itemService) CreateComment(ctx context.Context, actorID, itemID uint, text string) (*models.Comment, error) {
	author, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, actorID)
		}
		return nil, err
	}
	if _, err := s.findItem(ctx, itemID); err != nil {
		return nil, err
	}

	now := time.Now()
	completed, err := s.bookingRepo.HasCompletedBooking(ctx, actorID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, ErrUncompletedBooking
	}

	comment := &models.Comment{
		Text:     text,
		ItemID:   itemID,
		AuthorID: actorID,
		Created:  now,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	comment.Author = author
	return comment, nil
}

// enrich attaches last/next booking and comments. The next booking is only
// looked up when a last booking exists.
func (s *itemService) enrich(ctx context.Context, item models.Item, now time.Time) (*ItemDetails, error) {
	details := &ItemDetails{Item: item}

	last, err := s.bookingRepo.FindLastForItem(ctx, item.ID, now)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if last != nil {
		details.LastBooking = last

		next, err := s.bookingRepo.FindNextForItem(ctx, item.ID, now)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		details.NextBooking = next
	}

	comments, err := s.commentRepo.FindByItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	details.Comments = comments
	return details, nil
}

func (s *itemService) invalidateSearch(ctx context.Context) {
	if s.searchCache == nil {
		return
	}
	if err := s.searchCache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("search cache invalidation failed")
	}
}

func (s *itemService) findItem(ctx context.Context, id uint) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrItemNotFound, id)
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) requireUser(ctx context.Context, userID uint) error {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: id %d", ErrUserNotFound, userID)
	}
	return nil
}
