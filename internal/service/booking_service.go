package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ekozlova/shareit/internal/metrics"
	"github.com/ekozlova/shareit/internal/models"
	"github.com/ekozlova/shareit/internal/repository"
	"github.com/ekozlova/shareit/pkg/rabbitmq"
	"gorm.io/gorm"
)

type BookingService interface {
	Create(ctx context.Context, actorID uint, start, end time.Time, itemID uint) (*models.Booking, error)
	Read(ctx context.Context, actorID, bookingID uint) (*models.Booking, error)
	ListForBooker(ctx context.Context, actorID uint, state models.BookingState, from, size int) ([]models.Booking, error)
	ListForOwner(ctx context.Context, actorID uint, state models.BookingState, from, size int) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, actorID, bookingID uint, approved bool) (*models.Booking, error)
	Delete(ctx context.Context, actorID, bookingID uint) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	publisher *rabbitmq.Publisher,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

func (s *bookingService) Create(ctx context.Context, actorID uint, start, end time.Time, itemID uint) (*models.Booking, error) {
	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrItemNotFound, itemID)
		}
		return nil, err
	}
	if !item.IsAvailable() {
		return nil, ErrNotAvailable
	}

	booker, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, actorID)
		}
		return nil, err
	}

	// The owner booking their own item is reported as not-found, same as a
	// missing item, so existence is not leaked.
	if booker.ID == item.OwnerID {
		return nil, fmt.Errorf("%w: owner cannot book own item", ErrItemNotFound)
	}

	booking := &models.Booking{
		Start:    start,
		End:      end,
		ItemID:   item.ID,
		BookerID: booker.ID,
		Status:   models.StatusWaiting,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	booking.Item = item
	booking.Booker = booker

	metrics.IncBookingCreated()
	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", booking)
	}

	return booking, nil
}

func (s *bookingService) Read(ctx context.Context, actorID, bookingID uint) (*models.Booking, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.BookerID != actorID && booking.Item.OwnerID != actorID {
		return nil, ErrNotOwner
	}
	return booking, nil
}

func (s *bookingService) ListForBooker(ctx context.Context, actorID uint, state models.BookingState, from, size int) ([]models.Booking, error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}

	page := repository.NewPage(from, size)
	now := time.Now()
	switch state {
	case models.StateAll:
		return s.bookingRepo.FindByBooker(ctx, actorID, page)
	case models.StateCurrent:
		return s.bookingRepo.FindByBookerCurrent(ctx, actorID, now, page)
	case models.StatePast:
		return s.bookingRepo.FindByBookerPast(ctx, actorID, now, page)
	case models.StateFuture:
		return s.bookingRepo.FindByBookerFuture(ctx, actorID, now, page)
	case models.StateWaiting, models.StateRejected:
		return s.bookingRepo.FindByBookerStatus(ctx, actorID, models.BookingStatus(state), page)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownState, state)
	}
}

func (s *bookingService) ListForOwner(ctx context.Context, actorID uint, state models.BookingState, from, size int) ([]models.Booking, error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}

	page := repository.NewPage(from, size)
	now := time.Now()
	switch state {
	case models.StateCurrent:
		return s.bookingRepo.FindByOwnerCurrent(ctx, actorID, now, page)
	case models.StatePast:
		return s.bookingRepo.FindByOwnerPast(ctx, actorID, now, page)
	case models.StateFuture:
		return s.bookingRepo.FindByOwnerFuture(ctx, actorID, now, page)
	case models.StateWaiting, models.StateRejected:
		return s.bookingRepo.FindByOwnerStatus(ctx, actorID, models.BookingStatus(state), page)
	default:
		return s.bookingRepo.FindByOwner(ctx, actorID, page)
	}
}

func (s *bookingService) UpdateStatus(ctx context.Context, actorID, bookingID uint, approved bool) (*models.Booking, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Item.OwnerID != actorID {
		return nil, ErrNotOwner
	}
	// A second decision on an already approved booking is rejected outright,
	// not treated as a no-op.
	if booking.Status == models.StatusApproved {
		return nil, fmt.Errorf("%w: status already set", ErrNotAvailable)
	}

	routingKey := "booking.rejected"
	booking.Status = models.StatusRejected
	if approved {
		routingKey = "booking.approved"
		booking.Status = models.StatusApproved
	}
	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}

	metrics.IncBookingDecided(string(booking.Status))
	if s.publisher != nil {
		_ = s.publisher.Publish(routingKey, booking)
	}

	return booking, nil
}

func (s *bookingService) Delete(ctx context.Context, actorID, bookingID uint) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	// Only the original booker may withdraw a booking.
	if booking.BookerID != actorID {
		return ErrNotOwner
	}
	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	if s.publisher != nil {
		booking.Status = models.StatusCanceled
		_ = s.publisher.Publish("booking.canceled", booking)
	}
	return nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrBookingNotFound, bookingID)
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) requireUser(ctx context.Context, userID uint) error {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: id %d", ErrUserNotFound, userID)
	}
	return nil
}
