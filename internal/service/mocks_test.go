package service

import (
	"context"
	"time"

	"github.com/ekozlova/shareit/internal/models"
	"github.com/ekozlova/shareit/internal/repository"
	"gorm.io/gorm"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn        func(ctx context.Context, user *models.User) error
	findByIDFn      func(ctx context.Context, id uint) (*models.User, error)
	findAllFn       func(ctx context.Context) ([]models.User, error)
	existsByIDFn    func(ctx context.Context, id uint) (bool, error)
	existsByEmailFn func(ctx context.Context, email string, excludeID uint) (bool, error)
	saveFn          func(ctx context.Context, user *models.User) error
	deleteFn        func(ctx context.Context, id uint) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	return m.findAllFn(ctx)
}

func (m *mockUserRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.existsByIDFn != nil {
		return m.existsByIDFn(ctx, id)
	}
	return true, nil
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(ctx, email, excludeID)
	}
	return false, nil
}

func (m *mockUserRepo) Save(ctx context.Context, user *models.User) error {
	return m.saveFn(ctx, user)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Mock ItemRepository ---

type mockItemRepo struct {
	createFn           func(ctx context.Context, item *models.Item) error
	findByIDFn         func(ctx context.Context, id uint) (*models.Item, error)
	findByOwnerFn      func(ctx context.Context, ownerID uint, page repository.Page) ([]models.Item, error)
	findByRequestIDsFn func(ctx context.Context, requestIDs []uint) ([]models.Item, error)
	searchFn           func(ctx context.Context, text string, page repository.Page) ([]models.Item, error)
	saveFn             func(ctx context.Context, item *models.Item) error
	deleteFn           func(ctx context.Context, id uint) error
}

func (m *mockItemRepo) Create(ctx context.Context, item *models.Item) error {
	return m.createFn(ctx, item)
}

func (m *mockItemRepo) FindByID(ctx context.Context, id uint) (*models.Item, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockItemRepo) FindByOwner(ctx context.Context, ownerID uint, page repository.Page) ([]models.Item, error) {
	return m.findByOwnerFn(ctx, ownerID, page)
}

func (m *mockItemRepo) FindByRequestIDs(ctx context.Context, requestIDs []uint) ([]models.Item, error) {
	if m.findByRequestIDsFn != nil {
		return m.findByRequestIDsFn(ctx, requestIDs)
	}
	return nil, nil
}

func (m *mockItemRepo) Search(ctx context.Context, text string, page repository.Page) ([]models.Item, error) {
	return m.searchFn(ctx, text, page)
}

func (m *mockItemRepo) Save(ctx context.Context, item *models.Item) error {
	return m.saveFn(ctx, item)
}

func (m *mockItemRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn func(ctx context.Context, booking *models.Booking) error
	findFn   func(ctx context.Context, id uint) (*models.Booking, error)
	saveFn   func(ctx context.Context, booking *models.Booking) error
	deleteFn func(ctx context.Context, id uint) error

	byBookerFn       func(ctx context.Context, bookerID uint, page repository.Page) ([]models.Booking, error)
	byBookerTimeFn   func(ctx context.Context, bookerID uint, now time.Time, page repository.Page) ([]models.Booking, error)
	byBookerStatusFn func(ctx context.Context, bookerID uint, status models.BookingStatus, page repository.Page) ([]models.Booking, error)
	byOwnerFn        func(ctx context.Context, ownerID uint, page repository.Page) ([]models.Booking, error)
	byOwnerTimeFn    func(ctx context.Context, ownerID uint, now time.Time, page repository.Page) ([]models.Booking, error)
	byOwnerStatusFn  func(ctx context.Context, ownerID uint, status models.BookingStatus, page repository.Page) ([]models.Booking, error)

	lastForItemFn  func(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error)
	nextForItemFn  func(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error)
	hasCompletedFn func(ctx context.Context, bookerID, itemID uint, now time.Time) (bool, error)

	// calls records which list predicate was hit.
	calls []string
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if m.createFn != nil {
		return m.createFn(ctx, booking)
	}
	booking.ID = 1
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	if m.findFn != nil {
		return m.findFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) Save(ctx context.Context, booking *models.Booking) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, booking)
	}
	return nil
}

func (m *mockBookingRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockBookingRepo) list(name string, fn func() ([]models.Booking, error)) ([]models.Booking, error) {
	m.calls = append(m.calls, name)
	if fn == nil {
		return nil, nil
	}
	return fn()
}

func (m *mockBookingRepo) FindByBooker(ctx context.Context, bookerID uint, page repository.Page) ([]models.Booking, error) {
	return m.list("booker_all", func() ([]models.Booking, error) {
		if m.byBookerFn == nil {
			return nil, nil
		}
		return m.byBookerFn(ctx, bookerID, page)
	})
}

func (m *mockBookingRepo) FindByBookerCurrent(ctx context.Context, bookerID uint, now time.Time, page repository.Page) ([]models.Booking, error) {
	return m.list("booker_current", func() ([]models.Booking, error) {
		if m.byBookerTimeFn == nil {
			return nil, nil
		}
		return m.byBookerTimeFn(ctx, bookerID, now, page)
	})
}

func (m *mockBookingRepo) FindByBookerPast(ctx context.Context, bookerID uint, now time.Time, page repository.Page) ([]models.Booking, error) {
	return m.list("booker_past", func() ([]models.Booking, error) {
		if m.byBookerTimeFn == nil {
			return nil, nil
		}
		return m.byBookerTimeFn(ctx, bookerID, now, page)
	})
}

func (m *mockBookingRepo) FindByBookerFuture(ctx context.Context, bookerID uint, now time.Time, page repository.Page) ([]models.Booking, error) {
	return m.list("booker_future", func() ([]models.Booking, error) {
		if m.byBookerTimeFn == nil {
			return nil, nil
		}
		return m.byBookerTimeFn(ctx, bookerID, now, page)
	})
}

func (m *mockBookingRepo) FindByBookerStatus(ctx context.Context, bookerID uint, status models.BookingStatus, page repository.Page) ([]models.Booking, error) {
	return m.list("booker_status_"+string(status), func() ([]models.Booking, error) {
		if m.byBookerStatusFn == nil {
			return nil, nil
		}
		return m.byBookerStatusFn(ctx, bookerID, status, page)
	})
}

func (m *mockBookingRepo) FindByOwner(ctx context.Context, ownerID uint, page repository.Page) ([]models.Booking, error) {
	return m.list("owner_all", func() ([]models.Booking, error) {
		if m.byOwnerFn == nil {
			return nil, nil
		}
		return m.byOwnerFn(ctx, ownerID, page)
	})
}

func (m *mockBookingRepo) FindByOwnerCurrent(ctx context.Context, ownerID uint, now time.Time, page repository.Page) ([]models.Booking, error) {
	return m.list("owner_current", func() ([]models.Booking, error) {
		if m.byOwnerTimeFn == nil {
			return nil, nil
		}
		return m.byOwnerTimeFn(ctx, ownerID, now, page)
	})
}

func (m *mockBookingRepo) FindByOwnerPast(ctx context.Context, ownerID uint, now time.Time, page repository.Page) ([]models.Booking, error) {
	return m.list("owner_past", func() ([]models.Booking, error) {
		if m.byOwnerTimeFn == nil {
			return nil, nil
		}
		return m.byOwnerTimeFn(ctx, ownerID, now, page)
	})
}

func (m *mockBookingRepo) FindByOwnerFuture(ctx context.Context, ownerID uint, now time.Time, page repository.Page) ([]models.Booking, error) {
	return m.list("owner_future", func() ([]models.Booking, error) {
		if m.byOwnerTimeFn == nil {
			return nil, nil
		}
		return m.byOwnerTimeFn(ctx, ownerID, now, page)
	})
}

func (m *mockBookingRepo) FindByOwnerStatus(ctx context.Context, ownerID uint, status models.BookingStatus, page repository.Page) ([]models.Booking, error) {
	return m.list("owner_status_"+string(status), func() ([]models.Booking, error) {
		if m.byOwnerStatusFn == nil {
			return nil, nil
		}
		return m.byOwnerStatusFn(ctx, ownerID, status, page)
	})
}

func (m *mockBookingRepo) FindLastForItem(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error) {
	if m.lastForItemFn != nil {
		return m.lastForItemFn(ctx, itemID, now)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) FindNextForItem(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error) {
	if m.nextForItemFn != nil {
		return m.nextForItemFn(ctx, itemID, now)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) HasCompletedBooking(ctx context.Context, bookerID, itemID uint, now time.Time) (bool, error) {
	if m.hasCompletedFn != nil {
		return m.hasCompletedFn(ctx, bookerID, itemID, now)
	}
	return false, nil
}

// --- Mock CommentRepository ---

type mockCommentRepo struct {
	createFn     func(ctx context.Context, comment *models.Comment) error
	findByItemFn func(ctx context.Context, itemID uint) ([]models.Comment, error)
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	comment.ID = 1
	return nil
}

func (m *mockCommentRepo) FindByItem(ctx context.Context, itemID uint) ([]models.Comment, error) {
	if m.findByItemFn != nil {
		return m.findByItemFn(ctx, itemID)
	}
	return nil, nil
}

// --- Mock RequestRepository ---

type mockRequestRepo struct {
	createFn          func(ctx context.Context, request *models.ItemRequest) error
	findByIDFn        func(ctx context.Context, id uint) (*models.ItemRequest, error)
	findByRequestorFn func(ctx context.Context, requestorID uint) ([]models.ItemRequest, error)
	findAllExceptFn   func(ctx context.Context, requestorID uint, page repository.Page) ([]models.ItemRequest, error)
}

func (m *mockRequestRepo) Create(ctx context.Context, request *models.ItemRequest) error {
	if m.createFn != nil {
		return m.createFn(ctx, request)
	}
	request.ID = 1
	return nil
}

func (m *mockRequestRepo) FindByID(ctx context.Context, id uint) (*models.ItemRequest, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRequestRepo) FindByRequestor(ctx context.Context, requestorID uint) ([]models.ItemRequest, error) {
	return m.findByRequestorFn(ctx, requestorID)
}

func (m *mockRequestRepo) FindAllExcept(ctx context.Context, requestorID uint, page repository.Page) ([]models.ItemRequest, error) {
	return m.findAllExceptFn(ctx, requestorID, page)
}
