package repository

import (
	"context"
	"time"

	"github.com/ekozlova/shareit/internal/models"
	"gorm.io/gorm"
)

// BookingRepository exposes one query method per state-filter predicate so
// each listing arm stays independently testable.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	Save(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id uint) error

	FindByBooker(ctx context.Context, bookerID uint, page Page) ([]models.Booking, error)
	FindByBookerCurrent(ctx context.Context, bookerID uint, now time.Time, page Page) ([]models.Booking, error)
	FindByBookerPast(ctx context.Context, bookerID uint, now time.Time, page Page) ([]models.Booking, error)
	FindByBookerFuture(ctx context.Context, bookerID uint, now time.Time, page Page) ([]models.Booking, error)
	FindByBookerStatus(ctx context.Context, bookerID uint, status models.BookingStatus, page Page) ([]models.Booking, error)

	FindByOwner(ctx context.Context, ownerID uint, page Page) ([]models.Booking, error)
	FindByOwnerCurrent(ctx context.Context, ownerID uint, now time.Time, page Page) ([]models.Booking, error)
	FindByOwnerPast(ctx context.Context, ownerID uint, now time.Time, page Page) ([]models.Booking, error)
	FindByOwnerFuture(ctx context.Context, ownerID uint, now time.Time, page Page) ([]models.Booking, error)
	FindByOwnerStatus(ctx context.Context, ownerID uint, status models.BookingStatus, page Page) ([]models.Booking, error)

	FindLastForItem(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error)
	FindNextForItem(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error)
	HasCompletedBooking(ctx context.Context, bookerID, itemID uint, now time.Time) (bool, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Item").Preload("Booker").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Save(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

// bookerScope: bookings placed by the user, newest start first.
func (r *bookingRepository) bookerScope(ctx context.Context, bookerID uint, page Page) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Item").Preload("Booker").
		Where("booker_id = ?", bookerID).
		Order("start_date DESC").
		Limit(page.Limit).Offset(page.Offset)
}

func (r *bookingRepository) FindByBooker(ctx context.Context, bookerID uint, page Page) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.bookerScope(ctx, bookerID, page).Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByBookerCurrent(ctx context.Context, bookerID uint, now time.Time, page Page) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.bookerScope(ctx, bookerID, page).
		Where("start_date <= ? AND end_date > ?", now, now).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByBookerPast(ctx context.Context, bookerID uint, now time.Time, page Page) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.bookerScope(ctx, bookerID, page).
		Where("end_date < ?", now).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByBookerFuture(ctx context.Context, bookerID uint, now time.Time, page Page) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.bookerScope(ctx, bookerID, page).
		Where("start_date > ?", now).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByBookerStatus(ctx context.Context, bookerID uint, status models.BookingStatus, page Page) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.bookerScope(ctx, bookerID, page).
		Where("status = ?", status).
		Find(&bookings).Error
	return bookings, err
}

// ownerScope: bookings on items the user owns, newest start first.
func (r *bookingRepository) ownerScope(ctx context.Context, ownerID uint, page Page) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Item").Preload("Booker").
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID).
		Order("bookings.start_date DESC").
		Limit(page.Limit).Offset(page.Offset)
}

func (r *bookingRepository) FindByOwner(ctx context.Context, ownerID uint, page Page) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.ownerScope(ctx, ownerID, page).Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByOwnerCurrent(ctx context.Context, ownerID uint, now time.Time, page Page) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.ownerScope(ctx, ownerID, page).
		Where("bookings.start_date <= ? AND bookings.end_date > ?", now, now).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByOwnerPast(ctx context.Context, ownerID uint, now time.Time, page Page) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.ownerScope(ctx, ownerID, page).
		Where("bookings.end_date < ?", now).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByOwnerFuture(ctx context.Context, ownerID uint, now time.Time, page Page) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.ownerScope(ctx, ownerID, page).
		Where("bookings.start_date > ?", now).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByOwnerStatus(ctx context.Context, ownerID uint, status models.BookingStatus, page Page) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.ownerScope(ctx, ownerID, page).
		Where("bookings.status = ?", status).
		Find(&bookings).Error
	return bookings, err
}

// FindLastForItem returns the most recently ended booking that started before now.
func (r *bookingRepository) FindLastForItem(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND start_date < ?", itemID, now).
		Order("end_date DESC").
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindNextForItem returns the earliest booking starting after now.
func (r *bookingRepository) FindNextForItem(ctx context.Context, itemID uint, now time.Time) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND start_date > ?", itemID, now).
		Order("start_date ASC").
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// HasCompletedBooking reports whether the user has a booking on the item that
// already ended. Gates comment creation.
func (r *bookingRepository) HasCompletedBooking(ctx context.Context, bookerID, itemID uint, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("booker_id = ? AND item_id = ? AND end_date < ?", bookerID, itemID, now).
		Count(&count).Error
	return count > 0, err
}
