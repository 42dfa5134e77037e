package models

import "time"

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	StatusCanceled BookingStatus = "CANCELED"
)

// BookingState selects a temporal or status subset of bookings in list queries.
// It is distinct from BookingStatus: CURRENT, PAST and FUTURE are computed
// against the clock, not stored.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState matches the token case-sensitively. Empty defaults to ALL.
func ParseBookingState(s string) (BookingState, bool) {
	if s == "" {
		return StateAll, true
	}
	switch state := BookingState(s); state {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return state, true
	}
	return "", false
}

type Booking struct {
	ID       uint          `gorm:"primaryKey" json:"id"`
	Start    time.Time     `gorm:"column:start_date;not null" json:"start"`
	End      time.Time     `gorm:"column:end_date;not null" json:"end"`
	ItemID   uint          `gorm:"not null;index" json:"item_id"`
	BookerID uint          `gorm:"not null;index" json:"booker_id"`
	Status   BookingStatus `gorm:"type:varchar(20);not null;default:'WAITING'" json:"status"`

	Item   *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Booker *User `gorm:"foreignKey:BookerID" json:"booker,omitempty"`
}
