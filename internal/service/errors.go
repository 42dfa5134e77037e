package service

import "errors"

// Domain failure taxonomy. Handlers and the central error handler translate
// these with errors.Is; services wrap them with context via fmt.Errorf("%w").
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("request not found")

	// ErrNotOwner is an authorization failure. It is surfaced as not-found at
	// the HTTP boundary so callers cannot probe for resource existence.
	ErrNotOwner = errors.New("user is not the owner")

	ErrNotAvailable       = errors.New("item is not available for booking")
	ErrUnknownState       = errors.New("unknown state")
	ErrInvalidTimeRange   = errors.New("end must be after start")
	ErrUncompletedBooking = errors.New("no completed booking for this item")
	ErrEmailConflict      = errors.New("email already in use")
)
