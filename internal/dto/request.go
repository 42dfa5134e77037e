package dto

import "time"

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserRequest carries partial fields: nil means "leave unchanged".
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *uint  `json:"requestId"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateBookingRequest struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	ItemID uint      `json:"itemId"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

type CreateItemRequestRequest struct {
	Description string `json:"description"`
}
