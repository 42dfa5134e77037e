package dto

import (
	"time"

	"github.com/ekozlova/shareit/internal/models"
	"github.com/ekozlova/shareit/internal/service"
)

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ShortUserResponse struct {
	ID uint `json:"id"`
}

type ShortItemResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     uint                 `json:"id"`
	Start  time.Time            `json:"start"`
	End    time.Time            `json:"end"`
	Status models.BookingStatus `json:"status"`
	Booker *ShortUserResponse   `json:"booker,omitempty"`
	Item   *ShortItemResponse   `json:"item,omitempty"`
}

// ShortBookingResponse is the compact form embedded in item views.
type ShortBookingResponse struct {
	ID       uint      `json:"id"`
	BookerID uint      `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         uint      `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemResponse struct {
	ID          uint                  `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Available   *bool                 `json:"available"`
	RequestID   *uint                 `json:"requestId,omitempty"`
	LastBooking *ShortBookingResponse `json:"lastBooking,omitempty"`
	NextBooking *ShortBookingResponse `json:"nextBooking,omitempty"`
	Comments    []CommentResponse     `json:"comments,omitempty"`
}

type RequestResponse struct {
	ID          uint           `json:"id"`
	Description string         `json:"description"`
	Created     time.Time      `json:"created"`
	Items       []ItemResponse `json:"items"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
		Booker: &ShortUserResponse{ID: b.BookerID},
	}
	if b.Item != nil {
		resp.Item = &ShortItemResponse{ID: b.Item.ID, Name: b.Item.Name}
	}
	return resp
}

func ToShortBookingResponse(b *models.Booking) *ShortBookingResponse {
	if b == nil {
		return nil
	}
	return &ShortBookingResponse{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End}
}

func ToCommentResponse(c *models.Comment) CommentResponse {
	resp := CommentResponse{ID: c.ID, Text: c.Text, Created: c.Created}
	if c.Author != nil {
		resp.AuthorName = c.Author.Name
	}
	return resp
}

func ToItemResponse(i *models.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		RequestID:   i.RequestID,
	}
}

func ToItemDetailsResponse(d *service.ItemDetails) ItemResponse {
	resp := ToItemResponse(&d.Item)
	resp.LastBooking = ToShortBookingResponse(d.LastBooking)
	resp.NextBooking = ToShortBookingResponse(d.NextBooking)
	resp.Comments = make([]CommentResponse, 0, len(d.Comments))
	for i := range d.Comments {
		resp.Comments = append(resp.Comments, ToCommentResponse(&d.Comments[i]))
	}
	return resp
}

func ToRequestResponse(d *service.RequestDetails) RequestResponse {
	items := make([]ItemResponse, 0, len(d.Items))
	for i := range d.Items {
		items = append(items, ToItemResponse(&d.Items[i]))
	}
	return RequestResponse{
		ID:          d.Request.ID,
		Description: d.Request.Description,
		Created:     d.Request.Created,
		Items:       items,
	}
}
