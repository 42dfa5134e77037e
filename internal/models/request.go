package models

import "time"

// ItemRequest is a user's ask for an item nobody has listed yet. Items created
// in answer to it point back via Item.RequestID.
type ItemRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	RequestorID uint      `gorm:"not null;index" json:"requestor_id"`
	Created     time.Time `gorm:"not null" json:"created"`

	Requestor *User `gorm:"foreignKey:RequestorID" json:"-"`
}
