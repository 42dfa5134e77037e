package models

import "time"

type Comment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"not null" json:"text"`
	ItemID   uint      `gorm:"not null;index" json:"item_id"`
	AuthorID uint      `gorm:"not null" json:"author_id"`
	Created  time.Time `gorm:"not null" json:"created"`

	Author *User `gorm:"foreignKey:AuthorID" json:"-"`
}
