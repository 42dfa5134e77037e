package models

type Item struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Available   *bool  `gorm:"not null" json:"available"`
	OwnerID     uint   `gorm:"not null;index" json:"owner_id"`
	RequestID   *uint  `gorm:"index" json:"request_id,omitempty"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
}

// IsAvailable treats a missing flag as unavailable.
func (i *Item) IsAvailable() bool {
	return i.Available != nil && *i.Available
}
