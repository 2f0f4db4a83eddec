package model

import "time"

// LandingPage is the aggregate root every owned collection and feature
// association hangs off. It carries no content of its own. Slot is always 1
// and is unique, so at most one row can ever exist; the provisioner relies on
// that constraint to stay race-free.
type LandingPage struct {
	Id        uint      `gorm:"primaryKey" json:"id"`
	Slot      int       `gorm:"uniqueIndex;not null;default:1" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (LandingPage) TableName() string {
	return "landing_pages"
}
