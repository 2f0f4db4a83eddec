package model

import (
	"time"

	"gorm.io/datatypes"
)

// Content pools. These live independently of the landing page; their own
// display_order only governs direct listings, never featured placement (that
// belongs to the association row).

type Event struct {
	Id           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"type:varchar(255);not null" json:"title"`
	LandingImage string     `gorm:"type:text" json:"landingImage"`
	Description  string     `gorm:"type:text" json:"description"`
	Date         *time.Time `json:"date,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Event) TableName() string {
	return "events"
}

type Program struct {
	Id           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	LandingImage string    `gorm:"type:text" json:"landingImage"`
	Description  string    `gorm:"type:text" json:"description"`
	Order        int       `gorm:"column:display_order;default:0" json:"order"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Program) TableName() string {
	return "programs"
}

type News struct {
	Id           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"type:varchar(255);not null" json:"title"`
	LandingImage string     `gorm:"type:text" json:"landingImage"`
	Description  string     `gorm:"type:text" json:"description"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
	Order        int        `gorm:"column:display_order;default:0" json:"order"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (News) TableName() string {
	return "news"
}

// HistoryAndValues rows may optionally bind to the landing page directly; a
// create without an explicit landingPageId goes through the provisioner.
type HistoryAndValues struct {
	Id            uint      `gorm:"primaryKey" json:"id"`
	LandingPageId *uint     `gorm:"index" json:"landingPageId,omitempty"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	LandingImage  string    `gorm:"type:text" json:"landingImage"`
	Description   string    `gorm:"type:text" json:"description"`
	Order         int       `gorm:"column:display_order;default:0" json:"order"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (HistoryAndValues) TableName() string {
	return "history_and_values"
}

type Startup struct {
	Id          uint             `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"type:varchar(255);not null" json:"name"`
	Logo        string           `gorm:"type:text" json:"logo"`
	Description string           `gorm:"type:text" json:"description"`
	WebsiteUrl  string           `gorm:"type:text" json:"websiteUrl"`
	SocialLinks datatypes.JSON   `json:"socialLinks,omitempty"`
	Order       int              `gorm:"column:display_order;default:0" json:"order"`
	Founders    []StartupFounder `gorm:"foreignKey:StartupId" json:"founders,omitempty"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Startup) TableName() string {
	return "startups"
}

type StartupFounder struct {
	Id        uint      `gorm:"primaryKey" json:"id"`
	StartupId uint      `gorm:"not null;index" json:"startupId"`
	UserId    uint      `gorm:"not null;index" json:"userId"`
	User      *User     `gorm:"foreignKey:UserId" json:"user,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (StartupFounder) TableName() string {
	return "startup_founders"
}
