package model

import "time"

// Owned collections. Every row belongs to exactly one landing page and is
// deleted and recreated as a set by the synchronization engine. Order is only
// meaningful between rows of the same type under the same landing page.

type HeroSection struct {
	Id            uint      `gorm:"primaryKey" json:"id"`
	LandingPageId uint      `gorm:"not null;index" json:"landingPageId"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	LandingImage  string    `gorm:"type:text" json:"landingImage"`
	Description   string    `gorm:"type:text" json:"description"`
	Order         int       `gorm:"column:display_order;default:0" json:"order"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (HeroSection) TableName() string {
	return "hero_sections"
}

type Partner struct {
	Id            uint      `gorm:"primaryKey" json:"id"`
	LandingPageId uint      `gorm:"not null;index" json:"landingPageId"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Logo          string    `gorm:"type:text" json:"logo"`
	WebsiteUrl    string    `gorm:"type:text" json:"websiteUrl"`
	Order         int       `gorm:"column:display_order;default:0" json:"order"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Partner) TableName() string {
	return "partners"
}

// Footer is a per-landing-page singleton by application convention: the
// synchronization engine always deletes the scoped set before creating one.
type Footer struct {
	Id            uint      `gorm:"primaryKey" json:"id"`
	LandingPageId uint      `gorm:"not null;index" json:"landingPageId"`
	Content       string    `gorm:"type:text" json:"content"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Footer) TableName() string {
	return "footers"
}

type Faq struct {
	Id            uint      `gorm:"primaryKey" json:"id"`
	LandingPageId uint      `gorm:"not null;index" json:"landingPageId"`
	Question      string    `gorm:"type:text;not null" json:"question"`
	Answer        string    `gorm:"type:text" json:"answer"`
	Order         int       `gorm:"column:display_order;default:0" json:"order"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Faq) TableName() string {
	return "faqs"
}

type VisionAndMission struct {
	Id            uint      `gorm:"primaryKey" json:"id"`
	LandingPageId uint      `gorm:"not null;index" json:"landingPageId"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Content       string    `gorm:"type:text" json:"content"`
	Order         int       `gorm:"column:display_order;default:0" json:"order"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (VisionAndMission) TableName() string {
	return "vision_and_missions"
}
