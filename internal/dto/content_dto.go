package dto

import (
	"time"

	"gorm.io/datatypes"
)

// Content pool requests. Create requests carry required tags; update requests
// use pointers so a partial body only touches the supplied fields.

type CreateEventRequest struct {
	Title        string     `json:"title" validate:"required"`
	LandingImage string     `json:"landingImage"`
	Description  string     `json:"description"`
	Date         *time.Time `json:"date"`
}

type UpdateEventRequest struct {
	Title        *string    `json:"title"`
	LandingImage *string    `json:"landingImage"`
	Description  *string    `json:"description"`
	Date         *time.Time `json:"date"`
}

type CreateProgramRequest struct {
	Title        string `json:"title" validate:"required"`
	LandingImage string `json:"landingImage"`
	Description  string `json:"description"`
	Order        int    `json:"order"`
}

type UpdateProgramRequest struct {
	Title        *string `json:"title"`
	LandingImage *string `json:"landingImage"`
	Description  *string `json:"description"`
	Order        *int    `json:"order"`
}

type CreateNewsRequest struct {
	Title        string     `json:"title" validate:"required"`
	LandingImage string     `json:"landingImage"`
	Description  string     `json:"description"`
	PublishedAt  *time.Time `json:"publishedAt"`
	Order        int        `json:"order"`
}

type UpdateNewsRequest struct {
	Title        *string    `json:"title"`
	LandingImage *string    `json:"landingImage"`
	Description  *string    `json:"description"`
	PublishedAt  *time.Time `json:"publishedAt"`
	Order        *int       `json:"order"`
}

// CreateHistoryAndValuesRequest omits landingPageId when the caller wants the
// provisioner to bind the row to the current landing page.
type CreateHistoryAndValuesRequest struct {
	LandingPageId *uint  `json:"landingPageId"`
	Title         string `json:"title" validate:"required"`
	LandingImage  string `json:"landingImage"`
	Description   string `json:"description"`
	Order         int    `json:"order"`
}

type UpdateHistoryAndValuesRequest struct {
	LandingPageId *uint   `json:"landingPageId"`
	Title         *string `json:"title"`
	LandingImage  *string `json:"landingImage"`
	Description   *string `json:"description"`
	Order         *int    `json:"order"`
}

type CreateStartupRequest struct {
	Name        string         `json:"name" validate:"required"`
	Logo        string         `json:"logo"`
	Description string         `json:"description"`
	WebsiteUrl  string         `json:"websiteUrl"`
	SocialLinks datatypes.JSON `json:"socialLinks"`
	Order       int            `json:"order"`
	FounderIds  []uint         `json:"founderIds"`
}

type UpdateStartupRequest struct {
	Name        *string         `json:"name"`
	Logo        *string         `json:"logo"`
	Description *string         `json:"description"`
	WebsiteUrl  *string         `json:"websiteUrl"`
	SocialLinks *datatypes.JSON `json:"socialLinks"`
	Order       *int            `json:"order"`
	FounderIds  *[]uint         `json:"founderIds"`
}
