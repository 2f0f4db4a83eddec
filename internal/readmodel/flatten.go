// Package readmodel turns the assembled landing aggregate into flat render
// items for public consumers. A featured item carries the association's id and
// order, not the content entity's; the entity's own display_order never leaks
// into featured placement.
package readmodel

import (
	"time"

	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/model"

	"gorm.io/datatypes"
)

type FeaturedEventItem struct {
	Id           uint       `json:"id"`
	Order        int        `json:"order"`
	EventId      uint       `json:"eventId"`
	Title        string     `json:"title"`
	LandingImage string     `json:"landingImage"`
	Description  string     `json:"description"`
	Date         *time.Time `json:"date,omitempty"`
}

type FeaturedProgramItem struct {
	Id           uint   `json:"id"`
	Order        int    `json:"order"`
	ProgramId    uint   `json:"programId"`
	Title        string `json:"title"`
	LandingImage string `json:"landingImage"`
	Description  string `json:"description"`
}

type FeaturedNewsItem struct {
	Id           uint       `json:"id"`
	Order        int        `json:"order"`
	NewsId       uint       `json:"newsId"`
	Title        string     `json:"title"`
	LandingImage string     `json:"landingImage"`
	Description  string     `json:"description"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
}

type FeaturedHistoryAndValuesItem struct {
	Id                 uint   `json:"id"`
	Order              int    `json:"order"`
	HistoryAndValuesId uint   `json:"historyAndValuesId"`
	Title              string `json:"title"`
	LandingImage       string `json:"landingImage"`
	Description        string `json:"description"`
}

type FeaturedStartupItem struct {
	Id          uint           `json:"id"`
	Order       int            `json:"order"`
	StartupId   uint           `json:"startupId"`
	Name        string         `json:"name"`
	Logo        string         `json:"logo"`
	Description string         `json:"description"`
	WebsiteUrl  string         `json:"websiteUrl"`
	SocialLinks datatypes.JSON `json:"socialLinks,omitempty"`
}

// LandingView is the public render payload: owned collections passed through,
// featured families flattened.
type LandingView struct {
	Id                       uint                           `json:"id"`
	HeroSections             []*model.HeroSection           `json:"heroSections"`
	Partners                 []*model.Partner               `json:"partners"`
	Footer                   *model.Footer                  `json:"footer"`
	Faqs                     []*model.Faq                   `json:"faqs"`
	VisionAndMission         []*model.VisionAndMission      `json:"visionAndMission"`
	FeaturedEvents           []FeaturedEventItem            `json:"featuredEvents"`
	FeaturedPrograms         []FeaturedProgramItem          `json:"featuredPrograms"`
	FeaturedNews             []FeaturedNewsItem             `json:"featuredNews"`
	FeaturedHistoryAndValues []FeaturedHistoryAndValuesItem `json:"featuredHistoryAndValues"`
	FeaturedStartups         []FeaturedStartupItem          `json:"featuredStartups"`
}

// FlattenEvents preserves the input's order; rows whose entity failed to
// preload are skipped rather than rendered empty.
func FlattenEvents(rows []*model.FeaturedEvent) []FeaturedEventItem {
	items := make([]FeaturedEventItem, 0, len(rows))
	for _, row := range rows {
		if row.Event == nil {
			continue
		}
		items = append(items, FeaturedEventItem{
			Id:           row.Id,
			Order:        row.Order,
			EventId:      row.EventId,
			Title:        row.Event.Title,
			LandingImage: row.Event.LandingImage,
			Description:  row.Event.Description,
			Date:         row.Event.Date,
		})
	}
	return items
}

func FlattenPrograms(rows []*model.FeaturedProgram) []FeaturedProgramItem {
	items := make([]FeaturedProgramItem, 0, len(rows))
	for _, row := range rows {
		if row.Program == nil {
			continue
		}
		items = append(items, FeaturedProgramItem{
			Id:           row.Id,
			Order:        row.Order,
			ProgramId:    row.ProgramId,
			Title:        row.Program.Title,
			LandingImage: row.Program.LandingImage,
			Description:  row.Program.Description,
		})
	}
	return items
}

func FlattenNews(rows []*model.FeaturedNews) []FeaturedNewsItem {
	items := make([]FeaturedNewsItem, 0, len(rows))
	for _, row := range rows {
		if row.News == nil {
			continue
		}
		items = append(items, FeaturedNewsItem{
			Id:           row.Id,
			Order:        row.Order,
			NewsId:       row.NewsId,
			Title:        row.News.Title,
			LandingImage: row.News.LandingImage,
			Description:  row.News.Description,
			PublishedAt:  row.News.PublishedAt,
		})
	}
	return items
}

func FlattenHistoryAndValues(rows []*model.FeaturedHistoryAndValues) []FeaturedHistoryAndValuesItem {
	items := make([]FeaturedHistoryAndValuesItem, 0, len(rows))
	for _, row := range rows {
		if row.HistoryAndValues == nil {
			continue
		}
		items = append(items, FeaturedHistoryAndValuesItem{
			Id:                 row.Id,
			Order:              row.Order,
			HistoryAndValuesId: row.HistoryAndValuesId,
			Title:              row.HistoryAndValues.Title,
			LandingImage:       row.HistoryAndValues.LandingImage,
			Description:        row.HistoryAndValues.Description,
		})
	}
	return items
}

func FlattenStartups(rows []*model.FeaturedStartup) []FeaturedStartupItem {
	items := make([]FeaturedStartupItem, 0, len(rows))
	for _, row := range rows {
		if row.Startup == nil {
			continue
		}
		items = append(items, FeaturedStartupItem{
			Id:          row.Id,
			Order:       row.Order,
			StartupId:   row.StartupId,
			Name:        row.Startup.Name,
			Logo:        row.Startup.Logo,
			Description: row.Startup.Description,
			WebsiteUrl:  row.Startup.WebsiteUrl,
			SocialLinks: row.Startup.SocialLinks,
		})
	}
	return items
}

// BuildView flattens an assembled aggregate into the public render payload.
func BuildView(resp *dto.LandingResponse) *LandingView {
	return &LandingView{
		Id:                       resp.Id,
		HeroSections:             resp.HeroSections,
		Partners:                 resp.Partners,
		Footer:                   resp.Footer,
		Faqs:                     resp.Faqs,
		VisionAndMission:         resp.VisionAndMission,
		FeaturedEvents:           FlattenEvents(resp.FeaturedEvents),
		FeaturedPrograms:         FlattenPrograms(resp.FeaturedPrograms),
		FeaturedNews:             FlattenNews(resp.FeaturedNews),
		FeaturedHistoryAndValues: FlattenHistoryAndValues(resp.FeaturedHistoryAndValues),
		FeaturedStartups:         FlattenStartups(resp.FeaturedStartups),
	}
}
