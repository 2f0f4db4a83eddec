package dto

import "landing-cms-be/internal/model"

// UpdateLandingRequest is the publish envelope. Each field uses pointer
// presence semantics: nil (key absent or JSON null) leaves the collection
// untouched; non-nil, including an empty slice, replaces the entire scoped
// set with the supplied rows. Row ids are not stable across saves: replace
// deletes and recreates, it never updates in place.
type UpdateLandingRequest struct {
	HeroSections             *[]HeroSectionInput              `json:"heroSections"`
	Partners                 *[]PartnerInput                  `json:"partners"`
	Faqs                     *[]FaqInput                      `json:"faqs"`
	VisionAndMission         *[]VisionAndMissionInput         `json:"visionAndMission"`
	Footer                   *FooterInput                     `json:"footer"`
	FeaturedEvents           *[]FeaturedAssociationInput      `json:"featuredEvents"`
	FeaturedPrograms         *[]FeaturedAssociationInput      `json:"featuredPrograms"`
	FeaturedNews             *[]FeaturedAssociationInput      `json:"featuredNews"`
	FeaturedHistoryAndValues *[]FeaturedAssociationInput      `json:"featuredHistoryAndValues"`
	FeaturedStartups         *[]FeaturedAssociationInput      `json:"featuredStartups"`
}

type HeroSectionInput struct {
	LandingPageId *uint  `json:"landingPageId"`
	Title         string `json:"title" validate:"required"`
	LandingImage  string `json:"landingImage"`
	Description   string `json:"description"`
	Order         int    `json:"order"`
}

type PartnerInput struct {
	LandingPageId *uint  `json:"landingPageId"`
	Name          string `json:"name" validate:"required"`
	Logo          string `json:"logo"`
	WebsiteUrl    string `json:"websiteUrl"`
	Order         int    `json:"order"`
}

type FaqInput struct {
	LandingPageId *uint  `json:"landingPageId"`
	Question      string `json:"question" validate:"required"`
	Answer        string `json:"answer"`
	Order         int    `json:"order"`
}

type VisionAndMissionInput struct {
	LandingPageId *uint  `json:"landingPageId"`
	Title         string `json:"title" validate:"required"`
	Content       string `json:"content"`
	Order         int    `json:"order"`
}

type FooterInput struct {
	LandingPageId *uint  `json:"landingPageId"`
	Content       string `json:"content" validate:"required"`
}

// FeaturedAssociationInput carries one featured row inside the envelope. The
// content key is generic here; the engine resolves it against the pool that
// the envelope key names.
type FeaturedAssociationInput struct {
	LandingPageId      *uint `json:"landingPageId"`
	EventId            *uint `json:"eventId"`
	ProgramId          *uint `json:"programId"`
	NewsId             *uint `json:"newsId"`
	HistoryAndValuesId *uint `json:"historyAndValuesId"`
	StartupId          *uint `json:"startupId"`
	Order              int   `json:"order"`
}

// LandingResponse is the assembled aggregate: root plus every owned and
// associated collection, each already ordered for rendering.
type LandingResponse struct {
	Id                       uint                              `json:"id"`
	HeroSections             []*model.HeroSection              `json:"heroSections"`
	Partners                 []*model.Partner                  `json:"partners"`
	Footer                   *model.Footer                     `json:"footer"`
	Faqs                     []*model.Faq                      `json:"faqs"`
	VisionAndMission         []*model.VisionAndMission         `json:"visionAndMission"`
	FeaturedEvents           []*model.FeaturedEvent            `json:"featuredEvents"`
	FeaturedPrograms         []*model.FeaturedProgram          `json:"featuredPrograms"`
	FeaturedNews             []*model.FeaturedNews             `json:"featuredNews"`
	FeaturedHistoryAndValues []*model.FeaturedHistoryAndValues `json:"featuredHistoryAndValues"`
	FeaturedStartups         []*model.FeaturedStartup          `json:"featuredStartups"`
}
