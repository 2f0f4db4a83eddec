package dto

// FeaturedRefs is what the generic feature association manager reads off the
// per-type request structs; the structs exist so each family keeps its own
// wire key (eventId, programId, ...).
type FeaturedRefs interface {
	Refs() (landingPageId, contentId *uint, order *int)
}

type CreateFeaturedEventRequest struct {
	LandingPageId *uint `json:"landingPageId" validate:"required"`
	EventId       *uint `json:"eventId" validate:"required"`
	Order         *int  `json:"order"`
}

func (r CreateFeaturedEventRequest) Refs() (*uint, *uint, *int) {
	return r.LandingPageId, r.EventId, r.Order
}

type UpdateFeaturedEventRequest struct {
	LandingPageId *uint `json:"landingPageId"`
	EventId       *uint `json:"eventId"`
	Order         *int  `json:"order"`
}

func (r UpdateFeaturedEventRequest) Refs() (*uint, *uint, *int) {
	return r.LandingPageId, r.EventId, r.Order
}

type CreateFeaturedProgramRequest struct {
	LandingPageId *uint `json:"landingPageId" validate:"required"`
	ProgramId     *uint `json:"programId" validate:"required"`
	Order         *int  `json:"order"`
}

func (r CreateFeaturedProgramRequest) Refs() (*uint, *uint, *int) {
	return r.LandingPageId, r.ProgramId, r.Order
}

type UpdateFeaturedProgramRequest struct {
	LandingPageId *uint `json:"landingPageId"`
	ProgramId     *uint `json:"programId"`
	Order         *int  `json:"order"`
}

func (r UpdateFeaturedProgramRequest) Refs() (*uint, *uint, *int) {
	return r.LandingPageId, r.ProgramId, r.Order
}

type CreateFeaturedNewsRequest struct {
	LandingPageId *uint `json:"landingPageId" validate:"required"`
	NewsId        *uint `json:"newsId" validate:"required"`
	Order         *int  `json:"order"`
}

func (r CreateFeaturedNewsRequest) Refs() (*uint, *uint, *int) {
	return r.LandingPageId, r.NewsId, r.Order
}

type UpdateFeaturedNewsRequest struct {
	LandingPageId *uint `json:"landingPageId"`
	NewsId        *uint `json:"newsId"`
	Order         *int  `json:"order"`
}

func (r UpdateFeaturedNewsRequest) Refs() (*uint, *uint, *int) {
	return r.LandingPageId, r.NewsId, r.Order
}

type CreateFeaturedHistoryAndValuesRequest struct {
	LandingPageId      *uint `json:"landingPageId" validate:"required"`
	HistoryAndValuesId *uint `json:"historyAndValuesId" validate:"required"`
	Order              *int  `json:"order"`
}

func (r CreateFeaturedHistoryAndValuesRequest) Refs() (*uint, *uint, *int) {
	return r.LandingPageId, r.HistoryAndValuesId, r.Order
}

type UpdateFeaturedHistoryAndValuesRequest struct {
	LandingPageId      *uint `json:"landingPageId"`
	HistoryAndValuesId *uint `json:"historyAndValuesId"`
	Order              *int  `json:"order"`
}

func (r UpdateFeaturedHistoryAndValuesRequest) Refs() (*uint, *uint, *int) {
	return r.LandingPageId, r.HistoryAndValuesId, r.Order
}

type CreateFeaturedStartupRequest struct {
	LandingPageId *uint `json:"landingPageId" validate:"required"`
	StartupId     *uint `json:"startupId" validate:"required"`
	Order         *int  `json:"order"`
}

func (r CreateFeaturedStartupRequest) Refs() (*uint, *uint, *int) {
	return r.LandingPageId, r.StartupId, r.Order
}

type UpdateFeaturedStartupRequest struct {
	LandingPageId *uint `json:"landingPageId"`
	StartupId     *uint `json:"startupId"`
	Order         *int  `json:"order"`
}

func (r UpdateFeaturedStartupRequest) Refs() (*uint, *uint, *int) {
	return r.LandingPageId, r.StartupId, r.Order
}
