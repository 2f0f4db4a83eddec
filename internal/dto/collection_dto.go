package dto

// Direct CRUD requests for the owned collections. Partner creation may omit
// landingPageId; the provisioner then binds the row to the current page.

type CreateHeroSectionRequest struct {
	LandingPageId *uint  `json:"landingPageId" validate:"required"`
	Title         string `json:"title" validate:"required"`
	LandingImage  string `json:"landingImage"`
	Description   string `json:"description"`
	Order         int    `json:"order"`
}

type UpdateHeroSectionRequest struct {
	Title        *string `json:"title"`
	LandingImage *string `json:"landingImage"`
	Description  *string `json:"description"`
	Order        *int    `json:"order"`
}

type CreatePartnerRequest struct {
	LandingPageId *uint  `json:"landingPageId"`
	Name          string `json:"name" validate:"required"`
	Logo          string `json:"logo"`
	WebsiteUrl    string `json:"websiteUrl"`
	Order         int    `json:"order"`
}

type UpdatePartnerRequest struct {
	Name       *string `json:"name"`
	Logo       *string `json:"logo"`
	WebsiteUrl *string `json:"websiteUrl"`
	Order      *int    `json:"order"`
}

type CreateFaqRequest struct {
	LandingPageId *uint  `json:"landingPageId" validate:"required"`
	Question      string `json:"question" validate:"required"`
	Answer        string `json:"answer"`
	Order         int    `json:"order"`
}

type UpdateFaqRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Order    *int    `json:"order"`
}

type CreateVisionAndMissionRequest struct {
	LandingPageId *uint  `json:"landingPageId" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Content       string `json:"content"`
	Order         int    `json:"order"`
}

type UpdateVisionAndMissionRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Order   *int    `json:"order"`
}

type UpsertFooterRequest struct {
	LandingPageId *uint  `json:"landingPageId"`
	Content       string `json:"content" validate:"required"`
}
