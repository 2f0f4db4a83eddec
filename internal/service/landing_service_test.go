package service_test

import (
	"context"
	"testing"

	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/model"
	"landing-cms-be/internal/pkg/serverutils"
	"landing-cms-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLandingWithoutPage(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := service.NewLandingService(factory, nil)

	_, err := svc.GetLanding(context.Background())
	require.Error(t, err)

	appErr, ok := err.(*serverutils.AppError)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, appErr.Code)
	assert.Equal(t, "landing page not found", appErr.Message)
}

func TestEnsureLandingPageCreatesExactlyOneRow(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := service.NewLandingService(factory, nil)
	ctx := context.Background()

	first, err := svc.EnsureLandingPage(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.EnsureLandingPage(ctx)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.Id, second.Id)

	var count int64
	require.NoError(t, db.Model(&model.LandingPage{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateLandingReplacesNamedCollections(t *testing.T) {
	factory, db := newTestFactory(t)
	lp := seedLandingPage(t, db)
	svc := service.NewLandingService(factory, nil)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.HeroSection{LandingPageId: lp.Id, Title: "Old hero A"}).Error)
	require.NoError(t, db.Create(&model.HeroSection{LandingPageId: lp.Id, Title: "Old hero B"}).Error)
	require.NoError(t, db.Create(&model.Faq{LandingPageId: lp.Id, Question: "Old question"}).Error)
	require.NoError(t, db.Create(&model.Partner{LandingPageId: lp.Id, Name: "Untouched partner"}).Error)

	req := &dto.UpdateLandingRequest{
		HeroSections: &[]dto.HeroSectionInput{{Title: "Only hero", Order: 3}},
		Faqs:         &[]dto.FaqInput{},
	}
	res, err := svc.UpdateLanding(ctx, req, "editor@example.com")
	require.NoError(t, err)

	// Named with one row: the old two are gone, the new one is there.
	require.Len(t, res.HeroSections, 1)
	assert.Equal(t, "Only hero", res.HeroSections[0].Title)
	assert.Equal(t, 3, res.HeroSections[0].Order)
	assert.Equal(t, lp.Id, res.HeroSections[0].LandingPageId)

	// Named with an empty slice: the collection is cleared, not ignored.
	assert.Len(t, res.Faqs, 0)

	// Absent from the envelope: untouched.
	require.Len(t, res.Partners, 1)
	assert.Equal(t, "Untouched partner", res.Partners[0].Name)
}

func TestUpdateLandingRollsBackOnDanglingReference(t *testing.T) {
	factory, db := newTestFactory(t)
	lp := seedLandingPage(t, db)
	svc := service.NewLandingService(factory, nil)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.HeroSection{LandingPageId: lp.Id, Title: "Survivor"}).Error)

	req := &dto.UpdateLandingRequest{
		HeroSections:   &[]dto.HeroSectionInput{{Title: "Should never land"}},
		FeaturedEvents: &[]dto.FeaturedAssociationInput{{EventId: uintPtr(999999)}},
	}
	_, err := svc.UpdateLanding(ctx, req, "editor@example.com")
	require.Error(t, err)

	appErr, ok := err.(*serverutils.AppError)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, appErr.Code)
	assert.Equal(t, "Event not found", appErr.Message)

	// The hero replacement in the same envelope must have been rolled back.
	res, err := svc.GetLanding(ctx)
	require.NoError(t, err)
	require.Len(t, res.HeroSections, 1)
	assert.Equal(t, "Survivor", res.HeroSections[0].Title)
	assert.Len(t, res.FeaturedEvents, 0)
}

func TestUpdateLandingMissingFeaturedContentKey(t *testing.T) {
	factory, db := newTestFactory(t)
	seedLandingPage(t, db)
	svc := service.NewLandingService(factory, nil)

	req := &dto.UpdateLandingRequest{
		FeaturedEvents: &[]dto.FeaturedAssociationInput{{Order: 1}},
	}
	_, err := svc.UpdateLanding(context.Background(), req, "editor@example.com")
	require.Error(t, err)
	assert.Equal(t, "eventId is required", err.Error())
}

func TestUpdateLandingFooterStaysSingleton(t *testing.T) {
	factory, db := newTestFactory(t)
	seedLandingPage(t, db)
	svc := service.NewLandingService(factory, nil)
	ctx := context.Background()

	for _, content := range []string{"First footer", "Second footer"} {
		_, err := svc.UpdateLanding(ctx, &dto.UpdateLandingRequest{
			Footer: &dto.FooterInput{Content: content},
		}, "editor@example.com")
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&model.Footer{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	res, err := svc.GetLanding(ctx)
	require.NoError(t, err)
	require.NotNil(t, res.Footer)
	assert.Equal(t, "Second footer", res.Footer.Content)
}

func TestUpdateLandingReplaceDiscardsRowIds(t *testing.T) {
	factory, db := newTestFactory(t)
	lp := seedLandingPage(t, db)
	svc := service.NewLandingService(factory, nil)
	ctx := context.Background()

	old := &model.Faq{LandingPageId: lp.Id, Question: "Same question"}
	require.NoError(t, db.Create(old).Error)

	res, err := svc.UpdateLanding(ctx, &dto.UpdateLandingRequest{
		Faqs: &[]dto.FaqInput{{Question: "Same question"}},
	}, "editor@example.com")
	require.NoError(t, err)

	// Replace is delete-and-recreate, never update in place.
	require.Len(t, res.Faqs, 1)
	assert.NotEqual(t, old.Id, res.Faqs[0].Id)
}

func TestGetLandingOrdersFeaturedByAssociationOrder(t *testing.T) {
	factory, db := newTestFactory(t)
	lp := seedLandingPage(t, db)
	svc := service.NewLandingService(factory, nil)

	first := &model.Event{Title: "Inserted first"}
	second := &model.Event{Title: "Inserted second"}
	require.NoError(t, db.Create(first).Error)
	require.NoError(t, db.Create(second).Error)

	// Insertion order and display order deliberately disagree.
	require.NoError(t, db.Create(&model.FeaturedEvent{LandingPageId: lp.Id, EventId: first.Id, Order: 2}).Error)
	require.NoError(t, db.Create(&model.FeaturedEvent{LandingPageId: lp.Id, EventId: second.Id, Order: 1}).Error)

	res, err := svc.GetLanding(context.Background())
	require.NoError(t, err)
	require.Len(t, res.FeaturedEvents, 2)
	assert.Equal(t, second.Id, res.FeaturedEvents[0].EventId)
	assert.Equal(t, first.Id, res.FeaturedEvents[1].EventId)

	// Entities ride along on the association rows.
	require.NotNil(t, res.FeaturedEvents[0].Event)
	assert.Equal(t, "Inserted second", res.FeaturedEvents[0].Event.Title)
}
