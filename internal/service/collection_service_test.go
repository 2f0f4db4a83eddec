package service_test

import (
	"context"
	"testing"

	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/model"
	"landing-cms-be/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCollectionService(t *testing.T) (service.ICollectionService, *gorm.DB) {
	t.Helper()
	factory, db := newTestFactory(t)
	landing := service.NewLandingService(factory, nil)
	return service.NewCollectionService(factory, landing), db
}

func TestCreatePartnerProvisionsLandingPage(t *testing.T) {
	svc, db := newCollectionService(t)
	ctx := context.Background()

	// No landing page exists yet; creating a partner without an explicit
	// page reference must bring the singleton into existence.
	m, err := svc.CreatePartner(ctx, &dto.CreatePartnerRequest{Name: "First partner"})
	require.NoError(t, err)

	var pages []*model.LandingPage
	require.NoError(t, db.Find(&pages).Error)
	require.Len(t, pages, 1)
	assert.Equal(t, pages[0].Id, m.LandingPageId)

	// A second implicit create binds to the same page.
	m2, err := svc.CreatePartner(ctx, &dto.CreatePartnerRequest{Name: "Second partner"})
	require.NoError(t, err)
	assert.Equal(t, m.LandingPageId, m2.LandingPageId)

	var count int64
	require.NoError(t, db.Model(&model.LandingPage{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreatePartnerRejectsDanglingPageRef(t *testing.T) {
	svc, _ := newCollectionService(t)

	_, err := svc.CreatePartner(context.Background(), &dto.CreatePartnerRequest{
		LandingPageId: uintPtr(999),
		Name:          "Nowhere",
	})
	require.Error(t, err)
	assert.Equal(t, "LandingPage not found", err.Error())
}

func TestUpsertFooterIsSingleton(t *testing.T) {
	svc, db := newCollectionService(t)
	ctx := context.Background()

	_, err := svc.UpsertFooter(ctx, &dto.UpsertFooterRequest{Content: "First"})
	require.NoError(t, err)
	second, err := svc.UpsertFooter(ctx, &dto.UpsertFooterRequest{Content: "Second"})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Footer{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := svc.GetFooter(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.Id, got.Id)
	assert.Equal(t, "Second", got.Content)
}

func TestHeroSectionCrud(t *testing.T) {
	svc, db := newCollectionService(t)
	lp := seedLandingPage(t, db)
	ctx := context.Background()

	created, err := svc.CreateHeroSection(ctx, &dto.CreateHeroSectionRequest{
		LandingPageId: uintPtr(lp.Id),
		Title:         "Welcome",
		Order:         1,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateHeroSection(ctx, created.Id, &dto.UpdateHeroSectionRequest{
		Title: strPtr("Welcome back"),
		Order: intPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "Welcome back", updated.Title)
	assert.Equal(t, 2, updated.Order)

	require.NoError(t, svc.DeleteHeroSection(ctx, created.Id))

	_, err = svc.GetHeroSection(ctx, created.Id)
	require.Error(t, err)
	assert.Equal(t, "hero section not found", err.Error())
}

func TestVisionAndMissionListOrdering(t *testing.T) {
	svc, db := newCollectionService(t)
	lp := seedLandingPage(t, db)
	ctx := context.Background()

	_, err := svc.CreateVisionAndMission(ctx, &dto.CreateVisionAndMissionRequest{
		LandingPageId: uintPtr(lp.Id), Title: "Mission", Order: 2,
	})
	require.NoError(t, err)
	_, err = svc.CreateVisionAndMission(ctx, &dto.CreateVisionAndMissionRequest{
		LandingPageId: uintPtr(lp.Id), Title: "Vision", Order: 1,
	})
	require.NoError(t, err)

	all, err := svc.GetVisionAndMissions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Vision", all[0].Title)
	assert.Equal(t, "Mission", all[1].Title)
}
