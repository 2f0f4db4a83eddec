package service_test

import (
	"context"
	"testing"
	"time"

	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/model"
	"landing-cms-be/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCrud(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := service.NewEventService(factory, nil)
	ctx := context.Background()

	date := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)
	created, err := svc.Create(ctx, &dto.CreateEventRequest{
		Title:       "Demo Day",
		Description: "Annual showcase",
		Date:        &date,
	})
	require.NoError(t, err)
	require.NotNil(t, created.Date)
	assert.True(t, created.Date.Equal(date))

	updated, err := svc.Update(ctx, created.Id, &dto.UpdateEventRequest{
		Title: strPtr("Demo Day 2026"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Demo Day 2026", updated.Title)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Annual showcase", updated.Description)

	require.NoError(t, svc.Delete(ctx, created.Id))

	_, err = svc.GetById(ctx, created.Id)
	require.Error(t, err)
	assert.Equal(t, "event not found", err.Error())
}

func TestEventDeleteMissingIs404(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := service.NewEventService(factory, nil)

	err := svc.Delete(context.Background(), 999999)
	require.Error(t, err)
	assert.Equal(t, "event not found", err.Error())
}

func TestProgramListOrdering(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := service.NewProgramService(factory, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateProgramRequest{Title: "Acceleration", Order: 2})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &dto.CreateProgramRequest{Title: "Incubation", Order: 1})
	require.NoError(t, err)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Incubation", all[0].Title)
	assert.Equal(t, "Acceleration", all[1].Title)
}

func TestHistoryCreateProvisionsWhenPageOmitted(t *testing.T) {
	factory, db := newTestFactory(t)
	landing := service.NewLandingService(factory, nil)
	svc := service.NewHistoryAndValuesService(factory, landing, nil)
	ctx := context.Background()

	m, err := svc.Create(ctx, &dto.CreateHistoryAndValuesRequest{Title: "Our history"})
	require.NoError(t, err)
	require.NotNil(t, m.LandingPageId)

	var pages int64
	require.NoError(t, db.Model(&model.LandingPage{}).Count(&pages).Error)
	assert.EqualValues(t, 1, pages)
}

func TestHistoryCreateRejectsDanglingPage(t *testing.T) {
	factory, _ := newTestFactory(t)
	landing := service.NewLandingService(factory, nil)
	svc := service.NewHistoryAndValuesService(factory, landing, nil)

	_, err := svc.Create(context.Background(), &dto.CreateHistoryAndValuesRequest{
		LandingPageId: uintPtr(999),
		Title:         "Nowhere",
	})
	require.Error(t, err)
	assert.Equal(t, "LandingPage not found", err.Error())
}

func TestNewsPartialUpdate(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := service.NewNewsService(factory, nil)
	ctx := context.Background()

	published := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	created, err := svc.Create(ctx, &dto.CreateNewsRequest{
		Title:       "Cohort announced",
		PublishedAt: &published,
		Order:       1,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.Id, &dto.UpdateNewsRequest{
		Order: intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Order)
	assert.Equal(t, "Cohort announced", updated.Title)
	require.NotNil(t, updated.PublishedAt)
}
