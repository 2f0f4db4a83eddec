package service_test

import (
	"context"
	"testing"

	"landing-cms-be/internal/model"
	"landing-cms-be/internal/pkg/serverutils"
	"landing-cms-be/internal/repository/contract"
	"landing-cms-be/internal/repository/unitofwork"
	"landing-cms-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFeaturedEventService(factory unitofwork.RepositoryFactory) service.IFeaturedService[model.FeaturedEvent] {
	return service.NewFeaturedService[model.FeaturedEvent](
		factory, "Event",
		func(uow unitofwork.UnitOfWork) contract.FeaturedRepository[model.FeaturedEvent] {
			return uow.FeaturedEventRepository()
		},
		func(ctx context.Context, uow unitofwork.UnitOfWork, id uint) (bool, error) {
			m, err := uow.EventRepository().FindById(ctx, id)
			return m != nil, err
		},
		nil,
	)
}

func seedEvent(t *testing.T, db *gorm.DB, title string) *model.Event {
	t.Helper()
	ev := &model.Event{Title: title}
	require.NoError(t, db.Create(ev).Error)
	return ev
}

func TestFeaturedCreateDefaultsOrderToZero(t *testing.T) {
	factory, db := newTestFactory(t)
	lp := seedLandingPage(t, db)
	ev := seedEvent(t, db, "Launch night")
	svc := newFeaturedEventService(factory)

	m, err := svc.Create(context.Background(), uintPtr(lp.Id), uintPtr(ev.Id), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Order)
	assert.Equal(t, ev.Id, m.EventId)
	require.NotNil(t, m.Event)
	assert.Equal(t, "Launch night", m.Event.Title)
}

func TestFeaturedCreateRejectsDanglingContent(t *testing.T) {
	factory, db := newTestFactory(t)
	lp := seedLandingPage(t, db)
	svc := newFeaturedEventService(factory)

	_, err := svc.Create(context.Background(), uintPtr(lp.Id), uintPtr(999999), nil)
	require.Error(t, err)

	appErr, ok := err.(*serverutils.AppError)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, appErr.Code)
	assert.Equal(t, "Event not found", appErr.Message)

	// Validation failed before any write.
	var count int64
	require.NoError(t, db.Model(&model.FeaturedEvent{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestFeaturedCreateRejectsDanglingPage(t *testing.T) {
	factory, db := newTestFactory(t)
	ev := seedEvent(t, db, "Orphan")
	svc := newFeaturedEventService(factory)

	_, err := svc.Create(context.Background(), uintPtr(999), uintPtr(ev.Id), nil)
	require.Error(t, err)
	assert.Equal(t, "LandingPage not found", err.Error())
}

func TestFeaturedCreateRequiresBothRefs(t *testing.T) {
	factory, db := newTestFactory(t)
	lp := seedLandingPage(t, db)
	svc := newFeaturedEventService(factory)

	_, err := svc.Create(context.Background(), nil, uintPtr(1), nil)
	require.Error(t, err)
	assert.Equal(t, "landingPageId is required", err.Error())

	_, err = svc.Create(context.Background(), uintPtr(lp.Id), nil, nil)
	require.Error(t, err)
	assert.Equal(t, "Event reference is required", err.Error())
}

func TestFeaturedSameContentFeaturedTwice(t *testing.T) {
	factory, db := newTestFactory(t)
	lp := seedLandingPage(t, db)
	ev := seedEvent(t, db, "Encore")
	svc := newFeaturedEventService(factory)
	ctx := context.Background()

	_, err := svc.Create(ctx, uintPtr(lp.Id), uintPtr(ev.Id), intPtr(2))
	require.NoError(t, err)
	_, err = svc.Create(ctx, uintPtr(lp.Id), uintPtr(ev.Id), intPtr(1))
	require.NoError(t, err)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].Order)
	assert.Equal(t, 2, all[1].Order)
}

func TestFeaturedUpdateReorders(t *testing.T) {
	factory, db := newTestFactory(t)
	lp := seedLandingPage(t, db)
	ev := seedEvent(t, db, "Reorder me")
	svc := newFeaturedEventService(factory)
	ctx := context.Background()

	created, err := svc.Create(ctx, uintPtr(lp.Id), uintPtr(ev.Id), intPtr(1))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.Id, nil, nil, intPtr(7))
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Order)
	assert.Equal(t, ev.Id, updated.EventId)
}

func TestFeaturedUpdateRevalidatesSuppliedRefs(t *testing.T) {
	factory, db := newTestFactory(t)
	lp := seedLandingPage(t, db)
	ev := seedEvent(t, db, "Keep")
	svc := newFeaturedEventService(factory)
	ctx := context.Background()

	created, err := svc.Create(ctx, uintPtr(lp.Id), uintPtr(ev.Id), nil)
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.Id, nil, uintPtr(424242), nil)
	require.Error(t, err)
	assert.Equal(t, "Event not found", err.Error())
}

func TestFeaturedDeleteMissingIs404(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := newFeaturedEventService(factory)

	err := svc.Delete(context.Background(), 12345)
	require.Error(t, err)

	appErr, ok := err.(*serverutils.AppError)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, appErr.Code)
	assert.Equal(t, "featured Event not found", appErr.Message)
}

func TestFeaturedDeleteLeavesContent(t *testing.T) {
	factory, db := newTestFactory(t)
	lp := seedLandingPage(t, db)
	ev := seedEvent(t, db, "Still here")
	svc := newFeaturedEventService(factory)
	ctx := context.Background()

	created, err := svc.Create(ctx, uintPtr(lp.Id), uintPtr(ev.Id), nil)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.Id))

	var eventCount int64
	require.NoError(t, db.Model(&model.Event{}).Count(&eventCount).Error)
	assert.EqualValues(t, 1, eventCount)
}
