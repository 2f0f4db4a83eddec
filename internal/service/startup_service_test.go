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

func seedUser(t *testing.T, db *gorm.DB, email, role string) *model.User {
	t.Helper()
	u := &model.User{Email: email, FullName: "Test " + email, Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestStartupCreateWithFounders(t *testing.T) {
	factory, db := newTestFactory(t)
	founder := seedUser(t, db, "founder@example.com", model.RoleUser)
	svc := service.NewStartupService(factory, nil)

	m, err := svc.Create(context.Background(), &dto.CreateStartupRequest{
		Name:       "Acme Robotics",
		WebsiteUrl: "https://acme.example",
		FounderIds: []uint{founder.Id},
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Robotics", m.Name)
	require.Len(t, m.Founders, 1)
	require.NotNil(t, m.Founders[0].User)
	assert.Equal(t, "founder@example.com", m.Founders[0].User.Email)
}

func TestStartupCreateRejectsUnknownFounder(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := service.NewStartupService(factory, nil)

	_, err := svc.Create(context.Background(), &dto.CreateStartupRequest{
		Name:       "Ghost Inc",
		FounderIds: []uint{999999},
	})
	require.Error(t, err)
	assert.Equal(t, "User not found", err.Error())

	var count int64
	require.NoError(t, db.Model(&model.Startup{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestStartupUpdateEnforcesFounderRule(t *testing.T) {
	factory, db := newTestFactory(t)
	founder := seedUser(t, db, "founder@example.com", model.RoleUser)
	admin := seedUser(t, db, "admin@example.com", model.RoleAdmin)
	svc := service.NewStartupService(factory, nil)
	ctx := context.Background()

	m, err := svc.Create(ctx, &dto.CreateStartupRequest{
		Name:       "Acme Robotics",
		FounderIds: []uint{founder.Id},
	})
	require.NoError(t, err)

	// Admin-only founder set violates the rule.
	_, err = svc.Update(ctx, m.Id, &dto.UpdateStartupRequest{
		FounderIds: &[]uint{admin.Id},
	})
	require.Error(t, err)
	assert.Equal(t, "startup must have at least one founder with role user", err.Error())

	// Founder set left out of the request: rule not applied, name still updates.
	updated, err := svc.Update(ctx, m.Id, &dto.UpdateStartupRequest{
		Name: strPtr("Acme Robotics v2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Robotics v2", updated.Name)
	require.Len(t, updated.Founders, 1)
	assert.Equal(t, founder.Id, updated.Founders[0].UserId)

	// Mixed set containing one plain user passes.
	updated, err = svc.Update(ctx, m.Id, &dto.UpdateStartupRequest{
		FounderIds: &[]uint{admin.Id, founder.Id},
	})
	require.NoError(t, err)
	assert.Len(t, updated.Founders, 2)
}

func TestStartupDeleteRemovesFounderRows(t *testing.T) {
	factory, db := newTestFactory(t)
	founder := seedUser(t, db, "founder@example.com", model.RoleUser)
	svc := service.NewStartupService(factory, nil)
	ctx := context.Background()

	m, err := svc.Create(ctx, &dto.CreateStartupRequest{
		Name:       "Acme Robotics",
		FounderIds: []uint{founder.Id},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, m.Id))

	var founderRows int64
	require.NoError(t, db.Model(&model.StartupFounder{}).Count(&founderRows).Error)
	assert.EqualValues(t, 0, founderRows)

	// The user account itself is untouched.
	var users int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	assert.EqualValues(t, 1, users)
}

func TestStartupDeleteMissingIs404(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := service.NewStartupService(factory, nil)

	err := svc.Delete(context.Background(), 999999)
	require.Error(t, err)
	assert.Equal(t, "startup not found", err.Error())
}
