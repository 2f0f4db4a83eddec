package service_test

import (
	"testing"

	"landing-cms-be/internal/model"
	"landing-cms-be/internal/repository/unitofwork"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database capped at one connection so
// every query, transactional or not, sees the same store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.LandingPage{},
		&model.HeroSection{},
		&model.Partner{},
		&model.Footer{},
		&model.Faq{},
		&model.VisionAndMission{},
		&model.Event{},
		&model.Program{},
		&model.News{},
		&model.HistoryAndValues{},
		&model.Startup{},
		&model.StartupFounder{},
		&model.FeaturedEvent{},
		&model.FeaturedProgram{},
		&model.FeaturedNews{},
		&model.FeaturedHistoryAndValues{},
		&model.FeaturedStartup{},
		&model.User{},
		&model.SystemLog{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func newTestFactory(t *testing.T) (unitofwork.RepositoryFactory, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return unitofwork.NewRepositoryFactory(db), db
}

func seedLandingPage(t *testing.T, db *gorm.DB) *model.LandingPage {
	t.Helper()
	lp := &model.LandingPage{Slot: 1}
	if err := db.Create(lp).Error; err != nil {
		t.Fatalf("failed to seed landing page: %v", err)
	}
	return lp
}

func uintPtr(v uint) *uint       { return &v }
func intPtr(v int) *int          { return &v }
func strPtr(v string) *string    { return &v }
