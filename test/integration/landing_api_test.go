package integration

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"landing-cms-be/internal/bootstrap"
	"landing-cms-be/internal/config"
	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/model"
	"landing-cms-be/internal/server"
	"landing-cms-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercises the full stack against a real postgres. Skipped unless
// DB_CONNECTION_STRING points at a disposable database.
func TestLandingEnvelopeOverHTTP(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("no ../../.env: %v", err)
	}
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("DB_CONNECTION_STRING not set")
	}

	cfg := config.Load()
	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.LandingPage{}, &model.HeroSection{}, &model.Partner{}, &model.Footer{},
		&model.Faq{}, &model.VisionAndMission{}, &model.Event{}, &model.Program{},
		&model.News{}, &model.HistoryAndValues{}, &model.Startup{}, &model.StartupFounder{},
		&model.FeaturedEvent{}, &model.FeaturedProgram{}, &model.FeaturedNews{},
		&model.FeaturedHistoryAndValues{}, &model.FeaturedStartup{},
		&model.User{}, &model.SystemLog{},
	))

	container := bootstrap.NewContainer(db, cfg)
	app := server.New(cfg, container).GetApp()

	lp := &model.LandingPage{Slot: 1}
	require.NoError(t, db.Where("slot = 1").FirstOrCreate(lp).Error)
	t.Cleanup(func() {
		db.Exec("DELETE FROM hero_sections")
		db.Exec("DELETE FROM footers")
	})

	body := `{"heroSections":[{"title":"Integration hero","order":1}],"footer":{"content":"Integration footer"}}`
	req := httptest.NewRequest("PUT", "/landing", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var landing dto.LandingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&landing))
	require.Len(t, landing.HeroSections, 1)
	assert.Equal(t, "Integration hero", landing.HeroSections[0].Title)
	require.NotNil(t, landing.Footer)
	assert.Equal(t, "Integration footer", landing.Footer.Content)

	getReq := httptest.NewRequest("GET", "/landing/view", nil)
	getResp, err := app.Test(getReq, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, getResp.StatusCode)
}
