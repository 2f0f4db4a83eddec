package main

import (
	"log"
	"os"

	"landing-cms-be/internal/model"
	"landing-cms-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting GORM migration...")

	models := []interface{}{
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
	}

	if err := db.AutoMigrate(models...); err != nil {
		color.Red("AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	color.Green("Migration completed: %d tables", len(models))
}
