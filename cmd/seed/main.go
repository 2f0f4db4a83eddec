package main

import (
	"log"
	"os"
	"time"

	"landing-cms-be/internal/model"
	"landing-cms-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
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

	color.Cyan("Seeding admin user...")
	seedAdmin(db)

	color.Cyan("Seeding sample content...")
	seedContent(db)

	color.Green("Seeding completed")
}

func seedAdmin(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Admin '%s' already exists, skipping...", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}
	hashStr := string(hash)

	admin := model.User{
		Email:        email,
		PasswordHash: &hashStr,
		FullName:     "Administrator",
		Role:         model.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error creating admin: %v", err)
		return
	}
	log.Printf("Created admin: %s", email)
}

func seedContent(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.Event{}).Count(&count).Error; err == nil && count > 0 {
		log.Println("Content already present, skipping sample seed...")
		return
	}

	now := time.Now()
	events := []model.Event{
		{Title: "Demo Day 2026", Description: "Annual startup showcase", Date: &now},
		{Title: "Founder Meetup", Description: "Monthly networking evening"},
	}
	programs := []model.Program{
		{Title: "Incubation", Description: "Six-month incubation track", Order: 1},
		{Title: "Acceleration", Description: "Growth program for funded teams", Order: 2},
	}
	news := []model.News{
		{Title: "New cohort announced", Description: "Applications open next month", PublishedAt: &now},
	}

	for i := range events {
		if err := db.Create(&events[i]).Error; err != nil {
			log.Printf("Error creating event: %v", err)
		}
	}
	for i := range programs {
		if err := db.Create(&programs[i]).Error; err != nil {
			log.Printf("Error creating program: %v", err)
		}
	}
	for i := range news {
		if err := db.Create(&news[i]).Error; err != nil {
			log.Printf("Error creating news: %v", err)
		}
	}

	log.Printf("Created %d events, %d programs, %d news items", len(events), len(programs), len(news))
}
