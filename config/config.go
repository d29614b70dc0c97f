package config

import (
	"fmt"
	"log"
	"os"

	"github.com/weijinqqq/smart-fitness-backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection described by the environment and runs
// migrations plus seed data. The returned handle is passed explicitly into
// every service; nothing else in the codebase holds database state.
func InitDB() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs AutoMigrate for every model and seeds static rows. Exported
// so tests can prepare an in-memory database the same way.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Activity{},
		&models.Meal{},
		&models.FitnessPlan{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.Post{},
		&models.Comment{},
		&models.Alert{},
	)
	if err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	if err := seedAchievements(db); err != nil {
		return err
	}
	return seedPresetPlans(db)
}

// seedAchievements inserts the badge catalog once; reruns are no-ops.
func seedAchievements(db *gorm.DB) error {
	achievements := []models.Achievement{
		{Name: "First Timer", Description: "Complete your first workout", Icon: "/badges/first_timer.png", RuleType: models.RuleFirstActivity},
		{Name: "Consistency", Description: "Work out 7 days in a row", Icon: "/badges/consistency.png", RuleType: models.RuleStreak, Threshold: 7},
		{Name: "Calorie Burner", Description: "Burn 5000 calories in total", Icon: "/badges/calorie_burner.png", RuleType: models.RuleTotalCalories, Threshold: 5000},
	}

	for _, a := range achievements {
		if err := db.Where(models.Achievement{Name: a.Name}).FirstOrCreate(&a).Error; err != nil {
			return fmt.Errorf("seed achievement %s: %w", a.Name, err)
		}
	}
	return nil
}

func seedPresetPlans(db *gorm.DB) error {
	var count int64
	db.Model(&models.FitnessPlan{}).Where("is_preset = ?", true).Count(&count)
	if count > 0 {
		return nil
	}

	plans := []models.FitnessPlan{
		{
			PlanName:    "Beginner Full Body",
			Description: "Three full-body sessions per week for newcomers",
			Content:     `{"weeks":4,"sessions_per_week":3,"focus":"full_body"}`,
			IsPreset:    true,
		},
		{
			PlanName:    "5K Runner",
			Description: "Progressive running plan building up to 5 km",
			Content:     `{"weeks":8,"sessions_per_week":3,"focus":"cardio"}`,
			IsPreset:    true,
		},
		{
			PlanName:    "Strength Foundations",
			Description: "Compound lifts with progressive overload",
			Content:     `{"weeks":6,"sessions_per_week":4,"focus":"strength"}`,
			IsPreset:    true,
		},
	}

	for _, p := range plans {
		if err := db.Create(&p).Error; err != nil {
			return fmt.Errorf("seed preset plan %s: %w", p.PlanName, err)
		}
	}
	log.Println("Preset fitness plans created")
	return nil
}
