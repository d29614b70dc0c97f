package main

import (
	"log"
	"os"

	"github.com/weijinqqq/smart-fitness-backend/config"
	"github.com/weijinqqq/smart-fitness-backend/routes"
)

func main() {
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	r := routes.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("smart-fitness backend listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
