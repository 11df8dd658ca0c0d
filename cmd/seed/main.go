package main

import (
	"context"
	"log"

	"github.com/peoplecore/hrms-backend-go/internal/config"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrms-backend-go/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	if err := seed.New(db).Run(context.Background()); err != nil {
		log.Fatal("Seeding failed: ", err)
	}
	log.Println("Seeding complete")
}
