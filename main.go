package main

import (
	"flag"
	"log"

	"unilost/config"
	"unilost/controllers"
	"unilost/db"
	"unilost/router"
	"unilost/tools"
	"unilost/verification"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file")
	flag.Parse()

	cfg := config.Get(*configPath)
	db.SetConfigurations(cfg)

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	mailer := tools.NewMailer(cfg)
	manager := verification.New(database, mailer, cfg)

	r := gin.New()
	r.Use(db.SetDBtoContext(database))
	r.Use(controllers.SetVerificationManager(manager))
	router.Initialize(r, cfg)

	log.Printf("UniLost Backend Server running on port %s", cfg.ApiPort)
	if err := r.Run(":" + cfg.ApiPort); err != nil {
		log.Fatal(err)
	}
}
