package main

import (
	"github.com/sirupsen/logrus"

	"github.com/careerbridge/jobboard/internal/config"
	"github.com/careerbridge/jobboard/internal/database"
	"github.com/careerbridge/jobboard/internal/handlers"
)

func main() {
	// 1. Load Environment Variables
	cfg := config.Load()

	// 2. Database Connection
	db, err := database.Connect(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	// 3. Setup Router (services, middleware, routes)
	r := handlers.NewRouter(db, cfg.RequestTimeout)

	// 4. Listen
	logrus.WithField("port", cfg.Port).Info("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("Server failed to start")
	}
}
