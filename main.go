package main

import (
	"github.com/sirupsen/logrus"

	"symposium-portal/config"
	"symposium-portal/database"
	"symposium-portal/router"
)

func main() {
	config.LoadEnv()

	if err := database.DBInit(); err != nil {
		logrus.Fatalf("database init failed: %v", err)
	}

	app := router.NewApp()

	router.SetupRoutes(app)

	port, err := config.GetSecret("PORT")
	if err != nil {
		port = "3000"
	}
	logrus.Fatal(app.Listen(":" + port))
}
