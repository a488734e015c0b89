package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/NazirHussain1/inkwell-backend/bootstrap"
	"github.com/NazirHussain1/inkwell-backend/configs"
	"github.com/NazirHussain1/inkwell-backend/database"
	"github.com/NazirHussain1/inkwell-backend/internal/middleware"
	"github.com/NazirHussain1/inkwell-backend/internal/routes"
)

func init() {
	// .env values take priority over whatever is already in the environment.
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// --- MongoDB Connection ---
	client, err := database.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect failed: %v", err)
	}
	defer func() {
		if err := database.DisconnectMongo(client); err != nil {
			logger.Error("mongo disconnect", "err", err)
		}
	}()
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	// --- Fiber App Setup ---
	app := fiber.New()

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(logger))
	app.Use(middleware.JWTUidOnly(cfg.JWTSecret))

	routes.Register(app, routes.Deps{
		DB:  db,
		Cfg: cfg,
		Log: logger,
	})

	logger.Info("listening", "addr", "http://localhost:"+cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
