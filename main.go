// path: main.go
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ljh8159/rail-back/auth"
	"github.com/ljh8159/rail-back/classifier"
	"github.com/ljh8159/rail-back/config"
	"github.com/ljh8159/rail-back/controllers"
	"github.com/ljh8159/rail-back/database"
	"github.com/ljh8159/rail-back/reports"
	"github.com/ljh8159/rail-back/routes"
)

func main() {
	cfg := config.Load()

	if err := database.Connect(context.Background()); err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	// Model handle lives for the whole process.
	classifier.Init(cfg.ClassifierURL)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("upload dir: %v", err)
	}

	store := database.NewReportStore()
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	h := &routes.Handlers{
		Upload: controllers.NewUploadHandler(cfg.UploadDir, classifier.Default()),
		Report: controllers.NewReportHandler(reports.NewService(store), reports.NewQueries(store)),
		Auth:   controllers.NewAuthHandler(database.NewUserStore(), tokens),
	}

	app := fiber.New()
	app.Use(recover.New())

	// Log concise request lines
	app.Use(logger.New(logger.Config{
		TimeFormat: "15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "*",
		MaxAge:       int((12 * time.Hour).Seconds()),
	}))

	// Static preview for uploaded photos
	app.Static("/uploads", cfg.UploadDir)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("신고/출동 API 서버입니다.")
	})

	routes.Register(app, h)

	log.Printf("API listening on :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
