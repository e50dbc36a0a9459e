package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/ticketera/escenario-service/internal/config"
	"github.com/ticketera/escenario-service/internal/database"
	"github.com/ticketera/escenario-service/internal/handler"
	"github.com/ticketera/escenario-service/internal/queue"
	"github.com/ticketera/escenario-service/internal/repository"
	"github.com/ticketera/escenario-service/internal/router"
	queue_publisher "github.com/ticketera/escenario-service/internal/service"
)

func main() {
	// A missing .env is fine in containerized deployments.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	h := handler.NewHandler(
		repository.NewScenarioRepo(db),
		repository.NewEventRepo(db),
		repository.NewZoneRepo(db),
		repository.NewSeatRepo(db),
		queue_publisher.PublishLayoutChanged,
	)

	// The consumer keeps its own connection and reconnects on failure.
	go func() {
		if err := queue.StartLayoutConsumer(); err != nil {
			log.Printf("layout consumer stopped: %v", err)
		}
	}()

	rdb := config.NewRedisClient()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.RegisterRoutes(e, h, cfg, rdb)

	log.Printf("escenario-service listening on :%s (env=%s)", cfg.Port, cfg.Env)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
