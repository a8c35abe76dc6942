package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"patientgift/config"
	"patientgift/middleware"
	"patientgift/services/gift/delivery"
	"patientgift/services/gift/repository"
	"patientgift/services/gift/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	config.LoadEnv()

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	cfg := config.LoadAppConfig()
	app := fiber.New(config.GetFiberConfig())

	app.Use(middleware.Recovery())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST",
		AllowHeaders: "Origin, Content-Type, Accept, X-Admin-Token",
	}))

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	gate := middleware.NewAdminGate(cfg.AdminToken)
	if !gate.Enabled() {
		log.Warn("ADMIN_TOKEN is not set, admin routes are open")
	}

	// Repo and UseCase
	giftRepo := repository.NewGiftRepository(db)
	giftUC := usecase.NewGiftUseCase(giftRepo, cfg.RequestTimeout)

	// Delivery
	delivery.NewSystemDelivery(app)
	delivery.NewAdminDelivery(app, giftUC, gate, cfg)
	delivery.NewGiftDelivery(app, giftUC, cfg.PublicBaseURL)
	delivery.NewDemoDelivery(app)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("Server shut down gracefully")
}
