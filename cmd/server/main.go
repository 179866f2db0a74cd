package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/resqcart/aiml-service/internal/config"
	"github.com/resqcart/aiml-service/internal/repository/mongodb"
	"github.com/resqcart/aiml-service/internal/scheduler"
	"github.com/resqcart/aiml-service/internal/server/handlers"
	"github.com/resqcart/aiml-service/internal/server/router"
	"github.com/resqcart/aiml-service/internal/service/pricing"
	"github.com/resqcart/aiml-service/internal/service/vision"
	"github.com/resqcart/aiml-service/pkg/clients/maps"
	"github.com/resqcart/aiml-service/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	policy, err := pricing.PolicyFromName(cfg.Pricing.ProducePolicy)
	if err != nil {
		baseLogger.Fatal("failed to resolve produce policy", zap.Error(err))
	}
	baseLogger.Info("produce policy selected", zap.String("policy", policy.Name()))

	// Audit log is optional; without MongoDB the service still prices.
	var auditRepo mongodb.Repository
	if cfg.MongoDB.URI != "" {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		auditRepo = mongoRepo

		sched := scheduler.NewScheduler(*cfg, auditRepo, baseLogger.Named("scheduler"))
		sched.Start()
		defer sched.Stop()
	} else {
		baseLogger.Warn("mongodb uri missing, decision audit log disabled")
	}

	// Inference endpoints are optional; the image pathways answer 503 without them.
	var detector vision.Detector
	if cfg.Models.DetectorURL != "" {
		detector = vision.NewHTTPDetector(cfg.Models.DetectorURL)
		baseLogger.Info("detector client enabled", zap.String("url", cfg.Models.DetectorURL))
	} else {
		baseLogger.Warn("detector url missing, image detection disabled")
	}

	var classifier vision.Classifier
	if cfg.Models.ClassifierURL != "" {
		classifier = vision.NewHTTPClassifier(cfg.Models.ClassifierURL)
		baseLogger.Info("classifier client enabled", zap.String("url", cfg.Models.ClassifierURL))
	} else {
		baseLogger.Warn("classifier url missing, spoilage classification disabled")
	}

	mapsClient := maps.NewClient(cfg.Maps.APIKey)
	if !mapsClient.Configured() {
		baseLogger.Warn("google maps api key missing, rescue endpoints will serve mock data")
	}

	detectionHandler := handlers.NewDetectionHandler(detector, classifier, policy, auditRepo, baseLogger.Named("handlers.detect"))
	milkHandler := handlers.NewMilkHandler(auditRepo, baseLogger.Named("handlers.milk"))
	streamHandler := handlers.NewStreamHandler(detector, classifier, baseLogger.Named("handlers.stream"))
	rescueHandler := handlers.NewRescueHandler(mapsClient, baseLogger.Named("handlers.rescue"))

	engine := router.New(detectionHandler, milkHandler, streamHandler, rescueHandler, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
