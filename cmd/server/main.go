package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mstrelkov/jewelstock/internal/config"
	"github.com/mstrelkov/jewelstock/internal/handlers"
	"github.com/mstrelkov/jewelstock/internal/logging"
	loggingmw "github.com/mstrelkov/jewelstock/internal/middleware/logging"
	"github.com/mstrelkov/jewelstock/internal/mykafka"
	"github.com/mstrelkov/jewelstock/internal/repo"
	"github.com/mstrelkov/jewelstock/internal/search"
	"github.com/mstrelkov/jewelstock/internal/service"
	httpserver "github.com/mstrelkov/jewelstock/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)

	var producer *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	} else {
		logger.Warn("KAFKA_ADDRESS not set, event publishing disabled")
	}

	var searchClient *search.Client
	if configuration.ES_URL != "" {
		searchClient, err = search.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
	} else {
		logger.Warn("ES_URL not set, inventory search disabled")
	}

	r := &repo.GormRepo{DB: db}

	// producer and searchClient are typed nils when disabled; keep the
	// interface fields nil in that case
	var pub service.Publisher
	if producer != nil {
		pub = producer
	}
	var idx service.Indexer
	if searchClient != nil {
		idx = searchClient
	}

	authSvc := &service.AuthService{Repo: r, JWTSecret: jwtSecret, Producer: pub}
	priceSvc := &service.PriceService{Repo: r, Producer: pub}
	invSvc := &service.InventoryService{Repo: r, Producer: pub, Index: idx}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		DB:               db,
		JWTSecret:        jwtSecret,
		AuthHandler:      &handlers.AuthHandler{Svc: authSvc},
		PriceHandler:     &handlers.PriceHandler{Svc: priceSvc},
		InventoryHandler: &handlers.InventoryHandler{Svc: invSvc},
	}
	if searchClient != nil {
		deps.SearchHandler = &handlers.SearchHandler{Client: searchClient}
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	logger.Info("server started", "addr", configuration.HTTP_ADDR)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
