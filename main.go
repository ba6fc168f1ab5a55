package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"khadamat/config"
	"khadamat/cron"
	"khadamat/database"
	catalogRepo "khadamat/database/repository/catalog"
	reservationRepo "khadamat/database/repository/reservation"
	"khadamat/handlers"
	"khadamat/middleware"
	"khadamat/routes"
	"khadamat/services/catalog"
	"khadamat/services/geocoding"
	"khadamat/services/prefill"
	"khadamat/services/reservation"
	"khadamat/services/tasks"
	"khadamat/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	cat, err := config.LoadCatalog(config.AppConfig.CatalogFile)
	if err != nil {
		logger.Fatal("main: failed to load catalog", zap.Error(err))
	}

	// Storage backend.
	var (
		catRepo catalogRepo.CatalogRepository
		resRepo reservationRepo.ReservationRepository
	)
	switch config.AppConfig.DatabaseDriver {
	case database.DriverPostgres:
		database.InitPostgres()
		catRepo = catalogRepo.NewGormCatalogRepo(database.PostgresDB)
		resRepo = reservationRepo.NewGormReservationRepo(database.PostgresDB)
	default:
		database.InitDB()
		db := database.MongoDatabase()
		if err := catalogRepo.EnsureIndexes(db); err != nil {
			logger.Warn("main: catalog indexes not created", zap.Error(err))
		}
		catRepo = catalogRepo.NewMongoCatalogRepo(db)
		resRepo = reservationRepo.NewMongoReservationRepo(db)
	}

	cacheClient := utils.GetCacheClient()
	lockClient := utils.GetLockClient()

	queue := asynq.NewClient(cron.QueueRedisOpt())
	defer queue.Close()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var worker *asynq.Server
	if config.AppConfig.EnableWorker {
		worker = cron.InitReservationWorker(ctx, logger.Named("worker"))
	}

	// services.
	drafts := prefill.NewStore(cacheClient, time.Duration(config.AppConfig.PrefillTTLMinutes)*time.Minute)
	catalogService := catalog.NewCatalogService(catRepo, cat, logger.Named("catalog"))
	reservationService := reservation.NewReservationService(
		cat,
		catRepo,
		resRepo,
		tasks.NewAsynqNotifier(queue),
		drafts,
		logger.Named("reservation"),
	)
	geocoder := geocoding.NewClient(
		config.AppConfig.GeocoderURL,
		config.AppConfig.GeocoderUserAgent,
		time.Duration(config.AppConfig.GeocoderTimeoutSeconds)*time.Second,
	)

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	prefillHandler := handlers.NewPrefillHandler(drafts)
	geocodeHandler := handlers.NewGeocodeHandler(geocoder)

	handlerBundle := &handlers.HandlerBundle{
		ListPagesHandler: catalogHandler.ListPages,
		GetPageHandler:   catalogHandler.GetPage,
		ClassifyHandler:  catalogHandler.Classify,

		QuoteHandler:  reservationHandler.Quote,
		SubmitHandler: reservationHandler.Submit,
		SubmitGuard:   middleware.SubmissionGuard(lockClient, time.Duration(config.AppConfig.SubmitLockSeconds)*time.Second),

		CreatePrefillHandler: prefillHandler.Create,
		GetPrefillHandler:    prefillHandler.Get,

		ReverseGeocodeHandler: geocodeHandler.Reverse,
	}

	utils.StartHealthMonitor(ctx, []*redis.Client{cacheClient, lockClient}, database.Pinger())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("driver", config.AppConfig.DatabaseDriver))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if worker != nil {
		worker.Shutdown()
	}
	if database.MongoClient != nil {
		_ = database.MongoClient.Disconnect(shutdownCtx)
	}

	logger.Info("main: server stopped gracefully")
}
