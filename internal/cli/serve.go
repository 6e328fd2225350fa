package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"fitnesshub/fitness-app/internal/api"
	"fitnesshub/fitness-app/internal/config"
	"fitnesshub/fitness-app/internal/metrics"
	"fitnesshub/fitness-app/internal/realtime"
	"fitnesshub/fitness-app/internal/repository/mongo"
	"fitnesshub/fitness-app/internal/service"
	"fitnesshub/fitness-app/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

const indexTimeout = time.Minute

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg config.Config) (err error) {
	log.Infoln("starting fitnesshub server ...")

	loc, err := cfg.Tracker.Location()
	if err != nil {
		return err
	}

	// --- Database ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}
	defer func() {
		err = multierr.Append(err, mongo.DisconnectDB(dbClient))
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	// completions are only safe once the unique index exists
	indexCtx, cancelIndex := context.WithTimeout(ctx, indexTimeout)
	defer cancelIndex()
	if err := mongo.EnsureIndexes(indexCtx, appDB); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	// --- Storage, redis, metrics ---
	fileStorage, err := storage.NewS3Storage(ctx, cfg.S3)
	if err != nil {
		return fmt.Errorf("init s3 storage: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		err = multierr.Append(err, rdb.Close())
	}()
	if status := rdb.Ping(ctx); status.Err() != nil {
		log.Errorf("--> failed to ping redis: %s", status.Err())
	} else {
		log.Debugf("redis ping: %s", status.Val())
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager(cfg.Metrics.Namespace, cfg.Metrics.Subsystem, promRegistry)

	// --- Repositories & services ---
	sessionRepo := mongo.NewMongoSessionRepository(appDB)
	exerciseLogRepo := mongo.NewMongoExerciseLogRepository(appDB)
	userRepo := mongo.NewMongoUserRepository(appDB)
	postRepo := mongo.NewMongoPostRepository(appDB)
	commentRepo := mongo.NewMongoCommentRepository(appDB)
	likeRepo := mongo.NewMongoLikeRepository(appDB)

	trackerOpts := service.CompletionOptions{
		Location:     loc,
		StoreTimeout: cfg.Tracker.StoreTimeout,
		Recorder:     metricsManager,
	}
	completionService := service.NewCompletionService(sessionRepo, trackerOpts)
	broker := realtime.NewBroker(rdb, cfg.Redis.FeedChannel)

	params := api.RouterParams{
		JWTSecret:          cfg.JWT.Secret,
		AuthService:        service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration),
		ProfileService:     service.NewProfileService(userRepo, fileStorage),
		CompletionService:  completionService,
		ExerciseLogService: service.NewExerciseLogService(exerciseLogRepo, completionService, trackerOpts),
		CatalogService:     service.NewCatalogService(completionService),
		FeedService:        service.NewFeedService(postRepo, commentRepo, likeRepo, userRepo, fileStorage, broker, metricsManager),
		MetricsManager:     metricsManager,
		PlanSize:           cfg.Tracker.PlanSize,
		Location:           loc,
	}
	if cfg.RateLimit.Enabled {
		params.RateLimiter = redis_rate.NewLimiter(rdb)
		params.WritesPerMinute = cfg.RateLimit.WritesPerMinute
		params.LoginsPerMinute = cfg.RateLimit.LoginsPerMinute
	}
	if cfg.Metrics.Enabled {
		params.MetricsHandler = promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})
	}

	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(params)

	// --- HTTP server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	log.Warnln("shutting down server ...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Warnln("server shut down")
	return nil
}
