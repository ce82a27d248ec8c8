// @title FitQuest API
// @description Gym member dashboard: weekly challenges, activity logging and personalized content
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"

	_ "github.com/limbo/fitquest/docs"
	"github.com/limbo/fitquest/internal/api"
	"github.com/limbo/fitquest/internal/content"
	"github.com/limbo/fitquest/internal/repository"
	"github.com/limbo/fitquest/internal/service"
	"github.com/limbo/fitquest/pkg/cleanup"
	"github.com/limbo/fitquest/pkg/config"
	jwtservice "github.com/limbo/fitquest/pkg/jwt_service"
	"github.com/limbo/fitquest/pkg/logger"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	log := logger.New("fitquest-api", cfg.GetStringOr("LOG_LEVEL", "info"))
	defer cleanup.CleanUp()

	loc, err := time.LoadLocation(cfg.GetStringOr("TIMEZONE", "UTC"))
	if err != nil {
		log.WithError(err).Warn("unknown TIMEZONE, using UTC")
		loc = time.UTC
	}

	dbCfg := &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	if err = repository.Migrate(dbCfg, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
		log.WithError(err).Fatal("migrations failed")
	}
	pool := repository.NewPool(dbCfg)

	usersRepo := repository.NewUsersRepoWithConn(pool)
	challengesRepo := repository.NewChallengesRepoWithConn(pool)
	entriesRepo := repository.NewEntriesRepoWithConn(pool)
	activityRepo := repository.NewActivityRepoWithConn(pool)
	achievementsRepo := repository.NewAchievementsRepoWithConn(pool)

	var cache repository.ContentCacheI = repository.NoopContentCache{}
	if addr := cfg.GetString("REDIS_ADDR"); addr != "" {
		cache = repository.NewContentCache(repository.RedisCfg{
			Address:  addr,
			Password: cfg.GetString("REDIS_PASSWORD"),
			DB:       cfg.GetInt("REDIS_DB", 0),
		})
	}
	generator := content.New(content.Config{
		APIKey:  cfg.GetString("LLM_API_KEY"),
		BaseURL: cfg.GetString("LLM_BASE_URL"),
		Model:   cfg.GetString("LLM_MODEL"),
		Timeout: cfg.GetDuration("LLM_TIMEOUT", 10*time.Second),
	}, log.WithField("component", "content_generator"))

	opts := []service.Option{service.WithLocation(loc), service.WithLogger(log), service.WithContentCache(cache)}
	achievementService := service.NewAchievementService(achievementsRepo, opts...)
	serv := api.New(&api.ServicesList{
		UserService:      service.NewUserService(usersRepo, achievementsRepo, opts...),
		ProgressService:  service.NewProgressService(usersRepo, challengesRepo, entriesRepo, activityRepo, achievementService, opts...),
		ChallengeService: service.NewChallengeService(usersRepo, challengesRepo, entriesRepo, achievementService, opts...),
		ActivityService:  service.NewActivityService(activityRepo, opts...),
		ContentService:   service.NewContentService(usersRepo, cache, generator, cfg.GetDuration("CONTENT_CACHE_TTL", time.Hour), opts...),
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", 24*time.Hour)),
		Health:           pool,
		RateLimit: api.RateLimitCfg{
			RPS:   cfg.GetFloat("RATE_LIMIT_RPS", 5),
			Burst: cfg.GetInt("RATE_LIMIT_BURST", 30),
		},
		Logger: log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go serv.RunLimiterCleanup(ctx)

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(strings.Split(cfg.GetStringOr("CORS_ORIGINS", "*"), ",")),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Request-ID"}),
		gorillaHandlers.ExposedHeaders([]string{"X-Request-ID"}),
	)
	server := &http.Server{
		Addr:              cfg.GetStringOr("API_ADDRESS", ":8080"),
		Handler:           cors(serv),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       time.Minute,
	}
	go func() {
		log.WithField("address", server.Addr).Info("server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server error")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
