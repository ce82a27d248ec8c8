package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/limbo/fitquest/internal/service"
	"github.com/limbo/fitquest/pkg/logger"
)

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	progressService  service.ProgressServiceI
	challengeService service.ChallengeServiceI
	activityService  service.ActivityServiceI
	contentService   service.ContentServiceI
	jwtService       JWTServiceI
	health           HealthChecker
	limiter          *ipRateLimiter
	logger           *logrus.Entry
}

type ServicesList struct {
	UserService      service.UserServiceI
	ProgressService  service.ProgressServiceI
	ChallengeService service.ChallengeServiceI
	ActivityService  service.ActivityServiceI
	ContentService   service.ContentServiceI
	JwtService       JWTServiceI
	// Health is pinged by GET /health, usually the pgx pool
	Health    HealthChecker
	RateLimit RateLimitCfg
	Logger    *logrus.Entry
}

func New(servicesOptions *ServicesList) *Server {
	log := servicesOptions.Logger
	if log == nil {
		log = logger.Discard()
	}
	s := &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		progressService:  servicesOptions.ProgressService,
		challengeService: servicesOptions.ChallengeService,
		activityService:  servicesOptions.ActivityService,
		contentService:   servicesOptions.ContentService,
		jwtService:       servicesOptions.JwtService,
		health:           servicesOptions.Health,
		limiter:          newIPRateLimiter(servicesOptions.RateLimit),
		logger:           log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.MetricsMiddleware)

	s.mx.Get("/health", s.Health)
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.limiter.Middleware)

		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Get("/users/me", s.Me)
			r.Put("/users/me/profile", s.UpdateProfile)
			r.Get("/users/me/achievements", s.Achievements)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/weekly-challenge-progress/{userId}", s.WeeklyChallengeProgress)
			r.Post("/update-weekly-progress", s.UpdateWeeklyProgress)
			r.Post("/join-challenge", s.JoinChallenge)
			r.Post("/complete-challenge", s.CompleteChallenge)
			r.Get("/challenges", s.Challenges)
			r.Get("/ai-content/{userId}", s.AIContent)
			r.Post("/log-workout", s.LogWorkout)
			r.Post("/log-meal", s.LogMeal)
			r.Post("/weekly-challenges", s.CreateWeeklyChallenge)
			r.Post("/daily-challenges", s.CreateDailyChallenge)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}
