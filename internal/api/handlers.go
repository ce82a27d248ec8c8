package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	errorvalues "github.com/limbo/fitquest/internal/error_values"
	"github.com/limbo/fitquest/internal/service"
	"github.com/limbo/fitquest/pkg/entity"
	"github.com/limbo/fitquest/pkg/httputil"
)

const requestTimeout = 10 * time.Second

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserID string `json:"uid"`
}

type LoginResponse struct {
	UserID        string `json:"uid"`
	Token         string `json:"token"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
}

type UpdateProfileRequest struct {
	FitnessLevel       string   `json:"fitnessLevel"`
	FitnessGoals       []string `json:"fitnessGoals"`
	DietaryPreferences []string `json:"dietaryPreferences"`
	WeeklyWorkoutGoal  int      `json:"weeklyWorkoutGoal"`
}

type AchievementsResponse struct {
	Achievements []entity.AwardedAchievement `json:"achievements"`
}

// writeServiceError maps service sentinels to status codes; anything unknown is a 500.
func writeServiceError(w http.ResponseWriter, log *logrus.Entry, op string, err error) {
	status, msg := http.StatusInternalServerError, "internal error"
	switch {
	case errors.Is(err, errorvalues.ErrValidation),
		errors.Is(err, errorvalues.ErrInvalidPeriod),
		errors.Is(err, errorvalues.ErrUnknownActivity),
		errors.Is(err, errorvalues.ErrUnknownChallenge):
		status, msg = http.StatusBadRequest, "invalid request"
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		status, msg = http.StatusUnauthorized, "invalid username or password"
	case errors.Is(err, errorvalues.ErrUserNotFound):
		status, msg = http.StatusNotFound, "user not found"
	case errors.Is(err, errorvalues.ErrChallengeNotFound):
		status, msg = http.StatusNotFound, "challenge not found"
	case errors.Is(err, errorvalues.ErrEntryNotFound):
		status, msg = http.StatusNotFound, "challenge entry not found"
	case errors.Is(err, errorvalues.ErrUserExists):
		status, msg = http.StatusConflict, "user with such name already exists"
	case errors.Is(err, errorvalues.ErrAlreadyJoined):
		status, msg = http.StatusConflict, "challenge already joined"
	case errors.Is(err, errorvalues.ErrAlreadyCompleted):
		status, msg = http.StatusConflict, "challenge already completed"
	case errors.Is(err, errorvalues.ErrChallengeOverlap):
		status, msg = http.StatusConflict, "another active weekly challenge overlaps this period"
	}
	if status == http.StatusInternalServerError {
		log.WithError(err).Error(op + " error: service error")
		httputil.WriteErrorResponse(w, status, msg, nil)
		return
	}
	log.WithError(err).Warn(op + " error")
	httputil.WriteErrorResponse(w, status, msg, err)
}

func decodeBody(w http.ResponseWriter, r *http.Request, log *logrus.Entry, op string, dst any) bool {
	if err := httputil.DecodeJSON(r, dst); err != nil {
		log.WithError(err).Warn(op + " error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return false
	}
	return true
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "credentials"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Router /auth/register [post]
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	log := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if !decodeBody(w, r, log, "registering", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, log, "registering", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, RegisterResponse{UserID: user.ID.String()})
	log.WithField("uid", user.ID).Info("successful registration")
}

// Login godoc
// @Summary Log in and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	log := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if !decodeBody(w, r, log, "login", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		writeServiceError(w, log, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		log.WithError(err).Error("login error: generating token error")
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LoginResponse{
		UserID:        user.ID.String(),
		Token:         token,
		CurrentStreak: user.CurrentStreak,
		LongestStreak: user.LongestStreak,
	})
	log.WithField("uid", user.ID).Info("successful login")
}

// Me godoc
// @Summary Current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.User
// @Failure 401 {object} httputil.ErrorResponse
// @Router /users/me [get]
func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	log := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		log.Warn("profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		writeServiceError(w, log, "profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Save onboarding profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateProfileRequest true "profile"
// @Success 200 {object} entity.User
// @Failure 400 {object} httputil.ErrorResponse
// @Router /users/me/profile [put]
func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		log.Warn("profile update error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdateProfileRequest
	if !decodeBody(w, r, log, "profile update", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.UpdateProfile(ctx, uid, &service.UpdateProfileRequest{
		FitnessLevel:       req.FitnessLevel,
		FitnessGoals:       req.FitnessGoals,
		DietaryPreferences: req.DietaryPreferences,
		WeeklyWorkoutGoal:  req.WeeklyWorkoutGoal,
	})
	if err != nil {
		writeServiceError(w, log, "profile update", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	log.Info("profile updated")
}

// Achievements godoc
// @Summary Achievements earned by the current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AchievementsResponse
// @Router /users/me/achievements [get]
func (s *Server) Achievements(w http.ResponseWriter, r *http.Request) {
	log := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		log.Warn("achievements error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	list, err := s.userService.ListAchievements(ctx, uid)
	if err != nil {
		writeServiceError(w, log, "achievements", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AchievementsResponse{Achievements: list})
}

// Health godoc
// @Summary Liveness and database reachability
// @Tags ops
// @Success 200 {object} map[string]string
// @Failure 503 {object} httputil.ErrorResponse
// @Router /health [get]
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.health.Ping(ctx); err != nil {
			GetLoggerFromCtx(r.Context()).WithError(err).Error("health check failed")
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "database unavailable", nil)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
