package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/limbo/fitquest/internal/service"
	"github.com/limbo/fitquest/pkg/entity"
	"github.com/limbo/fitquest/pkg/httputil"
)

// contentTimeout leaves room for three LLM calls running side by side.
const contentTimeout = 30 * time.Second

type UpdateWeeklyProgressRequest struct {
	UserID       uuid.UUID `json:"userId"`
	ActivityType string    `json:"activityType"`
	// Not used for the computation, progress is rebuilt from stored logs
	ActivityData map[string]any `json:"activityData,omitempty"`
}

type JoinChallengeRequest struct {
	UserID        uuid.UUID `json:"userId"`
	ChallengeID   uuid.UUID `json:"challengeId"`
	ChallengeType string    `json:"challengeType"`
}

type CompleteChallengeRequest struct {
	UserID           uuid.UUID `json:"userId"`
	ChallengeEntryID uuid.UUID `json:"challengeEntryId"`
}

type LogWorkoutRequest struct {
	UserID         uuid.UUID  `json:"userId"`
	Name           string     `json:"name"`
	Duration       int        `json:"duration"`
	CaloriesBurned int        `json:"caloriesBurned"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

type LogMealRequest struct {
	UserID   uuid.UUID `json:"userId"`
	Name     string    `json:"name"`
	MealType string    `json:"mealType"`
	Calories int       `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
}

type CreateWeeklyChallengeRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	TargetValue float64   `json:"targetValue"`
	Points      int       `json:"points"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	IsActive    *bool     `json:"isActive,omitempty"`
}

type CreateDailyChallengeRequest struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	TargetValue   float64   `json:"targetValue"`
	Points        int       `json:"points"`
	ChallengeDate time.Time `json:"challengeDate"`
	IsActive      *bool     `json:"isActive,omitempty"`
}

func pathUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	uid, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		GetLoggerFromCtx(r.Context()).Warn("invalid user id in path")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", err)
		return uuid.Nil, false
	}
	return uid, true
}

// WeeklyChallengeProgress godoc
// @Summary Progress in the active weekly challenge
// @Tags dashboard
// @Produce json
// @Param userId path string true "user id"
// @Success 200 {object} entity.WeeklyProgress
// @Failure 404 {object} httputil.ErrorResponse
// @Router /dashboard/weekly-challenge-progress/{userId} [get]
func (s *Server) WeeklyChallengeProgress(w http.ResponseWriter, r *http.Request) {
	log := GetLoggerFromCtx(r.Context())
	uid, ok := pathUserID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	progress, err := s.progressService.GetWeeklyProgress(ctx, uid)
	if err != nil {
		writeServiceError(w, log.WithField("uid", uid), "weekly progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
}

// UpdateWeeklyProgress godoc
// @Summary Re-evaluate the active weekly challenge after an activity
// @Tags dashboard
// @Accept json
// @Produce json
// @Param body body UpdateWeeklyProgressRequest true "activity"
// @Success 200 {object} entity.ProgressUpdate
// @Failure 400 {object} httputil.ErrorResponse
// @Router /dashboard/update-weekly-progress [post]
func (s *Server) UpdateWeeklyProgress(w http.ResponseWriter, r *http.Request) {
	log := GetLoggerFromCtx(r.Context())
	var req UpdateWeeklyProgressRequest
	if !decodeBody(w, r, log, "progress update", &req) {
		return
	}
	log = log.WithField("uid", req.UserID)
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	update, err := s.progressService.UpdateWeeklyProgress(ctx, req.UserID, entity.ActivityType(req.ActivityType))
	if err != nil {
		writeServiceError(w, log, "progress update", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, update)
	if update.ChallengeCompleted {
		log.WithField("points", update.PointsAwarded).Info("weekly challenge completed")
	}
}

// JoinChallenge godoc
// @Summary Join a daily or weekly challenge
// @Tags dashboard
// @Accept json
// @Produce json
// @Param body body JoinChallengeRequest true "challenge"
// @Success 201 {object} entity.ChallengeEntry
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Router /dashboard/join-challenge [post]
func (s *Server) JoinChallenge(w http.ResponseWriter, r *http.Request) {
	log := GetLoggerFromCtx(r.Context())
	var req JoinChallengeRequest
	if !decodeBody(w, r, log, "joining challenge", &req) {
		return
	}
	log = log.WithField("uid", req.UserID)
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	entry, err := s.challengeService.Join(ctx, &service.JoinChallengeRequest{
		UserID:        req.UserID,
		ChallengeID:   req.ChallengeID,
		ChallengeType: req.ChallengeType,
	})
	if err != nil {
		writeServiceError(w, log, "joining challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	log.WithField("entry", entry.ID).Info("challenge joined")
}

// CompleteChallenge godoc
// @Summary Manually complete a joined challenge
// @Tags dashboard
// @Accept json
// @Produce json
// @Param body body CompleteChallengeRequest true "entry"
// @Success 200 {object} entity.CompletionResult
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Router /dashboard/complete-challenge [post]
func (s *Server) CompleteChallenge(w http.ResponseWriter, r *http.Request) {
	log := GetLoggerFromCtx(r.Context())
	var req CompleteChallengeRequest
	if !decodeBody(w, r, log, "completing challenge", &req) {
		return
	}
	log = log.WithField("uid", req.UserID)
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	result, err := s.challengeService.Complete(ctx, req.UserID, req.ChallengeEntryID)
	if err != nil {
		writeServiceError(w, log, "completing challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
}

// Challenges godoc
// @Summary Active daily and weekly challenges
// @Tags dashboard
// @Produce json
// @Success 200 {object} entity.ChallengeCatalog
// @Router /dashboard/challenges [get]
func (s *Server) Challenges(w http.ResponseWriter, r *http.Request) {
	log := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	catalog, err := s.challengeService.ListActive(ctx)
	if err != nil {
		writeServiceError(w, log, "listing challenges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, catalog)
}

// AIContent godoc
// @Summary Personalized workouts, meals and a quote
// @Tags dashboard
// @Produce json
// @Param userId path string true "user id"
// @Success 200 {object} entity.PersonalizedContent
// @Failure 404 {object} httputil.ErrorResponse
// @Router /dashboard/ai-content/{userId} [get]
func (s *Server) AIContent(w http.ResponseWriter, r *http.Request) {
	log := GetLoggerFromCtx(r.Context())
	uid, ok := pathUserID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), contentTimeout)
	defer cancel()
	content, err := s.contentService.PersonalizedContent(ctx, uid)
	if err != nil {
		writeServiceError(w, log.WithField("uid", uid), "personalized content", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, content)
}

// LogWorkout godoc
// @Summary Record a workout
// @Tags dashboard
// @Accept json
// @Produce json
// @Param body body LogWorkoutRequest true "workout"
// @Success 201 {object} entity.WorkoutLog
// @Failure 400 {object} httputil.ErrorResponse
// @Router /dashboard/log-workout [post]
func (s *Server) LogWorkout(w http.ResponseWriter, r *http.Request) {
	log := GetLoggerFromCtx(r.Context())
	var req LogWorkoutRequest
	if !decodeBody(w, r, log, "logging workout", &req) {
		return
	}
	log = log.WithField("uid", req.UserID)
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	workout, err := s.activityService.LogWorkout(ctx, &service.LogWorkoutRequest{
		UserID:         req.UserID,
		Name:           req.Name,
		Duration:       req.Duration,
		CaloriesBurned: req.CaloriesBurned,
		CompletedAt:    req.CompletedAt,
	})
	if err != nil {
		writeServiceError(w, log, "logging workout", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, workout)
	log.WithField("workout", workout.ID).Info("workout logged")
}

// LogMeal godoc
// @Summary Record a meal
// @Tags dashboard
// @Accept json
// @Produce json
// @Param body body LogMealRequest true "meal"
// @Success 201 {object} entity.MealLog
// @Failure 400 {object} httputil.ErrorResponse
// @Router /dashboard/log-meal [post]
func (s *Server) LogMeal(w http.ResponseWriter, r *http.Request) {
	log := GetLoggerFromCtx(r.Context())
	var req LogMealRequest
	if !decodeBody(w, r, log, "logging meal", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	meal, err := s.activityService.LogMeal(ctx, &service.LogMealRequest{
		UserID:   req.UserID,
		Name:     req.Name,
		MealType: req.MealType,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	})
	if err != nil {
		writeServiceError(w, log.WithField("uid", req.UserID), "logging meal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, meal)
}

// CreateWeeklyChallenge godoc
// @Summary Create a weekly challenge
// @Tags challenges
// @Accept json
// @Produce json
// @Param body body CreateWeeklyChallengeRequest true "challenge"
// @Success 201 {object} entity.WeeklyChallenge
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Router /dashboard/weekly-challenges [post]
func (s *Server) CreateWeeklyChallenge(w http.ResponseWriter, r *http.Request) {
	log := GetLoggerFromCtx(r.Context())
	var req CreateWeeklyChallengeRequest
	if !decodeBody(w, r, log, "creating weekly challenge", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	ch, err := s.challengeService.CreateWeekly(ctx, &service.CreateWeeklyChallengeRequest{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		TargetValue: req.TargetValue,
		Points:      req.Points,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive,
	})
	if err != nil {
		writeServiceError(w, log, "creating weekly challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, ch)
	log.WithField("challenge", ch.ID).Info("weekly challenge created")
}

// CreateDailyChallenge godoc
// @Summary Create a daily challenge
// @Tags challenges
// @Accept json
// @Produce json
// @Param body body CreateDailyChallengeRequest true "challenge"
// @Success 201 {object} entity.DailyChallenge
// @Failure 400 {object} httputil.ErrorResponse
// @Router /dashboard/daily-challenges [post]
func (s *Server) CreateDailyChallenge(w http.ResponseWriter, r *http.Request) {
	log := GetLoggerFromCtx(r.Context())
	var req CreateDailyChallengeRequest
	if !decodeBody(w, r, log, "creating daily challenge", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	ch, err := s.challengeService.CreateDaily(ctx, &service.CreateDailyChallengeRequest{
		Title:         req.Title,
		Description:   req.Description,
		TargetValue:   req.TargetValue,
		Points:        req.Points,
		ChallengeDate: req.ChallengeDate,
		IsActive:      req.IsActive,
	})
	if err != nil {
		writeServiceError(w, log, "creating daily challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, ch)
}
