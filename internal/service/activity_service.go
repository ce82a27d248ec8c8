package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	errorvalues "github.com/limbo/fitquest/internal/error_values"
	"github.com/limbo/fitquest/internal/repository"
	"github.com/limbo/fitquest/pkg/entity"
)

const (
	// WorkoutPoints is credited for every logged workout.
	WorkoutPoints = 25

	clockSkew = 5 * time.Minute
)

type ActivityService struct {
	activity repository.ActivityRepositoryI
	clock    Clock
}

func NewActivityService(activityRepo repository.ActivityRepositoryI, opts ...Option) *ActivityService {
	if activityRepo == nil {
		logrus.Fatal("provided nil activityRepo")
	}
	InitValidator()
	o := applyOptions(opts)
	return &ActivityService{
		activity: activityRepo,
		clock:    o.clock,
	}
}

func (as *ActivityService) LogWorkout(ctx context.Context, req *LogWorkoutRequest) (*entity.WorkoutLog, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.CompletedAt != nil && req.CompletedAt.After(as.clock.Now().Add(clockSkew)) {
		return nil, fmt.Errorf("%w: completedAt is in the future", errorvalues.ErrValidation)
	}
	log := entity.WorkoutLog{
		UserID:         req.UserID,
		Name:           req.Name,
		Duration:       req.Duration,
		CaloriesBurned: req.CaloriesBurned,
		CompletedAt:    req.CompletedAt,
	}
	if err := as.activity.CreateWorkout(ctx, &log, WorkoutPoints); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating workout error: %w", err)
	}
	return &log, nil
}

func (as *ActivityService) LogMeal(ctx context.Context, req *LogMealRequest) (*entity.MealLog, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	meal := entity.MealLog{
		UserID:   req.UserID,
		Name:     req.Name,
		MealType: req.MealType,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	}
	if err := as.activity.CreateMeal(ctx, &meal); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating meal error: %w", err)
	}
	return &meal, nil
}
