//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/fitquest/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type UpdateProfileRequest struct {
	FitnessLevel       string   `validate:"required,oneof=beginner intermediate advanced"`
	FitnessGoals       []string `validate:"max=10,dive,required,max=60"`
	DietaryPreferences []string `validate:"max=10,dive,required,max=60"`
	WeeklyWorkoutGoal  int      `validate:"min=1,max=14"`
}

type JoinChallengeRequest struct {
	UserID        uuid.UUID `validate:"required"`
	ChallengeID   uuid.UUID `validate:"required"`
	ChallengeType string    `validate:"required,oneof=daily weekly"`
}

type CreateWeeklyChallengeRequest struct {
	Title       string    `validate:"required,max=200"`
	Description string    `validate:"max=2000"`
	Type        string    `validate:"required,oneof=workout calories"`
	TargetValue float64   `validate:"gt=0"`
	Points      int       `validate:"min=0,max=10000"`
	StartDate   time.Time `validate:"required"`
	EndDate     time.Time `validate:"required"`
	// Defaults to true when nil
	IsActive *bool
}

type CreateDailyChallengeRequest struct {
	Title         string    `validate:"required,max=200"`
	Description   string    `validate:"max=2000"`
	TargetValue   float64   `validate:"gt=0"`
	Points        int       `validate:"min=0,max=10000"`
	ChallengeDate time.Time `validate:"required"`
	IsActive      *bool
}

type LogWorkoutRequest struct {
	UserID         uuid.UUID `validate:"required"`
	Name           string    `validate:"required,max=120"`
	Duration       int       `validate:"min=0,max=1440"`
	CaloriesBurned int       `validate:"min=0,max=20000"`
	CompletedAt    *time.Time
}

type LogMealRequest struct {
	UserID   uuid.UUID `validate:"required"`
	Name     string    `validate:"required,max=120"`
	MealType string    `validate:"required,oneof=breakfast lunch dinner snack"`
	Calories int       `validate:"min=0,max=10000"`
	Protein  float64   `validate:"gte=0,lte=1000"`
	Carbs    float64   `validate:"gte=0,lte=1000"`
	Fat      float64   `validate:"gte=0,lte=1000"`
}

type UserServiceI interface {
	// Validates credentials, creates the user row and returns the stored user
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Checks credentials and advances the login streak
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*entity.User, error)
	ListAchievements(ctx context.Context, id uuid.UUID) ([]entity.AwardedAchievement, error)
}

type ProgressServiceI interface {
	// Read-only view of the user's progress in the active weekly challenge
	GetWeeklyProgress(ctx context.Context, uid uuid.UUID) (*entity.WeeklyProgress, error)
	// Recomputes progress for the challenge matching activity and completes it at most once
	UpdateWeeklyProgress(ctx context.Context, uid uuid.UUID, activity entity.ActivityType) (*entity.ProgressUpdate, error)
}

type ChallengeServiceI interface {
	ListActive(ctx context.Context) (*entity.ChallengeCatalog, error)
	Join(ctx context.Context, req *JoinChallengeRequest) (*entity.ChallengeEntry, error)
	// Manually completes an entry owned by uid
	Complete(ctx context.Context, uid, entryID uuid.UUID) (*entity.CompletionResult, error)
	CreateWeekly(ctx context.Context, req *CreateWeeklyChallengeRequest) (*entity.WeeklyChallenge, error)
	CreateDaily(ctx context.Context, req *CreateDailyChallengeRequest) (*entity.DailyChallenge, error)
}

type ActivityServiceI interface {
	// Stores the workout and credits WorkoutPoints together with user totals
	LogWorkout(ctx context.Context, req *LogWorkoutRequest) (*entity.WorkoutLog, error)
	LogMeal(ctx context.Context, req *LogMealRequest) (*entity.MealLog, error)
}

type ContentServiceI interface {
	PersonalizedContent(ctx context.Context, uid uuid.UUID) (*entity.PersonalizedContent, error)
}

// ContentGenerator never fails; implementations fall back to static content.
type ContentGenerator interface {
	GenerateWorkouts(ctx context.Context, user *entity.User) []entity.WorkoutSuggestion
	GenerateMeals(ctx context.Context, user *entity.User) []entity.MealSuggestion
	GenerateMotivationalQuote(ctx context.Context, goal string) string
}

// MilestoneAwarder grants the milestone matching the user's completed weekly challenge count.
type MilestoneAwarder interface {
	AwardMilestones(ctx context.Context, uid uuid.UUID, completedWeekly int) []entity.AwardedAchievement
}
