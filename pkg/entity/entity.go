package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChallengeType string

const (
	ChallengeTypeWorkout  ChallengeType = "workout"
	ChallengeTypeCalories ChallengeType = "calories"
)

type ActivityType string

const (
	ActivityWorkout ActivityType = "workout"
	ActivityMeal    ActivityType = "meal"
)

// ChallengeType maps a logged activity kind onto the weekly challenge type it can advance.
func (a ActivityType) ChallengeType() (ChallengeType, bool) {
	switch a {
	case ActivityWorkout:
		return ChallengeTypeWorkout, true
	case ActivityMeal:
		return ChallengeTypeCalories, true
	}
	return "", false
}

type User struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	PasswordHash        string     `json:"-"`
	TotalPoints         int        `json:"total_points"`
	CurrentStreak       int        `json:"current_streak"`
	LongestStreak       int        `json:"longest_streak"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`
	WeeklyWorkoutGoal   int        `json:"weekly_workout_goal"`
	FitnessLevel        string     `json:"fitness_level"`
	FitnessGoals        []string   `json:"fitness_goals"`
	DietaryPreferences  []string   `json:"dietary_preferences"`
	TotalWorkouts       int        `json:"total_workouts"`
	TotalCaloriesBurned int        `json:"total_calories_burned"`
	CreatedAt           time.Time  `json:"created_at"`
}

type WeeklyChallenge struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        ChallengeType `json:"type"`
	TargetValue float64       `json:"target_value"`
	Points      int           `json:"points"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	IsActive    bool          `json:"is_active"`
	CreatedAt   time.Time     `json:"created_at"`
}

type DailyChallenge struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	TargetValue   float64   `json:"target_value"`
	Points        int       `json:"points"`
	ChallengeDate time.Time `json:"challenge_date"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// ChallengeEntry links a user to exactly one daily or weekly challenge.
type ChallengeEntry struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	DailyChallengeID  *uuid.UUID `json:"daily_challenge_id,omitempty"`
	WeeklyChallengeID *uuid.UUID `json:"weekly_challenge_id,omitempty"`
	Progress          float64    `json:"progress"`
	Completed         bool       `json:"completed"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	PointsEarned      int        `json:"points_earned"`
	JoinedAt          time.Time  `json:"joined_at"`
}

type WorkoutLog struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	Name           string     `json:"name"`
	Duration       int        `json:"duration"`
	CaloriesBurned int        `json:"calories_burned"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type MealLog struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	MealType string    `json:"meal_type"`
	Calories int       `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	LoggedAt time.Time `json:"logged_at"`
}

type Achievement struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	Icon        string    `json:"icon"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// AchievementDefinition is the lookup key and payload used to lazily create an achievement.
type AchievementDefinition struct {
	Name        string
	Description string
	Points      int
	Icon        string
	Category    string
}

type AwardedAchievement struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	Icon        string    `json:"icon,omitempty"`
	EarnedAt    time.Time `json:"earned_at"`
}

type DayActivity struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

type DayProgress struct {
	Date        string        `json:"date"`
	DayName     string        `json:"day_name"`
	Value       float64       `json:"value"`
	Activities  []DayActivity `json:"activities"`
	IsToday     bool          `json:"is_today"`
	IsCompleted bool          `json:"is_completed"`
}

type ChallengeProgress struct {
	EntryID        *uuid.UUID    `json:"entry_id,omitempty"`
	Current        float64       `json:"current"`
	Target         float64       `json:"target"`
	Percentage     int           `json:"percentage"`
	IsCompleted    bool          `json:"is_completed"`
	DaysRemaining  int           `json:"days_remaining"`
	IsJoined       bool          `json:"is_joined"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`
	DailyBreakdown []DayProgress `json:"daily_breakdown"`
}

type WeeklyProgress struct {
	HasActiveChallenge bool               `json:"has_active_challenge"`
	Challenge          *WeeklyChallenge   `json:"challenge"`
	Progress           *ChallengeProgress `json:"progress"`
}

type ProgressUpdate struct {
	ChallengeCompleted bool                 `json:"challenge_completed"`
	PointsAwarded      int                  `json:"points_awarded"`
	Message            string               `json:"message,omitempty"`
	Progress           *ChallengeProgress   `json:"progress,omitempty"`
	Achievements       []AwardedAchievement `json:"achievements,omitempty"`
}

type ChallengeCatalog struct {
	Daily  []*DailyChallenge  `json:"daily"`
	Weekly []*WeeklyChallenge `json:"weekly"`
}

type CompletionResult struct {
	EntryID       uuid.UUID            `json:"entry_id"`
	PointsAwarded int                  `json:"points_awarded"`
	CompletedAt   time.Time            `json:"completed_at"`
	Achievements  []AwardedAchievement `json:"achievements,omitempty"`
}

type WorkoutSuggestion struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"`
	Difficulty  string   `json:"difficulty"`
	Exercises   []string `json:"exercises"`
}

type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

type MealSuggestion struct {
	Name        string   `json:"name"`
	MealType    string   `json:"meal_type"`
	Calories    int      `json:"calories"`
	Macros      Macros   `json:"macros"`
	Ingredients []string `json:"ingredients"`
}

type PersonalizedContent struct {
	Workouts []WorkoutSuggestion `json:"workouts"`
	Meals    []MealSuggestion    `json:"meals"`
	Quote    string              `json:"quote"`
}
