// Package content produces personalized workouts, meals and a motivational quote. A language model is
// asked first; any failure falls back to static tables so callers always get a full answer.
package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/limbo/fitquest/internal/metrics"
	"github.com/limbo/fitquest/pkg/entity"
)

const (
	sourceLLM      = "llm"
	sourceFallback = "fallback"

	defaultTimeout = 10 * time.Second
)

// TextGenerator turns a prompt into raw model text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type Generator struct {
	llm      TextGenerator
	validate *validator.Validate
	timeout  time.Duration
	logger   *logrus.Entry
}

// New builds a generator backed by the chat-completion API. Without an API key every call uses the fallback tables.
func New(cfg Config, logger *logrus.Entry) *Generator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	var llm TextGenerator
	if cfg.APIKey != "" {
		llm = NewOpenAIClient(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout)
	}
	return NewWithTextGenerator(llm, cfg.Timeout, logger)
}

func NewWithTextGenerator(llm TextGenerator, timeout time.Duration, logger *logrus.Entry) *Generator {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Generator{
		llm:      llm,
		validate: validator.New(),
		timeout:  timeout,
		logger:   logger.WithField("component", "content"),
	}
}

func (g *Generator) ask(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.llm.Generate(ctx, prompt)
}

func (g *Generator) fallback(kind string, err error) {
	metrics.ContentGenerated.WithLabelValues(kind, sourceFallback).Inc()
	if err != nil {
		g.logger.WithError(err).WithField("kind", kind).Warn("using fallback content")
	}
}

func (g *Generator) GenerateWorkouts(ctx context.Context, user *entity.User) []entity.WorkoutSuggestion {
	if g.llm == nil {
		g.fallback("workouts", nil)
		return fallbackWorkouts(user)
	}
	raw, err := g.ask(ctx, workoutsPrompt(user))
	if err != nil {
		g.fallback("workouts", err)
		return fallbackWorkouts(user)
	}
	workouts, err := decodeWorkouts(g.validate, raw)
	if err != nil {
		g.fallback("workouts", err)
		return fallbackWorkouts(user)
	}
	metrics.ContentGenerated.WithLabelValues("workouts", sourceLLM).Inc()
	return workouts
}

func (g *Generator) GenerateMeals(ctx context.Context, user *entity.User) []entity.MealSuggestion {
	if g.llm == nil {
		g.fallback("meals", nil)
		return fallbackMeals(user)
	}
	raw, err := g.ask(ctx, mealsPrompt(user))
	if err != nil {
		g.fallback("meals", err)
		return fallbackMeals(user)
	}
	meals, err := decodeMeals(g.validate, raw)
	if err != nil {
		g.fallback("meals", err)
		return fallbackMeals(user)
	}
	metrics.ContentGenerated.WithLabelValues("meals", sourceLLM).Inc()
	return meals
}

func (g *Generator) GenerateMotivationalQuote(ctx context.Context, goal string) string {
	if g.llm == nil {
		g.fallback("quote", nil)
		return fallbackQuote(goal)
	}
	raw, err := g.ask(ctx, quotePrompt(goal))
	if err != nil {
		g.fallback("quote", err)
		return fallbackQuote(goal)
	}
	quote, ok := cleanQuote(raw)
	if !ok {
		g.fallback("quote", fmt.Errorf("unusable quote of %d bytes", len(raw)))
		return fallbackQuote(goal)
	}
	metrics.ContentGenerated.WithLabelValues("quote", sourceLLM).Inc()
	return quote
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func workoutsPrompt(user *entity.User) string {
	return fmt.Sprintf(`Create exactly %d workouts for a %s level member.
Fitness goals: %s. Weekly workout goal: %d sessions.
Reply with a JSON array only. Each element: {"name": string, "description": string, "duration": minutes as integer 5-180, "difficulty": string, "exercises": [string]}.`,
		workoutCount, levelOf(user), listOrNone(user.FitnessGoals), user.WeeklyWorkoutGoal)
}

func mealsPrompt(user *entity.User) string {
	return fmt.Sprintf(`Create exactly %d meals: breakfast, lunch and dinner, in that order.
Dietary preferences: %s. Fitness goals: %s.
Reply with a JSON array only. Each element: {"name": string, "meal_type": "breakfast"|"lunch"|"dinner", "calories": integer, "macros": {"protein": grams, "carbs": grams, "fat": grams}, "ingredients": [string]}.`,
		mealCount, listOrNone(user.DietaryPreferences), listOrNone(user.FitnessGoals))
}

func quotePrompt(goal string) string {
	if strings.TrimSpace(goal) == "" {
		goal = "general fitness"
	}
	return fmt.Sprintf("Write one short motivational quote, under 200 characters, for someone working toward %s. "+
		"Reply with the quote text only.", goal)
}
