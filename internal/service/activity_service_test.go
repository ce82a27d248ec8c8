package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/fitquest/internal/error_values"
	"github.com/limbo/fitquest/internal/service"
)

func TestLogWorkout(t *testing.T) {
	h := newHarness()
	user := h.db.addUser("lifter")
	now := weekStart.Add(12 * time.Hour)
	h.clock.set(now)
	past := now.Add(-time.Hour)
	soon := now.Add(2 * time.Minute)
	future := now.Add(time.Hour)

	tests := []struct {
		Desc  string
		Req   service.LogWorkoutRequest
		Error error
	}{
		{Desc: "with completion time", Req: service.LogWorkoutRequest{UserID: user.ID, Name: "Run", Duration: 30, CaloriesBurned: 300, CompletedAt: &past}},
		{Desc: "without completion time", Req: service.LogWorkoutRequest{UserID: user.ID, Name: "Yoga", Duration: 45, CaloriesBurned: 150}},
		{Desc: "within clock skew", Req: service.LogWorkoutRequest{UserID: user.ID, Name: "Row", Duration: 20, CaloriesBurned: 200, CompletedAt: &soon}},
		{
			Desc:  "in the future",
			Req:   service.LogWorkoutRequest{UserID: user.ID, Name: "Swim", Duration: 30, CompletedAt: &future},
			Error: errorvalues.ErrValidation,
		},
		{
			Desc:  "negative duration",
			Req:   service.LogWorkoutRequest{UserID: user.ID, Name: "Odd", Duration: -5},
			Error: errorvalues.ErrValidation,
		},
		{
			Desc:  "missing name",
			Req:   service.LogWorkoutRequest{UserID: user.ID, Duration: 10},
			Error: errorvalues.ErrValidation,
		},
		{
			Desc:  "unknown user",
			Req:   service.LogWorkoutRequest{UserID: uuid.New(), Name: "Ghost", Duration: 10},
			Error: errorvalues.ErrUserNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.Desc, func(t *testing.T) {
			log, err := h.activity.LogWorkout(context.Background(), &tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, log.ID)
			assert.Equal(t, tc.Req.Name, log.Name)
		})
	}

	stored := h.db.user(user.ID)
	assert.Equal(t, 3, stored.TotalWorkouts)
	assert.Equal(t, 650, stored.TotalCaloriesBurned)
	assert.Equal(t, 3*service.WorkoutPoints, stored.TotalPoints)
}

func TestLogMeal(t *testing.T) {
	h := newHarness()
	user := h.db.addUser("eater")
	tests := []struct {
		Desc  string
		Req   service.LogMealRequest
		Error error
	}{
		{Desc: "logged", Req: service.LogMealRequest{UserID: user.ID, Name: "Oats", MealType: "breakfast", Calories: 350, Protein: 12, Carbs: 60, Fat: 6}},
		{
			Desc:  "bad meal type",
			Req:   service.LogMealRequest{UserID: user.ID, Name: "Brunch", MealType: "brunch", Calories: 500},
			Error: errorvalues.ErrValidation,
		},
		{
			Desc:  "negative macros",
			Req:   service.LogMealRequest{UserID: user.ID, Name: "Air", MealType: "snack", Fat: -1},
			Error: errorvalues.ErrValidation,
		},
		{
			Desc:  "unknown user",
			Req:   service.LogMealRequest{UserID: uuid.New(), Name: "Soup", MealType: "dinner", Calories: 200},
			Error: errorvalues.ErrUserNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.Desc, func(t *testing.T) {
			meal, err := h.activity.LogMeal(context.Background(), &tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, meal.ID)
		})
	}
	assert.Len(t, h.db.meals, 1)
	assert.Zero(t, h.db.user(user.ID).TotalPoints)
}
