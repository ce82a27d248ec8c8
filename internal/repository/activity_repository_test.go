package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/fitquest/internal/error_values"
	"github.com/limbo/fitquest/internal/repository"
	"github.com/limbo/fitquest/pkg/entity"
)

func TestCreateWorkout(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewActivityRepoWithConn(mock)
	done := time.Date(2025, 3, 11, 7, 0, 0, 0, time.UTC)
	log := entity.WorkoutLog{
		UserID:         uuid.New(),
		Name:           "Morning run",
		Duration:       40,
		CaloriesBurned: 380,
		CompletedAt:    &done,
	}
	insertQuery := regexp.QuoteMeta(`INSERT INTO workout_logs (user_id, name, duration, calories_burned, completed_at)`)
	totalsQuery := regexp.QuoteMeta(`UPDATE users SET total_workouts = total_workouts + 1,`)
	insertArgs := []any{log.UserID, log.Name, log.Duration, log.CaloriesBurned, log.CompletedAt}
	testCases := []struct {
		Desc            string
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc: "stored with totals",
			MockPrepareFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(insertQuery).WithArgs(insertArgs...).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.New(), done))
				mock.ExpectExec(totalsQuery).WithArgs(log.CaloriesBurned, 25, log.UserID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
		},
		{
			Desc:  "unknown user",
			Error: errorvalues.ErrUserNotFound,
			MockPrepareFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(insertQuery).WithArgs(insertArgs...).WillReturnError(&pgconn.PgError{Code: "23503"})
				mock.ExpectRollback()
			},
		},
		{
			Desc:  "totals error",
			Error: errors.New("updating user totals error: db error"),
			MockPrepareFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(insertQuery).WithArgs(insertArgs...).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.New(), done))
				mock.ExpectExec(totalsQuery).WithArgs(log.CaloriesBurned, 25, log.UserID).WillReturnError(errors.New("db error"))
				mock.ExpectRollback()
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			l := log
			err := repo.CreateWorkout(ctx, &l, 25)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, l.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateMeal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewActivityRepoWithConn(mock)
	meal := entity.MealLog{
		UserID:   uuid.New(),
		Name:     "Oatmeal",
		MealType: "breakfast",
		Calories: 350,
		Protein:  12,
		Carbs:    55,
		Fat:      8,
	}
	query := regexp.QuoteMeta(`INSERT INTO meal_logs (user_id, name, meal_type, calories, protein, carbs, fat)`)
	args := []any{meal.UserID, meal.Name, meal.MealType, meal.Calories, meal.Protein, meal.Carbs, meal.Fat}
	ctx := context.Background()
	t.Run("stored", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(query).WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id", "logged_at"}).AddRow(id, time.Now()))
		m := meal
		assert.NoError(t, repo.CreateMeal(ctx, &m))
		assert.Equal(t, id, m.ID)
	})
	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
		m := meal
		assert.ErrorIs(t, repo.CreateMeal(ctx, &m), errorvalues.ErrUserNotFound)
	})
}

func TestWorkoutsInRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewActivityRepoWithConn(mock)
	uid := uuid.New()
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := from.Add(7 * 24 * time.Hour)
	done := from.Add(30 * time.Hour)
	logs := []entity.WorkoutLog{
		{ID: uuid.New(), UserID: uid, Name: "Run", Duration: 30, CaloriesBurned: 300, CompletedAt: &done, CreatedAt: done},
		{ID: uuid.New(), UserID: uid, Name: "Yoga", Duration: 45, CaloriesBurned: 150, CompletedAt: nil, CreatedAt: from.Add(50 * time.Hour)},
	}
	query := regexp.QuoteMeta(`COALESCE(completed_at, created_at) BETWEEN $2 AND $3`)
	ctx := context.Background()
	t.Run("listed", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "name", "duration", "calories_burned", "completed_at", "created_at"})
		for _, l := range logs {
			rows.AddRow(l.ID, l.UserID, l.Name, l.Duration, l.CaloriesBurned, l.CompletedAt, l.CreatedAt)
		}
		mock.ExpectQuery(query).WithArgs(uid, from, to).WillReturnRows(rows)
		result, err := repo.WorkoutsInRange(ctx, uid, from, to)
		assert.NoError(t, err)
		assert.Equal(t, logs, result)
	})
	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid, from, to).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "duration", "calories_burned", "completed_at", "created_at"}))
		result, err := repo.WorkoutsInRange(ctx, uid, from, to)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid, from, to).WillReturnError(errors.New("db error"))
		_, err := repo.WorkoutsInRange(ctx, uid, from, to)
		assert.EqualError(t, err, "getting workouts for period error: db error")
	})
}
