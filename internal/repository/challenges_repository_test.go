package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/fitquest/internal/error_values"
	"github.com/limbo/fitquest/internal/repository"
	"github.com/limbo/fitquest/pkg/entity"
)

var weeklyRowColumns = []string{"id", "title", "description", "type", "target_value", "points", "start_date", "end_date", "is_active", "created_at"}

func weeklyRows(chs ...entity.WeeklyChallenge) *pgxmock.Rows {
	rows := pgxmock.NewRows(weeklyRowColumns)
	for _, ch := range chs {
		rows.AddRow(ch.ID, ch.Title, ch.Description, ch.Type, ch.TargetValue, ch.Points, ch.StartDate, ch.EndDate, ch.IsActive, ch.CreatedAt)
	}
	return rows
}

func testWeekly() entity.WeeklyChallenge {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return entity.WeeklyChallenge{
		ID:          uuid.New(),
		Title:       "Five Workout Week",
		Description: "Log five workouts before Sunday",
		Type:        entity.ChallengeTypeWorkout,
		TargetValue: 5,
		Points:      100,
		StartDate:   start,
		EndDate:     start.Add(7*24*time.Hour - time.Second),
		IsActive:    true,
		CreatedAt:   start.Add(-time.Hour),
	}
}

func TestCreateWeeklyChallenge(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengesRepoWithConn(mock)
	ch := testWeekly()
	newID := uuid.New()
	created := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	lockQuery := regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1);`)
	overlapQuery := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM weekly_challenges`)
	insertQuery := regexp.QuoteMeta(`INSERT INTO weekly_challenges (title, description, type, target_value, points, start_date, end_date, is_active)`)
	insertArgs := []any{ch.Title, ch.Description, ch.Type, ch.TargetValue, ch.Points, ch.StartDate, ch.EndDate, ch.IsActive}
	testCases := []struct {
		Desc            string
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc:  "created",
			Error: nil,
			MockPrepareFunc: func() {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs(7_340_021).WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectQuery(overlapQuery).WithArgs(ch.StartDate, ch.EndDate).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectQuery(insertQuery).WithArgs(insertArgs...).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(newID, created))
				mock.ExpectCommit()
			},
		},
		{
			Desc:  "overlaps active challenge",
			Error: errorvalues.ErrChallengeOverlap,
			MockPrepareFunc: func() {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs(7_340_021).WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectQuery(overlapQuery).WithArgs(ch.StartDate, ch.EndDate).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectRollback()
			},
		},
		{
			Desc:  "period check violation",
			Error: errorvalues.ErrInvalidPeriod,
			MockPrepareFunc: func() {
				mock.ExpectBegin()
				mock.ExpectExec(lockQuery).WithArgs(7_340_021).WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectQuery(overlapQuery).WithArgs(ch.StartDate, ch.EndDate).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectQuery(insertQuery).WithArgs(insertArgs...).WillReturnError(&pgconn.PgError{Code: "23514"})
				mock.ExpectRollback()
			},
		},
		{
			Desc:  "begin error",
			Error: errors.New("beginning weekly challenge tx error: db error"),
			MockPrepareFunc: func() {
				mock.ExpectBegin().WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			c := ch
			err := repo.CreateWeekly(ctx, &c)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, newID, c.ID)
				assert.Equal(t, created, c.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateInactiveWeeklySkipsOverlapCheck(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengesRepoWithConn(mock)
	ch := testWeekly()
	ch.IsActive = false
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1);`)).WithArgs(7_340_021).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO weekly_challenges`)).
		WithArgs(ch.Title, ch.Description, ch.Type, ch.TargetValue, ch.Points, ch.StartDate, ch.EndDate, false).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.New(), time.Now()))
	mock.ExpectCommit()
	assert.NoError(t, repo.CreateWeekly(context.Background(), &ch))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDailyChallenge(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengesRepoWithConn(mock)
	ch := entity.DailyChallenge{
		Title:         "10k steps",
		TargetValue:   10000,
		Points:        20,
		ChallengeDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
	}
	query := regexp.QuoteMeta(`INSERT INTO daily_challenges (title, description, target_value, points, challenge_date, is_active)`)
	ctx := context.Background()
	t.Run("created", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(query).
			WithArgs(ch.Title, ch.Description, ch.TargetValue, ch.Points, ch.ChallengeDate, ch.IsActive).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, time.Now()))
		assert.NoError(t, repo.CreateDaily(ctx, &ch))
		assert.Equal(t, id, ch.ID)
	})
	t.Run("check violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(ch.Title, ch.Description, ch.TargetValue, ch.Points, ch.ChallengeDate, ch.IsActive).
			WillReturnError(&pgconn.PgError{Code: "23514"})
		assert.ErrorIs(t, repo.CreateDaily(ctx, &ch), errorvalues.ErrValidation)
	})
}

func TestGetWeeklyByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengesRepoWithConn(mock)
	ch := testWeekly()
	query := `SELECT .+ FROM weekly_challenges WHERE id = \$1`
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(ch.ID).WillReturnRows(weeklyRows(ch))
		result, err := repo.GetWeeklyByID(ctx, ch.ID)
		assert.NoError(t, err)
		assert.Equal(t, ch, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(ch.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetWeeklyByID(ctx, ch.ID)
		assert.ErrorIs(t, err, errorvalues.ErrChallengeNotFound)
	})
}

func TestFindActiveWeekly(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengesRepoWithConn(mock)
	ch := testWeekly()
	now := ch.StartDate.Add(50 * time.Hour)
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`FROM weekly_challenges\s+WHERE is_active AND start_date <= \$1 AND end_date >= \$1 ORDER BY start_date DESC, id LIMIT 1`).
			WithArgs(now).WillReturnRows(weeklyRows(ch))
		result, err := repo.FindActiveWeekly(ctx, now)
		assert.NoError(t, err)
		assert.Equal(t, ch.ID, result.ID)
	})
	t.Run("none active", func(t *testing.T) {
		mock.ExpectQuery(`FROM weekly_challenges\s+WHERE is_active AND start_date`).
			WithArgs(now).WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindActiveWeekly(ctx, now)
		assert.ErrorIs(t, err, errorvalues.ErrChallengeNotFound)
	})
	t.Run("by type", func(t *testing.T) {
		mock.ExpectQuery(`WHERE is_active AND type = \$1`).
			WithArgs(entity.ChallengeTypeCalories, now).WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindActiveWeeklyByType(ctx, entity.ChallengeTypeCalories, now)
		assert.ErrorIs(t, err, errorvalues.ErrChallengeNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(`FROM weekly_challenges`).WithArgs(now).WillReturnError(errors.New("db error"))
		_, err := repo.FindActiveWeekly(ctx, now)
		assert.EqualError(t, err, "searching active weekly challenge error: db error")
	})
}

func TestListActiveChallenges(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewChallengesRepoWithConn(mock)
	first, second := testWeekly(), testWeekly()
	second.StartDate = first.EndDate.Add(time.Second)
	second.EndDate = second.StartDate.Add(7 * 24 * time.Hour)
	now := first.StartDate
	ctx := context.Background()
	t.Run("weekly", func(t *testing.T) {
		mock.ExpectQuery(`FROM weekly_challenges\s+WHERE is_active AND end_date >= \$1 ORDER BY start_date`).
			WithArgs(now).WillReturnRows(weeklyRows(first, second))
		result, err := repo.ListActiveWeekly(ctx, now)
		assert.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, first.ID, result[0].ID)
		assert.Equal(t, second.ID, result[1].ID)
	})
	t.Run("daily", func(t *testing.T) {
		daily := entity.DailyChallenge{
			ID:            uuid.New(),
			Title:         "Drink water",
			TargetValue:   8,
			Points:        10,
			ChallengeDate: now,
			IsActive:      true,
			CreatedAt:     now,
		}
		mock.ExpectQuery(regexp.QuoteMeta(`challenge_date = $1::date`)).WithArgs(now.Format(time.DateOnly)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "title", "description", "target_value", "points", "challenge_date", "is_active", "created_at"}).
				AddRow(daily.ID, daily.Title, daily.Description, daily.TargetValue, daily.Points, daily.ChallengeDate, daily.IsActive, daily.CreatedAt))
		result, err := repo.ListActiveDaily(ctx, now)
		assert.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, daily, *result[0])
	})
	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(`FROM weekly_challenges`).WithArgs(now).WillReturnError(errors.New("db error"))
		_, err := repo.ListActiveWeekly(ctx, now)
		assert.Error(t, err)
	})
}
