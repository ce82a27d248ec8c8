package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/fitquest/internal/error_values"
	"github.com/limbo/fitquest/pkg/entity"
)

const (
	weeklyColumns = `id, title, description, type, target_value, points, start_date, end_date, is_active, created_at`
	dailyColumns  = `id, title, description, target_value, points, challenge_date, is_active, created_at`

	// Serializes weekly challenge creation so the overlap check and the insert see the same state.
	weeklyCreateLockKey = 7_340_021
)

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepoWithConn(conn PgConnection) *ChallengesRepository {
	ping(conn, "challengesRepo")
	return &ChallengesRepository{
		conn: conn,
	}
}

func scanWeekly(row pgx.Row) (*entity.WeeklyChallenge, error) {
	var ch entity.WeeklyChallenge
	err := row.Scan(&ch.ID, &ch.Title, &ch.Description, &ch.Type, &ch.TargetValue, &ch.Points,
		&ch.StartDate, &ch.EndDate, &ch.IsActive, &ch.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func scanDaily(row pgx.Row) (*entity.DailyChallenge, error) {
	var ch entity.DailyChallenge
	err := row.Scan(&ch.ID, &ch.Title, &ch.Description, &ch.TargetValue, &ch.Points,
		&ch.ChallengeDate, &ch.IsActive, &ch.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (cr *ChallengesRepository) CreateWeekly(ctx context.Context, ch *entity.WeeklyChallenge) (err error) {
	tx, err := cr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning weekly challenge tx error: " + err.Error())
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()
	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1);`, weeklyCreateLockKey); err != nil {
		return errors.New("locking weekly challenges error: " + err.Error())
	}
	if ch.IsActive {
		var overlaps bool
		err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM weekly_challenges
			WHERE is_active AND start_date <= $2 AND end_date >= $1);`,
			ch.StartDate, ch.EndDate,
		).Scan(&overlaps)
		if err != nil {
			return errors.New("checking weekly challenge overlap error: " + err.Error())
		}
		if overlaps {
			err = errorvalues.ErrChallengeOverlap
			return err
		}
	}
	err = tx.QueryRow(ctx, `INSERT INTO weekly_challenges (title, description, type, target_value, points, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at;`,
		ch.Title, ch.Description, ch.Type, ch.TargetValue, ch.Points, ch.StartDate, ch.EndDate, ch.IsActive,
	).Scan(&ch.ID, &ch.CreatedAt)
	if err != nil {
		if pgErrCode(err) == checkViolation {
			err = errorvalues.ErrInvalidPeriod
			return err
		}
		return errors.New("creating weekly challenge error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing weekly challenge error: " + err.Error())
	}
	return nil
}

func (cr *ChallengesRepository) CreateDaily(ctx context.Context, ch *entity.DailyChallenge) error {
	err := cr.conn.QueryRow(ctx, `INSERT INTO daily_challenges (title, description, target_value, points, challenge_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;`,
		ch.Title, ch.Description, ch.TargetValue, ch.Points, ch.ChallengeDate, ch.IsActive,
	).Scan(&ch.ID, &ch.CreatedAt)
	if err != nil {
		if pgErrCode(err) == checkViolation {
			return errorvalues.ErrValidation
		}
		return errors.New("creating daily challenge error: " + err.Error())
	}
	return nil
}

func (cr *ChallengesRepository) GetWeeklyByID(ctx context.Context, id uuid.UUID) (*entity.WeeklyChallenge, error) {
	ch, err := scanWeekly(cr.conn.QueryRow(ctx, `SELECT `+weeklyColumns+` FROM weekly_challenges WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting weekly challenge by id error: " + err.Error())
	}
	return ch, nil
}

func (cr *ChallengesRepository) GetDailyByID(ctx context.Context, id uuid.UUID) (*entity.DailyChallenge, error) {
	ch, err := scanDaily(cr.conn.QueryRow(ctx, `SELECT `+dailyColumns+` FROM daily_challenges WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting daily challenge by id error: " + err.Error())
	}
	return ch, nil
}

func (cr *ChallengesRepository) FindActiveWeekly(ctx context.Context, now time.Time) (*entity.WeeklyChallenge, error) {
	ch, err := scanWeekly(cr.conn.QueryRow(ctx, `SELECT `+weeklyColumns+` FROM weekly_challenges
		WHERE is_active AND start_date <= $1 AND end_date >= $1 ORDER BY start_date DESC, id LIMIT 1;`, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("searching active weekly challenge error: " + err.Error())
	}
	return ch, nil
}

func (cr *ChallengesRepository) FindActiveWeeklyByType(ctx context.Context, chType entity.ChallengeType, now time.Time) (*entity.WeeklyChallenge, error) {
	ch, err := scanWeekly(cr.conn.QueryRow(ctx, `SELECT `+weeklyColumns+` FROM weekly_challenges
		WHERE is_active AND type = $1 AND start_date <= $2 AND end_date >= $2 ORDER BY start_date DESC, id LIMIT 1;`,
		chType, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("searching active weekly challenge by type error: " + err.Error())
	}
	return ch, nil
}

func (cr *ChallengesRepository) ListActiveWeekly(ctx context.Context, now time.Time) ([]*entity.WeeklyChallenge, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+weeklyColumns+` FROM weekly_challenges
		WHERE is_active AND end_date >= $1 ORDER BY start_date;`, now)
	if err != nil {
		return nil, errors.New("listing weekly challenges error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.WeeklyChallenge, 0, 2)
	for rows.Next() {
		ch, err := scanWeekly(rows)
		if err != nil {
			return nil, errors.New("weekly challenge row parsing error: " + err.Error())
		}
		result = append(result, ch)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected weekly challenge rows error: " + err.Error())
	}
	return result, nil
}

func (cr *ChallengesRepository) ListActiveDaily(ctx context.Context, day time.Time) ([]*entity.DailyChallenge, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+dailyColumns+` FROM daily_challenges
		WHERE is_active AND challenge_date = $1::date ORDER BY created_at;`, day.Format(time.DateOnly))
	if err != nil {
		return nil, errors.New("listing daily challenges error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.DailyChallenge, 0, 4)
	for rows.Next() {
		ch, err := scanDaily(rows)
		if err != nil {
			return nil, errors.New("daily challenge row parsing error: " + err.Error())
		}
		result = append(result, ch)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected daily challenge rows error: " + err.Error())
	}
	return result, nil
}
