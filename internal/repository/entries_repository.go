package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/fitquest/internal/error_values"
	"github.com/limbo/fitquest/pkg/entity"
)

const entryColumns = `id, user_id, daily_challenge_id, weekly_challenge_id, progress, completed, completed_at, points_earned, joined_at`

type EntriesRepository struct {
	conn PgConnection
}

func NewEntriesRepoWithConn(conn PgConnection) *EntriesRepository {
	ping(conn, "entriesRepo")
	return &EntriesRepository{
		conn: conn,
	}
}

func scanEntry(row pgx.Row) (*entity.ChallengeEntry, error) {
	var e entity.ChallengeEntry
	err := row.Scan(&e.ID, &e.UserID, &e.DailyChallengeID, &e.WeeklyChallengeID, &e.Progress,
		&e.Completed, &e.CompletedAt, &e.PointsEarned, &e.JoinedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (er *EntriesRepository) Create(ctx context.Context, entry *entity.ChallengeEntry) error {
	err := er.conn.QueryRow(ctx, `INSERT INTO challenge_entries (user_id, daily_challenge_id, weekly_challenge_id)
		VALUES ($1, $2, $3) RETURNING id, joined_at;`,
		entry.UserID, entry.DailyChallengeID, entry.WeeklyChallengeID,
	).Scan(&entry.ID, &entry.JoinedAt)
	if err != nil {
		switch pgErrCode(err) {
		case uniqueViolation:
			return errorvalues.ErrAlreadyJoined
		case foreignKeyViolation:
			return errorvalues.ErrChallengeNotFound
		case checkViolation:
			return errorvalues.ErrUnknownChallenge
		}
		return errors.New("creating challenge entry error: " + err.Error())
	}
	return nil
}

func (er *EntriesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ChallengeEntry, error) {
	entry, err := scanEntry(er.conn.QueryRow(ctx, `SELECT `+entryColumns+` FROM challenge_entries WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errors.New("getting challenge entry error: " + err.Error())
	}
	return entry, nil
}

func (er *EntriesRepository) FindWeekly(ctx context.Context, userID, challengeID uuid.UUID) (*entity.ChallengeEntry, error) {
	entry, err := scanEntry(er.conn.QueryRow(ctx, `SELECT `+entryColumns+` FROM challenge_entries
		WHERE user_id = $1 AND weekly_challenge_id = $2;`, userID, challengeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errors.New("searching weekly challenge entry error: " + err.Error())
	}
	return entry, nil
}

// Complete is the single completion gate: the conditional UPDATE only matches an entry that has no
// completed_at yet, so concurrent callers cannot both credit points.
func (er *EntriesRepository) Complete(ctx context.Context, params CompleteEntryParams) (res CompleteEntryResult, err error) {
	tx, err := er.conn.Begin(ctx)
	if err != nil {
		return res, errors.New("beginning completion tx error: " + err.Error())
	}
	defer func() {
		if err != nil || !res.Completed {
			tx.Rollback(ctx)
		}
	}()
	ct, err := tx.Exec(ctx, `UPDATE challenge_entries SET completed = TRUE, completed_at = $1, points_earned = $2, progress = $3
		WHERE id = $4 AND user_id = $5 AND completed_at IS NULL;`,
		params.At, params.Points, params.Progress, params.EntryID, params.UserID,
	)
	if err != nil {
		return res, errors.New("completing challenge entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return res, nil
	}
	// the user row stays locked until commit, which orders the count below across completions
	ct, err = tx.Exec(ctx, `UPDATE users SET total_points = total_points + $1 WHERE id = $2;`, params.Points, params.UserID)
	if err != nil {
		return res, errors.New("crediting challenge points error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return res, errorvalues.ErrUserNotFound
	}
	var weekly int
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM challenge_entries
		WHERE user_id = $1 AND completed AND weekly_challenge_id IS NOT NULL;`, params.UserID).Scan(&weekly)
	if err != nil {
		return res, errors.New("counting completed weekly entries error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return res, errors.New("committing completion error: " + err.Error())
	}
	return CompleteEntryResult{Completed: true, WeeklyCompleted: weekly}, nil
}
