package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/fitquest/internal/error_values"
	"github.com/limbo/fitquest/pkg/entity"
)

type AchievementsRepository struct {
	conn PgConnection
}

func NewAchievementsRepoWithConn(conn PgConnection) *AchievementsRepository {
	ping(conn, "achievementsRepo")
	return &AchievementsRepository{
		conn: conn,
	}
}

// Award creates the achievement on first use (an existing row keeps its stored fields), links it to
// the user and credits def.Points. All of it happens in one transaction.
func (ar *AchievementsRepository) Award(ctx context.Context, userID uuid.UUID, def entity.AchievementDefinition) (awarded *entity.AwardedAchievement, err error) {
	tx, err := ar.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning award tx error: " + err.Error())
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()
	_, err = tx.Exec(ctx, `INSERT INTO achievements (name, description, points, icon, category)
		VALUES ($1, $2, $3, $4, $5) ON CONFLICT (name) DO NOTHING;`,
		def.Name, def.Description, def.Points, def.Icon, def.Category,
	)
	if err != nil {
		return nil, errors.New("creating achievement error: " + err.Error())
	}
	var (
		achievementID uuid.UUID
		result        entity.AwardedAchievement
	)
	err = tx.QueryRow(ctx, `SELECT id, name, description, icon FROM achievements WHERE name = $1;`, def.Name).
		Scan(&achievementID, &result.Name, &result.Description, &result.Icon)
	if err != nil {
		return nil, errors.New("reading achievement error: " + err.Error())
	}
	err = tx.QueryRow(ctx, `INSERT INTO user_achievements (user_id, achievement_id) VALUES ($1, $2)
		ON CONFLICT (user_id, achievement_id) DO NOTHING RETURNING id, earned_at;`,
		userID, achievementID,
	).Scan(&result.ID, &result.EarnedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// already earned, keep the lazily created definition
			if err = tx.Commit(ctx); err != nil {
				return nil, errors.New("committing award error: " + err.Error())
			}
			return nil, nil
		}
		if pgErrCode(err) == foreignKeyViolation {
			err = errorvalues.ErrUserNotFound
			return nil, err
		}
		return nil, errors.New("granting achievement error: " + err.Error())
	}
	ct, err := tx.Exec(ctx, `UPDATE users SET total_points = total_points + $1 WHERE id = $2;`, def.Points, userID)
	if err != nil {
		return nil, errors.New("crediting achievement points error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		err = errorvalues.ErrUserNotFound
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing award error: " + err.Error())
	}
	result.Points = def.Points
	return &result, nil
}

func (ar *AchievementsRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.AwardedAchievement, error) {
	rows, err := ar.conn.Query(ctx, `SELECT ua.id, a.name, a.description, a.points, a.icon, ua.earned_at
		FROM user_achievements ua JOIN achievements a ON a.id = ua.achievement_id
		WHERE ua.user_id = $1 ORDER BY ua.earned_at;`, userID)
	if err != nil {
		return nil, errors.New("listing user achievements error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.AwardedAchievement, 0, 4)
	for rows.Next() {
		var a entity.AwardedAchievement
		if err = rows.Scan(&a.ID, &a.Name, &a.Description, &a.Points, &a.Icon, &a.EarnedAt); err != nil {
			return nil, errors.New("achievement row parsing error: " + err.Error())
		}
		result = append(result, a)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected achievement rows error: " + err.Error())
	}
	return result, nil
}
