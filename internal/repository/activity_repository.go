package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/fitquest/internal/error_values"
	"github.com/limbo/fitquest/pkg/entity"
)

type ActivityRepository struct {
	conn PgConnection
}

func NewActivityRepoWithConn(conn PgConnection) *ActivityRepository {
	ping(conn, "activityRepo")
	return &ActivityRepository{
		conn: conn,
	}
}

func (ar *ActivityRepository) CreateWorkout(ctx context.Context, log *entity.WorkoutLog, points int) (err error) {
	tx, err := ar.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning workout tx error: " + err.Error())
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()
	err = tx.QueryRow(ctx, `INSERT INTO workout_logs (user_id, name, duration, calories_burned, completed_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`,
		log.UserID, log.Name, log.Duration, log.CaloriesBurned, log.CompletedAt,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		if pgErrCode(err) == foreignKeyViolation {
			err = errorvalues.ErrUserNotFound
			return err
		}
		return errors.New("creating workout log error: " + err.Error())
	}
	ct, err := tx.Exec(ctx, `UPDATE users SET total_workouts = total_workouts + 1,
		total_calories_burned = total_calories_burned + $1, total_points = total_points + $2 WHERE id = $3;`,
		log.CaloriesBurned, points, log.UserID,
	)
	if err != nil {
		return errors.New("updating user totals error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		err = errorvalues.ErrUserNotFound
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing workout log error: " + err.Error())
	}
	return nil
}

func (ar *ActivityRepository) CreateMeal(ctx context.Context, meal *entity.MealLog) error {
	err := ar.conn.QueryRow(ctx, `INSERT INTO meal_logs (user_id, name, meal_type, calories, protein, carbs, fat)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, logged_at;`,
		meal.UserID, meal.Name, meal.MealType, meal.Calories, meal.Protein, meal.Carbs, meal.Fat,
	).Scan(&meal.ID, &meal.LoggedAt)
	if err != nil {
		if pgErrCode(err) == foreignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating meal log error: " + err.Error())
	}
	return nil
}

func (ar *ActivityRepository) WorkoutsInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.WorkoutLog, error) {
	rows, err := ar.conn.Query(ctx, `SELECT id, user_id, name, duration, calories_burned, completed_at, created_at
		FROM workout_logs WHERE user_id = $1 AND COALESCE(completed_at, created_at) BETWEEN $2 AND $3
		ORDER BY COALESCE(completed_at, created_at), id;`,
		userID, from, to,
	)
	if err != nil {
		return nil, errors.New("getting workouts for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.WorkoutLog, 0, 8)
	for rows.Next() {
		var w entity.WorkoutLog
		err = rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Duration, &w.CaloriesBurned, &w.CompletedAt, &w.CreatedAt)
		if err != nil {
			return nil, errors.New("workout row parsing error: " + err.Error())
		}
		result = append(result, w)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected workout rows error: " + err.Error())
	}
	return result, nil
}
