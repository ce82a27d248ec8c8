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

const userColumns = `id, name, password_hash, total_points, current_streak, longest_streak, last_login_at,
	weekly_workout_goal, fitness_level, fitness_goals, dietary_preferences, total_workouts,
	total_calories_burned, created_at`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	ping(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Name, &u.PasswordHash, &u.TotalPoints, &u.CurrentStreak, &u.LongestStreak, &u.LastLoginAt,
		&u.WeeklyWorkoutGoal, &u.FitnessLevel, &u.FitnessGoals, &u.DietaryPreferences, &u.TotalWorkouts,
		&u.TotalCaloriesBurned, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(ctx, `INSERT INTO users (name, password_hash) VALUES ($1, $2);`, user.Name, user.PasswordHash)
	if err != nil {
		if pgErrCode(err) == uniqueViolation {
			return errorvalues.ErrUserExists
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE name = $1;`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by name error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET fitness_level = $1, fitness_goals = $2, dietary_preferences = $3,
		weekly_workout_goal = $4 WHERE id = $5;`,
		user.FitnessLevel,
		user.FitnessGoals,
		user.DietaryPreferences,
		user.WeeklyWorkoutGoal,
		user.ID,
	)
	if err != nil {
		return errors.New("updating user profile error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateStreak(ctx context.Context, uid uuid.UUID, current, longest int, loginAt time.Time) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET current_streak = $1, longest_streak = $2, last_login_at = $3 WHERE id = $4;`,
		current, longest, loginAt, uid,
	)
	if err != nil {
		return errors.New("updating user streak error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

