package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/fitquest/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database. Only Name and PasswordHash are used
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates onboarding attributes: fitness level, goals, dietary preferences, weekly goal
	UpdateProfile(ctx context.Context, user *entity.User) error
	// Stores streak counters together with the login moment
	UpdateStreak(ctx context.Context, uid uuid.UUID, current, longest int, loginAt time.Time) error
}

type ChallengesRepositoryI interface {
	// Creates weekly challenge. Active challenges must not overlap other active ones
	CreateWeekly(ctx context.Context, ch *entity.WeeklyChallenge) error
	CreateDaily(ctx context.Context, ch *entity.DailyChallenge) error
	GetWeeklyByID(ctx context.Context, id uuid.UUID) (*entity.WeeklyChallenge, error)
	GetDailyByID(ctx context.Context, id uuid.UUID) (*entity.DailyChallenge, error)
	// Returns the active weekly challenge whose window contains now
	FindActiveWeekly(ctx context.Context, now time.Time) (*entity.WeeklyChallenge, error)
	// Same as FindActiveWeekly, restricted to one challenge type
	FindActiveWeeklyByType(ctx context.Context, chType entity.ChallengeType, now time.Time) (*entity.WeeklyChallenge, error)
	ListActiveWeekly(ctx context.Context, now time.Time) ([]*entity.WeeklyChallenge, error)
	// Lists active daily challenges for the calendar day of now
	// day is a calendar date, only its year, month and day are used
	ListActiveDaily(ctx context.Context, day time.Time) ([]*entity.DailyChallenge, error)
}

type CompleteEntryParams struct {
	EntryID  uuid.UUID
	UserID   uuid.UUID
	Points   int
	Progress float64
	At       time.Time
}

type CompleteEntryResult struct {
	Completed bool
	// Weekly entries the user has completed, this one included. Counted inside the completing
	// transaction after the user row is locked, so concurrent completions see distinct counts
	WeeklyCompleted int
}

type EntriesRepositoryI interface {
	// Creates entry; a second entry for the same (user, challenge) fails with ErrAlreadyJoined
	Create(ctx context.Context, entry *entity.ChallengeEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ChallengeEntry, error)
	FindWeekly(ctx context.Context, userID, challengeID uuid.UUID) (*entity.ChallengeEntry, error)
	// Marks entry completed and credits points in one transaction. Completed is false when the entry
	// had already been completed by someone else
	Complete(ctx context.Context, params CompleteEntryParams) (CompleteEntryResult, error)
}

type ActivityRepositoryI interface {
	// Stores workout and credits user totals plus points in one transaction
	CreateWorkout(ctx context.Context, log *entity.WorkoutLog, points int) error
	CreateMeal(ctx context.Context, meal *entity.MealLog) error
	// Workouts whose completion time (creation time when missing) falls in [from, to]
	WorkoutsInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.WorkoutLog, error)
}

type AchievementsRepositoryI interface {
	// Finds or creates achievement by name and grants it. Returns nil when the user already has it
	Award(ctx context.Context, userID uuid.UUID, def entity.AchievementDefinition) (*entity.AwardedAchievement, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.AwardedAchievement, error)
}

type ContentCacheI interface {
	// Returns ErrCacheMiss when nothing is stored for the user
	Get(ctx context.Context, userID uuid.UUID) (*entity.PersonalizedContent, error)
	Set(ctx context.Context, userID uuid.UUID, content *entity.PersonalizedContent, ttl time.Duration) error
	// Deleting a missing key is not an error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	sslMode := pgcfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgresql://%s:%s@%s/%s?sslmode=%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB, sslMode)
}
