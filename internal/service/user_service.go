package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/limbo/fitquest/internal/error_values"
	"github.com/limbo/fitquest/internal/repository"
	"github.com/limbo/fitquest/pkg/entity"
	"github.com/limbo/fitquest/pkg/logger"
)

type UserService struct {
	repo         repository.UsersRepositoryI
	achievements repository.AchievementsRepositoryI
	contentCache repository.ContentCacheI
	clock        Clock
	logger       *logrus.Entry
}

func NewUserService(usersRepo repository.UsersRepositoryI, achievementsRepo repository.AchievementsRepositoryI, opts ...Option) *UserService {
	if usersRepo == nil || achievementsRepo == nil {
		logrus.Fatal("provided nil repository to user service")
	}
	InitValidator()
	o := applyOptions(opts)
	return &UserService{
		repo:         usersRepo,
		achievements: achievementsRepo,
		contentCache: o.contentCache,
		clock:        o.clock,
		logger:       o.logger.WithField("component", "user_service"),
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %w", err)
	}
	err = us.repo.Create(ctx, &entity.User{
		Name:         req.Name,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	user, err := us.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	now := us.clock.Now()
	current, longest := NextStreak(user.CurrentStreak, user.LongestStreak, user.LastLoginAt, now, us.clock.Location())
	if err = us.repo.UpdateStreak(ctx, user.ID, current, longest, now); err != nil {
		// the login itself succeeded; the streak catches up on the next one
		logger.FromContext(ctx, us.logger).WithError(err).WithField("uid", user.ID).Error("updating login streak")
		return user, nil
	}
	user.CurrentStreak, user.LongestStreak = current, longest
	user.LastLoginAt = &now
	return user, nil
}

// NextStreak advances a daily login streak. Days are compared on the calendar of loc.
func NextStreak(current, longest int, lastLogin *time.Time, now time.Time, loc *time.Location) (int, int) {
	switch {
	case lastLogin == nil:
		current = 1
	default:
		gap := daysBetween(*lastLogin, now, loc)
		// same day keeps the streak as is
		switch {
		case gap == 1:
			current++
		case gap > 1:
			current = 1
		}
	}
	if current > longest {
		longest = current
	}
	return current, longest
}

func daysBetween(from, to time.Time, loc *time.Location) int {
	f, t := from.In(loc), to.In(loc)
	fd := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	td := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(td.Sub(fd).Hours() / 24)
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	return user, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.FitnessLevel = req.FitnessLevel
	user.FitnessGoals = nonNil(req.FitnessGoals)
	user.DietaryPreferences = nonNil(req.DietaryPreferences)
	user.WeeklyWorkoutGoal = req.WeeklyWorkoutGoal
	if err = us.repo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository updating error: %w", err)
	}
	if err = us.contentCache.Delete(ctx, id); err != nil {
		logger.FromContext(ctx, us.logger).WithError(err).WithField("uid", id).Warn("dropping cached content after profile update")
	}
	return user, nil
}

func (us *UserService) ListAchievements(ctx context.Context, id uuid.UUID) ([]entity.AwardedAchievement, error) {
	if _, err := us.GetByID(ctx, id); err != nil {
		return nil, err
	}
	list, err := us.achievements.ListByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("repository listing achievements error: %w", err)
	}
	return list, nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
