package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	errorvalues "github.com/limbo/fitquest/internal/error_values"
	"github.com/limbo/fitquest/internal/repository"
	"github.com/limbo/fitquest/pkg/entity"
	"github.com/limbo/fitquest/pkg/logger"
)

const defaultContentTTL = 6 * time.Hour

type ContentService struct {
	users     repository.UsersRepositoryI
	cache     repository.ContentCacheI
	generator ContentGenerator
	ttl       time.Duration
	logger    *logrus.Entry
}

func NewContentService(users repository.UsersRepositoryI, cache repository.ContentCacheI, generator ContentGenerator, ttl time.Duration, opts ...Option) *ContentService {
	if users == nil || generator == nil {
		logrus.Fatal("provided nil dependency to content service")
	}
	if cache == nil {
		cache = repository.NoopContentCache{}
	}
	if ttl <= 0 {
		ttl = defaultContentTTL
	}
	o := applyOptions(opts)
	return &ContentService{
		users:     users,
		cache:     cache,
		generator: generator,
		ttl:       ttl,
		logger:    o.logger.WithField("component", "content_service"),
	}
}

func (cs *ContentService) PersonalizedContent(ctx context.Context, uid uuid.UUID) (*entity.PersonalizedContent, error) {
	user, err := cs.users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository searching user error: %w", err)
	}
	log := logger.FromContext(ctx, cs.logger).WithField("uid", uid)
	cached, err := cs.cache.Get(ctx, uid)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, errorvalues.ErrCacheMiss) {
		log.WithError(err).Warn("reading content cache")
	}

	var content entity.PersonalizedContent
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		content.Workouts = cs.generator.GenerateWorkouts(gctx, user)
		return nil
	})
	g.Go(func() error {
		content.Meals = cs.generator.GenerateMeals(gctx, user)
		return nil
	})
	g.Go(func() error {
		content.Quote = cs.generator.GenerateMotivationalQuote(gctx, primaryGoal(user))
		return nil
	})
	// generators never fail
	_ = g.Wait()

	if err = cs.cache.Set(ctx, uid, &content, cs.ttl); err != nil {
		log.WithError(err).Warn("writing content cache")
	}
	return &content, nil
}

func primaryGoal(user *entity.User) string {
	if len(user.FitnessGoals) == 0 {
		return ""
	}
	return user.FitnessGoals[0]
}
