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
	"github.com/limbo/fitquest/internal/metrics"
	"github.com/limbo/fitquest/internal/repository"
	"github.com/limbo/fitquest/pkg/entity"
	"github.com/limbo/fitquest/pkg/logger"
)

const (
	challengeKindDaily  = "daily"
	challengeKindWeekly = "weekly"
)

type ChallengeService struct {
	users      repository.UsersRepositoryI
	challenges repository.ChallengesRepositoryI
	entries    repository.EntriesRepositoryI
	awarder    MilestoneAwarder
	clock      Clock
	logger     *logrus.Entry
}

func NewChallengeService(
	users repository.UsersRepositoryI,
	challenges repository.ChallengesRepositoryI,
	entries repository.EntriesRepositoryI,
	awarder MilestoneAwarder,
	opts ...Option,
) *ChallengeService {
	if users == nil || challenges == nil || entries == nil || awarder == nil {
		logrus.Fatal("provided nil dependency to challenge service")
	}
	InitValidator()
	o := applyOptions(opts)
	return &ChallengeService{
		users:      users,
		challenges: challenges,
		entries:    entries,
		awarder:    awarder,
		clock:      o.clock,
		logger:     o.logger.WithField("component", "challenge_service"),
	}
}

func (cs *ChallengeService) ListActive(ctx context.Context) (*entity.ChallengeCatalog, error) {
	now := cs.clock.Now()
	today := dateOf(now, cs.clock.Location())
	catalog := &entity.ChallengeCatalog{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		daily, err := cs.challenges.ListActiveDaily(gctx, today)
		if err != nil {
			return err
		}
		catalog.Daily = daily
		return nil
	})
	g.Go(func() error {
		weekly, err := cs.challenges.ListActiveWeekly(gctx, now)
		if err != nil {
			return err
		}
		catalog.Weekly = weekly
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("repository listing challenges error: %w", err)
	}
	return catalog, nil
}

func (cs *ChallengeService) ensureUser(ctx context.Context, uid uuid.UUID) error {
	if _, err := cs.users.FindByID(ctx, uid); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("repository searching user error: %w", err)
	}
	return nil
}

func (cs *ChallengeService) Join(ctx context.Context, req *JoinChallengeRequest) (*entity.ChallengeEntry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if err := cs.ensureUser(ctx, req.UserID); err != nil {
		return nil, err
	}
	entry := entity.ChallengeEntry{UserID: req.UserID}
	challengeID := req.ChallengeID
	switch req.ChallengeType {
	case challengeKindWeekly:
		ch, err := cs.challenges.GetWeeklyByID(ctx, challengeID)
		if err != nil {
			return nil, passNotFound(err, "repository searching weekly challenge error")
		}
		if !ch.IsActive {
			return nil, errorvalues.ErrChallengeNotFound
		}
		entry.WeeklyChallengeID = &challengeID
	case challengeKindDaily:
		ch, err := cs.challenges.GetDailyByID(ctx, challengeID)
		if err != nil {
			return nil, passNotFound(err, "repository searching daily challenge error")
		}
		if !ch.IsActive {
			return nil, errorvalues.ErrChallengeNotFound
		}
		entry.DailyChallengeID = &challengeID
	default:
		return nil, errorvalues.ErrUnknownChallenge
	}
	if err := cs.entries.Create(ctx, &entry); err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlreadyJoined),
			errors.Is(err, errorvalues.ErrChallengeNotFound),
			errors.Is(err, errorvalues.ErrUnknownChallenge):
			return nil, err
		}
		return nil, fmt.Errorf("repository creating entry error: %w", err)
	}
	return &entry, nil
}

// Complete credits the linked challenge's points once. Entries of other users are reported as missing.
func (cs *ChallengeService) Complete(ctx context.Context, uid, entryID uuid.UUID) (*entity.CompletionResult, error) {
	entry, err := cs.entries.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository searching entry error: %w", err)
	}
	if entry.UserID != uid {
		return nil, errorvalues.ErrEntryNotFound
	}
	if entry.CompletedAt != nil {
		return nil, errorvalues.ErrAlreadyCompleted
	}
	var (
		points int
		target float64
		kind   string
	)
	switch {
	case entry.WeeklyChallengeID != nil:
		ch, err := cs.challenges.GetWeeklyByID(ctx, *entry.WeeklyChallengeID)
		if err != nil {
			return nil, passNotFound(err, "repository searching weekly challenge error")
		}
		points, target, kind = ch.Points, ch.TargetValue, challengeKindWeekly
	case entry.DailyChallengeID != nil:
		ch, err := cs.challenges.GetDailyByID(ctx, *entry.DailyChallengeID)
		if err != nil {
			return nil, passNotFound(err, "repository searching daily challenge error")
		}
		points, target, kind = ch.Points, ch.TargetValue, challengeKindDaily
	default:
		return nil, errorvalues.ErrUnknownChallenge
	}
	now := cs.clock.Now()
	completion, err := cs.entries.Complete(ctx, repository.CompleteEntryParams{
		EntryID:  entry.ID,
		UserID:   uid,
		Points:   points,
		Progress: max(entry.Progress, target),
		At:       now,
	})
	if err != nil {
		return nil, fmt.Errorf("completing challenge error: %w", err)
	}
	if !completion.Completed {
		return nil, errorvalues.ErrAlreadyCompleted
	}
	metrics.ChallengeCompletions.WithLabelValues(kind, "manual").Inc()
	logger.FromContext(ctx, cs.logger).WithFields(logrus.Fields{
		"uid":    uid,
		"entry":  entry.ID,
		"kind":   kind,
		"points": points,
	}).Info("challenge completed manually")
	result := &entity.CompletionResult{
		EntryID:       entry.ID,
		PointsAwarded: points,
		CompletedAt:   now,
	}
	if kind == challengeKindWeekly {
		result.Achievements = cs.awarder.AwardMilestones(ctx, uid, completion.WeeklyCompleted)
	}
	return result, nil
}

func (cs *ChallengeService) CreateWeekly(ctx context.Context, req *CreateWeeklyChallengeRequest) (*entity.WeeklyChallenge, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, errorvalues.ErrInvalidPeriod
	}
	ch := entity.WeeklyChallenge{
		Title:       req.Title,
		Description: req.Description,
		Type:        entity.ChallengeType(req.Type),
		TargetValue: req.TargetValue,
		Points:      req.Points,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := cs.challenges.CreateWeekly(ctx, &ch); err != nil {
		if errors.Is(err, errorvalues.ErrChallengeOverlap) || errors.Is(err, errorvalues.ErrInvalidPeriod) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating weekly challenge error: %w", err)
	}
	return &ch, nil
}

func (cs *ChallengeService) CreateDaily(ctx context.Context, req *CreateDailyChallengeRequest) (*entity.DailyChallenge, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	ch := entity.DailyChallenge{
		Title:         req.Title,
		Description:   req.Description,
		TargetValue:   req.TargetValue,
		Points:        req.Points,
		ChallengeDate: dateOf(req.ChallengeDate, cs.clock.Location()),
		IsActive:      req.IsActive == nil || *req.IsActive,
	}
	if err := cs.challenges.CreateDaily(ctx, &ch); err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating daily challenge error: %w", err)
	}
	return &ch, nil
}

// dateOf returns the calendar day of t in loc as midnight UTC, the form daily challenges are stored in.
func dateOf(t time.Time, loc *time.Location) time.Time {
	d := t.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func passNotFound(err error, msg string) error {
	if errors.Is(err, errorvalues.ErrChallengeNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
