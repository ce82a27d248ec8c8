package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	errorvalues "github.com/limbo/fitquest/internal/error_values"
	"github.com/limbo/fitquest/internal/metrics"
	"github.com/limbo/fitquest/internal/repository"
	"github.com/limbo/fitquest/pkg/entity"
	"github.com/limbo/fitquest/pkg/logger"
)

const dateLayout = "2006-01-02"

type ProgressService struct {
	users      repository.UsersRepositoryI
	challenges repository.ChallengesRepositoryI
	entries    repository.EntriesRepositoryI
	activity   repository.ActivityRepositoryI
	awarder    MilestoneAwarder
	clock      Clock
	logger     *logrus.Entry
}

func NewProgressService(
	users repository.UsersRepositoryI,
	challenges repository.ChallengesRepositoryI,
	entries repository.EntriesRepositoryI,
	activity repository.ActivityRepositoryI,
	awarder MilestoneAwarder,
	opts ...Option,
) *ProgressService {
	if users == nil || challenges == nil || entries == nil || activity == nil || awarder == nil {
		logrus.Fatal("provided nil dependency to progress service")
	}
	o := applyOptions(opts)
	return &ProgressService{
		users:      users,
		challenges: challenges,
		entries:    entries,
		activity:   activity,
		awarder:    awarder,
		clock:      o.clock,
		logger:     o.logger.WithField("component", "progress_service"),
	}
}

func (ps *ProgressService) ensureUser(ctx context.Context, uid uuid.UUID) error {
	if _, err := ps.users.FindByID(ctx, uid); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("repository searching user error: %w", err)
	}
	return nil
}

// findEntry returns nil without error when the user has not joined.
func (ps *ProgressService) findEntry(ctx context.Context, uid, challengeID uuid.UUID) (*entity.ChallengeEntry, error) {
	entry, err := ps.entries.FindWeekly(ctx, uid, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository searching entry error: %w", err)
	}
	return entry, nil
}

func (ps *ProgressService) progress(ctx context.Context, uid uuid.UUID, ch *entity.WeeklyChallenge, entry *entity.ChallengeEntry, now time.Time) (*entity.ChallengeProgress, error) {
	var logs []entity.WorkoutLog
	if entry != nil {
		var err error
		logs, err = ps.activity.WorkoutsInRange(ctx, uid, ch.StartDate, ch.EndDate)
		if err != nil {
			return nil, fmt.Errorf("repository reading workouts error: %w", err)
		}
	}
	return BuildProgress(ch, entry, logs, now, ps.clock.Location()), nil
}

func (ps *ProgressService) GetWeeklyProgress(ctx context.Context, uid uuid.UUID) (*entity.WeeklyProgress, error) {
	if err := ps.ensureUser(ctx, uid); err != nil {
		return nil, err
	}
	now := ps.clock.Now()
	ch, err := ps.challenges.FindActiveWeekly(ctx, now)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return &entity.WeeklyProgress{HasActiveChallenge: false}, nil
		}
		return nil, fmt.Errorf("repository searching challenge error: %w", err)
	}
	entry, err := ps.findEntry(ctx, uid, ch.ID)
	if err != nil {
		return nil, err
	}
	progress, err := ps.progress(ctx, uid, ch, entry, now)
	if err != nil {
		return nil, err
	}
	return &entity.WeeklyProgress{
		HasActiveChallenge: true,
		Challenge:          ch,
		Progress:           progress,
	}, nil
}

func (ps *ProgressService) UpdateWeeklyProgress(ctx context.Context, uid uuid.UUID, activity entity.ActivityType) (*entity.ProgressUpdate, error) {
	chType, ok := activity.ChallengeType()
	if !ok {
		return nil, fmt.Errorf("%w: %q", errorvalues.ErrUnknownActivity, activity)
	}
	if err := ps.ensureUser(ctx, uid); err != nil {
		return nil, err
	}
	now := ps.clock.Now()
	ch, err := ps.challenges.FindActiveWeeklyByType(ctx, chType, now)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return &entity.ProgressUpdate{Message: "No active " + string(chType) + " challenge"}, nil
		}
		return nil, fmt.Errorf("repository searching challenge error: %w", err)
	}
	entry, err := ps.findEntry(ctx, uid, ch.ID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return &entity.ProgressUpdate{Message: "User has not joined the active challenge"}, nil
	}
	progress, err := ps.progress(ctx, uid, ch, entry, now)
	if err != nil {
		return nil, err
	}
	if !progress.IsCompleted || entry.CompletedAt != nil {
		return &entity.ProgressUpdate{Progress: progress}, nil
	}
	result, err := ps.entries.Complete(ctx, repository.CompleteEntryParams{
		EntryID:  entry.ID,
		UserID:   uid,
		Points:   ch.Points,
		Progress: progress.Current,
		At:       now,
	})
	if err != nil {
		return nil, fmt.Errorf("completing weekly challenge error: %w", err)
	}
	if !result.Completed {
		// another request completed it first
		return &entity.ProgressUpdate{Progress: progress}, nil
	}
	metrics.ChallengeCompletions.WithLabelValues("weekly", "progress").Inc()
	logger.FromContext(ctx, ps.logger).WithFields(logrus.Fields{
		"uid":       uid,
		"challenge": ch.ID,
		"points":    ch.Points,
	}).Info("weekly challenge completed")
	progress.CompletedAt = &now
	return &entity.ProgressUpdate{
		ChallengeCompleted: true,
		PointsAwarded:      ch.Points,
		Message:            fmt.Sprintf("Challenge completed! You earned %d points", ch.Points),
		Progress:           progress,
		Achievements:       ps.awarder.AwardMilestones(ctx, uid, result.WeeklyCompleted),
	}, nil
}

// BuildProgress aggregates logs into the challenge progress view. Logs completed outside the challenge
// window are ignored; a log without completion time is counted on today.
func BuildProgress(ch *entity.WeeklyChallenge, entry *entity.ChallengeEntry, logs []entity.WorkoutLog, now time.Time, loc *time.Location) *entity.ChallengeProgress {
	if loc == nil {
		loc = time.UTC
	}
	days := calendarDays(ch.StartDate, ch.EndDate, loc)
	today := now.In(loc).Format(dateLayout)
	index := make(map[string]int, len(days))
	breakdown := make([]entity.DayProgress, len(days))
	for i, d := range days {
		key := d.Format(dateLayout)
		index[key] = i
		breakdown[i] = entity.DayProgress{
			Date:       key,
			DayName:    d.Format("Mon"),
			Activities: []entity.DayActivity{},
			IsToday:    key == today,
		}
	}

	var current float64
	for _, l := range logs {
		ts := now
		if l.CompletedAt != nil {
			ts = *l.CompletedAt
			if ts.Before(ch.StartDate) || ts.After(ch.EndDate) {
				continue
			}
		}
		contribution, value := 1.0, float64(l.Duration)
		if ch.Type == entity.ChallengeTypeCalories {
			contribution = float64(l.CaloriesBurned)
			value = contribution
		}
		current += contribution
		i, ok := index[ts.In(loc).Format(dateLayout)]
		if !ok {
			continue
		}
		breakdown[i].Value += contribution
		breakdown[i].Activities = append(breakdown[i].Activities, entity.DayActivity{
			ID:        l.ID,
			Name:      l.Name,
			Value:     value,
			Timestamp: ts,
		})
	}
	for i := range breakdown {
		breakdown[i].IsCompleted = breakdown[i].Value > 0
	}

	progress := &entity.ChallengeProgress{
		Current:        current,
		Target:         ch.TargetValue,
		Percentage:     percentage(current, ch.TargetValue),
		IsCompleted:    current >= ch.TargetValue,
		DaysRemaining:  daysRemaining(ch.EndDate, now),
		IsJoined:       entry != nil,
		DailyBreakdown: breakdown,
	}
	if entry != nil {
		id := entry.ID
		progress.EntryID = &id
		progress.CompletedAt = entry.CompletedAt
	}
	return progress
}

func percentage(current, target float64) int {
	if target <= 0 {
		return 0
	}
	return int(math.Round(math.Min(current/target*100, 100)))
}

func daysRemaining(end, now time.Time) int {
	d := int(math.Ceil(end.Sub(now).Hours() / 24))
	if d < 0 {
		return 0
	}
	return d
}

// calendarDays lists midnights in loc from start's calendar day to end's, inclusive.
func calendarDays(start, end time.Time, loc *time.Location) []time.Time {
	s, e := start.In(loc), end.In(loc)
	first := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, loc)
	last := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, loc)
	days := make([]time.Time, 0, 7)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
