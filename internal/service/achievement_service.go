package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/limbo/fitquest/internal/metrics"
	"github.com/limbo/fitquest/internal/repository"
	"github.com/limbo/fitquest/pkg/entity"
	"github.com/limbo/fitquest/pkg/logger"
)

// Milestone grants Definition when the user's completed weekly challenge count equals Count.
type Milestone struct {
	Count      int
	Definition entity.AchievementDefinition
}

var (
	WeeklyWarrior = entity.AchievementDefinition{
		Name:        "Weekly Warrior",
		Description: "Completed your first weekly challenge",
		Points:      50,
		Icon:        "trophy",
		Category:    "challenges",
	}
	ChallengeChampion = entity.AchievementDefinition{
		Name:        "Challenge Champion",
		Description: "Completed five weekly challenges",
		Points:      150,
		Icon:        "crown",
		Category:    "challenges",
	}

	WeeklyMilestones = []Milestone{
		{Count: 1, Definition: WeeklyWarrior},
		{Count: 5, Definition: ChallengeChampion},
	}
)

func milestoneFor(table []Milestone, count int) (entity.AchievementDefinition, bool) {
	for _, m := range table {
		if m.Count == count {
			return m.Definition, true
		}
	}
	return entity.AchievementDefinition{}, false
}

type AchievementService struct {
	achievements repository.AchievementsRepositoryI
	milestones   []Milestone
	logger       *logrus.Entry
}

func NewAchievementService(achievementsRepo repository.AchievementsRepositoryI, opts ...Option) *AchievementService {
	if achievementsRepo == nil {
		logrus.Fatal("provided nil repository to achievement service")
	}
	o := applyOptions(opts)
	return &AchievementService{
		achievements: achievementsRepo,
		milestones:   WeeklyMilestones,
		logger:       o.logger.WithField("component", "achievement_service"),
	}
}

// AwardAchievement grants def once per user. Failures are logged and reported as nil.
func (as *AchievementService) AwardAchievement(ctx context.Context, uid uuid.UUID, def entity.AchievementDefinition) *entity.AwardedAchievement {
	awarded, err := as.achievements.Award(ctx, uid, def)
	if err != nil {
		metrics.AwardFailures.Inc()
		logger.FromContext(ctx, as.logger).WithError(err).WithFields(logrus.Fields{
			"uid":         uid,
			"achievement": def.Name,
		}).Error("awarding achievement")
		return nil
	}
	if awarded != nil {
		metrics.AchievementsAwarded.WithLabelValues(def.Name).Inc()
	}
	return awarded
}

// AwardMilestones takes the completed weekly count reported by the completing transaction.
func (as *AchievementService) AwardMilestones(ctx context.Context, uid uuid.UUID, completedWeekly int) []entity.AwardedAchievement {
	def, ok := milestoneFor(as.milestones, completedWeekly)
	if !ok {
		return nil
	}
	if awarded := as.AwardAchievement(ctx, uid, def); awarded != nil {
		return []entity.AwardedAchievement{*awarded}
	}
	return nil
}
