package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/fitquest/internal/error_values"
	"github.com/limbo/fitquest/internal/repository"
	"github.com/limbo/fitquest/pkg/entity"
)

// memDB is an in-memory stand-in for the postgres schema shared by the fake repositories below.
type memDB struct {
	mu           sync.Mutex
	users        map[uuid.UUID]*entity.User
	weekly       map[uuid.UUID]*entity.WeeklyChallenge
	daily        map[uuid.UUID]*entity.DailyChallenge
	entries      map[uuid.UUID]*entity.ChallengeEntry
	workouts     []entity.WorkoutLog
	meals        []entity.MealLog
	achievements map[string]*entity.Achievement
	grants       map[uuid.UUID][]entity.AwardedAchievement
	awardErr     error
}

func newMemDB() *memDB {
	return &memDB{
		users:        map[uuid.UUID]*entity.User{},
		weekly:       map[uuid.UUID]*entity.WeeklyChallenge{},
		daily:        map[uuid.UUID]*entity.DailyChallenge{},
		entries:      map[uuid.UUID]*entity.ChallengeEntry{},
		achievements: map[string]*entity.Achievement{},
		grants:       map[uuid.UUID][]entity.AwardedAchievement{},
	}
}

func (db *memDB) addUser(name string) *entity.User {
	db.mu.Lock()
	defer db.mu.Unlock()
	u := &entity.User{
		ID:                 uuid.New(),
		Name:               name,
		FitnessLevel:       "beginner",
		FitnessGoals:       []string{},
		DietaryPreferences: []string{},
		WeeklyWorkoutGoal:  3,
		CreatedAt:          time.Now(),
	}
	db.users[u.ID] = u
	return u
}

func (db *memDB) user(id uuid.UUID) entity.User {
	db.mu.Lock()
	defer db.mu.Unlock()
	return *db.users[id]
}

type fakeUsers struct{ db *memDB }

func (f fakeUsers) Create(_ context.Context, user *entity.User) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, u := range f.db.users {
		if u.Name == user.Name {
			return errorvalues.ErrUserExists
		}
	}
	u := *user
	u.ID = uuid.New()
	u.FitnessLevel = "beginner"
	u.FitnessGoals, u.DietaryPreferences = []string{}, []string{}
	u.WeeklyWorkoutGoal = 3
	f.db.users[u.ID] = &u
	return nil
}

func (f fakeUsers) FindByName(_ context.Context, name string) (*entity.User, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, u := range f.db.users {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}

func (f fakeUsers) FindByID(_ context.Context, uid uuid.UUID) (*entity.User, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	u, ok := f.db.users[uid]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f fakeUsers) UpdateProfile(_ context.Context, user *entity.User) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	u, ok := f.db.users[user.ID]
	if !ok {
		return errorvalues.ErrUserNotFound
	}
	u.FitnessLevel, u.FitnessGoals, u.DietaryPreferences, u.WeeklyWorkoutGoal =
		user.FitnessLevel, user.FitnessGoals, user.DietaryPreferences, user.WeeklyWorkoutGoal
	return nil
}

func (f fakeUsers) UpdateStreak(_ context.Context, uid uuid.UUID, current, longest int, loginAt time.Time) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	u, ok := f.db.users[uid]
	if !ok {
		return errorvalues.ErrUserNotFound
	}
	u.CurrentStreak, u.LongestStreak, u.LastLoginAt = current, longest, &loginAt
	return nil
}

type fakeChallenges struct{ db *memDB }

func (f fakeChallenges) CreateWeekly(_ context.Context, ch *entity.WeeklyChallenge) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	if ch.IsActive {
		for _, other := range f.db.weekly {
			if other.IsActive && !other.StartDate.After(ch.EndDate) && !other.EndDate.Before(ch.StartDate) {
				return errorvalues.ErrChallengeOverlap
			}
		}
	}
	ch.ID = uuid.New()
	ch.CreatedAt = time.Now()
	cp := *ch
	f.db.weekly[ch.ID] = &cp
	return nil
}

func (f fakeChallenges) CreateDaily(_ context.Context, ch *entity.DailyChallenge) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	ch.ID = uuid.New()
	ch.CreatedAt = time.Now()
	cp := *ch
	f.db.daily[ch.ID] = &cp
	return nil
}

func (f fakeChallenges) GetWeeklyByID(_ context.Context, id uuid.UUID) (*entity.WeeklyChallenge, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	ch, ok := f.db.weekly[id]
	if !ok {
		return nil, errorvalues.ErrChallengeNotFound
	}
	cp := *ch
	return &cp, nil
}

func (f fakeChallenges) GetDailyByID(_ context.Context, id uuid.UUID) (*entity.DailyChallenge, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	ch, ok := f.db.daily[id]
	if !ok {
		return nil, errorvalues.ErrChallengeNotFound
	}
	cp := *ch
	return &cp, nil
}

func (f fakeChallenges) FindActiveWeekly(ctx context.Context, now time.Time) (*entity.WeeklyChallenge, error) {
	return f.FindActiveWeeklyByType(ctx, "", now)
}

func (f fakeChallenges) FindActiveWeeklyByType(_ context.Context, chType entity.ChallengeType, now time.Time) (*entity.WeeklyChallenge, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	var found *entity.WeeklyChallenge
	for _, ch := range f.db.weekly {
		if !ch.IsActive || now.Before(ch.StartDate) || now.After(ch.EndDate) {
			continue
		}
		if chType != "" && ch.Type != chType {
			continue
		}
		if found == nil || ch.StartDate.After(found.StartDate) {
			found = ch
		}
	}
	if found == nil {
		return nil, errorvalues.ErrChallengeNotFound
	}
	cp := *found
	return &cp, nil
}

func (f fakeChallenges) ListActiveWeekly(_ context.Context, now time.Time) ([]*entity.WeeklyChallenge, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	result := []*entity.WeeklyChallenge{}
	for _, ch := range f.db.weekly {
		if ch.IsActive && !ch.EndDate.Before(now) {
			cp := *ch
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartDate.Before(result[j].StartDate) })
	return result, nil
}

func (f fakeChallenges) ListActiveDaily(_ context.Context, day time.Time) ([]*entity.DailyChallenge, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	result := []*entity.DailyChallenge{}
	for _, ch := range f.db.daily {
		if ch.IsActive && ch.ChallengeDate.Format(time.DateOnly) == day.Format(time.DateOnly) {
			cp := *ch
			result = append(result, &cp)
		}
	}
	return result, nil
}

type fakeEntries struct{ db *memDB }

func (f fakeEntries) Create(_ context.Context, entry *entity.ChallengeEntry) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	if (entry.DailyChallengeID == nil) == (entry.WeeklyChallengeID == nil) {
		return errorvalues.ErrUnknownChallenge
	}
	for _, e := range f.db.entries {
		if e.UserID != entry.UserID {
			continue
		}
		if (entry.WeeklyChallengeID != nil && e.WeeklyChallengeID != nil && *e.WeeklyChallengeID == *entry.WeeklyChallengeID) ||
			(entry.DailyChallengeID != nil && e.DailyChallengeID != nil && *e.DailyChallengeID == *entry.DailyChallengeID) {
			return errorvalues.ErrAlreadyJoined
		}
	}
	entry.ID = uuid.New()
	entry.JoinedAt = time.Now()
	cp := *entry
	f.db.entries[entry.ID] = &cp
	return nil
}

func (f fakeEntries) GetByID(_ context.Context, id uuid.UUID) (*entity.ChallengeEntry, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	e, ok := f.db.entries[id]
	if !ok {
		return nil, errorvalues.ErrEntryNotFound
	}
	cp := *e
	return &cp, nil
}

func (f fakeEntries) FindWeekly(_ context.Context, userID, challengeID uuid.UUID) (*entity.ChallengeEntry, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, e := range f.db.entries {
		if e.UserID == userID && e.WeeklyChallengeID != nil && *e.WeeklyChallengeID == challengeID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, errorvalues.ErrEntryNotFound
}

func (f fakeEntries) Complete(_ context.Context, params repository.CompleteEntryParams) (repository.CompleteEntryResult, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	e, ok := f.db.entries[params.EntryID]
	if !ok || e.UserID != params.UserID || e.CompletedAt != nil {
		return repository.CompleteEntryResult{}, nil
	}
	u, ok := f.db.users[params.UserID]
	if !ok {
		return repository.CompleteEntryResult{}, errorvalues.ErrUserNotFound
	}
	at := params.At
	e.Completed, e.CompletedAt, e.PointsEarned, e.Progress = true, &at, params.Points, params.Progress
	u.TotalPoints += params.Points
	weekly := 0
	for _, other := range f.db.entries {
		if other.UserID == params.UserID && other.Completed && other.WeeklyChallengeID != nil {
			weekly++
		}
	}
	return repository.CompleteEntryResult{Completed: true, WeeklyCompleted: weekly}, nil
}

type fakeActivity struct{ db *memDB }

func (f fakeActivity) CreateWorkout(_ context.Context, log *entity.WorkoutLog, points int) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	u, ok := f.db.users[log.UserID]
	if !ok {
		return errorvalues.ErrUserNotFound
	}
	log.ID = uuid.New()
	log.CreatedAt = time.Now()
	f.db.workouts = append(f.db.workouts, *log)
	u.TotalWorkouts++
	u.TotalCaloriesBurned += log.CaloriesBurned
	u.TotalPoints += points
	return nil
}

func (f fakeActivity) CreateMeal(_ context.Context, meal *entity.MealLog) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	if _, ok := f.db.users[meal.UserID]; !ok {
		return errorvalues.ErrUserNotFound
	}
	meal.ID = uuid.New()
	meal.LoggedAt = time.Now()
	f.db.meals = append(f.db.meals, *meal)
	return nil
}

func (f fakeActivity) WorkoutsInRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]entity.WorkoutLog, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	result := []entity.WorkoutLog{}
	for _, w := range f.db.workouts {
		ts := w.CreatedAt
		if w.CompletedAt != nil {
			ts = *w.CompletedAt
		}
		if w.UserID == userID && !ts.Before(from) && !ts.After(to) {
			result = append(result, w)
		}
	}
	return result, nil
}

type fakeAchievements struct{ db *memDB }

func (f fakeAchievements) Award(_ context.Context, userID uuid.UUID, def entity.AchievementDefinition) (*entity.AwardedAchievement, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	if f.db.awardErr != nil {
		return nil, f.db.awardErr
	}
	a, ok := f.db.achievements[def.Name]
	if !ok {
		a = &entity.Achievement{ID: uuid.New(), Name: def.Name, Description: def.Description, Points: def.Points, Icon: def.Icon, Category: def.Category}
		f.db.achievements[def.Name] = a
	}
	for _, g := range f.db.grants[userID] {
		if g.Name == a.Name {
			return nil, nil
		}
	}
	u, ok := f.db.users[userID]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	granted := entity.AwardedAchievement{ID: uuid.New(), Name: a.Name, Description: a.Description, Points: def.Points, Icon: a.Icon, EarnedAt: time.Now()}
	f.db.grants[userID] = append(f.db.grants[userID], granted)
	u.TotalPoints += def.Points
	return &granted, nil
}

func (f fakeAchievements) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.AwardedAchievement, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	return append([]entity.AwardedAchievement{}, f.db.grants[userID]...), nil
}
