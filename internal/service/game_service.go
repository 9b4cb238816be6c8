package service

import (
	"context"
	"errors"
	"time"

	"github.com/mlukichev/clicker-backend/internal/achievement"
	"github.com/mlukichev/clicker-backend/internal/economy"
	"github.com/mlukichev/clicker-backend/internal/model"
	"github.com/mlukichev/clicker-backend/internal/repository"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// StateSnapshot is the full per-user game state after idle accrual.
type StateSnapshot struct {
	User         *model.User
	PerSecond    int64
	Upgrades     []model.Upgrade
	Achievements []model.Achievement
	Skins        []model.Skin
	ActiveSkin   *model.Skin
}

type ClickResult struct {
	Score     int64
	PerSecond int64
	Unlocked  []model.Achievement
}

type GameService interface {
	State(ctx context.Context, userID uint64) (*StateSnapshot, error)
	Click(ctx context.Context, userID uint64, power int64) (*ClickResult, error)
}

type gameService struct {
	users        repository.UserRepository
	upgrades     repository.UpgradeRepository
	achievements repository.AchievementRepository
	skins        repository.SkinRepository
	locks        *UserLocks
	now          func() time.Time
}

func NewGameService(
	users repository.UserRepository,
	upgrades repository.UpgradeRepository,
	achievements repository.AchievementRepository,
	skins repository.SkinRepository,
	locks *UserLocks,
) GameService {
	return &gameService{
		users:        users,
		upgrades:     upgrades,
		achievements: achievements,
		skins:        skins,
		locks:        locks,
		now:          time.Now,
	}
}

func (s *gameService) State(ctx context.Context, userID uint64) (*StateSnapshot, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	u, upgrades, perSecond, err := s.loadEconomy(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Accrual mutates score, so the evaluator runs here too: idle income
	// alone can cross an achievement threshold between visits.
	economy.ApplyIdleProduction(u, perSecond, s.now())
	newly, err := evaluateForUser(ctx, s.achievements, u, upgrades, perSecond, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.users.SaveWithAchievements(ctx, u, newly); err != nil {
		return nil, err
	}

	achievements, err := s.achievements.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	skins, err := s.skins.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var active *model.Skin
	for i := range skins {
		if skins[i].IsActive {
			active = &skins[i]
			break
		}
	}

	return &StateSnapshot{
		User:         u,
		PerSecond:    perSecond,
		Upgrades:     upgrades,
		Achievements: achievements,
		Skins:        skins,
		ActiveSkin:   active,
	}, nil
}

func (s *gameService) Click(ctx context.Context, userID uint64, power int64) (*ClickResult, error) {
	if power <= 0 {
		power = 1
	}
	unlock := s.locks.Lock(userID)
	defer unlock()

	u, upgrades, perSecond, err := s.loadEconomy(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	economy.ApplyIdleProduction(u, perSecond, now)
	u.Score += power

	newly, err := evaluateForUser(ctx, s.achievements, u, upgrades, perSecond, now)
	if err != nil {
		return nil, err
	}
	if err := s.users.SaveWithAchievements(ctx, u, newly); err != nil {
		return nil, err
	}

	return &ClickResult{
		Score:     u.Score,
		PerSecond: perSecond,
		Unlocked:  achievementValues(newly),
	}, nil
}

// loadEconomy fetches the user plus the upgrades its production rate is
// computed from; every score-touching path starts here.
func (s *gameService) loadEconomy(ctx context.Context, userID uint64) (*model.User, []model.Upgrade, int64, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, 0, ErrNotFound
		}
		return nil, nil, 0, err
	}
	upgrades, err := s.upgrades.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, 0, err
	}
	return u, upgrades, economy.TotalProduction(upgrades), nil
}

// evaluateForUser runs the rule table over the still-locked achievements and
// returns the rows it unlocked (mutated in place, not yet persisted).
func evaluateForUser(
	ctx context.Context,
	repo repository.AchievementRepository,
	u *model.User,
	upgrades []model.Upgrade,
	perSecond int64,
	now time.Time,
) ([]*model.Achievement, error) {
	locked, err := repo.ListLocked(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	candidates := make([]*model.Achievement, len(locked))
	for i := range locked {
		candidates[i] = &locked[i]
	}
	stats := achievement.NewStats(u, upgrades, perSecond)
	return achievement.Evaluate(candidates, stats, now), nil
}

func achievementValues(ptrs []*model.Achievement) []model.Achievement {
	out := make([]model.Achievement, 0, len(ptrs))
	for _, a := range ptrs {
		out = append(out, *a)
	}
	return out
}
