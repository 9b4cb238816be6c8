package service

import (
	"context"
	"time"

	"github.com/mlukichev/clicker-backend/internal/economy"
	"github.com/mlukichev/clicker-backend/internal/game"
	"github.com/mlukichev/clicker-backend/internal/model"
	"github.com/mlukichev/clicker-backend/internal/repository"
)

type BuyUpgradeResult struct {
	Upgrade   model.Upgrade
	Score     int64
	PerSecond int64
	Unlocked  []model.Achievement
}

type UpgradeService interface {
	// Buy purchases one level of the named template upgrade, creating the
	// per-user row on the first successful purchase. A failed purchase
	// persists nothing, the lazily built row included.
	Buy(ctx context.Context, userID uint64, name string) (*BuyUpgradeResult, error)
}

type upgradeService struct {
	users        repository.UserRepository
	upgrades     repository.UpgradeRepository
	achievements repository.AchievementRepository
	locks        *UserLocks
	now          func() time.Time
}

func NewUpgradeService(
	users repository.UserRepository,
	upgrades repository.UpgradeRepository,
	achievements repository.AchievementRepository,
	locks *UserLocks,
) UpgradeService {
	return &upgradeService{
		users:        users,
		upgrades:     upgrades,
		achievements: achievements,
		locks:        locks,
		now:          time.Now,
	}
}

func (s *upgradeService) Buy(ctx context.Context, userID uint64, name string) (*BuyUpgradeResult, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	upgrades, err := s.upgrades.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	economy.ApplyIdleProduction(u, economy.TotalProduction(upgrades), now)

	var up *model.Upgrade
	for i := range upgrades {
		if upgrades[i].Name == name {
			up = &upgrades[i]
			break
		}
	}
	if up == nil {
		t, ok := game.UpgradeByName(name)
		if !ok {
			return nil, ErrNotFound
		}
		upgrades = append(upgrades, model.Upgrade{
			UserID:         userID,
			Name:           t.Name,
			Description:    t.Description,
			BaseCost:       t.BaseCost,
			BaseProduction: t.BaseProduction,
			CostMultiplier: game.DefaultCostMultiplier,
		})
		up = &upgrades[len(upgrades)-1]
	}

	if err := economy.PurchaseUpgrade(u, up, now); err != nil {
		return nil, err
	}

	perSecond := economy.TotalProduction(upgrades)
	newly, err := evaluateForUser(ctx, s.achievements, u, upgrades, perSecond, now)
	if err != nil {
		return nil, err
	}
	if err := s.upgrades.SavePurchase(ctx, u, up, newly); err != nil {
		return nil, err
	}

	return &BuyUpgradeResult{
		Upgrade:   *up,
		Score:     u.Score,
		PerSecond: perSecond,
		Unlocked:  achievementValues(newly),
	}, nil
}
