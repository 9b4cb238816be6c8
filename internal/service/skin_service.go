package service

import (
	"context"
	"errors"
	"time"

	"github.com/mlukichev/clicker-backend/internal/economy"
	"github.com/mlukichev/clicker-backend/internal/model"
	"github.com/mlukichev/clicker-backend/internal/repository"
	"gorm.io/gorm"
)

type BuySkinResult struct {
	Skin  model.Skin
	Score int64
}

type SkinService interface {
	Buy(ctx context.Context, userID, skinID uint64) (*BuySkinResult, error)
	// Activate makes the skin the user's single active one. The skin must
	// already be owned.
	Activate(ctx context.Context, userID, skinID uint64) (*model.Skin, error)
}

type skinService struct {
	users    repository.UserRepository
	upgrades repository.UpgradeRepository
	skins    repository.SkinRepository
	locks    *UserLocks
	now      func() time.Time
}

func NewSkinService(
	users repository.UserRepository,
	upgrades repository.UpgradeRepository,
	skins repository.SkinRepository,
	locks *UserLocks,
) SkinService {
	return &skinService{
		users:    users,
		upgrades: upgrades,
		skins:    skins,
		locks:    locks,
		now:      time.Now,
	}
}

func (s *skinService) Buy(ctx context.Context, userID, skinID uint64) (*BuySkinResult, error) {
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
	economy.ApplyIdleProduction(u, economy.TotalProduction(upgrades), s.now())

	skin, err := s.skins.FindByID(ctx, skinID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if skin.UserID != userID {
		return nil, ErrNotFound
	}

	if err := economy.PurchaseSkin(u, skin, s.now()); err != nil {
		return nil, err
	}
	if err := s.skins.SavePurchase(ctx, u, skin); err != nil {
		return nil, err
	}

	return &BuySkinResult{Skin: *skin, Score: u.Score}, nil
}

func (s *skinService) Activate(ctx context.Context, userID, skinID uint64) (*model.Skin, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	skins, err := s.skins.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var target *model.Skin
	for i := range skins {
		if skins[i].ID == skinID {
			target = &skins[i]
			break
		}
	}
	if target == nil {
		return nil, ErrNotFound
	}
	if err := economy.ActivateSkin(skins, target); err != nil {
		return nil, err
	}
	if err := s.skins.SaveActivation(ctx, userID, skinID); err != nil {
		return nil, err
	}
	return target, nil
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
