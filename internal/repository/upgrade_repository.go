package repository

import (
	"context"

	"github.com/mlukichev/clicker-backend/internal/model"
	"gorm.io/gorm"
)

type UpgradeRepository interface {
	ListByUser(ctx context.Context, userID uint64) ([]model.Upgrade, error)
	// SavePurchase commits one purchase: the user's new score, the
	// upgrade's new level (creating the row on first purchase) and any
	// achievements unlocked by it, all in one transaction.
	SavePurchase(ctx context.Context, u *model.User, up *model.Upgrade, unlocked []*model.Achievement) error
	SetDB(db *gorm.DB)
}

type upgradeRepository struct {
	db *gorm.DB
}

func NewUpgradeRepository(db *gorm.DB) UpgradeRepository {
	return &upgradeRepository{db: db}
}

func (r *upgradeRepository) ListByUser(ctx context.Context, userID uint64) ([]model.Upgrade, error) {
	var list []model.Upgrade
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("upgrade_id").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *upgradeRepository) SavePurchase(ctx context.Context, u *model.User, up *model.Upgrade, unlocked []*model.Achievement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Upgrades", "Achievements", "Skins").Save(u).Error; err != nil {
			return err
		}
		if err := tx.Save(up).Error; err != nil {
			return err
		}
		for _, a := range unlocked {
			if err := tx.Save(a).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *upgradeRepository) SetDB(db *gorm.DB) {
	r.db = db
}
