package repository

import (
	"context"

	"github.com/mlukichev/clicker-backend/internal/model"
	"gorm.io/gorm"
)

type SkinRepository interface {
	ListByUser(ctx context.Context, userID uint64) ([]model.Skin, error)
	FindByID(ctx context.Context, id uint64) (*model.Skin, error)
	// SavePurchase commits the user's new score and the skin's
	// acquired_at stamp in one transaction.
	SavePurchase(ctx context.Context, u *model.User, s *model.Skin) error
	// SaveActivation flips the active flag to exactly one skin of the
	// user's set. The deactivate-all and activate steps share one
	// transaction so no state with zero or two active skins is visible.
	SaveActivation(ctx context.Context, userID, skinID uint64) error
	SetDB(db *gorm.DB)
}

type skinRepository struct {
	db *gorm.DB
}

func NewSkinRepository(db *gorm.DB) SkinRepository {
	return &skinRepository{db: db}
}

func (r *skinRepository) ListByUser(ctx context.Context, userID uint64) ([]model.Skin, error) {
	var list []model.Skin
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("skin_id").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *skinRepository) FindByID(ctx context.Context, id uint64) (*model.Skin, error) {
	var s model.Skin
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *skinRepository) SavePurchase(ctx context.Context, u *model.User, s *model.Skin) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Upgrades", "Achievements", "Skins").Save(u).Error; err != nil {
			return err
		}
		return tx.Save(s).Error
	})
}

func (r *skinRepository) SaveActivation(ctx context.Context, userID, skinID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Skin{}).
			Where("user_id = ?", userID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.Skin{}).
			Where("skin_id = ? AND user_id = ?", skinID, userID).
			Update("is_active", true).Error
	})
}

func (r *skinRepository) SetDB(db *gorm.DB) {
	r.db = db
}
