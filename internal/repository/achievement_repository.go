package repository

import (
	"context"

	"github.com/mlukichev/clicker-backend/internal/model"
	"gorm.io/gorm"
)

type AchievementRepository interface {
	ListByUser(ctx context.Context, userID uint64) ([]model.Achievement, error)
	// ListLocked returns the unlock candidates; already-unlocked rows are
	// never re-evaluated.
	ListLocked(ctx context.Context, userID uint64) ([]model.Achievement, error)
	SetDB(db *gorm.DB)
}

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) ListByUser(ctx context.Context, userID uint64) ([]model.Achievement, error) {
	var list []model.Achievement
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("achievement_id").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *achievementRepository) ListLocked(ctx context.Context, userID uint64) ([]model.Achievement, error) {
	var list []model.Achievement
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_unlocked = ?", userID, false).
		Order("achievement_id").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *achievementRepository) SetDB(db *gorm.DB) {
	r.db = db
}
