package service

import (
	"context"

	"github.com/mlukichev/clicker-backend/internal/model"
	"github.com/mlukichev/clicker-backend/internal/repository"
)

type AchievementService interface {
	List(ctx context.Context, userID uint64) ([]model.Achievement, error)
}

type achievementService struct {
	achievements repository.AchievementRepository
}

func NewAchievementService(achievements repository.AchievementRepository) AchievementService {
	return &achievementService{achievements: achievements}
}

func (s *achievementService) List(ctx context.Context, userID uint64) ([]model.Achievement, error) {
	return s.achievements.ListByUser(ctx, userID)
}
