package handler

import (
	"time"

	"github.com/mlukichev/clicker-backend/internal/economy"
	"github.com/mlukichev/clicker-backend/internal/model"
)

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

type UpgradeResponse struct {
	UpgradeID         uint64  `json:"upgrade_id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	BaseCost          int64   `json:"base_cost"`
	CurrentCost       int64   `json:"current_cost"`
	BaseProduction    int64   `json:"base_production"`
	CurrentProduction int64   `json:"current_production"`
	Level             int     `json:"level"`
	PurchasedAt       *string `json:"purchased_at"`
}

type AchievementResponse struct {
	AchievementID uint64  `json:"achievement_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
	IsUnlocked    bool    `json:"is_unlocked"`
	AchievedAt    *string `json:"achieved_at"`
}

type SkinResponse struct {
	SkinID      uint64             `json:"skin_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	BaseCost    int64              `json:"base_cost"`
	IsActive    bool               `json:"is_active"`
	IsOwned     bool               `json:"is_owned"`
	Colors      model.ColorPalette `json:"colors"`
	AcquiredAt  *string            `json:"acquired_at"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	val := t.Format(time.RFC3339)
	return &val
}

func toUpgradeResponse(up *model.Upgrade) UpgradeResponse {
	return UpgradeResponse{
		UpgradeID:         up.ID,
		Name:              up.Name,
		Description:       up.Description,
		BaseCost:          up.BaseCost,
		CurrentCost:       economy.CurrentCost(up),
		BaseProduction:    up.BaseProduction,
		CurrentProduction: economy.CurrentProduction(up),
		Level:             up.Level,
		PurchasedAt:       formatTime(up.PurchasedAt),
	}
}

func toAchievementResponse(a *model.Achievement) AchievementResponse {
	return AchievementResponse{
		AchievementID: a.ID,
		Name:          a.Name,
		Description:   a.Description,
		Icon:          a.Icon,
		IsUnlocked:    a.IsUnlocked,
		AchievedAt:    formatTime(a.AchievedAt),
	}
}

func toSkinResponse(s *model.Skin) SkinResponse {
	return SkinResponse{
		SkinID:      s.ID,
		Name:        s.Name,
		Description: s.Description,
		BaseCost:    s.BaseCost,
		IsActive:    s.IsActive,
		IsOwned:     s.IsOwned(),
		Colors:      s.Colors,
		AcquiredAt:  formatTime(s.AcquiredAt),
	}
}

func toAchievementResponses(list []model.Achievement) []AchievementResponse {
	out := make([]AchievementResponse, 0, len(list))
	for i := range list {
		out = append(out, toAchievementResponse(&list[i]))
	}
	return out
}
