package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mlukichev/clicker-backend/internal/middleware"
	"github.com/mlukichev/clicker-backend/internal/service"
)

type UserHandler struct {
	svc service.GameService
}

func NewUserHandler(svc service.GameService) *UserHandler {
	return &UserHandler{svc: svc}
}

type UserStateResponse struct {
	UserID       uint64                `json:"user_id"`
	Username     string                `json:"username"`
	Score        int64                 `json:"score"`
	PerSecond    int64                 `json:"per_second"`
	Upgrades     []UpgradeResponse     `json:"upgrades"`
	Achievements []AchievementResponse `json:"achievements"`
	Skins        []SkinResponse        `json:"skins"`
	ActiveSkin   *SkinResponse         `json:"active_skin"`
}

func (h *UserHandler) State(c echo.Context) error {
	snap, err := h.svc.State(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to load state"))
	}

	upgrades := make([]UpgradeResponse, 0, len(snap.Upgrades))
	for i := range snap.Upgrades {
		upgrades = append(upgrades, toUpgradeResponse(&snap.Upgrades[i]))
	}
	skins := make([]SkinResponse, 0, len(snap.Skins))
	for i := range snap.Skins {
		skins = append(skins, toSkinResponse(&snap.Skins[i]))
	}
	var active *SkinResponse
	if snap.ActiveSkin != nil {
		val := toSkinResponse(snap.ActiveSkin)
		active = &val
	}

	return c.JSON(http.StatusOK, UserStateResponse{
		UserID:       snap.User.ID,
		Username:     snap.User.Username,
		Score:        snap.User.Score,
		PerSecond:    snap.PerSecond,
		Upgrades:     upgrades,
		Achievements: toAchievementResponses(snap.Achievements),
		Skins:        skins,
		ActiveSkin:   active,
	})
}

type ClickResponse struct {
	Success              bool                  `json:"success"`
	Score                int64                 `json:"score"`
	PerSecond            int64                 `json:"per_second"`
	UnlockedAchievements []AchievementResponse `json:"unlocked_achievements"`
}

func (h *UserHandler) Click(c echo.Context) error {
	var body struct {
		ClickPower int64 `json:"clickPower"`
	}
	_ = c.Bind(&body)
	if body.ClickPower < 0 {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "click power must not be negative"))
	}

	res, err := h.svc.Click(c.Request().Context(), middleware.UserID(c), body.ClickPower)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to register click"))
	}

	return c.JSON(http.StatusOK, ClickResponse{
		Success:              true,
		Score:                res.Score,
		PerSecond:            res.PerSecond,
		UnlockedAchievements: toAchievementResponses(res.Unlocked),
	})
}
