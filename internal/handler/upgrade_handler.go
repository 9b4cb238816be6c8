package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mlukichev/clicker-backend/internal/economy"
	"github.com/mlukichev/clicker-backend/internal/middleware"
	"github.com/mlukichev/clicker-backend/internal/service"
)

type UpgradeHandler struct {
	svc service.UpgradeService
}

func NewUpgradeHandler(svc service.UpgradeService) *UpgradeHandler {
	return &UpgradeHandler{svc: svc}
}

type BuyUpgradeResponse struct {
	Success              bool                  `json:"success"`
	Upgrade              UpgradeResponse       `json:"upgrade"`
	Score                int64                 `json:"score"`
	PerSecond            int64                 `json:"per_second"`
	UnlockedAchievements []AchievementResponse `json:"unlocked_achievements"`
}

func (h *UpgradeHandler) Buy(c echo.Context) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil || body.Name == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "upgrade name is required"))
	}

	res, err := h.svc.Buy(c.Request().Context(), middleware.UserID(c), body.Name)
	if err != nil {
		switch err {
		case service.ErrNotFound:
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "upgrade not found"))
		case economy.ErrInsufficientFunds:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("insufficient_funds", "not enough score to purchase upgrade"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to purchase upgrade"))
		}
	}

	return c.JSON(http.StatusOK, BuyUpgradeResponse{
		Success:              true,
		Upgrade:              toUpgradeResponse(&res.Upgrade),
		Score:                res.Score,
		PerSecond:            res.PerSecond,
		UnlockedAchievements: toAchievementResponses(res.Unlocked),
	})
}
