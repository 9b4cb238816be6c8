package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mlukichev/clicker-backend/internal/middleware"
	"github.com/mlukichev/clicker-backend/internal/service"
)

type AchievementHandler struct {
	svc service.AchievementService
}

func NewAchievementHandler(svc service.AchievementService) *AchievementHandler {
	return &AchievementHandler{svc: svc}
}

type AchievementListResponse struct {
	Achievements []AchievementResponse `json:"achievements"`
}

func (h *AchievementHandler) List(c echo.Context) error {
	list, err := h.svc.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch achievements"))
	}
	return c.JSON(http.StatusOK, AchievementListResponse{Achievements: toAchievementResponses(list)})
}
