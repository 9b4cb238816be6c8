package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mlukichev/clicker-backend/internal/economy"
	"github.com/mlukichev/clicker-backend/internal/middleware"
	"github.com/mlukichev/clicker-backend/internal/service"
)

type SkinHandler struct {
	svc service.SkinService
}

func NewSkinHandler(svc service.SkinService) *SkinHandler {
	return &SkinHandler{svc: svc}
}

type BuySkinResponse struct {
	Success bool         `json:"success"`
	Skin    SkinResponse `json:"skin"`
	Score   int64        `json:"score"`
}

func (h *SkinHandler) Buy(c echo.Context) error {
	var body struct {
		SkinID uint64 `json:"skin_id"`
	}
	if err := c.Bind(&body); err != nil || body.SkinID == 0 {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "skin_id is required"))
	}

	res, err := h.svc.Buy(c.Request().Context(), middleware.UserID(c), body.SkinID)
	if err != nil {
		switch err {
		case service.ErrNotFound:
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "skin not found"))
		case economy.ErrAlreadyOwned:
			return c.JSON(http.StatusConflict, NewErrorResponse("already_owned", "skin already acquired"))
		case economy.ErrInsufficientFunds:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("insufficient_funds", "not enough score to purchase skin"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to purchase skin"))
		}
	}

	return c.JSON(http.StatusOK, BuySkinResponse{
		Success: true,
		Skin:    toSkinResponse(&res.Skin),
		Score:   res.Score,
	})
}

type ActivateSkinResponse struct {
	Success bool         `json:"success"`
	Skin    SkinResponse `json:"skin"`
}

func (h *SkinHandler) Activate(c echo.Context) error {
	var body struct {
		SkinID uint64 `json:"skin_id"`
	}
	if err := c.Bind(&body); err != nil || body.SkinID == 0 {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "skin_id is required"))
	}

	skin, err := h.svc.Activate(c.Request().Context(), middleware.UserID(c), body.SkinID)
	if err != nil {
		switch err {
		case service.ErrNotFound:
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "skin not found"))
		case economy.ErrNotOwned:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("not_owned", "skin not acquired"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to activate skin"))
		}
	}

	return c.JSON(http.StatusOK, ActivateSkinResponse{
		Success: true,
		Skin:    toSkinResponse(skin),
	})
}
