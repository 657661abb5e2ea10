package preferences

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"cuotas/internal/api"
	"cuotas/internal/logger"

	"github.com/gin-gonic/gin"
)

// Preferences is the part of Store the HTTP layer uses.
type Preferences interface {
	GetTheme(ctx context.Context) (Theme, error)
	SetTheme(ctx context.Context, t Theme) error
	ToggleTheme(ctx context.Context) (Theme, error)
	Expanded(ctx context.Context) (map[int64]bool, error)
	SetExpanded(ctx context.Context, subscriptionID int64, expanded bool) error
}

var _ Preferences = (*Store)(nil)

type ThemeRequest struct {
	Theme Theme `json:"theme" binding:"required"`
}

type ThemeResponse struct {
	Theme Theme `json:"theme" example:"dark"`
}

type ExpandedRequest struct {
	Expanded *bool `json:"expanded" binding:"required"`
}

type Handler struct {
	prefs Preferences
}

func NewHandler(prefs Preferences) *Handler {
	return &Handler{prefs: prefs}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	p := rg.Group("/preferences")
	{
		p.GET("/theme", h.GetTheme)
		p.PUT("/theme", h.SetTheme)
		p.POST("/theme/toggle", h.ToggleTheme)
		p.GET("/expanded", h.Expanded)
		p.PUT("/expanded/:id", h.SetExpanded)
	}
}

// @Summary      Get theme
// @Tags         preferences
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} preferences.ThemeResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/preferences/theme [get]
func (h *Handler) GetTheme(c *gin.Context) {
	t, err := h.prefs.GetTheme(c.Request.Context())
	if err != nil {
		logger.Error("failed to read theme", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to read theme"})
		return
	}
	c.JSON(http.StatusOK, ThemeResponse{Theme: t})
}

// @Summary      Set theme
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body preferences.ThemeRequest true "Theme"
// @Success      200 {object} preferences.ThemeResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/preferences/theme [put]
func (h *Handler) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.prefs.SetTheme(c.Request.Context(), req.Theme); err != nil {
		if errors.Is(err, ErrInvalidTheme) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("failed to save theme", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to save theme"})
		return
	}
	c.JSON(http.StatusOK, ThemeResponse{Theme: req.Theme})
}

// @Summary      Toggle theme
// @Tags         preferences
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} preferences.ThemeResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/preferences/theme/toggle [post]
func (h *Handler) ToggleTheme(c *gin.Context) {
	t, err := h.prefs.ToggleTheme(c.Request.Context())
	if err != nil {
		logger.Error("failed to toggle theme", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to toggle theme"})
		return
	}
	c.JSON(http.StatusOK, ThemeResponse{Theme: t})
}

// @Summary      Expanded card states
// @Description  Map of subscription id to whether its card is expanded
// @Tags         preferences
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]bool
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/preferences/expanded [get]
func (h *Handler) Expanded(c *gin.Context) {
	states, err := h.prefs.Expanded(c.Request.Context())
	if err != nil {
		logger.Error("failed to read expanded states", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to read expanded states"})
		return
	}
	c.JSON(http.StatusOK, states)
}

// @Summary      Set expanded card state
// @Tags         preferences
// @Accept       json
// @Security     BearerAuth
// @Param        id path int true "Subscription ID"
// @Param        request body preferences.ExpandedRequest true "State"
// @Success      204
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/preferences/expanded/{id} [put]
func (h *Handler) SetExpanded(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid subscription ID"})
		return
	}
	var req ExpandedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.prefs.SetExpanded(c.Request.Context(), id, *req.Expanded); err != nil {
		logger.Error("failed to save expanded state", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to save expanded state"})
		return
	}
	c.Status(http.StatusNoContent)
}
