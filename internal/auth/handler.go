package auth

import (
	"errors"
	"net/http"

	"cuotas/internal/api"
	"cuotas/internal/logger"

	"github.com/gin-gonic/gin"
)

type TokenRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    int    `json:"expiresIn" example:"900"`
}

type Handler struct {
	passcodeHash string
	secret       string
}

func NewHandler(passcodeHash, secret string) *Handler {
	return &Handler{
		passcodeHash: passcodeHash,
		secret:       secret,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/token", h.Token)
	rg.POST("/refresh", h.Refresh)
}

// @Summary      Issue owner tokens
// @Description  Exchanges the owner passcode for an access and a refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body auth.TokenRequest true "Passcode"
// @Success      200 {object} auth.TokenResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /auth/token [post]
func (h *Handler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	access, refresh, err := Login(h.passcodeHash, req.Passcode, h.secret)
	if err != nil {
		if errors.Is(err, ErrWrongPasscode) {
			logger.Warn("rejected passcode", "client_ip", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid passcode"})
			return
		}
		logger.Error("failed to issue tokens", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to issue tokens"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(AccessTokenTTL.Seconds()),
	})
}

// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body auth.RefreshRequest true "Refresh token"
// @Success      200 {object} auth.TokenResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	access, err := RefreshAccessToken(req.RefreshToken, h.secret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: access,
		ExpiresIn:   int(AccessTokenTTL.Seconds()),
	})
}
