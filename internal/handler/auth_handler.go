package handler

import (
	"net/http"

	"taskboard/internal/auth"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

const refreshCookie = "refresh_token"

type AuthHandler struct {
	auth         *service.AuthService
	refreshTTL   int
	cookieSecure bool
}

func NewAuthHandler(authService *service.AuthService, tokens *auth.TokenService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		auth:         authService,
		refreshTTL:   int(tokens.RefreshTTL().Seconds()),
		cookieSecure: cookieSecure,
	}
}

// Register godoc
// @Summary      Register a new user
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "User data"
// @Success      201      {object}  TokenResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bind(c, &req) {
		return
	}

	pair, err := h.auth.Register(c.Request.Context(), service.Registration{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondTokens(c, http.StatusCreated, pair)
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  TokenResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bind(c, &req) {
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondTokens(c, http.StatusOK, pair)
}

// Refresh godoc
// @Summary      Exchange the refresh cookie for a new token pair
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  TokenResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, _ := c.Cookie(refreshCookie)

	pair, err := h.auth.Refresh(token)
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondTokens(c, http.StatusOK, pair)
}

func (h *AuthHandler) respondTokens(c *gin.Context, status int, pair auth.TokenPair) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookie, pair.RefreshToken, h.refreshTTL, "/auth", "", h.cookieSecure, true)
	c.JSON(status, TokenResponse{AccessToken: pair.AccessToken})
}
