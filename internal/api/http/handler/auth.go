package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/ctfboard/internal/api/http/middleware"
	"github.com/dtroode/ctfboard/internal/logger"
)

// AuthService defines login/logout operations.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
}

// Auth handles HTTP endpoints for session authentication.
type Auth struct {
	authService  AuthService
	cookieMaxAge time.Duration
	secureCookie bool
	logger       *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, cookieMaxAge time.Duration, secureCookie bool, logger *logger.Logger) *Auth {
	return &Auth{
		authService:  authService,
		cookieMaxAge: cookieMaxAge,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and sets the session cookie.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "username and password are required"})
		return
	}

	tokenString, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookieName, tokenString,
		int(h.cookieMaxAge.Seconds()), "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "username": req.Username})
}

// Logout destroys the session and clears the cookie.
func (h *Auth) Logout(c *gin.Context) {
	tokenString, err := c.Cookie(middleware.SessionCookieName)
	if err == nil {
		if err := h.authService.Logout(c.Request.Context(), tokenString); err != nil {
			handleError(c, err)
			return
		}
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CurrentUser reports the identity bound to the session.
func (h *Auth) CurrentUser(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": identity.Username})
}
