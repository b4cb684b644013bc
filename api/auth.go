package api

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/Domenick1991/flightadmin/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenHeader carries the admin session token on guarded routes.
const TokenHeader = "X-Admin-Token"

// SessionStore is the server-side session registry, backed by redis.
type SessionStore interface {
	StoreSession(ctx context.Context, token string) error
	SessionValid(ctx context.Context, token string) (bool, error)
	DropSession(ctx context.Context, token string) error
}

type AuthHandler struct {
	sessions SessionStore
	password string
	metrics  *metrics.Metrics
}

type loginRequest struct {
	Password string `json:"password"`
}

func NewAuthHandler(sessions SessionStore, password string, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{sessions: sessions, password: password, metrics: m}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/login", h.login)
	router.POST("/logout", h.logout)
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.password == "" || subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token := uuid.NewString()
	if err := h.sessions.StoreSession(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if h.metrics != nil {
		h.metrics.AdminLogins.Inc()
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AuthHandler) logout(c *gin.Context) {
	token := c.GetHeader(TokenHeader)
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing token"})
		return
	}
	if err := h.sessions.DropSession(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// RequireSession rejects requests whose token is absent or not a live session.
func RequireSession(sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing admin token"})
			return
		}
		ok, err := sessions.SessionValid(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid admin token"})
			return
		}
		c.Next()
	}
}
