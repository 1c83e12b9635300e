package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/DrinkMenu/pkg/apperror"
	"droscher.com/DrinkMenu/pkg/auth"
)

const passwordHeader = "x-pw"

type SessionHandler struct {
	auth   *auth.Manager
	logger *zap.Logger
}

func NewSessionHandler(authManager *auth.Manager, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{auth: authManager, logger: logger}
}

// HandleLogin exchanges the base64 encoded password in the x-pw header for a session cookie.
func (h *SessionHandler) HandleLogin(c *gin.Context) {
	token, err := h.auth.Tokens().IssueFromPassword(c.GetHeader(passwordHeader))
	if err != nil {
		renderError(c, h.logger, err)

		return
	}

	h.logger.Info("issued session token", zap.Time("expires", token.ExpiresAt))
	h.auth.SetSessionCookie(c, token)
	c.Status(http.StatusOK)
}

func (h *SessionHandler) HandleLogout(c *gin.Context) {
	h.auth.ClearSessionCookie(c)
	c.Status(http.StatusOK)
}

func (h *SessionHandler) HandleVerifyToken(c *gin.Context) {
	if h.auth.Tokens().Verify(h.auth.SessionToken(c)) {
		c.Status(http.StatusOK)

		return
	}

	h.auth.ClearSessionCookie(c)
	renderError(c, h.logger, apperror.InvalidCredential("Invalid Session Token"))
}
