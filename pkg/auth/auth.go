package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"droscher.com/DrinkMenu/configs"
)

type Manager struct {
	tokens     *TokenService
	cookieName string
	limiter    *rate.Limiter
	logger     *zap.Logger
}

func NewAuthManager(conf *configs.Config, logger *zap.Logger) *Manager {
	return &Manager{
		tokens:     NewTokenService(conf.Auth.SecretKey, conf.Auth.LoginPassword, conf.Auth.RenewAfter),
		cookieName: conf.Auth.CookieName,
		limiter:    rate.NewLimiter(rate.Every(conf.Auth.LoginInterval), conf.Auth.LoginBurst),
		logger:     logger,
	}
}

func (a *Manager) Tokens() *TokenService {
	return a.tokens
}

// SessionToken returns the raw token from the request's session cookie, or "" when there is none.
func (a *Manager) SessionToken(c *gin.Context) string {
	token, err := c.Cookie(a.cookieName)
	if err != nil {
		return ""
	}

	return token
}

func (a *Manager) SetSessionCookie(c *gin.Context, token *SessionToken) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     a.cookieName,
		Value:    token.Value,
		Path:     "/",
		Expires:  token.ExpiresAt,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (a *Manager) ClearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     a.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// RequireSession rejects requests without a valid session cookie.
func (a *Manager) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.tokens.Verify(a.SessionToken(c)) {
			a.logger.Info("rejected request without valid session", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": http.StatusForbidden, "message": "Forbidden"})

			return
		}

		c.Next()
	}
}

// RenewSession replaces the session cookie with a fresh token once the current one is due for
// renewal. Requests without a valid session pass through untouched.
func (a *Manager) RenewSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if renewed := a.tokens.RenewIfDue(a.SessionToken(c)); renewed != nil {
			a.logger.Debug("renewing session token", zap.Time("expires", renewed.ExpiresAt))
			a.SetSessionCookie(c, renewed)
		}

		c.Next()
	}
}

// LimitLogins throttles password attempts across all clients.
func (a *Manager) LimitLogins() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.limiter.Allow() {
			a.logger.Warn("login rate limit exceeded", zap.String("client", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"status": http.StatusTooManyRequests, "message": "Too many login attempts"})

			return
		}

		c.Next()
	}
}
