package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/russkiih/bookapp/internal/domain"
	"github.com/russkiih/bookapp/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	AdminRootPath  = "/admin"
	AdminLoginPath = "/admin/login"

	sessionKey = "admin_session"
)

type SessionResolver interface {
	Session(ctx context.Context, token string) (*domain.Session, error)
}

// Decide is the routing decision for admin pages. It returns the path to
// redirect to, or ok=false when the request passes through unchanged.
func Decide(path string, authenticated bool) (redirect string, ok bool) {
	if !authenticated && underAdmin(path) && !underLogin(path) {
		return AdminLoginPath, true
	}
	if authenticated && path == AdminLoginPath {
		return AdminRootPath, true
	}
	return "", false
}

func underAdmin(path string) bool {
	return path == AdminRootPath || strings.HasPrefix(path, AdminRootPath+"/")
}

func underLogin(path string) bool {
	return path == AdminLoginPath || strings.HasPrefix(path, AdminLoginPath+"/")
}

// SessionGuard protects admin pages: anonymous visitors are sent to the login
// page and signed-in admins are sent away from it.
func SessionGuard(resolver SessionResolver, cookieName string, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		session := resolveSession(c, resolver, cookieName, log)
		if session != nil {
			c.Set(sessionKey, session)
		}

		if target, ok := Decide(c.Request.URL.Path, session != nil); ok {
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSession protects the admin JSON API and answers 401 instead of redirecting.
func RequireSession(resolver SessionResolver, cookieName string, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		session := resolveSession(c, resolver, cookieName, log)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// SessionFrom returns the session stored by SessionGuard or RequireSession.
func SessionFrom(c *ginext.Context) (*domain.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	session, ok := v.(*domain.Session)
	return session, ok && session != nil
}

// resolveSession fails closed: any lookup error counts as no session.
func resolveSession(c *ginext.Context, resolver SessionResolver, cookieName string, log logger.Logger) *domain.Session {
	token, err := c.Cookie(cookieName)
	if err != nil || token == "" {
		return nil
	}

	session, err := resolver.Session(c.Request.Context(), token)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			log.LogAttrs(c.Request.Context(), logger.WarnLevel, "session lookup failed",
				logger.String("request_id", c.GetString(RequestIDKey)),
				logger.String("path", c.Request.URL.Path),
				logger.String("error", err.Error()),
			)
		}
		return nil
	}

	return session
}
