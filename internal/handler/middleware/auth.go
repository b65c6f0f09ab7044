package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"petshop-checkout/internal/handler/httperr"
	"petshop-checkout/internal/pkg/config"
	"petshop-checkout/internal/pkg/jwt"
	"petshop-checkout/internal/pkg/reqctx"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
	cookieName     string
}

const (
	ctxUserIDKey    = "user_id"
	ctxUserEmailKey = "user_email"
)

func NewAuthMiddleware(tokenValidator TokenValidator, cfg config.JWTConfig) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		cookieName:     cfg.AccessCookie,
	}
}

// RequireAuth validates the storefront access token and forwards it on the
// request context so calls to the cart, user and order services act as the
// same customer.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			httperr.AbortWithCode(c, http.StatusUnauthorized, nil, "auth_required",
				"Access token required", gin.H{"reauthenticate": true})
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithCode(c, http.StatusUnauthorized, err, "auth_required",
				"Invalid or expired token", gin.H{"reauthenticate": true})
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserEmailKey, claims.Email)
		c.Set("jwt_claims", map[string]any{
			"user_id": claims.UserID.String(),
		})
		c.Request = c.Request.WithContext(reqctx.WithBearer(c.Request.Context(), token))
		c.Next()
	}
}

func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	if m.cookieName != "" {
		if token, err := c.Cookie(m.cookieName); err == nil && token != "" {
			return token
		}
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
