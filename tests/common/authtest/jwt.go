//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"petshop-checkout/internal/pkg/config"
	"petshop-checkout/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper stands in for the storefront auth service.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	token, err := h.service.IssueToken(userID, email, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := h.service.IssueToken(userID, "", -time.Minute)
	require.NoError(t, err)
	return token
}
