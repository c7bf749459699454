package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	userID := kernel.NewUUID()

	signed, err := tokens.GenerateToken(userID, user.RoleDriver)
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(signed)
	require.NoError(t, err)
	require.Equal(t, userID.String(), claims.UserID)
	require.Equal(t, "driver", claims.Role)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	signed, err := NewTokenService("secret-one", time.Hour).
		GenerateToken(kernel.NewUUID(), user.RoleCustomer)
	require.NoError(t, err)

	_, err = NewTokenService("secret-two", time.Hour).ValidateToken(signed)
	require.Error(t, err)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	tokens := NewTokenService("test-secret", -time.Minute)

	signed, err := tokens.GenerateToken(kernel.NewUUID(), user.RoleCustomer)
	require.NoError(t, err)

	_, err = tokens.ValidateToken(signed)
	require.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	userID := kernel.NewUUID()

	e := echo.New()
	handler := tokens.RequireAuth()(func(ctx echo.Context) error {
		actor, ok := actorFromContext(ctx)
		require.True(t, ok)
		require.Equal(t, userID, actor.ID())
		require.Equal(t, user.RoleAdmin, actor.Role())
		return ctx.NoContent(http.StatusOK)
	})

	t.Run("should pass a valid token through as an actor", func(t *testing.T) {
		signed, err := tokens.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should reject a missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject a malformed token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		signed, err := NewTokenService("other-secret", time.Hour).
			GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestActorFromContext_MissingActor(t *testing.T) {
	e := echo.New()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := actorFromContext(ctx)
	require.False(t, ok)
}

func TestActorFromContext_ReturnsStoredActor(t *testing.T) {
	actor, err := services.NewActor(kernel.NewUUID(), user.RoleCustomer)
	require.NoError(t, err)

	e := echo.New()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	ctx.Set(actorContextKey, actor)

	got, ok := actorFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, actor, got)
}
