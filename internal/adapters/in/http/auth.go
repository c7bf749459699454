package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// actorContextKey is where the authentication middleware stores the
// resolved actor on the echo context.
const actorContextKey = "actor"

// Claims are the JWT claims carried by access tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies HS256 access tokens.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// GenerateToken creates a signed token for the given user.
func (s *TokenService) GenerateToken(userID kernel.UUID, role user.Role) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: userID.String(),
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "marketplace",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses a signed token and returns its claims.
func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid claims type")
	}
	return claims, nil
}

// RequireAuth is an echo middleware that resolves the Bearer token into
// a domain actor and stores it on the request context.
func (s *TokenService) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return unauthorized(ctx, "missing bearer token")
			}

			claims, err := s.ValidateToken(tokenString)
			if err != nil {
				return unauthorized(ctx, "invalid or expired token")
			}

			userID, err := kernel.UUIDFromString(claims.UserID)
			if err != nil {
				return unauthorized(ctx, "invalid or expired token")
			}
			role, err := user.RoleFromString(claims.Role)
			if err != nil {
				return unauthorized(ctx, "invalid or expired token")
			}
			actor, err := services.NewActor(userID, role)
			if err != nil {
				return unauthorized(ctx, "invalid or expired token")
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}

// actorFromContext returns the actor stored by RequireAuth.
func actorFromContext(ctx echo.Context) (services.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(services.Actor)
	return actor, ok
}
