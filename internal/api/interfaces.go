package api

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/limbo/fitquest/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// HealthChecker is satisfied by *pgxpool.Pool.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
