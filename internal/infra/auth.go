package infra

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/s21platform/forum-service/internal/config"
	"github.com/s21platform/forum-service/internal/model"
)

// AuthInterceptorHTTP verifies the platform-issued bearer token and
// puts the caller's identity into the request context. The token is
// optional: requests without valid credentials pass through as
// anonymous and individual handlers decide whether identity is
// required.
func AuthInterceptorHTTP(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := parseAuthToken(strings.TrimPrefix(header, "Bearer "), secret)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, config.KeyUUID, claims.UUID)
			ctx = context.WithValue(ctx, config.KeyUsername, claims.Username)
			ctx = context.WithValue(ctx, config.KeyRole, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseAuthToken(tokenString, secret string) (*model.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse auth token: %w", err)
	}

	if claims, ok := token.Claims.(*model.AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid auth token")
}
