package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Sushmitaag19/Student-Tutor-Connect-System/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type StudentClaims struct {
	StudentID string `json:"student_id"`
	jwt.RegisteredClaims
}

type authError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func parseToken(tokenString, secret string) (*StudentClaims, error) {
	claims := &StudentClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, errors.New("token expired")
	}

	return claims, nil
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return "", false
	}
	return tokenParts[1], true
}

// AuthRequired rejects requests without a valid student token.
func AuthRequired(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := bearerToken(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, authError{Message: "Missing or malformed authorization header"})
			}

			claims, err := parseToken(tokenString, secret)
			if err != nil {
				logger.Error("Invalid token", err)
				return c.JSON(http.StatusUnauthorized, authError{Message: "Invalid token"})
			}

			c.Set("student_id", claims.StudentID)
			c.Set("token", tokenString)

			return next(c)
		}
	}
}

// AuthOptional resolves the student identity when a valid token is present
// but lets anonymous requests through. The recommendation endpoints are
// read-only and work without an identity (content-based scoring only needs
// the stated preferences).
func AuthOptional(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := bearerToken(c)
			if !ok {
				return next(c)
			}

			claims, err := parseToken(tokenString, secret)
			if err != nil {
				// anonymous is fine for read-only endpoints
				logger.Debug("ignoring invalid token on optional-auth route", "error", err)
				return next(c)
			}

			c.Set("student_id", claims.StudentID)

			return next(c)
		}
	}
}
