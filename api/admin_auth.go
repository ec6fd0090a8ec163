package api

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rpupo63/corporate-site-backend/errs"
	"github.com/rs/zerolog/log"
)

const (
	adminSubject  = "admin"
	adminTokenTTL = 12 * time.Hour
)

// adminAuth issues and checks the bearer tokens that gate post editing and
// uploads. With no password configured every request is treated as admin.
type adminAuth struct {
	password string
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func newAdminAuth(password, secret string) *adminAuth {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			log.Fatal().Err(err).Msg("Failed to generate admin token secret")
		}
		if password != "" {
			log.Warn().Msg("ADMIN_TOKEN_SECRET not set, admin tokens will not survive a restart")
		}
	}
	return &adminAuth{password: password, secret: key, ttl: adminTokenTTL, now: time.Now}
}

func (a *adminAuth) enabled() bool {
	return a.password != ""
}

// login checks password in constant time and returns a signed token
func (a *adminAuth) login(password string) (string, time.Time, error) {
	if a.enabled() && subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) != 1 {
		return "", time.Time{}, errs.NewUnauthorizedError("Invalid password")
	}

	now := a.now()
	expiresAt := now.Add(a.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, errs.NewInternalErrorWithCause("failed to sign admin token", err)
	}
	return signed, expiresAt, nil
}

func (a *adminAuth) verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(a.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errs.NewUnauthorizedError("Token expired")
		}
		return "", errs.NewUnauthorizedError("Invalid token")
	}
	if claims.Subject != adminSubject {
		return "", errs.NewUnauthorizedError("Invalid token")
	}
	return claims.Subject, nil
}

// authorize returns the admin subject for r, or an unauthorized error
func (a *adminAuth) authorize(r *http.Request) (string, error) {
	if !a.enabled() {
		return adminSubject, nil
	}

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errs.NewUnauthorizedError("Missing bearer token")
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if tokenString == "" {
		return "", errs.NewUnauthorizedError("Missing bearer token")
	}
	return a.verify(tokenString)
}
