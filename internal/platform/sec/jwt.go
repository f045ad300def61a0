// Copyright (c) 2026 audio-server. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer behind small interfaces.
package sec

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Mfungorn/audio-server/internal/platform/apperr"
	"github.com/Mfungorn/audio-server/internal/platform/constants"
)

// AuthClaims represents the payload embedded inside an access token.
//
// # Why custom claims?
//
// By embedding the principal ID, email, and role directly inside the JWT,
// the authentication middleware can reconstruct the active principal context
// WITHOUT querying the database on every single API request.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	PrincipalID int64  `json:"uid"`
	Email       string `json:"eml"`
	Role        string `json:"rol"`
}

// TokenService handles generation and verification of JWT tokens using HS512
// with a shared secret.
//
// # Testability
//
// The clock is injectable so expiration behavior can be pinned down in tests
// without sleeping.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a new TokenService signing with the given shared secret.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: token secret must not be empty")
	}
	if ttl <= 0 {
		ttl = constants.DefaultTokenTTL
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: constants.AuthIssuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// WithClock replaces the time source. Intended for tests.
func (service *TokenService) WithClock(now func() time.Time) *TokenService {
	service.now = now
	return service
}

// IssueToken creates a signed access token for a principal.
//
// The token embeds the principal ID, email, and role, and expires at a fixed
// offset from issuance time.
func (service *TokenService) IssueToken(principalID int64, email, role string) (string, error) {
	currentTime := service.now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", principalID),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
		PrincipalID: principalID,
		Email:       email,
		Role:        role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ParseToken verifies a token string and returns its claims.
//
// # Errors
//
// An expired token maps to [apperr.TokenExpired]; every other parse or
// signature failure maps to a generic unauthorized error. Callers that only
// need a yes/no answer should use [TokenService.ValidateToken] instead.
func (service *TokenService) ParseToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	}, jwt.WithTimeFunc(service.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.TokenExpired()
		}
		return nil, apperr.Unauthorized("Invalid token")
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperr.Unauthorized("Invalid token")
	}

	return claims, nil
}

// ValidateToken reports whether a token string is well-formed, correctly
// signed, and unexpired.
//
// Signature mismatch, malformed structure, expiration, and unsupported
// algorithms all map to false — none of them surface as an error.
func (service *TokenService) ValidateToken(tokenString string) bool {
	_, err := service.ParseToken(tokenString)
	return err == nil
}

// FromAuthHeader extracts the raw token from an Authorization header value.
//
// The value must start with the literal scheme prefix "Bearer "; any other
// format fails with invalid credentials.
func FromAuthHeader(header string) (string, error) {
	if !strings.HasPrefix(header, constants.BearerScheme) {
		return "", apperr.InvalidCredentials()
	}
	return header[len(constants.BearerScheme):], nil
}
