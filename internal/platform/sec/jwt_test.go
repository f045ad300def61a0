// Copyright (c) 2026 audio-server. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mfungorn/audio-server/internal/platform/apperr"
	"github.com/Mfungorn/audio-server/internal/platform/sec"
)

func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("unit-test-secret", time.Hour)
	require.NoError(t, err)

	token, err := service.IssueToken(42, "user@example.com", string(sec.RoleUser))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.PrincipalID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

/*
TestTokenService_Expiry pins down expiration with an injected clock instead
of sleeping: the same token flips from valid to TOKEN_EXPIRED as the clock
moves past the TTL.
*/
func TestTokenService_Expiry(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	currentTime := issuedAt

	service, err := sec.NewTokenService("unit-test-secret", time.Hour)
	require.NoError(t, err)
	service.WithClock(func() time.Time { return currentTime })

	token, err := service.IssueToken(7, "user@example.com", string(sec.RoleUser))
	require.NoError(t, err)

	// Within the TTL the token parses fine.
	currentTime = issuedAt.Add(30 * time.Minute)
	_, err = service.ParseToken(token)
	require.NoError(t, err)

	// Past the TTL it fails with the dedicated code.
	currentTime = issuedAt.Add(2 * time.Hour)
	_, err = service.ParseToken(token)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "TOKEN_EXPIRED", appError.Code)
	assert.Equal(t, 401, appError.HTTPStatus)

	assert.False(t, service.ValidateToken(token))
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	issuer, err := sec.NewTokenService("secret-one", time.Hour)
	require.NoError(t, err)
	verifier, err := sec.NewTokenService("secret-two", time.Hour)
	require.NoError(t, err)

	token, err := issuer.IssueToken(1, "user@example.com", string(sec.RoleUser))
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	require.Error(t, err)
	assert.False(t, verifier.ValidateToken(token))
}

func TestTokenService_RejectsMalformedToken(t *testing.T) {
	service, err := sec.NewTokenService("unit-test-secret", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"truncated", "eyJhbGciOiJIUzUxMiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, service.ValidateToken(tt.token))
		})
	}
}

func TestFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid_bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing_scheme", "abc.def.ghi", "", true},
		{"wrong_scheme", "Basic abc", "", true},
		{"lowercase_scheme", "bearer abc", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := sec.FromAuthHeader(tt.header)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, 401, apperr.As(err).HTTPStatus)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, token)
			}
		})
	}
}

func TestRole_Is(t *testing.T) {
	assert.True(t, sec.RoleAdmin.Is(sec.RoleAdmin))
	assert.True(t, sec.RoleUser.Is(sec.RoleUser))

	// Roles are disjoint, not ordered: neither role satisfies the other.
	assert.False(t, sec.RoleAdmin.Is(sec.RoleUser))
	assert.False(t, sec.RoleUser.Is(sec.RoleAdmin))
}
