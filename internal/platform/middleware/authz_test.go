// Copyright (c) 2026 audio-server. All rights reserved.

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mfungorn/audio-server/internal/platform/ctxutil"
	"github.com/Mfungorn/audio-server/internal/platform/middleware"
	"github.com/Mfungorn/audio-server/internal/platform/sec"
)

// gateRequest runs a request through RequireRole(required) with the given
// claims (nil means anonymous) and reports the resulting status plus whether
// the inner handler ran.
func gateRequest(t *testing.T, required sec.Role, claims *sec.AuthClaims) (int, bool) {
	t.Helper()

	handlerRan := false
	gate := middleware.RequireRole(required)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		handlerRan = true
		writer.WriteHeader(http.StatusOK)
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	if claims != nil {
		request = request.WithContext(ctxutil.WithPrincipal(request.Context(), claims))
	}

	recorder := httptest.NewRecorder()
	gate.ServeHTTP(recorder, request)
	return recorder.Code, handlerRan
}

/*
TestRequireRole_ExactMatch verifies that role gates demand an exact role.

Customer and manager identifiers come from independent tables, so an ADMIN
token clearing a USER gate would resolve the manager's id against the
customer table. The gate must treat the two roles as disjoint.
*/
func TestRequireRole_ExactMatch(t *testing.T) {
	userClaims := &sec.AuthClaims{PrincipalID: 1, Role: string(sec.RoleUser)}
	adminClaims := &sec.AuthClaims{PrincipalID: 1, Role: string(sec.RoleAdmin)}

	tests := []struct {
		name       string
		required   sec.Role
		claims     *sec.AuthClaims
		wantStatus int
		wantRan    bool
	}{
		{"user_passes_user_gate", sec.RoleUser, userClaims, http.StatusOK, true},
		{"admin_passes_admin_gate", sec.RoleAdmin, adminClaims, http.StatusOK, true},
		{"admin_rejected_by_user_gate", sec.RoleUser, adminClaims, http.StatusForbidden, false},
		{"user_rejected_by_admin_gate", sec.RoleAdmin, userClaims, http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ran := gateRequest(t, tt.required, tt.claims)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantRan, ran)
		})
	}
}

/*
TestRequireRole_AnonymousIs401 verifies that a missing principal is rejected
as unauthenticated before any role comparison happens.
*/
func TestRequireRole_AnonymousIs401(t *testing.T) {
	status, ran := gateRequest(t, sec.RoleUser, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, ran)
}
