package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	principal *domain.Principal
	err       error
}

func (f *fakeVerifier) Verify(token string) (*domain.Principal, error) {
	return f.principal, f.err
}

func TestRequireAuth(t *testing.T) {
	admin := &domain.Principal{UID: "u-1", Email: "admin@example.com", Role: domain.RoleAdmin}

	tests := []struct {
		name       string
		authHeader string
		verifier   *fakeVerifier
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "valid token",
			authHeader: "Bearer good-token",
			verifier:   &fakeVerifier{principal: admin},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			verifier:   &fakeVerifier{principal: admin},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic abc123",
			verifier:   &fakeVerifier{principal: admin},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token",
			authHeader: "Bearer ",
			verifier:   &fakeVerifier{principal: admin},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "verifier rejects token",
			authHeader: "Bearer bad-token",
			verifier:   &fakeVerifier{err: errors.New("signature mismatch")},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			handler := RequireAuth(tt.verifier)(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				principal, ok := PrincipalFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, "u-1", principal.UID)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/events", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		principal  *domain.Principal
		allowed    []string
		wantStatus int
	}{
		{
			name:       "role allowed",
			principal:  &domain.Principal{UID: "u-1", Role: domain.RoleAdmin},
			allowed:    []string{domain.RoleAdmin, domain.RoleOrganizer},
			wantStatus: http.StatusOK,
		},
		{
			name:       "role denied",
			principal:  &domain.Principal{UID: "u-2", Role: domain.RoleUser},
			allowed:    []string{domain.RoleAdmin},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "empty role defaults to user",
			principal:  &domain.Principal{UID: "u-3"},
			allowed:    []string{domain.RoleUser},
			wantStatus: http.StatusOK,
		},
		{
			name:       "no principal",
			allowed:    []string{domain.RoleAdmin},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireRole(tt.allowed...)(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodDelete, "/events/ev-1", nil)
			if tt.principal != nil {
				req = req.WithContext(SetPrincipal(req.Context(), tt.principal))
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
