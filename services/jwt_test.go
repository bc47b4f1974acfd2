package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(now time.Time) *JWTService {
	svc := NewJWTService([]byte("test-secret"), "test-issuer", time.Hour)
	svc.Now = func() time.Time { return now }
	return svc
}

func TestJWT_RoundTrip(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(issuedAt)

	token, err := svc.GenerateToken("a@x.com")
	require.NoError(t, err)

	subject, err := svc.VerifySubject(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestJWT_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestJWTService(issuedAt)
	token, err := issuer.GenerateToken("a@x.com")
	require.NoError(t, err)

	tests := []struct {
		name  string
		at    time.Time
		valid bool
	}{
		{"just before expiry", issuedAt.Add(time.Hour - time.Second), true},
		{"at expiry", issuedAt.Add(time.Hour), false},
		{"after expiry", issuedAt.Add(2 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := newTestJWTService(tt.at)
			subject, err := verifier.VerifySubject(token)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, "a@x.com", subject)
			} else {
				assert.Error(t, err)
				assert.Empty(t, subject)
			}
		})
	}
}

func TestJWT_TamperedToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(now)
	token, err := svc.GenerateToken("a@x.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.VerifySubject(tampered)
	assert.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestJWTService(now)
	token, err := issuer.GenerateToken("a@x.com")
	require.NoError(t, err)

	verifier := NewJWTService([]byte("other-secret"), "test-issuer", time.Hour)
	verifier.Now = func() time.Time { return now }
	_, err = verifier.VerifySubject(token)
	assert.Error(t, err)
}

func TestJWT_Garbage(t *testing.T) {
	svc := newTestJWTService(time.Now())
	_, err := svc.VerifySubject("not-a-token")
	assert.Error(t, err)
}
