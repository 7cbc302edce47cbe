package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestJWTService_IssueThenVerify(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Issue("user-123")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_ExpiresAfterWindow(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewJWTService("test-secret", WithClock(clock.Now))

	token, err := svc.Issue("user-123")
	require.NoError(t, err)

	clock.Advance(23 * time.Hour)
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	clock.Advance(2 * time.Hour)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsCollapseToSingleError(t *testing.T) {
	svc := NewJWTService("test-secret")
	other := NewJWTService("other-secret")

	foreign, err := other.Issue("user-123")
	require.NoError(t, err)

	expiredSvc := NewJWTService("test-secret", WithClock(func() time.Time {
		return time.Now().Add(-48 * time.Hour)
	}))
	expired, err := expiredSvc.Issue("user-123")
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	valid, err := svc.Issue("user-123")
	require.NoError(t, err)
	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"different secret", foreign},
		{"expired", expired},
		{"none algorithm", noneAlg},
		{"tampered payload", tampered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Verify(tt.token)
			assert.Nil(t, claims)
			assert.Equal(t, ErrInvalidToken, err)
		})
	}
}

func TestJWTService_RejectsTokenWithoutUserID(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Issue("")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_WithExpiry(t *testing.T) {
	svc := NewJWTService("s", WithExpiry(time.Hour))
	assert.Equal(t, time.Hour, svc.Expiry())

	svc = NewJWTService("s", WithExpiry(0))
	assert.Equal(t, DefaultTokenExpiry, svc.Expiry())
}
