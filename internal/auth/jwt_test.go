package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airscope/airscope/internal/auth"
)

const testKey = "test-secret-key-for-testing-only"

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := auth.NewTokenService(auth.TokenConfig{SigningKey: testKey})

	token, expiresAt, err := svc.Issue("ops@airscope", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(auth.DefaultTokenTTL), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@airscope", claims.Subject)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
	assert.Equal(t, auth.DefaultIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenService_InvalidToken(t *testing.T) {
	svc := auth.NewTokenService(auth.TokenConfig{SigningKey: testKey})

	for _, token := range []string{"", "not.a.valid.jwt", "xxx.yyy.zzz"} {
		_, err := svc.Validate(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken, "token %q", token)
	}
}

func TestTokenService_Expired(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	svc := auth.NewTokenService(auth.TokenConfig{SigningKey: testKey, Clock: clock})

	token, _, err := svc.Issue("ops", 10*time.Minute)
	require.NoError(t, err)

	clock.Advance(11 * time.Minute)
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestTokenService_Mismatches(t *testing.T) {
	issuer := auth.NewTokenService(auth.TokenConfig{SigningKey: "key-one"})
	token, _, err := issuer.Issue("ops", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name string
		cfg  auth.TokenConfig
	}{
		{"signing key", auth.TokenConfig{SigningKey: "key-two"}},
		{"issuer", auth.TokenConfig{SigningKey: "key-one", Issuer: "someone-else"}},
		{"audience", auth.TokenConfig{SigningKey: "key-one", Audience: "airscope-public"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.NewTokenService(tt.cfg).Validate(token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestTokenService_RequiresAdminRole(t *testing.T) {
	now := time.Now()
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    auth.DefaultIssuer,
			Audience:  jwt.ClaimStrings{auth.DefaultAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Role: "viewer",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	require.NoError(t, err)

	_, err = auth.NewTokenService(auth.TokenConfig{SigningKey: testKey}).Validate(token)
	assert.ErrorIs(t, err, auth.ErrForbiddenRole)
}

func TestTokenService_Disabled(t *testing.T) {
	svc := auth.NewTokenService(auth.TokenConfig{})
	assert.False(t, svc.Enabled())

	_, _, err := svc.Issue("ops", time.Hour)
	assert.ErrorIs(t, err, auth.ErrNoSigningKey)
	_, err = svc.Validate("anything")
	assert.ErrorIs(t, err, auth.ErrNoSigningKey)
}
