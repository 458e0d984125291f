package identity

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("0123456789abcdef0123456789abcdef")

func TestIssueAndParse(t *testing.T) {
	tok, err := Issue(secret, "alice", time.Hour)
	require.NoError(t, err)

	id, err := Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", id.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), id.ExpiresAt, 5*time.Second)
}

func TestParseRejects(t *testing.T) {
	expired, err := Issue(secret, "alice", -time.Minute)
	require.NoError(t, err)

	wrongKey, err := Issue([]byte("another-secret-another-secret-xx"), "alice", time.Hour)
	require.NoError(t, err)

	noSubject, err := Issue(secret, "", time.Hour)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  Issuer,
		Subject: "alice",
	}).SignedString(secret)
	require.NoError(t, err)

	otherIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(secret)
	require.NoError(t, err)

	tests := map[string]string{
		"expired":      expired,
		"wrong key":    wrongKey,
		"no subject":   noSubject,
		"no expiry":    noExpiry,
		"other issuer": otherIssuer,
		"garbage":      "not.a.token",
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(secret, tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestMissingSecret(t *testing.T) {
	_, err := Issue(nil, "alice", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = Parse(nil, "x")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	_, ok := Get(ctx)
	assert.False(t, ok)
	assert.Equal(t, "anonymous", Subject(ctx))

	id := (&Identity{Subject: "bob"}).WithRemoteIP(net.ParseIP("10.0.0.5"))
	ctx = Set(ctx, id)

	got, ok := Get(ctx)
	require.True(t, ok)
	assert.Equal(t, "10.0.0.5", got.ClientIP())
	assert.Equal(t, "bob", Subject(ctx))

	var nilID *Identity
	assert.Equal(t, "", nilID.ClientIP())
}
