package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/introbot/chatbot-server/internal/model"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret", 24*time.Hour)

	tok, err := j.Generate(model.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.NoError(t, j.Verify(tok))
}

func TestJWT_Expired(t *testing.T) {
	j := NewJWT("secret", -time.Minute)

	tok, err := j.Generate(model.RoleAdmin)
	require.NoError(t, err)
	require.Error(t, j.Verify(tok))
}

func TestJWT_WrongSecret(t *testing.T) {
	issuer := NewJWT("secret", time.Hour)
	verifier := NewJWT("other", time.Hour)

	tok, err := issuer.Generate(model.RoleAdmin)
	require.NoError(t, err)
	require.Error(t, verifier.Verify(tok))
}

func TestJWT_Malformed(t *testing.T) {
	j := NewJWT("secret", time.Hour)

	require.Error(t, j.Verify(""))
	require.Error(t, j.Verify("not.a.token"))
}

func TestJWT_RoleClaimNotInspected(t *testing.T) {
	// The guard trusts any validly signed token regardless of its role
	// claim. A token carrying role=user must still verify.
	j := &JWT{secretKey: "secret", ttl: time.Hour}

	tok, err := j.Generate(model.RoleUser)
	require.NoError(t, err)
	require.NoError(t, j.Verify(tok))
}

func TestJWT_RejectsNonHMAC(t *testing.T) {
	j := NewJWT("secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Role: "admin"})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	require.Error(t, j.Verify(tok))
}
