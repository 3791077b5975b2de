package jwtx_test

import (
	"testing"
	"time"

	"github.com/introprep/assay/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *jwtx.KeyManager {
	t.Helper()
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "assay-test"})
	require.NoError(t, err)
	return km
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()
	km := newManager(t)

	claims := jwtx.NewSessionClaims("alice@example.com", "Alice", "assay-test", time.Hour, time.Now())
	token, err := km.Signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := km.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", got.Subject)
	require.Equal(t, "Alice", got.DisplayName)
	require.Equal(t, "assay-test", got.Issuer)
	require.NotEmpty(t, got.ID)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	t.Parallel()

	// A token minted by one instance must not verify against another
	// instance's KeySet.
	km1 := newManager(t)
	km2 := newManager(t)

	claims := jwtx.NewSessionClaims("bob@example.com", "Bob", "assay-test", time.Hour, time.Now())
	token, err := km1.Signer.Sign(claims)
	require.NoError(t, err)

	_, err = km2.Verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()
	km := newManager(t)

	claims := jwtx.NewSessionClaims("carol@example.com", "Carol", "assay-test", time.Minute, time.Now().Add(-2*time.Hour))
	token, err := km.Signer.Sign(claims)
	require.NoError(t, err)

	_, err = km.Verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	t.Parallel()
	km := newManager(t)

	claims := jwtx.NewSessionClaims("dave@example.com", "Dave", "someone-else", time.Hour, time.Now())
	token, err := km.Signer.Sign(claims)
	require.NoError(t, err)

	_, err = km.Verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()
	km := newManager(t)

	_, err := km.Verifier.Verify("not.a.jwt")
	require.Error(t, err)
}

func TestKeySetPublishesJWKS(t *testing.T) {
	t.Parallel()
	km := newManager(t)

	require.True(t, km.KeySet.IsReady())

	jwks := km.KeySet.PublicJWKS()
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "OKP", jwks.Keys[0].Kty)
	require.Equal(t, "Ed25519", jwks.Keys[0].Crv)
	require.Equal(t, km.Signer.KID(), jwks.Keys[0].Kid)
}
