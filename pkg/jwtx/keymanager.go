package jwtx

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/introprep/assay/pkg/cryptox"
)

// KeyManager owns the signing key and the matching verification KeySet for
// an instance. Keys are ephemeral: generated at startup, never persisted, so
// every session token is invalidated by a restart. There is no revocation
// list, which makes this the whole key lifecycle.
type KeyManager struct {
	Signer   Signer
	Verifier Verifier
	KeySet   *KeySet
}

// KeyManagerOptions configures an ephemeral KeyManager.
type KeyManagerOptions struct {
	// Issuer is the issuer claim (iss) validated in tokens. Required.
	Issuer string
}

// NewEphemeralKeyManager generates a fresh Ed25519 keypair in memory and
// wires up the signer, verifier and KeySet around it.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	kid, err := generateKeyID()
	if err != nil {
		return nil, fmt.Errorf("jwtx: failed to generate key ID: %w", err)
	}

	pemKey, err := cryptox.GenerateEd25519Key()
	if err != nil {
		return nil, fmt.Errorf("jwtx: failed to generate key: %w", err)
	}

	signer, err := NewSignerEdDSA(kid, pemKey)
	if err != nil {
		return nil, fmt.Errorf("jwtx: failed to create signer: %w", err)
	}

	keyset := NewKeySet()
	if err := keyset.AddSigner(signer); err != nil {
		return nil, fmt.Errorf("jwtx: failed to add signer to keyset: %w", err)
	}

	return &KeyManager{
		Signer:   signer,
		Verifier: NewVerifierEdDSA(keyset, opts.Issuer),
		KeySet:   keyset,
	}, nil
}

func generateKeyID() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return "assay-" + hex.EncodeToString(b[:]), nil
}
