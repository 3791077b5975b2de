package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/introprep/assay/internal/assay/domain"
	"github.com/introprep/assay/internal/assay/store"
	"github.com/introprep/assay/pkg/cryptox"
	"github.com/introprep/assay/pkg/jwtx"
	"github.com/introprep/assay/pkg/slogx"
)

var (
	ErrValidation   = errors.New("validation_failed")
	ErrDuplicateID  = errors.New("duplicate_user_id")
	ErrUserNotFound = errors.New("user_not_found")
	ErrBadCredential = errors.New("bad_credential")
)

// AuthService handles signup and login. Passwords only ever exist here as
// plaintext parameters; they are hashed before anything touches the store
// and never logged.
type AuthService struct {
	Store     store.Store
	Signer    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
}

// SignUp registers a new identity. The user ID is the login handle and is
// immutable afterwards: an existing ID always fails with ErrDuplicateID and
// is never overwritten.
func (s *AuthService) SignUp(ctx context.Context, userID, password, displayName string) (domain.Identity, error) {
	log := slogx.FromContext(ctx)

	userID = strings.TrimSpace(userID)
	displayName = strings.TrimSpace(displayName)
	if userID == "" || password == "" || displayName == "" {
		return domain.Identity{}, ErrValidation
	}

	// Hash before opening the transaction; the KDF is deliberately slow.
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("hash password: %w", err)
	}

	identity := domain.Identity{
		ID:           userID,
		PasswordHash: hash,
		DisplayName:  displayName,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		exists, err := tx.Users().ExistsUser(ctx, userID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateID
		}
		return tx.Users().CreateUser(ctx, identity)
	})
	if err != nil {
		// The check-then-insert is not atomic against a concurrent signup;
		// the unique key is the authoritative backstop and surfaces the
		// same way as the check.
		if errors.Is(err, store.ErrAlreadyExists) || errors.Is(err, ErrDuplicateID) {
			return domain.Identity{}, ErrDuplicateID
		}
		return domain.Identity{}, fmt.Errorf("create identity: %w", err)
	}

	log.Info("identity created", "user_id", identity.ID)
	return identity, nil
}

// Login verifies the password for userID and mints a session token.
// ErrUserNotFound and ErrBadCredential are distinct here so callers can
// count them separately, but the HTTP boundary presents them identically to
// avoid user enumeration.
func (s *AuthService) Login(ctx context.Context, userID, password string) (domain.Session, error) {
	log := slogx.FromContext(ctx)

	userID = strings.TrimSpace(userID)
	if userID == "" || password == "" {
		return domain.Session{}, ErrValidation
	}

	identity, err := s.Store.Users().GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrUserNotFound
		}
		return domain.Session{}, fmt.Errorf("load identity: %w", err)
	}

	if err := cryptox.VerifyPassword(password, identity.PasswordHash); err != nil {
		log.Info("login password mismatch", "user_id", userID)
		return domain.Session{}, ErrBadCredential
	}

	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewSessionClaims(identity.ID, identity.DisplayName, s.Issuer, ttl, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.Session{}, fmt.Errorf("sign session token: %w", err)
	}

	return domain.Session{
		Token:       token,
		UserID:      identity.ID,
		DisplayName: identity.DisplayName,
	}, nil
}
