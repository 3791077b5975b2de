package store

import (
	"context"
	"errors"
	"time"

	"github.com/introprep/assay/internal/assay/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Records() Records

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: rollback when fn returns an
	// error, commit otherwise. This is the recommended way to handle
	// multi-step operations like check-then-insert on signup.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUser returns the identity with the given id (the login email).
	GetUser(ctx context.Context, id string) (domain.Identity, error)

	// ExistsUser reports whether an identity with the given id exists.
	ExistsUser(ctx context.Context, id string) (bool, error)

	// CreateUser inserts a new identity. The id is the primary key; a
	// conflicting insert returns ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.Identity) error
}

// RecordRow is the flat persisted shape of a record: the QA list and the
// evaluation payload are already encoded into single text columns. The
// service layer owns the encoding; the store never interprets these fields.
type RecordRow struct {
	ID          int64
	OwnerID     string
	CreatedAt   time.Time
	Title       string
	Score       float64
	Grade       string
	Job         string
	State       string
	Questions   string
	Answers     string
	DetailsJSON string
}

type Records interface {
	// CreateRecord inserts a new row and returns the assigned record id.
	CreateRecord(ctx context.Context, row RecordRow) (int64, error)

	// ListByOwner returns all rows owned by owner, newest first, ties
	// broken by descending record id.
	ListByOwner(ctx context.Context, owner string) ([]RecordRow, error)

	// GetRecord returns the row with the given id if owner owns it.
	// A foreign-owned id returns ErrNotFound, same as a missing one.
	GetRecord(ctx context.Context, id int64, owner string) (RecordRow, error)
}
