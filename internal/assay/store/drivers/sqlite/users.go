package sqlite

import (
	"context"
	"fmt"

	"github.com/introprep/assay/internal/assay/domain"
)

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) GetUser(ctx context.Context, id string) (domain.Identity, error) {
	const query = `
		SELECT id, password_hash, display_name, created_at
		FROM users
		WHERE id = ?
	`

	var u domain.Identity
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID,
		&u.PasswordHash,
		&u.DisplayName,
		&u.CreatedAt,
	)
	if err != nil {
		return domain.Identity{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) ExistsUser(ctx context.Context, id string) (bool, error) {
	const query = `SELECT COUNT(1) FROM users WHERE id = ?`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.Identity) error {
	const query = `
		INSERT INTO users (id, password_hash, display_name, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.PasswordHash,
		u.DisplayName,
		u.CreatedAt,
	)
	if err != nil {
		return mapConflict(err)
	}
	return nil
}
