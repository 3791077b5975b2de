package sqlite

import (
	"context"
	"fmt"

	"github.com/introprep/assay/internal/assay/store"
)

type recordsRepo struct {
	db dbtx
}

func (r *recordsRepo) CreateRecord(ctx context.Context, row store.RecordRow) (int64, error) {
	const query = `
		INSERT INTO records (owner_id, created_at, title, score, grade, job, state, questions, answers, details_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		row.OwnerID,
		row.CreatedAt,
		row.Title,
		row.Score,
		row.Grade,
		row.Job,
		row.State,
		row.Questions,
		row.Answers,
		row.DetailsJSON,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get record id: %w", err)
	}
	return id, nil
}

func (r *recordsRepo) ListByOwner(ctx context.Context, owner string) ([]store.RecordRow, error) {
	const query = `
		SELECT id, owner_id, created_at, title, score, grade, job, state, questions, answers, details_json
		FROM records
		WHERE owner_id = ?
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var out []store.RecordRow
	for rows.Next() {
		var row store.RecordRow
		if err := rows.Scan(
			&row.ID,
			&row.OwnerID,
			&row.CreatedAt,
			&row.Title,
			&row.Score,
			&row.Grade,
			&row.Job,
			&row.State,
			&row.Questions,
			&row.Answers,
			&row.DetailsJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetRecord scopes the lookup by both id and owner in a single query so a
// foreign-owned record is indistinguishable from a missing one.
func (r *recordsRepo) GetRecord(ctx context.Context, id int64, owner string) (store.RecordRow, error) {
	const query = `
		SELECT id, owner_id, created_at, title, score, grade, job, state, questions, answers, details_json
		FROM records
		WHERE id = ? AND owner_id = ?
	`

	var row store.RecordRow
	err := r.db.QueryRowContext(ctx, query, id, owner).Scan(
		&row.ID,
		&row.OwnerID,
		&row.CreatedAt,
		&row.Title,
		&row.Score,
		&row.Grade,
		&row.Job,
		&row.State,
		&row.Questions,
		&row.Answers,
		&row.DetailsJSON,
	)
	if err != nil {
		return store.RecordRow{}, mapNotFound(err)
	}
	return row, nil
}
