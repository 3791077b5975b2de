package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/introprep/assay/internal/assay/codec"
	"github.com/introprep/assay/internal/assay/domain"
	"github.com/introprep/assay/internal/assay/store"
	"github.com/introprep/assay/pkg/slogx"
)

var ErrRecordNotFound = errors.New("record_not_found")

// SaveRecordInput carries everything the client supplies for a new record.
// There is deliberately no grade field: the grade is derived from the score
// on the server, so a client-supplied value cannot leak into storage.
type SaveRecordInput struct {
	Title             string
	Score             float64
	Job               string
	State             string
	QAPairs           []domain.QuestionAnswer
	EvaluationDetails []map[string]any
}

// RecordService orchestrates record creation and retrieval. All lookups are
// scoped to the owning user.
type RecordService struct {
	Store store.Store
}

// Save encodes, grades and persists a new record for owner, then returns the
// record materialized by decoding what was just encoded, so a save and a
// later fetch produce structurally identical results.
func (s *RecordService) Save(ctx context.Context, ownerID string, input SaveRecordInput) (domain.Record, error) {
	if ownerID == "" || strings.TrimSpace(input.Title) == "" {
		return domain.Record{}, ErrValidation
	}

	questions, answers, err := codec.EncodeQA(input.QAPairs)
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	details, err := codec.EncodeDetails(input.EvaluationDetails)
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	row := store.RecordRow{
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC().Truncate(time.Minute),
		Title:       strings.TrimSpace(input.Title),
		Score:       input.Score,
		Grade:       codec.ClassifyScore(input.Score),
		Job:         input.Job,
		State:       input.State,
		Questions:   questions,
		Answers:     answers,
		DetailsJSON: details,
	}

	id, err := s.Store.Records().CreateRecord(ctx, row)
	if err != nil {
		return domain.Record{}, fmt.Errorf("insert record: %w", err)
	}
	row.ID = id

	slogx.FromContext(ctx).Info("record saved",
		"record_id", id,
		"owner_id", ownerID,
		"qa_pairs", len(input.QAPairs),
		"grade", row.Grade,
	)

	return s.materialize(ctx, row), nil
}

// ListByOwner returns all of owner's records, newest first, ties broken by
// descending record id.
func (s *RecordService) ListByOwner(ctx context.Context, ownerID string) ([]domain.Record, error) {
	rows, err := s.Store.Records().ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, s.materialize(ctx, row))
	}
	return records, nil
}

// GetDetail fetches one record scoped by both record id and owner. A record
// owned by someone else fails with ErrRecordNotFound exactly like a missing
// one; no ownership mismatch is ever leaked.
func (s *RecordService) GetDetail(ctx context.Context, recordID int64, ownerID string) (domain.Record, error) {
	row, err := s.Store.Records().GetRecord(ctx, recordID, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Record{}, ErrRecordNotFound
		}
		return domain.Record{}, fmt.Errorf("load record: %w", err)
	}

	return s.materialize(ctx, row), nil
}

// materialize decodes a flat row into its structured form. Decode problems
// are integrity warnings, not failures: the record is still returned with
// whatever could be paired, and the warning goes to the request logger.
func (s *RecordService) materialize(ctx context.Context, row store.RecordRow) domain.Record {
	log := slogx.FromContext(ctx)

	pairs, mismatch := codec.DecodeQA(row.Questions, row.Answers)
	if mismatch {
		log.Warn("record question/answer count mismatch, truncating",
			"record_id", row.ID,
			"owner_id", row.OwnerID,
		)
	}

	details, ok := codec.DecodeDetails(row.DetailsJSON)
	if !ok {
		log.Warn("record evaluation details malformed, dropping",
			"record_id", row.ID,
			"owner_id", row.OwnerID,
		)
	}

	return domain.Record{
		ID:                row.ID,
		OwnerID:           row.OwnerID,
		CreatedAt:         row.CreatedAt,
		Title:             row.Title,
		Score:             row.Score,
		Grade:             row.Grade,
		Job:               row.Job,
		State:             row.State,
		QAPairs:           pairs,
		EvaluationDetails: details,
	}
}
