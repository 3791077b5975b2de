package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/introprep/assay/internal/assay/codec"
	"github.com/introprep/assay/internal/assay/domain"
	"github.com/introprep/assay/internal/assay/service"
	"github.com/introprep/assay/internal/assay/store"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, st store.Store, id string) {
	t.Helper()
	require.NoError(t, st.Users().CreateUser(context.Background(), domain.Identity{
		ID:           id,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdHNhbHRzYWx0c2Fs$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g",
		DisplayName:  "Test User",
		CreatedAt:    time.Now().UTC(),
	}))
}

func TestSaveThenGetDetailMatches(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "owner@example.com")
	records := &service.RecordService{Store: st}

	input := service.SaveRecordInput{
		Title: "Backend engineer application",
		Score: 72.5,
		Job:   "Backend engineer",
		State: "junior",
		QAPairs: []domain.QuestionAnswer{
			{Question: "Tell us about a project", Answer: "Built a billing pipeline."},
			{Question: "Why us?", Answer: "The team works in the open."},
		},
		EvaluationDetails: []map[string]any{
			{"question_no": float64(1), "matched_keywords": "pipeline, billing", "score": 70.0},
			{"question_no": float64(2), "matched_keywords": "culture", "score": 75.0},
		},
	}

	saved, err := records.Save(ctx, "owner@example.com", input)
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	require.Equal(t, "owner@example.com", saved.OwnerID)
	require.Equal(t, codec.GradeAdequate, saved.Grade)
	require.Zero(t, saved.CreatedAt.Second())
	require.Zero(t, saved.CreatedAt.Nanosecond())

	fetched, err := records.GetDetail(ctx, saved.ID, "owner@example.com")
	require.NoError(t, err)

	// A save and a later fetch are structurally identical.
	require.Equal(t, saved.Title, fetched.Title)
	require.Equal(t, saved.Score, fetched.Score)
	require.Equal(t, saved.Grade, fetched.Grade)
	require.Equal(t, saved.Job, fetched.Job)
	require.Equal(t, saved.State, fetched.State)
	require.Equal(t, saved.QAPairs, fetched.QAPairs)
	require.Equal(t, saved.EvaluationDetails, fetched.EvaluationDetails)
	require.True(t, saved.CreatedAt.Equal(fetched.CreatedAt))
}

func TestSaveGradeIsRecomputedFromScore(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "owner@example.com")
	records := &service.RecordService{Store: st}

	tests := []struct {
		score float64
		want  string
	}{
		{85, codec.GradeExcellent},
		{60, codec.GradeAdequate},
		{40, codec.GradeNeedsWork},
		{12, codec.GradeInsufficient},
	}

	for _, tt := range tests {
		saved, err := records.Save(ctx, "owner@example.com", service.SaveRecordInput{
			Title: "Graded",
			Score: tt.score,
		})
		require.NoError(t, err)
		require.Equal(t, tt.want, saved.Grade, "score %v", tt.score)
	}
}

func TestSaveRejectsSentinelInInput(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "owner@example.com")
	records := &service.RecordService{Store: st}

	_, err := records.Save(ctx, "owner@example.com", service.SaveRecordInput{
		Title: "Sneaky",
		QAPairs: []domain.QuestionAnswer{
			{Question: "What about ||| in text?", Answer: "Rejected."},
		},
	})
	require.ErrorIs(t, err, service.ErrValidation)
	require.ErrorIs(t, err, codec.ErrReservedSequence)

	// Nothing was persisted.
	rows, err := records.ListByOwner(ctx, "owner@example.com")
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestSaveValidatesTitle(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "owner@example.com")
	records := &service.RecordService{Store: st}

	_, err := records.Save(ctx, "owner@example.com", service.SaveRecordInput{Title: "  "})
	require.ErrorIs(t, err, service.ErrValidation)
}

func TestGetDetailOwnerScoping(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "owner@example.com")
	seedUser(t, st, "other@example.com")
	records := &service.RecordService{Store: st}

	saved, err := records.Save(ctx, "owner@example.com", service.SaveRecordInput{
		Title: "Private",
		Score: 50,
	})
	require.NoError(t, err)

	// Someone else's record id behaves exactly like a missing one.
	_, err = records.GetDetail(ctx, saved.ID, "other@example.com")
	require.ErrorIs(t, err, service.ErrRecordNotFound)

	_, err = records.GetDetail(ctx, saved.ID+999, "owner@example.com")
	require.ErrorIs(t, err, service.ErrRecordNotFound)

	// The owner still sees it.
	_, err = records.GetDetail(ctx, saved.ID, "owner@example.com")
	require.NoError(t, err)
}

func TestListByOwnerOrdering(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "owner@example.com")
	seedUser(t, st, "other@example.com")
	records := &service.RecordService{Store: st}

	// Insert rows with controlled timestamps to exercise both sort keys.
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for _, row := range []store.RecordRow{
		{OwnerID: "owner@example.com", CreatedAt: base, Title: "oldest", Grade: codec.GradeAdequate, Score: 60},
		{OwnerID: "owner@example.com", CreatedAt: base.Add(time.Minute), Title: "same-minute-a", Grade: codec.GradeAdequate, Score: 60},
		{OwnerID: "owner@example.com", CreatedAt: base.Add(time.Minute), Title: "same-minute-b", Grade: codec.GradeAdequate, Score: 60},
		{OwnerID: "other@example.com", CreatedAt: base.Add(2 * time.Minute), Title: "foreign", Grade: codec.GradeAdequate, Score: 60},
	} {
		_, err := st.Records().CreateRecord(ctx, row)
		require.NoError(t, err)
	}

	got, err := records.ListByOwner(ctx, "owner@example.com")
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first; the same-minute tie resolves by descending record id.
	require.Equal(t, "same-minute-b", got[0].Title)
	require.Equal(t, "same-minute-a", got[1].Title)
	require.Equal(t, "oldest", got[2].Title)
	require.Greater(t, got[0].ID, got[1].ID)
}

func TestGetDetailToleratesCorruptRow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "owner@example.com")
	records := &service.RecordService{Store: st}

	// A row with mismatched QA counts and broken details, as if written by
	// an older buggy client. Fetch still succeeds with best effort.
	id, err := st.Records().CreateRecord(ctx, store.RecordRow{
		OwnerID:     "owner@example.com",
		CreatedAt:   time.Now().UTC().Truncate(time.Minute),
		Title:       "corrupt",
		Score:       55,
		Grade:       codec.GradeNeedsWork,
		Questions:   "q1|||q2|||q3",
		Answers:     "a1|||a2",
		DetailsJSON: "{broken",
	})
	require.NoError(t, err)

	got, err := records.GetDetail(ctx, id, "owner@example.com")
	require.NoError(t, err)
	require.Len(t, got.QAPairs, 2)
	require.Empty(t, got.EvaluationDetails)
}
