package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/introprep/assay/internal/assay/domain"
	"github.com/introprep/assay/internal/assay/service"
	"github.com/introprep/assay/pkg/assaysdk"
	"github.com/introprep/assay/pkg/httpx"
	"github.com/introprep/assay/pkg/slogx"
)

// RecordsHandler serves record creation, listing and detail lookup for the
// authenticated user.
type RecordsHandler struct {
	RecordService *service.RecordService
}

// HandleSave creates a record owned by the authenticated user. The grade is
// assigned server-side from the score.
func (h *RecordsHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	ownerID := httpx.UserIDFromContext(ctx)

	var req assaysdk.SaveAssayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		assaysdk.ErrInvalidRequest.WriteError(w)
		return
	}

	input := service.SaveRecordInput{
		Title:             req.Title,
		Score:             req.Score,
		Job:               req.Job,
		State:             req.State,
		QAPairs:           toDomainQA(req.QAPairs),
		EvaluationDetails: req.EvaluationDetails,
	}

	record, err := h.RecordService.Save(ctx, ownerID, input)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			assaysdk.ErrInvalidRequest.WriteError(w)
			return
		}
		log.Error("failed to save record", "err", err)
		assaysdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAssayResponse(record))
}

// HandleList returns every record owned by the authenticated user, newest
// first.
func (h *RecordsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	ownerID := httpx.UserIDFromContext(ctx)

	records, err := h.RecordService.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Error("failed to list records", "err", err)
		assaysdk.ErrServerError.WriteError(w)
		return
	}

	resp := assaysdk.ListAssaysResponse{
		Records: make([]assaysdk.AssayResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, toAssayResponse(rec))
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleDetail returns one record by ID. A record owned by someone else is
// indistinguishable from a missing one.
func (h *RecordsHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	ownerID := httpx.UserIDFromContext(ctx)

	recordID, err := strconv.ParseInt(r.PathValue("record_id"), 10, 64)
	if err != nil {
		assaysdk.ErrInvalidRequest.WriteError(w)
		return
	}

	record, err := h.RecordService.GetDetail(ctx, recordID, ownerID)
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			assaysdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("failed to load record", "err", err, "record_id", recordID)
		assaysdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAssayResponse(record))
}

func toDomainQA(pairs []assaysdk.QuestionAnswer) []domain.QuestionAnswer {
	out := make([]domain.QuestionAnswer, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, domain.QuestionAnswer{Question: p.Question, Answer: p.Answer})
	}
	return out
}

func toAssayResponse(rec domain.Record) assaysdk.AssayResponse {
	qa := make([]assaysdk.QuestionAnswer, 0, len(rec.QAPairs))
	for _, p := range rec.QAPairs {
		qa = append(qa, assaysdk.QuestionAnswer{Question: p.Question, Answer: p.Answer})
	}

	details := rec.EvaluationDetails
	if details == nil {
		details = []map[string]any{}
	}

	return assaysdk.AssayResponse{
		RecordID:          rec.ID,
		UserID:            rec.OwnerID,
		CreatedAt:         rec.CreatedAt.Format(time.RFC3339),
		Title:             rec.Title,
		Score:             rec.Score,
		Grade:             rec.Grade,
		Job:               rec.Job,
		State:             rec.State,
		QAPairs:           qa,
		EvaluationDetails: details,
	}
}
