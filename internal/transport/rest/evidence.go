package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/domain"
	"github.com/heartmarshall/precinct-records/internal/service/evidence"
)

//go:generate moq -out evidence_service_mock_test.go -pkg rest . evidenceService

type evidenceService interface {
	List(ctx context.Context, in evidence.ListInput) ([]domain.Evidence, error)
	Get(ctx context.Context, evidenceID uuid.UUID) (*domain.Evidence, error)
	Upload(ctx context.Context, in evidence.UploadInput) (*domain.Evidence, error)
	MaxUploadBytes() int64
	URL(e domain.Evidence) string
}

// multipartMemory is how much of an upload is buffered in memory before
// spilling to a temporary file.
const multipartMemory = 8 << 20

// multipartOverhead allows for form fields and part headers on top of the
// file itself.
const multipartOverhead = 1 << 20

// EvidenceHandler serves /api/v1/evidence.
type EvidenceHandler struct {
	svc           evidenceService
	uploadTimeout time.Duration
	log           *slog.Logger
}

// NewEvidenceHandler creates an EvidenceHandler. uploadTimeout replaces the
// server's read and write deadlines while an upload is in flight; zero keeps
// the server defaults.
func NewEvidenceHandler(svc evidenceService, uploadTimeout time.Duration, logger *slog.Logger) *EvidenceHandler {
	return &EvidenceHandler{svc: svc, uploadTimeout: uploadTimeout, log: logger.With("handler", "evidence")}
}

// List handles GET /api/v1/evidence?q=&case_id=.
func (h *EvidenceHandler) List(w http.ResponseWriter, r *http.Request) {
	caseID, ok := queryUUID(w, r, "case_id")
	if !ok {
		return
	}

	items, err := h.svc.List(r.Context(), evidence.ListInput{
		Search: r.URL.Query().Get("q"),
		CaseID: caseID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, func(e domain.Evidence) evidenceResponse {
		return toEvidenceResponse(e, "")
	}))
}

// Get handles GET /api/v1/evidence/{id}. The response carries the public
// download URL.
func (h *EvidenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEvidenceResponse(*e, h.svc.URL(*e)))
}

// Upload handles POST /api/v1/evidence as multipart/form-data with a
// "file" part and optional case_id, description, tags and chain_of_custody
// fields. Tags may be repeated or comma separated.
func (h *EvidenceHandler) Upload(w http.ResponseWriter, r *http.Request) {
	h.extendDeadlines(w, r)

	maxBytes := h.svc.MaxUploadBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("file exceeds the %d MiB limit", maxBytes>>20))
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation failed",
			Fields: []fieldErrorResponse{{Field: "file", Message: "required"}},
		})
		return
	}
	defer file.Close()

	in := evidence.UploadInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
		Tags:        formTags(r.MultipartForm.Value["tags"]),
	}
	if in.CaseID, err = formUUID(r, "case_id"); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation failed",
			Fields: []fieldErrorResponse{{Field: "case_id", Message: "invalid id"}},
		})
		return
	}
	if d := strings.TrimSpace(r.FormValue("description")); d != "" {
		in.Description = &d
	}
	if c := strings.TrimSpace(r.FormValue("chain_of_custody")); c != "" {
		in.ChainOfCustody = json.RawMessage(c)
	}

	e, err := h.svc.Upload(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEvidenceResponse(*e, h.svc.URL(*e)))
}

// extendDeadlines lets a large body outlast the server-wide ReadTimeout and
// WriteTimeout, which are sized for JSON requests.
func (h *EvidenceHandler) extendDeadlines(w http.ResponseWriter, r *http.Request) {
	if h.uploadTimeout <= 0 {
		return
	}
	deadline := time.Now().Add(h.uploadTimeout)
	rc := http.NewResponseController(w)
	if err := rc.SetReadDeadline(deadline); err != nil && !errors.Is(err, http.ErrNotSupported) {
		h.log.WarnContext(r.Context(), "set upload read deadline", slog.String("error", err.Error()))
	}
	if err := rc.SetWriteDeadline(deadline); err != nil && !errors.Is(err, http.ErrNotSupported) {
		h.log.WarnContext(r.Context(), "set upload write deadline", slog.String("error", err.Error()))
	}
}

func formUUID(r *http.Request, name string) (*uuid.UUID, error) {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func formTags(values []string) []string {
	var tags []string
	for _, v := range values {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}
	return tags
}
