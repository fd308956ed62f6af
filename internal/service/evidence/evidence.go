package evidence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/auth"
	"github.com/heartmarshall/precinct-records/internal/domain"
	"github.com/heartmarshall/precinct-records/pkg/ctxutil"
)

type custodyEntry struct {
	Action string    `json:"action"`
	By     uuid.UUID `json:"by"`
	At     time.Time `json:"at"`
}

// List returns evidence newest upload first.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.Evidence, error) {
	if _, err := auth.Require(ctx, domain.RoleInvestigator); err != nil {
		return nil, err
	}

	var f domain.EvidenceFilter
	if q := strings.TrimSpace(in.Search); q != "" {
		f.Search = &q
	}
	f.CaseID = in.CaseID

	key := domain.CacheKey(f.Search, f.CaseID)
	if cached, ok := s.lists.Get(key); ok {
		return cached, nil
	}

	out, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("evidence.List: %w", err)
	}

	s.lists.Set(key, out)
	return out, nil
}

// Get returns one evidence record.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Evidence, error) {
	if _, err := auth.Require(ctx, domain.RoleInvestigator); err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("evidence.Get: %w", err)
	}
	return e, nil
}

// Upload stores the file under "<uuid>_<filename>" and then inserts its
// metadata row. If the insert fails the stored object is left in place.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*domain.Evidence, error) {
	actor, err := auth.Require(ctx, domain.RoleInvestigator)
	if err != nil {
		return nil, err
	}
	if err := in.validate(s.maxBytes); err != nil {
		return nil, err
	}

	filename := cleanFilename(in.Filename)
	storagePath := uuid.NewString() + "_" + filename
	contentType := in.contentType()

	if err := s.store.Upload(ctx, ctxutil.AccessTokenFromCtx(ctx), storagePath, contentType, in.Size, in.Body); err != nil {
		return nil, fmt.Errorf("evidence.Upload: store: %w", err)
	}

	custody := in.ChainOfCustody
	if len(custody) == 0 {
		custody, err = json.Marshal([]custodyEntry{{Action: "uploaded", By: actor.ID, At: s.now().UTC()}})
		if err != nil {
			return nil, fmt.Errorf("evidence.Upload: custody: %w", err)
		}
	}

	rec, err := s.repo.Create(ctx, domain.Evidence{
		CaseID:         in.CaseID,
		Filename:       filename,
		StoragePath:    storagePath,
		Size:           in.Size,
		Type:           contentType,
		Description:    in.Description,
		Tags:           in.Tags,
		ChainOfCustody: custody,
		UploadedBy:     actor.ID,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "evidence row insert failed after upload",
			slog.String("storage_path", storagePath),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("evidence.Upload: record: %w", err)
	}

	s.lists.Purge()
	details := map[string]any{
		"evidence_id": rec.ID.String(),
		"filename":    rec.Filename,
		"size":        rec.Size,
	}
	if rec.CaseID != nil {
		details["case_id"] = rec.CaseID.String()
	}
	s.audit.Log(ctx, domain.AuditActionEvidenceUploaded, details)

	return rec, nil
}
