package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/domain"
)

type identityResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type profileResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"fullName"`
	BadgeNumber *string   `json:"badgeNumber,omitempty"`
	Department  *string   `json:"department,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProfileResponse(p domain.Profile) profileResponse {
	return profileResponse{
		ID:          p.ID,
		Email:       p.Email,
		FullName:    p.FullName,
		BadgeNumber: p.BadgeNumber,
		Department:  p.Department,
		Role:        p.Role.String(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type caseResponse struct {
	ID                uuid.UUID  `json:"id"`
	CaseNumber        string     `json:"caseNumber"`
	Title             string     `json:"title"`
	Description       *string    `json:"description,omitempty"`
	Type              string     `json:"type"`
	Status            string     `json:"status"`
	Priority          *string    `json:"priority,omitempty"`
	AssignedOfficerID *uuid.UUID `json:"assignedOfficerId,omitempty"`
	CreatedBy         uuid.UUID  `json:"createdBy"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func toCaseResponse(c domain.Case) caseResponse {
	resp := caseResponse{
		ID:                c.ID,
		CaseNumber:        c.CaseNumber,
		Title:             c.Title,
		Description:       c.Description,
		Type:              c.Type,
		Status:            c.Status.String(),
		AssignedOfficerID: c.AssignedOfficerID,
		CreatedBy:         c.CreatedBy,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
	if c.Priority != nil {
		p := c.Priority.String()
		resp.Priority = &p
	}
	return resp
}

type incidentResponse struct {
	ID                uuid.UUID  `json:"id"`
	IncidentNumber    string     `json:"incidentNumber"`
	Title             string     `json:"title"`
	Description       *string    `json:"description,omitempty"`
	Type              string     `json:"type"`
	Priority          string     `json:"priority"`
	Status            string     `json:"status"`
	Location          string     `json:"location"`
	ReportedBy        *string    `json:"reportedBy,omitempty"`
	AssignedOfficerID *uuid.UUID `json:"assignedOfficerId,omitempty"`
	CaseID            *uuid.UUID `json:"caseId,omitempty"`
	CreatedBy         uuid.UUID  `json:"createdBy"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func toIncidentResponse(i domain.Incident) incidentResponse {
	return incidentResponse{
		ID:                i.ID,
		IncidentNumber:    i.IncidentNumber,
		Title:             i.Title,
		Description:       i.Description,
		Type:              i.Type,
		Priority:          i.Priority.String(),
		Status:            i.Status.String(),
		Location:          i.Location,
		ReportedBy:        i.ReportedBy,
		AssignedOfficerID: i.AssignedOfficerID,
		CaseID:            i.CaseID,
		CreatedBy:         i.CreatedBy,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}

type evidenceResponse struct {
	ID             uuid.UUID       `json:"id"`
	CaseID         *uuid.UUID      `json:"caseId,omitempty"`
	Filename       string          `json:"filename"`
	StoragePath    string          `json:"storagePath"`
	URL            string          `json:"url,omitempty"`
	Size           int64           `json:"size"`
	Type           string          `json:"type"`
	Description    *string         `json:"description,omitempty"`
	Tags           []string        `json:"tags"`
	ChainOfCustody json.RawMessage `json:"chainOfCustody,omitempty"`
	UploadedBy     uuid.UUID       `json:"uploadedBy"`
	UploadedAt     time.Time       `json:"uploadedAt"`
}

func toEvidenceResponse(e domain.Evidence, url string) evidenceResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return evidenceResponse{
		ID:             e.ID,
		CaseID:         e.CaseID,
		Filename:       e.Filename,
		StoragePath:    e.StoragePath,
		URL:            url,
		Size:           e.Size,
		Type:           e.Type,
		Description:    e.Description,
		Tags:           tags,
		ChainOfCustody: e.ChainOfCustody,
		UploadedBy:     e.UploadedBy,
		UploadedAt:     e.UploadedAt,
	}
}

type reportResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Type      string     `json:"type"`
	Content   *string    `json:"content,omitempty"`
	Status    string     `json:"status"`
	CaseID    *uuid.UUID `json:"caseId,omitempty"`
	CreatedBy uuid.UUID  `json:"createdBy"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toReportResponse(r domain.Report) reportResponse {
	return reportResponse{
		ID:        r.ID,
		Title:     r.Title,
		Type:      r.Type,
		Content:   r.Content,
		Status:    r.Status.String(),
		CaseID:    r.CaseID,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type auditEntryResponse struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"userId"`
	Action    string         `json:"action"`
	Context   map[string]any `json:"context,omitempty"`
	IPAddress *string        `json:"ipAddress,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

func toAuditEntryResponse(e domain.AuditEntry) auditEntryResponse {
	return auditEntryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		Action:    e.Action,
		Context:   e.Context,
		IPAddress: e.IPAddress,
		CreatedAt: e.CreatedAt,
	}
}

// mapSlice converts a list of domain values into response values. The
// result is never nil so empty lists encode as [].
func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
