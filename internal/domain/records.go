package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Case is an investigation file.
type Case struct {
	ID                uuid.UUID
	CaseNumber        string
	Title             string
	Description       *string
	Type              string
	Status            CaseStatus
	Priority          *Priority
	AssignedOfficerID *uuid.UUID
	CreatedBy         uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CaseUpdateParams holds optional case fields; nil means "don't change".
type CaseUpdateParams struct {
	Title             *string
	Description       *string
	Type              *string
	Status            *CaseStatus
	Priority          *Priority
	AssignedOfficerID *uuid.UUID
}

// Incident is a reported event that officers respond to.
type Incident struct {
	ID                uuid.UUID
	IncidentNumber    string
	Title             string
	Description       *string
	Type              string
	Priority          Priority
	Status            IncidentStatus
	Location          string
	ReportedBy        *string
	AssignedOfficerID *uuid.UUID
	CaseID            *uuid.UUID
	CreatedBy         uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IncidentUpdateParams holds optional incident fields; nil means "don't change".
type IncidentUpdateParams struct {
	Title             *string
	Description       *string
	Type              *string
	Priority          *Priority
	Status            *IncidentStatus
	Location          *string
	ReportedBy        *string
	AssignedOfficerID *uuid.UUID
	CaseID            *uuid.UUID
}

// Evidence is a stored file attached to a case.
type Evidence struct {
	ID             uuid.UUID
	CaseID         *uuid.UUID
	Filename       string
	StoragePath    string
	Size           int64
	Type           string
	Description    *string
	Tags           []string
	ChainOfCustody json.RawMessage
	UploadedBy     uuid.UUID
	UploadedAt     time.Time
}

// Report is a written document, optionally tied to a case.
type Report struct {
	ID        uuid.UUID
	Title     string
	Type      string
	Content   *string
	Status    ReportStatus
	CaseID    *uuid.UUID
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
