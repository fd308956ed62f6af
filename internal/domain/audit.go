package domain

import (
	"time"

	"github.com/google/uuid"
)

// Audit action labels written by the application.
const (
	AuditActionReportCreated    = "Report Created"
	AuditActionEvidenceUploaded = "Evidence Uploaded"
	AuditActionCaseCreated      = "Case Created"
	AuditActionCaseUpdated      = "Case Updated"
	AuditActionIncidentCreated  = "Incident Created"
	AuditActionIncidentUpdated  = "Incident Updated"
	AuditActionRoleChanged      = "Profile Role Changed"
	AuditActionSignedIn         = "User Signed In"
	AuditActionSignedOut        = "User Signed Out"
)

// AuditEntry is one row of the audit trail. Context is free-form JSON.
type AuditEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Action    string
	Context   map[string]any
	IPAddress *string
	CreatedAt time.Time
}
