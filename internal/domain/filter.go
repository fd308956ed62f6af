package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Scope restricts list queries to rows created by or assigned to OwnerID.
// A nil Scope means the caller may see every row.
type Scope struct {
	OwnerID uuid.UUID
}

// CaseFilter contains filtering parameters for case listings.
type CaseFilter struct {
	Search   *string
	Status   *CaseStatus
	Priority *Priority
	Scope    *Scope
}

// IncidentFilter contains filtering parameters for incident listings.
// Search matches title or location.
type IncidentFilter struct {
	Search   *string
	Status   *IncidentStatus
	Priority *Priority
}

// EvidenceFilter contains filtering parameters for evidence listings.
type EvidenceFilter struct {
	Search *string
	CaseID *uuid.UUID
}

// ReportFilter contains filtering parameters for report listings.
// Scope restricts to reports created by the owner.
type ReportFilter struct {
	Search *string
	CaseID *uuid.UUID
	Scope  *Scope
}

// AuditFilter contains filtering/pagination parameters for the audit trail.
type AuditFilter struct {
	Action *string
	UserID *uuid.UUID
	Limit  int
	Offset int
}

// CacheKey renders a filter into a stable string for list caches.
func CacheKey(parts ...any) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte('|')
		}
		switch v := p.(type) {
		case *string:
			if v != nil {
				b.WriteString(*v)
			}
		case *uuid.UUID:
			if v != nil {
				b.WriteString(v.String())
			}
		case *Scope:
			if v != nil {
				b.WriteString(v.OwnerID.String())
			}
		case *CaseStatus:
			if v != nil {
				b.WriteString(v.String())
			}
		case *IncidentStatus:
			if v != nil {
				b.WriteString(v.String())
			}
		case *Priority:
			if v != nil {
				b.WriteString(v.String())
			}
		case fmt.Stringer:
			b.WriteString(v.String())
		default:
			fmt.Fprintf(&b, "%v", v)
		}
	}
	return b.String()
}
