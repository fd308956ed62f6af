package domain

// Role represents the authorization level of a profile.
// Roles are ordered: officer < investigator < supervisor < admin.
type Role string

const (
	RoleOfficer      Role = "officer"
	RoleInvestigator Role = "investigator"
	RoleSupervisor   Role = "supervisor"
	RoleAdmin        Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleOfficer, RoleInvestigator, RoleSupervisor, RoleAdmin:
		return true
	}
	return false
}

func (r Role) rank() int {
	switch r {
	case RoleOfficer:
		return 1
	case RoleInvestigator:
		return 2
	case RoleSupervisor:
		return 3
	case RoleAdmin:
		return 4
	}
	return 0
}

// AtLeast reports whether r grants at least the privileges of min.
// An unknown role never satisfies any requirement.
func (r Role) AtLeast(min Role) bool {
	return r.rank() > 0 && r.rank() >= min.rank()
}

// SanitizeRole returns the role if it is known, otherwise RoleOfficer.
func SanitizeRole(s string) Role {
	r := Role(s)
	if r.IsValid() {
		return r
	}
	return RoleOfficer
}

// CaseStatus is the lifecycle state of a case.
type CaseStatus string

const (
	CaseStatusOpen       CaseStatus = "open"
	CaseStatusInProgress CaseStatus = "in-progress"
	CaseStatusClosed     CaseStatus = "closed"
)

func (s CaseStatus) String() string { return string(s) }

func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusOpen, CaseStatusInProgress, CaseStatusClosed:
		return true
	}
	return false
}

// IsActive reports whether the case still needs work.
func (s CaseStatus) IsActive() bool {
	return s == CaseStatusOpen || s == CaseStatusInProgress
}

// IncidentStatus is the response state of an incident.
type IncidentStatus string

const (
	IncidentStatusResponding    IncidentStatus = "responding"
	IncidentStatusInvestigating IncidentStatus = "investigating"
	IncidentStatusResolved      IncidentStatus = "resolved"
)

func (s IncidentStatus) String() string { return string(s) }

func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentStatusResponding, IncidentStatusInvestigating, IncidentStatusResolved:
		return true
	}
	return false
}

// ReportStatus is the editing state of a report.
type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "draft"
	ReportStatusCompleted ReportStatus = "completed"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusDraft, ReportStatusCompleted:
		return true
	}
	return false
}

// Priority is shared by cases and incidents.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
