package domain

// DashboardStats aggregates counters shown on the landing page.
type DashboardStats struct {
	TotalCases            int `json:"totalCases"`
	ActiveCases           int `json:"activeCases"`
	ClosedCases           int `json:"closedCases"`
	MonthlyNewCases       int `json:"monthlyNewCases"`
	TotalEvidence         int `json:"totalEvidence"`
	PendingReports        int `json:"pendingReports"`
	CompletedReports      int `json:"completedReports"`
	TotalIncidents        int `json:"totalIncidents"`
	ActiveIncidents       int `json:"activeIncidents"`
	HighPriorityIncidents int `json:"highPriorityIncidents"`
}

// IncidentStats summarizes incidents by status and priority.
type IncidentStats struct {
	Total         int `json:"total"`
	Active        int `json:"active"`
	Responding    int `json:"responding"`
	Investigating int `json:"investigating"`
	Resolved      int `json:"resolved"`
	HighPriority  int `json:"highPriority"`
}

// CaseCounts summarizes cases by lifecycle state.
type CaseCounts struct {
	Total     int
	Active    int
	Closed    int
	SinceDate int
}

// ReportCounts summarizes reports by editing state.
type ReportCounts struct {
	Pending   int
	Completed int
}
