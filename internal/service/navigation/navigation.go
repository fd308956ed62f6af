// Package navigation computes the menu, quick actions and report templates
// visible to a role.
package navigation

import "github.com/heartmarshall/precinct-records/internal/domain"

// Item is a navigation entry.
type Item struct {
	Name    string      `json:"name"`
	Href    string      `json:"href"`
	MinRole domain.Role `json:"-"`
	Only    domain.Role `json:"-"`
}

// Action is a role-specific shortcut.
type Action struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// Template is a report kind a role may start from the reports page.
type Template struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Menu is everything a client needs to render the shell for one role.
type Menu struct {
	Items           []Item     `json:"items"`
	QuickActions    []Action   `json:"quickActions"`
	ReportTemplates []Template `json:"reportTemplates"`
}

var items = []Item{
	{Name: "Dashboard", Href: "/dashboard", MinRole: domain.RoleOfficer},
	{Name: "Cases", Href: "/cases", MinRole: domain.RoleOfficer},
	{Name: "Evidence", Href: "/evidence", MinRole: domain.RoleInvestigator},
	{Name: "Reports", Href: "/reports", MinRole: domain.RoleOfficer},
	{Name: "Incidents", Href: "/incidents", MinRole: domain.RoleOfficer},
	{Name: "Admin Panel", Href: "/admin", Only: domain.RoleAdmin},
	{Name: "Audit Trail", Href: "/audit", MinRole: domain.RoleSupervisor},
}

var templates = []struct {
	Template
	min domain.Role
}{
	{Template{"Incident Report", "Create new incident report"}, domain.RoleOfficer},
	{Template{"Investigation Report", "Detailed investigation summary"}, domain.RoleInvestigator},
	{Template{"Statistical Report", "Generate statistics report"}, domain.RoleSupervisor},
	{Template{"Custom Report", "Create custom report template"}, domain.RoleInvestigator},
}

func (it Item) visibleTo(r domain.Role) bool {
	if it.Only != "" {
		return r == it.Only
	}
	return r.AtLeast(it.MinRole)
}

// For returns the menu for role. An unknown role gets an empty menu.
func For(role domain.Role) Menu {
	m := Menu{
		Items:           []Item{},
		QuickActions:    []Action{},
		ReportTemplates: []Template{},
	}
	if !role.IsValid() {
		return m
	}

	for _, it := range items {
		if it.visibleTo(role) {
			m.Items = append(m.Items, it)
		}
	}

	if role == domain.RoleOfficer {
		m.QuickActions = append(m.QuickActions, Action{Name: "New Incident Report", Href: "/incidents/new"})
	}
	if role.AtLeast(domain.RoleInvestigator) {
		m.QuickActions = append(m.QuickActions, Action{Name: "Create New Case", Href: "/cases/new"})
	}
	if role == domain.RoleAdmin {
		m.QuickActions = append(m.QuickActions, Action{Name: "System Settings", Href: "/admin"})
	}

	for _, t := range templates {
		if role.AtLeast(t.min) {
			m.ReportTemplates = append(m.ReportTemplates, t.Template)
		}
	}

	return m
}
