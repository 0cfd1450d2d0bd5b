package session

import "github.com/greengirl/dashboard/internal/profile"

// Protected views.
var (
	DashboardRoute  = Route{Path: "/dashboard"}
	ActivitiesRoute = Route{Path: "/activities"}
	MaterialsRoute  = Route{Path: "/materials"}
	ReportsRoute    = Route{Path: "/reports"}
	ProfileRoute    = Route{Path: "/profile"}
	UsersRoute      = Route{Path: "/users", Roles: []profile.Role{profile.RoleSuperUser}}

	// StorageAdminRoute guards capacity edits, which have no view of their own.
	StorageAdminRoute = Route{Path: "/storage", Roles: []profile.Role{profile.RoleSuperUser}}
)

// NavItem is one sidebar entry.
type NavItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

var navigation = []struct {
	item  NavItem
	route Route
}{
	{NavItem{Name: "Dashboard", Path: "/dashboard"}, DashboardRoute},
	{NavItem{Name: "Atividades", Path: "/activities"}, ActivitiesRoute},
	{NavItem{Name: "Materiais", Path: "/materials"}, MaterialsRoute},
	{NavItem{Name: "Relatórios", Path: "/reports"}, ReportsRoute},
	{NavItem{Name: "Usuários", Path: "/users"}, UsersRoute},
}

// Navigation returns the sidebar entries the user may open.
func Navigation(u *profile.User) []NavItem {
	items := []NavItem{}
	for _, n := range navigation {
		if u.HasRole(n.route.Roles...) {
			items = append(items, n.item)
		}
	}
	return items
}
