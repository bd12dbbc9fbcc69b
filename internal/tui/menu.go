package tui

import "sort"

// View identifies a dashboard screen.
type View string

// Dashboard views.
const (
	ViewNone        View = ""
	ViewCharts      View = "charts"
	ViewLocations   View = "locations"
	ViewPreferences View = "preferences"
	ViewHelp        View = "help"
)

// Roles known to the default menu.
const (
	RoleViewer  = "viewer"
	RolePlanner = "planner"
	RoleAdmin   = "admin"
)

// MenuItem is one node of the navigation tree. An item with no Roles is
// visible to everyone.
type MenuItem struct {
	Title    string
	Target   View
	Roles    []string
	Order    int
	Children []MenuItem
}

// DefaultMenu returns the dashboard navigation tree.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{
			Title: "Production",
			Order: 1,
			Children: []MenuItem{
				{Title: "Charts", Target: ViewCharts, Order: 1},
				{Title: "Locations", Target: ViewLocations, Order: 2, Roles: []string{RoleViewer, RolePlanner, RoleAdmin}},
			},
		},
		{
			Title: "Administration",
			Order: 2,
			Roles: []string{RoleAdmin},
			Children: []MenuItem{
				{Title: "Chart Preferences", Target: ViewPreferences, Order: 1, Roles: []string{RoleAdmin}},
			},
		},
		{Title: "Help", Target: ViewHelp, Order: 99},
	}
}

// PruneMenu returns the items visible to a user holding roles. Items whose
// roles do not match are dropped with their subtree, and parents left without
// children are dropped unless they have a target of their own. Siblings are
// sorted by Order, then Title. The input is not modified.
func PruneMenu(items []MenuItem, roles []string) []MenuItem {
	held := make(map[string]bool, len(roles))
	for _, r := range roles {
		held[r] = true
	}
	return prune(items, held)
}

func prune(items []MenuItem, held map[string]bool) []MenuItem {
	var out []MenuItem
	for _, item := range items {
		if !visibleTo(item, held) {
			continue
		}
		hadChildren := len(item.Children) > 0
		item.Children = prune(item.Children, held)
		if hadChildren && len(item.Children) == 0 && item.Target == ViewNone {
			continue
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Title < out[j].Title
	})
	return out
}

func visibleTo(item MenuItem, held map[string]bool) bool {
	if len(item.Roles) == 0 {
		return true
	}
	for _, r := range item.Roles {
		if held[r] {
			return true
		}
	}
	return false
}

// MenuTargets lists the targets of a menu depth first, in menu order.
func MenuTargets(items []MenuItem) []View {
	var out []View
	for _, item := range items {
		if item.Target != ViewNone {
			out = append(out, item.Target)
		}
		out = append(out, MenuTargets(item.Children)...)
	}
	return out
}
