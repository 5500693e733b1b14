// Package nav maps a role to its visible screens.
package nav

// Item is one navigation entry. Icon is a glyph name the renderer maps
// to whatever its medium supports.
type Item struct {
	Title string
	Path  string
	Icon  string
}

var table = map[string][]Item{
	"ADMIN": {
		{Title: "Dashboard", Path: "/dashboard", Icon: "dashboard"},
		{Title: "Account Management", Path: "/dashboard/accounts", Icon: "accounts"},
		{Title: "Inventory Management", Path: "/dashboard/inventory", Icon: "inventory"},
		{Title: "Ticket Management", Path: "/dashboard/tickets", Icon: "ticket"},
		{Title: "Workflows", Path: "/dashboard/workflow", Icon: "workflow"},
	},
	"EMPLOYEE": {
		{Title: "Dashboard", Path: "/dashboard", Icon: "dashboard"},
		{Title: "View Assets", Path: "/dashboard/assets", Icon: "assets"},
		{Title: "Ticket Management", Path: "/dashboard/tickets", Icon: "ticket"},
	},
	"PMO": {
		{Title: "Dashboard", Path: "/dashboard", Icon: "dashboard"},
		{Title: "View Assets", Path: "/dashboard/assets", Icon: "assets"},
		{Title: "Ticket Management", Path: "/dashboard/tickets", Icon: "ticket"},
	},
	"SENIOR_PMO": {
		{Title: "Dashboard", Path: "/dashboard", Icon: "dashboard"},
		{Title: "View All Assets", Path: "/dashboard/assets", Icon: "assets"},
		{Title: "Ticket Management", Path: "/dashboard/tickets", Icon: "ticket"},
	},
	"FINANCE": {
		{Title: "Dashboard", Path: "/dashboard", Icon: "dashboard"},
		{Title: "View Assets", Path: "/dashboard/assets", Icon: "assets"},
		{Title: "Ticket Management", Path: "/dashboard/tickets", Icon: "ticket"},
		{Title: "Finance Management", Path: "/dashboard/finance-management", Icon: "finance"},
	},
}

// Resolve returns the ordered navigation for a role. Unknown or empty
// roles fall back to the EMPLOYEE set, so every caller gets a usable,
// non-empty menu. The returned slice is a copy.
func Resolve(role string) []Item {
	items, ok := table[role]
	if !ok {
		items = table["EMPLOYEE"]
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
