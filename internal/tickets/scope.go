package tickets

import (
	"sort"
	"strings"
	"time"

	"invprime/internal/api"
)

// Scope describes which fetch a role issues and which rows it keeps.
type Scope struct {
	// FetchAll means GET /tickets/list/all/ instead of the
	// employee-scoped list.
	FetchAll bool
	// PendingStatus, when set, keeps only rows with exactly this
	// status (approver queues).
	PendingStatus string
	// OwnOnly keeps only rows whose employee_id matches the viewer.
	OwnOnly bool
}

// ScopeFor returns the list scope for a role. Admins and approvers
// fetch everything; approvers then see only their queue; employees and
// finance see their own tickets.
func ScopeFor(role string) Scope {
	switch strings.ToUpper(strings.TrimSpace(role)) {
	case "ADMIN":
		return Scope{FetchAll: true}
	case "SENIOR_PMO":
		return Scope{FetchAll: true, PendingStatus: "PENDING_SENIOR_PMO"}
	case "PMO":
		return Scope{FetchAll: true, PendingStatus: "PENDING_TEAM_PMO"}
	default:
		return Scope{OwnOnly: true}
	}
}

// Apply narrows a fetched list to the scope for viewerID.
func (s Scope) Apply(items []api.Ticket, viewerID int) []api.Ticket {
	out := make([]api.Ticket, 0, len(items))
	for _, t := range items {
		if s.PendingStatus != "" && t.Status != s.PendingStatus {
			continue
		}
		if s.OwnOnly && t.EmployeeID != viewerID {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Filter applies the text search and status filter, then sorts by
// created_at descending. Search is case-insensitive over title and
// description; statusFilter "ALL" or "" matches everything.
func Filter(items []api.Ticket, search, statusFilter string) []api.Ticket {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]api.Ticket, 0, len(items))
	for _, t := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if statusFilter != "" && statusFilter != "ALL" && t.Status != statusFilter {
			continue
		}
		out = append(out, t)
	}
	SortNewestFirst(out)
	return out
}

// SortNewestFirst orders tickets by created_at descending. Unparseable
// timestamps sort last, matching the browser client where an invalid
// date compares as NaN.
func SortNewestFirst(items []api.Ticket) {
	sort.SliceStable(items, func(i, j int) bool {
		return parseWhen(items[i].CreatedAt).After(parseWhen(items[j].CreatedAt))
	})
}

// Statuses returns the distinct status values present, sorted, for
// building a filter menu.
func Statuses(items []api.Ticket) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, t := range items {
		if _, ok := seen[t.Status]; ok {
			continue
		}
		seen[t.Status] = struct{}{}
		out = append(out, t.Status)
	}
	sort.Strings(out)
	return out
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseWhen(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
