package tickets

import (
	"testing"

	"invprime/internal/api"
)

func sample() []api.Ticket {
	return []api.Ticket{
		{ID: 1, EmployeeID: 10, Title: "Broken laptop", Description: "screen cracked", Status: "PENDING_TEAM_PMO", CreatedAt: "2026-03-01T09:00:00Z"},
		{ID: 2, EmployeeID: 11, Title: "New monitor", Description: "27 inch", Status: "PENDING_SENIOR_PMO", CreatedAt: "2026-03-03T09:00:00Z"},
		{ID: 3, EmployeeID: 10, Title: "Software license", Description: "IDE renewal", Status: "APPROVED", CreatedAt: "2026-03-02T09:00:00Z"},
		{ID: 4, EmployeeID: 12, Title: "Desk move", Description: "floor 3", Status: "REJECTED", CreatedAt: "not-a-date"},
	}
}

func ids(items []api.Ticket) []int {
	out := make([]int, len(items))
	for i, t := range items {
		out[i] = t.ID
	}
	return out
}

func TestScopeFor(t *testing.T) {
	if s := ScopeFor("ADMIN"); !s.FetchAll || s.PendingStatus != "" || s.OwnOnly {
		t.Errorf("ADMIN scope = %+v", s)
	}
	if s := ScopeFor("SENIOR_PMO"); !s.FetchAll || s.PendingStatus != "PENDING_SENIOR_PMO" {
		t.Errorf("SENIOR_PMO scope = %+v", s)
	}
	if s := ScopeFor("PMO"); !s.FetchAll || s.PendingStatus != "PENDING_TEAM_PMO" {
		t.Errorf("PMO scope = %+v", s)
	}
	for _, role := range []string{"EMPLOYEE", "FINANCE", "UNKNOWN"} {
		if s := ScopeFor(role); !s.OwnOnly || s.FetchAll {
			t.Errorf("%s scope = %+v, want own-only", role, s)
		}
	}
}

func TestScopeApply(t *testing.T) {
	items := sample()

	pmo := ScopeFor("PMO").Apply(items, 99)
	if got := ids(pmo); len(got) != 1 || got[0] != 1 {
		t.Errorf("PMO queue = %v, want [1]", got)
	}

	own := ScopeFor("EMPLOYEE").Apply(items, 10)
	if got := ids(own); len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("employee 10 rows = %v, want [1 3]", got)
	}

	all := ScopeFor("ADMIN").Apply(items, 99)
	if len(all) != len(items) {
		t.Errorf("ADMIN sees %d rows, want %d", len(all), len(items))
	}
}

func TestFilterSearch(t *testing.T) {
	items := sample()

	// Case-insensitive over title and description.
	got := Filter(items, "LAPTOP", "ALL")
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("search laptop = %v", ids(got))
	}
	got = Filter(items, "renewal", "")
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("search renewal (description) = %v", ids(got))
	}

	// Status filter is exact; ALL and empty match everything.
	got = Filter(items, "", "APPROVED")
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("status APPROVED = %v", ids(got))
	}
	if got := Filter(items, "", "ALL"); len(got) != 4 {
		t.Fatalf("status ALL = %v", ids(got))
	}
}

func TestSortNewestFirst(t *testing.T) {
	items := sample()
	SortNewestFirst(items)
	// Newest created_at first; the unparseable timestamp sorts last.
	want := []int{2, 3, 1, 4}
	got := ids(items)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted order = %v, want %v", got, want)
		}
	}
}

func TestStatuses(t *testing.T) {
	got := Statuses(sample())
	want := []string{"APPROVED", "PENDING_SENIOR_PMO", "PENDING_TEAM_PMO", "REJECTED"}
	if len(got) != len(want) {
		t.Fatalf("Statuses = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Statuses = %v, want %v", got, want)
		}
	}
}
