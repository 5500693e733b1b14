package nav

import "testing"

func titles(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func contains(items []Item, title string) bool {
	for _, it := range items {
		if it.Title == title {
			return true
		}
	}
	return false
}

func TestResolveAdmin(t *testing.T) {
	items := Resolve("ADMIN")
	if len(items) != 5 {
		t.Fatalf("ADMIN menu: got %d items %v, want 5", len(items), titles(items))
	}
	for _, want := range []string{"Dashboard", "Account Management", "Inventory Management", "Ticket Management", "Workflows"} {
		if !contains(items, want) {
			t.Errorf("ADMIN menu missing %q", want)
		}
	}
}

func TestResolveRoleVisibility(t *testing.T) {
	cases := []struct {
		role    string
		want    []string
		exclude []string
	}{
		{
			role:    "EMPLOYEE",
			want:    []string{"Dashboard", "View Assets", "Ticket Management"},
			exclude: []string{"Account Management", "Workflows", "Finance Management"},
		},
		{
			role:    "PMO",
			want:    []string{"Dashboard", "View Assets", "Ticket Management"},
			exclude: []string{"Workflows"},
		},
		{
			role:    "SENIOR_PMO",
			want:    []string{"View All Assets"},
			exclude: []string{"Account Management"},
		},
		{
			role:    "FINANCE",
			want:    []string{"Finance Management"},
			exclude: []string{"Workflows"},
		},
	}
	for _, tc := range cases {
		items := Resolve(tc.role)
		for _, w := range tc.want {
			if !contains(items, w) {
				t.Errorf("%s menu missing %q (got %v)", tc.role, w, titles(items))
			}
		}
		for _, e := range tc.exclude {
			if contains(items, e) {
				t.Errorf("%s menu must not contain %q", tc.role, e)
			}
		}
	}
}

func TestResolveUnknownRoleFallsBack(t *testing.T) {
	for _, role := range []string{"", "INTERN", "admin"} {
		got := Resolve(role)
		want := Resolve("EMPLOYEE")
		if len(got) != len(want) {
			t.Fatalf("Resolve(%q): got %v, want the EMPLOYEE set %v", role, titles(got), titles(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("Resolve(%q)[%d] = %+v, want %+v", role, i, got[i], want[i])
			}
		}
	}
}

func TestResolveReturnsCopy(t *testing.T) {
	first := Resolve("ADMIN")
	first[0].Title = "mutated"
	second := Resolve("ADMIN")
	if second[0].Title != "Dashboard" {
		t.Fatalf("mutating a resolved menu leaked into the table: %+v", second[0])
	}
}
