package tickets

import "testing"

func TestHasPending(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{"PENDING", true},
		{"PENDING_TEAM_PMO", true},
		{"PENDING_SENIOR_PMO", true},
		{"pending_admin", true},
		{"APPROVED", false},
		{"REJECTED", false},
		{"COMPLETED", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := HasPending(tc.status); got != tc.want {
			t.Errorf("HasPending(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{"APPROVED", true},
		{"REJECTED", true},
		{"COMPLETED", true},
		{"approved", true},
		{"PENDING_TEAM_PMO", false},
		{"IN_REVIEW", false},
	}
	for _, tc := range cases {
		if got := IsTerminal(tc.status); got != tc.want {
			t.Errorf("IsTerminal(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestCanAct(t *testing.T) {
	cases := []struct {
		role   string
		status string
		want   bool
	}{
		// The PMO step in stored statuses is named TEAM_PMO; both the
		// PMO and TEAM_PMO roles own it.
		{"PMO", "PENDING_TEAM_PMO", true},
		{"TEAM_PMO", "PENDING_TEAM_PMO", true},
		{"SENIOR_PMO", "PENDING_SENIOR_PMO", true},
		{"ADMIN", "PENDING_ADMIN", true},

		// Wrong queue.
		{"PMO", "PENDING_SENIOR_PMO", false},
		{"SENIOR_PMO", "PENDING_TEAM_PMO", false},
		{"ADMIN", "PENDING_TEAM_PMO", false},

		// Non-approvers never act.
		{"EMPLOYEE", "PENDING_TEAM_PMO", false},
		{"FINANCE", "PENDING_SENIOR_PMO", false},

		// Terminal statuses block everyone.
		{"PMO", "APPROVED", false},
		{"SENIOR_PMO", "REJECTED", false},
		{"ADMIN", "COMPLETED", false},

		// Normalization of the viewer role.
		{" pmo ", "PENDING_TEAM_PMO", true},
	}
	for _, tc := range cases {
		if got := CanAct(tc.role, tc.status); got != tc.want {
			t.Errorf("CanAct(%q, %q) = %v, want %v", tc.role, tc.status, got, tc.want)
		}
	}
}

func TestIsApproverRole(t *testing.T) {
	for _, role := range []string{"ADMIN", "SENIOR_PMO", "PMO", "TEAM_PMO", "pmo"} {
		if !IsApproverRole(role) {
			t.Errorf("IsApproverRole(%q) = false, want true", role)
		}
	}
	for _, role := range []string{"EMPLOYEE", "FINANCE", ""} {
		if IsApproverRole(role) {
			t.Errorf("IsApproverRole(%q) = true, want false", role)
		}
	}
}

func TestWaitingLabel(t *testing.T) {
	if got := WaitingLabel("PENDING_SENIOR_PMO"); got != "Waiting for: PENDING SENIOR PMO" {
		t.Errorf("WaitingLabel pending = %q", got)
	}
	if got := WaitingLabel("APPROVED"); got != "" {
		t.Errorf("WaitingLabel terminal = %q, want empty", got)
	}
}

func TestDisplayStatus(t *testing.T) {
	if got := DisplayStatus("pending_team_pmo"); got != "PENDING TEAM PMO" {
		t.Errorf("DisplayStatus = %q", got)
	}
	if got := DisplayType("General Issue"); got != "GENERAL ISSUE" {
		t.Errorf("DisplayType = %q", got)
	}
}
