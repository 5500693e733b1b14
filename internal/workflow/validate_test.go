package workflow

import (
	"errors"
	"strings"
	"testing"

	"invprime/internal/api"
)

func validForm() Form {
	return Form{
		Name:        "Procurement Approval",
		Description: "Hardware purchases over budget",
		Version:     "1",
		TicketType:  "Procurement",
		Steps: []api.WorkflowStep{
			{Role: "TEAM_PMO", SLAHours: 24},
			{Role: "SENIOR_PMO", SLAHours: 48},
		},
	}
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	if err := validForm().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Form)
		want   error
	}{
		{"blank name", func(f *Form) { f.Name = "  " }, ErrNameRequired},
		{"blank description", func(f *Form) { f.Description = "" }, ErrDescriptionRequired},
		{"blank version", func(f *Form) { f.Version = "" }, ErrVersionRequired},
		{"no steps", func(f *Form) { f.Steps = nil }, ErrNoSteps},
		{"only blank rows", func(f *Form) {
			f.Steps = []api.WorkflowStep{{Role: "", SLAHours: 8}}
		}, ErrNoSteps},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.mutate(&f)
			if err := f.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("Validate = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestValidateStepRules(t *testing.T) {
	f := validForm()
	f.Steps[1].SLAHours = 0
	if err := f.Validate(); err == nil || !strings.Contains(err.Error(), "sla hours") {
		t.Errorf("zero SLA: Validate = %v", err)
	}

	f = validForm()
	f.Steps[1].Role = "TEAM_PMO"
	if err := f.Validate(); err == nil || !strings.Contains(err.Error(), "more than one step") {
		t.Errorf("duplicate role: Validate = %v", err)
	}
}

func TestPayloadDropsBlankRowsAndOrdersSteps(t *testing.T) {
	f := Form{
		Name:        "  Asset Return  ",
		Description: " cleanup ",
		Version:     " 2 ",
		TicketType:  " Return ",
		Steps: []api.WorkflowStep{
			{Role: "TEAM_PMO", SLAHours: 12},
			{Role: "", SLAHours: 0}, // blank row from the form grid
			{Role: "ADMIN", SLAHours: 6},
		},
	}
	p := f.Payload()
	if p.WorkflowName != "Asset Return" || p.Version != "2" || p.TicketType != "Return" {
		t.Errorf("header fields not trimmed: %+v", p)
	}
	if len(p.Steps) != 2 {
		t.Fatalf("steps = %+v, want blank row dropped", p.Steps)
	}
	if p.Steps[0].StepOrder != 1 || p.Steps[0].Role != "TEAM_PMO" {
		t.Errorf("step 1 = %+v", p.Steps[0])
	}
	if p.Steps[1].StepOrder != 2 || p.Steps[1].Role != "ADMIN" {
		t.Errorf("step 2 = %+v: order must be positional after dropping blanks", p.Steps[1])
	}
}

func TestValidateRoleName(t *testing.T) {
	if err := ValidateRoleName("TEAM_LEAD"); err != nil {
		t.Errorf("ValidateRoleName: %v", err)
	}
	if err := ValidateRoleName("   "); err == nil {
		t.Error("blank role name must fail")
	}
}

func TestActiveRoles(t *testing.T) {
	roles := []api.Role{
		{ID: 1, Name: "ADMIN", IsActive: true},
		{ID: 2, Name: "LEGACY", IsActive: false},
		{ID: 3, Name: "PMO", IsActive: true},
	}
	got := ActiveRoles(roles)
	if len(got) != 2 || got[0].Name != "ADMIN" || got[1].Name != "PMO" {
		t.Fatalf("ActiveRoles = %+v", got)
	}
}
