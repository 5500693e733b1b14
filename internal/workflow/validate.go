// Package workflow validates role and workflow template forms before
// anything touches the network. A validation failure here means no
// request is sent at all.
package workflow

import (
	"errors"
	"fmt"
	"strings"

	"invprime/internal/api"
)

// Form is the workflow-creation form state: free-text header fields
// plus an ordered list of steps. Steps without a role are treated as
// blank rows and dropped at submission.
type Form struct {
	Name        string
	Description string
	Version     string
	TicketType  string
	Steps       []api.WorkflowStep
}

var (
	ErrNameRequired        = errors.New("workflow name is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrVersionRequired     = errors.New("workflow version is required")
	ErrNoSteps             = errors.New("at least one step with a role is required")
)

// Validate checks the form. Each populated step needs a role with
// sla_hours > 0, and no role may appear twice.
func (f Form) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(f.Description) == "" {
		return ErrDescriptionRequired
	}
	if strings.TrimSpace(f.Version) == "" {
		return ErrVersionRequired
	}

	seen := make(map[string]struct{})
	valid := 0
	for _, s := range f.Steps {
		if s.Role == "" {
			continue
		}
		valid++
		if s.SLAHours <= 0 {
			return fmt.Errorf("step for role %s: sla hours must be greater than 0", s.Role)
		}
		if _, dup := seen[s.Role]; dup {
			return fmt.Errorf("role %s appears in more than one step", s.Role)
		}
		seen[s.Role] = struct{}{}
	}
	if valid == 0 {
		return ErrNoSteps
	}
	return nil
}

// Payload builds the create request: trimmed header fields, blank rows
// dropped, step_order assigned from position. Call Validate first.
func (f Form) Payload() api.CreateWorkflowRequest {
	steps := make([]api.WorkflowStep, 0, len(f.Steps))
	for _, s := range f.Steps {
		if s.Role == "" {
			continue
		}
		steps = append(steps, api.WorkflowStep{
			StepOrder: len(steps) + 1,
			Role:      s.Role,
			SLAHours:  s.SLAHours,
		})
	}
	return api.CreateWorkflowRequest{
		TicketType:   strings.TrimSpace(f.TicketType),
		Version:      strings.TrimSpace(f.Version),
		WorkflowName: strings.TrimSpace(f.Name),
		Description:  strings.TrimSpace(f.Description),
		Steps:        steps,
	}
}

// ValidateRoleName checks a new role's name.
func ValidateRoleName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("role name is required")
	}
	return nil
}

// ActiveRoles filters a role list down to the selectable ones.
func ActiveRoles(roles []api.Role) []api.Role {
	out := make([]api.Role, 0, len(roles))
	for _, r := range roles {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out
}
