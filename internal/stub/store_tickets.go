package stub

import (
	"errors"
	"fmt"
	"strings"

	"invprime/internal/api"
)

var (
	errTicketNotFound = errors.New("ticket not found")
	errNotPending     = errors.New("ticket is not awaiting action")
	errBadAction      = errors.New("action must be APPROVE or REJECT")
)

// createTicket routes a new ticket onto the active workflow for its
// type. With no workflow defined the ticket starts as plain PENDING and
// can only be moved via the legacy status update.
func (s *Store) createTicket(req api.CreateTicketRequest) *ticketRecord {
	wf := s.activeWorkflowFor(req.TicketType)

	s.mu.Lock()
	defer s.mu.Unlock()

	t := &ticketRecord{
		Ticket: api.Ticket{
			ID:          s.nextTicket,
			EmployeeID:  req.EmployeeID,
			TicketType:  req.TicketType,
			Title:       req.Title,
			Description: req.Description,
			Status:      "PENDING",
			CreatedAt:   now(),
			UpdatedAt:   now(),
			AssignedTo:  req.AssignedTo,
		},
	}
	s.nextTicket++

	if wf != nil {
		id := wf.WorkflowID
		t.WorkflowID = &id
		t.CurrentStep = 1
		t.CurrentRole = wf.Steps[0].Role
		t.Status = "PENDING_" + wf.Steps[0].Role
		for _, ws := range wf.Steps {
			t.steps = append(t.steps, api.TicketStep{
				StepOrder: ws.StepOrder,
				Role:      ws.Role,
				SLAHours:  ws.SLAHours,
				State:     "PENDING",
			})
		}
	}
	s.tickets[t.ID] = t
	return t
}

// applyAction advances the ticket one step. Verbs are accepted in any
// case; whether the live backend is case-sensitive is unverified, so
// the fake is deliberately lenient.
func (s *Store) applyAction(ticketID int, verb, remarks string) (*ticketRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[ticketID]
	if !ok {
		return nil, errTicketNotFound
	}
	if !strings.Contains(strings.ToUpper(t.Status), "PENDING") || t.CurrentStep == 0 {
		return nil, errNotPending
	}

	idx := t.CurrentStep - 1
	if idx < 0 || idx >= len(t.steps) {
		return nil, errNotPending
	}
	step := &t.steps[idx]
	step.ActionDate = now()
	step.Remarks = remarks
	t.UpdatedAt = now()

	switch {
	case strings.EqualFold(verb, "APPROVE"):
		step.State = "APPROVED"
		if idx+1 < len(t.steps) {
			t.CurrentStep++
			t.CurrentRole = t.steps[idx+1].Role
			t.Status = "PENDING_" + t.CurrentRole
		} else {
			t.CurrentRole = ""
			t.Status = "APPROVED"
		}
	case strings.EqualFold(verb, "REJECT"):
		step.State = "REJECTED"
		t.CurrentRole = ""
		t.Status = "REJECTED"
	default:
		return nil, errBadAction
	}
	return t, nil
}

func (s *Store) ticketList(employeeID int) []api.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []api.Ticket
	for i := 1; i < s.nextTicket; i++ {
		t, ok := s.tickets[i]
		if !ok {
			continue
		}
		if employeeID > 0 && t.EmployeeID != employeeID {
			continue
		}
		out = append(out, t.Ticket)
	}
	return out
}

func (s *Store) ticketHistory(ticketID int) (*api.TicketHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[ticketID]
	if !ok {
		return nil, errTicketNotFound
	}
	h := &api.TicketHistory{
		TicketID:    t.ID,
		EmployeeID:  t.EmployeeID,
		TicketType:  t.TicketType,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CurrentStep: t.CurrentStep,
		CreatedAt:   t.CreatedAt,
		Steps:       append([]api.TicketStep(nil), t.steps...),
	}
	if t.WorkflowID != nil {
		h.WorkflowID = *t.WorkflowID
	}
	return h, nil
}

// assignedTickets builds the approver dashboard: tickets whose pending
// role matches the user's role, enriched with both parties.
func (s *Store) assignedTickets(userID int) []api.AssignedTicket {
	s.mu.Lock()
	defer s.mu.Unlock()

	viewer, ok := s.users[userID]
	if !ok {
		return nil
	}
	var out []api.AssignedTicket
	for i := 1; i < s.nextTicket; i++ {
		t, ok := s.tickets[i]
		if !ok || t.CurrentRole == "" || !strings.EqualFold(t.CurrentRole, viewer.Role) {
			continue
		}
		at := api.AssignedTicket{
			TicketID:    t.ID,
			Title:       t.Title,
			Description: t.Description,
			TicketType:  t.TicketType,
			Status:      t.Status,
			CurrentStep: t.CurrentStep,
			CurrentRole: t.CurrentRole,
			WorkflowID:  t.WorkflowID,
			AssignedTo:  api.AssignedUser{ID: viewer.ID, Name: viewer.Name, Email: viewer.Email},
		}
		if emp, ok := s.users[t.EmployeeID]; ok {
			at.Employee = api.EmployeeInfo{ID: emp.ID, Name: emp.Name, Email: emp.Email, Role: emp.Role}
		}
		out = append(out, at)
	}
	return out
}

// employeeSummary derives the landing-dashboard counts from live
// store state; nothing is precomputed.
func (s *Store) employeeSummary(employeeID int) (*api.EmployeeDashboardResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[employeeID]
	if !ok {
		return nil, errors.New("employee not found")
	}
	out := &api.EmployeeDashboardResponse{
		Type:     "employee",
		Employee: api.EmployeeInfo{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role},
		Tickets:  api.DashboardTicket{ByStatus: map[string]int{}},
		Assets:   api.DashboardAsset{ByStatus: map[string]int{}},
	}
	for _, t := range s.tickets {
		if t.EmployeeID != employeeID {
			continue
		}
		out.Tickets.TotalCreated++
		out.Tickets.ByStatus[t.Status]++
	}
	for _, a := range s.assets {
		if a.EmployeeID != employeeID {
			continue
		}
		out.Assets.TotalAssetsRows++
		out.Assets.TotalQuantityIssued += a.QuantityIssued
		out.Assets.ByStatus[a.Status]++
	}
	return out, nil
}

func (s *Store) updateTicketStatus(employeeID int, status string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tickets {
		if t.EmployeeID == employeeID {
			t.Status = status
			t.UpdatedAt = now()
			n++
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("no tickets for employee %d", employeeID)
	}
	return n, nil
}
