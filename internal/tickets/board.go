package tickets

import (
	"context"
	"errors"
	"strings"

	"invprime/internal/api"
)

// Verb is the decision submitted for a pending ticket.
type Verb string

const (
	Approve Verb = "APPROVE"
	Reject  Verb = "REJECT"
)

// ErrAlreadyProcessed means this board already submitted a decision for
// the ticket. The latch exists only to stop duplicate submissions within
// one session; a fresh fetch after restart is the only resynchronization
// with server truth.
var ErrAlreadyProcessed = errors.New("ticket already processed in this session")

// Board drives the approval actions for one signed-in viewer. It wraps
// the API client with the client-local processed latch and the default
// remarks policy. Not safe for concurrent use; each view owns one.
type Board struct {
	client    *api.Client
	role      string
	processed map[int]bool
}

func NewBoard(client *api.Client, viewerRole string) *Board {
	return &Board{
		client:    client,
		role:      strings.ToUpper(strings.TrimSpace(viewerRole)),
		processed: make(map[int]bool),
	}
}

// Processed reports whether a decision was already submitted for the
// ticket during this session. Once set it is never cleared.
func (b *Board) Processed(ticketID int) bool {
	return b.processed[ticketID]
}

// CanAct applies the role/status gating for this viewer, and refuses
// tickets already processed locally.
func (b *Board) CanAct(t api.Ticket) bool {
	return !b.processed[t.ID] && CanAct(b.role, t.Status)
}

// Act submits an approve/reject decision. Empty remarks default to the
// role-stamped string ("Approved by PMO"). The ticket is latched as
// processed only after the server accepts; a failed call leaves it
// actionable.
func (b *Board) Act(ctx context.Context, ticketID int, verb Verb, remarks string) (*api.ActionResponse, error) {
	if b.processed[ticketID] {
		return nil, ErrAlreadyProcessed
	}
	remarks = strings.TrimSpace(remarks)
	if remarks == "" {
		remarks = DefaultRemarks(verb, b.role)
	}
	resp, err := b.client.AddAction(ctx, api.ActionRequest{
		TicketID: ticketID,
		Action:   string(verb),
		Remarks:  remarks,
	})
	if err != nil {
		return nil, err
	}
	b.processed[ticketID] = true
	return resp, nil
}

// ActAssigned is the assigned-dashboard variant: the decision carries
// the next assignee's role→email map, and blank remarks default to the
// shorter dashboard strings.
func (b *Board) ActAssigned(ctx context.Context, ticketID int, verb Verb, remarks string, next api.User) (*api.ActionResponse, error) {
	if b.processed[ticketID] {
		return nil, ErrAlreadyProcessed
	}
	remarks = strings.TrimSpace(remarks)
	if remarks == "" {
		if verb == Approve {
			remarks = "Checked and approved"
		} else {
			remarks = "Rejected"
		}
	}
	resp, err := b.client.AddAction(ctx, api.ActionRequest{
		TicketID:     ticketID,
		Action:       string(verb),
		Remarks:      remarks,
		RoleEmailMap: map[string]string{next.Role: next.Email},
	})
	if err != nil {
		return nil, err
	}
	b.processed[ticketID] = true
	return resp, nil
}

// DefaultRemarks is the role-stamped fallback used when the approver
// leaves the remarks field blank.
func DefaultRemarks(verb Verb, role string) string {
	if verb == Reject {
		return "Rejected by " + role
	}
	return "Approved by " + role
}

// Fetch loads and scopes the ticket list for the viewer.
func Fetch(ctx context.Context, client *api.Client, role string, viewerID int) ([]api.Ticket, error) {
	scope := ScopeFor(role)
	var (
		items []api.Ticket
		err   error
	)
	if scope.FetchAll {
		items, err = client.AllTickets(ctx)
	} else {
		items, err = client.TicketsList(ctx, viewerID)
	}
	if err != nil {
		return nil, err
	}
	out := scope.Apply(items, viewerID)
	SortNewestFirst(out)
	return out, nil
}
