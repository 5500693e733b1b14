package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// CreateTicket opens a new ticket. Invalidates Tickets so list views
// refetch.
func (c *Client) CreateTicket(ctx context.Context, req CreateTicketRequest) (*CreateTicketResponse, error) {
	var out CreateTicketResponse
	if err := c.send(ctx, "POST", "/tickets/create/", req, &out, TagTickets); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddAction submits an approve/reject decision for a ticket. The verb
// is normalized to upper case on the way out.
func (c *Client) AddAction(ctx context.Context, req ActionRequest) (*ActionResponse, error) {
	req.Action = strings.ToUpper(strings.TrimSpace(req.Action))
	var out ActionResponse
	path := fmt.Sprintf("/tickets/action/%d/", req.TicketID)
	if err := c.send(ctx, "POST", path, req, &out, TagTickets); err != nil {
		return nil, err
	}
	return &out, nil
}

// TicketsList returns the tickets visible to one employee.
func (c *Client) TicketsList(ctx context.Context, employeeID int) ([]Ticket, error) {
	q := url.Values{"employee_id": {strconv.Itoa(employeeID)}}
	var out []Ticket
	if err := c.get(ctx, TagTickets, "/tickets/list/", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllTickets returns every ticket (admin and approver dashboards).
func (c *Client) AllTickets(ctx context.Context) ([]Ticket, error) {
	var out []Ticket
	if err := c.get(ctx, TagTickets, "/tickets/list/all/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignedTickets returns the approver dashboard for userID.
func (c *Client) AssignedTickets(ctx context.Context, userID int) (*AssignedTicketsResponse, error) {
	var out AssignedTicketsResponse
	path := fmt.Sprintf("/tickets/dashboard/%d/", userID)
	if err := c.get(ctx, TagTickets, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TicketHistory returns the step history for one ticket.
func (c *Client) TicketHistory(ctx context.Context, ticketID int) ([]TicketHistory, error) {
	var out []TicketHistory
	path := fmt.Sprintf("/tickets/ticket-history/ticket/%d/", ticketID)
	if err := c.get(ctx, TagTickets, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EmployeeSummary returns the landing-dashboard counts for one
// employee. Cached under Tickets, so any ticket mutation refreshes it.
func (c *Client) EmployeeSummary(ctx context.Context, employeeID int) (*EmployeeDashboardResponse, error) {
	var out EmployeeDashboardResponse
	path := fmt.Sprintf("/dashboard/employee/%d/summary/", employeeID)
	if err := c.get(ctx, TagTickets, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTicketStatus is the legacy direct-status write. Kept because
// the admin screens still call it.
func (c *Client) UpdateTicketStatus(ctx context.Context, req UpdateTicketStatusRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.send(ctx, "PUT", "/tickets/update-ticket-status/", req, &out, TagTickets); err != nil {
		return nil, err
	}
	return &out, nil
}
