package main

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"invprime/internal/api"
	"invprime/internal/tickets"
	"invprime/internal/tui"
)

func (a *app) cmdTickets(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: invctl tickets <list|create|approve|reject|history|assigned|set-status|board>")
		os.Exit(1)
	}
	switch args[0] {
	case "list":
		a.ticketsList(args[1:])
	case "create":
		a.ticketsCreate(args[1:])
	case "approve":
		a.ticketsAct(tickets.Approve, args[1:])
	case "reject":
		a.ticketsAct(tickets.Reject, args[1:])
	case "history":
		a.ticketsHistory(args[1:])
	case "assigned":
		a.ticketsAssigned()
	case "set-status":
		a.ticketsSetStatus(args[1:])
	case "board":
		a.ticketsBoard()
	default:
		fmt.Fprintf(os.Stderr, "unknown tickets subcommand: %s\n", args[0])
		os.Exit(1)
	}
}

func (a *app) ticketsList(args []string) {
	fs := pflag.NewFlagSet("tickets list", pflag.ExitOnError)
	search := fs.String("search", "", "filter by text in title or description")
	status := fs.String("status", "ALL", "filter by exact status")
	fs.Parse(args)

	userID, role := a.requireSession()
	items, err := tickets.Fetch(a.ctx, a.client, role, userID)
	if err != nil {
		fail(err)
	}
	items = tickets.Filter(items, *search, *status)
	if len(items) == 0 {
		fmt.Println("No tickets found")
		return
	}
	printTicketTable(items)
}

func (a *app) ticketsCreate(args []string) {
	fs := pflag.NewFlagSet("tickets create", pflag.ExitOnError)
	ticketType := fs.String("type", "", `ticket type (e.g. "General Issue")`)
	title := fs.String("title", "", "short summary")
	description := fs.String("description", "", "full description")
	assignTo := fs.Int("assign", 0, "user id to assign the first step to")
	assignEmail := fs.String("assign-email", "", "email of the assignee")
	fs.Parse(args)

	userID, role := a.requireSession()
	if *ticketType == "" || *title == "" || *description == "" {
		fmt.Fprintln(os.Stderr, "error: --type, --title and --description are required")
		os.Exit(1)
	}

	resp, err := a.client.CreateTicket(a.ctx, api.CreateTicketRequest{
		EmployeeID:      userID,
		TicketType:      *ticketType,
		Title:           *title,
		Description:     *description,
		AssignedTo:      *assignTo,
		AssignedToEmail: *assignEmail,
		Role:            role,
	})
	if err != nil {
		fail(err)
	}
	fmt.Printf("%s (ticket %d)\n", resp.Message, resp.TicketID)
}

func (a *app) ticketsAct(verb tickets.Verb, args []string) {
	fs := pflag.NewFlagSet("tickets action", pflag.ExitOnError)
	remarks := fs.String("remarks", "", "decision remarks (defaults to a role-stamped note)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: invctl tickets approve|reject <id> [--remarks ...]")
		os.Exit(1)
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: ticket id must be a number")
		os.Exit(1)
	}

	_, role := a.requireSession()
	board := tickets.NewBoard(a.client, role)
	resp, err := board.Act(a.ctx, id, verb, *remarks)
	if err != nil {
		fail(err)
	}
	fmt.Printf("ticket %d: %s (%s)\n", resp.TicketID, resp.Action, resp.Remarks)
}

func (a *app) ticketsHistory(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: invctl tickets history <id>")
		os.Exit(1)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: ticket id must be a number")
		os.Exit(1)
	}
	a.requireSession()

	histories, err := a.client.TicketHistory(a.ctx, id)
	if err != nil {
		fail(err)
	}
	if len(histories) == 0 {
		fmt.Println("No history found")
		return
	}
	printHistory(histories[0])
}

func (a *app) ticketsAssigned() {
	userID, _ := a.requireSession()
	resp, err := a.client.AssignedTickets(a.ctx, userID)
	if err != nil {
		fail(err)
	}
	if len(resp.Tickets) == 0 {
		fmt.Println("No assigned tickets found")
		return
	}
	for _, t := range resp.Tickets {
		fmt.Printf("#%-4d %-30s %-22s step %d (%s) from %s\n",
			t.TicketID, truncate(t.Title, 30), tickets.DisplayStatus(t.Status),
			t.CurrentStep, t.CurrentRole, t.Employee.Name)
	}
}

// ticketsSetStatus is the legacy direct-status write the admin screens
// still use; it bypasses the workflow entirely.
func (a *app) ticketsSetStatus(args []string) {
	fs := pflag.NewFlagSet("tickets set-status", pflag.ExitOnError)
	employee := fs.Int("employee", 0, "employee whose tickets to update")
	status := fs.String("status", "", "new status value")
	fs.Parse(args)

	a.requireSession()
	if *employee == 0 || *status == "" {
		fmt.Fprintln(os.Stderr, "error: --employee and --status are required")
		os.Exit(1)
	}
	resp, err := a.client.UpdateTicketStatus(a.ctx, api.UpdateTicketStatusRequest{
		EmployeeID: *employee,
		Status:     *status,
	})
	if err != nil {
		fail(err)
	}
	fmt.Println(resp.Message)
}

func (a *app) ticketsBoard() {
	userID, role := a.requireSession()
	m := tui.NewBoard(a.client, role, userID)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fail(err)
	}
}
