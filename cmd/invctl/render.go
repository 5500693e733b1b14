package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"invprime/internal/api"
	"invprime/internal/tickets"
)

var (
	pendingChip  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	approvedChip = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	rejectedChip = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	neutralChip  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// statusChip colors a status the way the dashboard does: pending
// amber, approved/completed green, rejected red.
func statusChip(status string) string {
	label := tickets.DisplayStatus(status)
	switch {
	case tickets.HasPending(status):
		return pendingChip.Render(label)
	case label == "APPROVED" || label == "COMPLETED":
		return approvedChip.Render(label)
	case label == "REJECTED":
		return rejectedChip.Render(label)
	default:
		return neutralChip.Render(label)
	}
}

func printTicketTable(items []api.Ticket) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-5s %-32s %-20s %-24s %s", "ID", "TITLE", "TYPE", "STATUS", "CREATED")))
	for _, t := range items {
		fmt.Printf("%-5d %-32s %-20s %-24s %s\n",
			t.ID,
			truncate(t.Title, 32),
			truncate(tickets.DisplayType(t.TicketType), 20),
			statusChip(t.Status),
			t.CreatedAt,
		)
	}
}

func printHistory(h api.TicketHistory) {
	fmt.Printf("%s\n%s\n", headerStyle.Render(fmt.Sprintf("#%d %s", h.TicketID, h.Title)), statusChip(h.Status))
	for _, step := range h.Steps {
		mark := "○"
		if step.ActionDate != "" {
			mark = "●"
		}
		fmt.Printf("  %s step %d: %-16s sla %dh  %-10s %s  %s\n",
			mark, step.StepOrder, tickets.DisplayStatus(step.Role), step.SLAHours,
			step.State, step.ActionDate, step.Remarks)
	}
	if label := tickets.WaitingLabel(h.Status); label != "" {
		fmt.Println(neutralChip.Render(label))
	}
}

// truncate shortens s to n runes, ellipsis included. Cutting on runes
// keeps multi-byte titles valid.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
