package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"invprime/internal/tickets"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	approvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

func statusStyle(status string) lipgloss.Style {
	s := strings.ToUpper(status)
	switch {
	case tickets.HasPending(s):
		return pendingStyle
	case strings.Contains(s, "REJECTED"):
		return rejectedStyle
	case strings.Contains(s, "APPROVED") || strings.Contains(s, "COMPLETED"):
		return approvedStyle
	default:
		return dimStyle
	}
}

// View implements tea.Model.
func (b Board) View() string {
	if b.focus == focusHistory && b.history != nil {
		return b.historyView()
	}

	var out strings.Builder
	out.WriteString(titleStyle.Render(fmt.Sprintf("Ticket Board — %s", b.role)))
	if b.statusFilter != "" && b.statusFilter != "ALL" {
		out.WriteString(dimStyle.Render(fmt.Sprintf("  [status: %s]", b.statusFilter)))
	}
	out.WriteString("\n")

	if b.focus == focusFilter || b.filter.Value() != "" {
		out.WriteString(b.filter.View())
		out.WriteString("\n")
	}

	switch {
	case b.loading:
		out.WriteString(b.spin.View() + " loading…\n")
	case len(b.visible) == 0:
		out.WriteString(dimStyle.Render("No tickets found") + "\n")
	default:
		out.WriteString(headerStyle.Render(fmt.Sprintf("  %-5s %-32s %-20s %-24s", "ID", "TITLE", "TYPE", "STATUS")))
		out.WriteString("\n")
		for i, t := range b.visible {
			line := fmt.Sprintf("  %-5d %-32s %-20s %-24s",
				t.ID, clip(t.Title, 32), clip(tickets.DisplayType(t.TicketType), 20),
				tickets.DisplayStatus(t.Status))
			switch {
			case i == b.cursor:
				line = selectedStyle.Render(line)
			case b.board.Processed(t.ID):
				line = dimStyle.Render(line)
			default:
				line = statusStyle(t.Status).Render(line)
			}
			out.WriteString(line)
			out.WriteString("\n")
		}
	}

	if b.focus == focusRemarks {
		verb := "Approve"
		if b.pendingVerb == tickets.Reject {
			verb = "Reject"
		}
		out.WriteString(promptStyle.Render(fmt.Sprintf("%s ticket %d — remarks:", verb, b.pendingID)))
		out.WriteString("\n")
		out.WriteString(b.remarks.View())
		out.WriteString("\n")
	}

	out.WriteString(b.statusBar())
	return out.String()
}

func (b Board) historyView() string {
	h := b.history
	var out strings.Builder
	out.WriteString(titleStyle.Render(fmt.Sprintf("#%d %s", h.TicketID, h.Title)))
	out.WriteString("  ")
	out.WriteString(statusStyle(h.Status).Render(tickets.DisplayStatus(h.Status)))
	out.WriteString("\n\n")
	for _, step := range h.Steps {
		mark := "○"
		if step.ActionDate != "" {
			mark = "●"
		}
		line := fmt.Sprintf("  %s step %d  %-16s sla %dh  %-10s %s",
			mark, step.StepOrder, step.Role, step.SLAHours, step.State, step.Remarks)
		out.WriteString(statusStyle(step.State).Render(line))
		out.WriteString("\n")
	}
	if label := tickets.WaitingLabel(h.Status); label != "" {
		out.WriteString("\n" + dimStyle.Render(label) + "\n")
	}
	out.WriteString("\n" + dimStyle.Render("esc back") + "\n")
	return out.String()
}

func (b Board) statusBar() string {
	switch {
	case b.errMsg != "":
		return errorStyle.Render(b.errMsg) + "\n"
	case b.notice != "":
		return noticeStyle.Render(b.notice) + "\n"
	}
	keys := "j/k move · enter history · / search · s status · R refresh · q quit"
	if tickets.IsApproverRole(b.role) {
		keys = "j/k move · a approve · r reject · enter history · / search · s status · R refresh · q quit"
	}
	return dimStyle.Render(keys) + "\n"
}

// clip shortens s to n runes, ellipsis included.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
