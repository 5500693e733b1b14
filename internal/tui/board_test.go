package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"invprime/internal/api"
	"invprime/internal/tickets"
)

func loadedBoard(t *testing.T, role string, items []api.Ticket) Board {
	t.Helper()
	b := NewBoard(api.New("http://stub.invalid/api"), role, 10)
	m, _ := b.Update(ticketsLoadedMsg{items: items})
	return m.(Board)
}

func testTickets() []api.Ticket {
	return []api.Ticket{
		{ID: 1, EmployeeID: 10, Title: "Broken laptop", Description: "screen", Status: "PENDING_TEAM_PMO", CreatedAt: "2026-03-02T10:00:00Z"},
		{ID: 2, EmployeeID: 11, Title: "License renewal", Description: "IDE", Status: "APPROVED", CreatedAt: "2026-03-01T10:00:00Z"},
		{ID: 3, EmployeeID: 12, Title: "New chair", Description: "ergonomic", Status: "PENDING_SENIOR_PMO", CreatedAt: "2026-02-28T10:00:00Z"},
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLoadPopulatesList(t *testing.T) {
	b := loadedBoard(t, "ADMIN", testTickets())
	if b.loading {
		t.Error("loading must clear once tickets arrive")
	}
	if len(b.visible) != 3 {
		t.Fatalf("visible = %d rows, want 3", len(b.visible))
	}
	// Newest first.
	if b.visible[0].ID != 1 || b.visible[2].ID != 3 {
		t.Errorf("order = %v", []int{b.visible[0].ID, b.visible[1].ID, b.visible[2].ID})
	}
	view := b.View()
	if !strings.Contains(view, "Broken laptop") {
		t.Error("view missing a ticket title")
	}
}

func TestCursorMovement(t *testing.T) {
	b := loadedBoard(t, "ADMIN", testTickets())

	m, _ := b.Update(key("j"))
	b = m.(Board)
	if b.cursor != 1 {
		t.Fatalf("cursor after j = %d", b.cursor)
	}
	m, _ = b.Update(key("j"))
	b = m.(Board)
	m, _ = b.Update(key("j"))
	b = m.(Board)
	if b.cursor != 2 {
		t.Fatalf("cursor must clamp at the last row, got %d", b.cursor)
	}
	m, _ = b.Update(key("k"))
	b = m.(Board)
	if b.cursor != 1 {
		t.Fatalf("cursor after k = %d", b.cursor)
	}
}

func TestFilterNarrowsAndClampsCursor(t *testing.T) {
	b := loadedBoard(t, "ADMIN", testTickets())
	b.cursor = 2

	m, _ := b.Update(key("/"))
	b = m.(Board)
	if b.focus != focusFilter {
		t.Fatal("/ must focus the filter input")
	}
	for _, r := range "laptop" {
		m, _ = b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		b = m.(Board)
	}
	if len(b.visible) != 1 || b.visible[0].ID != 1 {
		t.Fatalf("filtered rows = %+v", b.visible)
	}
	if b.cursor != 0 {
		t.Fatalf("cursor must clamp into the narrowed list, got %d", b.cursor)
	}

	m, _ = b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	b = m.(Board)
	if b.focus != focusList {
		t.Error("enter must return focus to the list")
	}
}

func TestStatusFilterCycles(t *testing.T) {
	b := loadedBoard(t, "ADMIN", testTickets())
	m, _ := b.Update(key("s"))
	b = m.(Board)
	if b.statusFilter == "ALL" {
		t.Fatal("s must advance past ALL")
	}
	seen := map[string]bool{b.statusFilter: true}
	for i := 0; i < 3; i++ {
		m, _ = b.Update(key("s"))
		b = m.(Board)
		seen[b.statusFilter] = true
	}
	if !seen["ALL"] {
		t.Errorf("cycling must wrap back to ALL, saw %v", seen)
	}
}

func TestApproveOpensRemarksPromptForActionableTicket(t *testing.T) {
	b := loadedBoard(t, "PMO", []api.Ticket{
		{ID: 1, Title: "Broken laptop", Status: "PENDING_TEAM_PMO", CreatedAt: "2026-03-02T10:00:00Z"},
	})

	m, _ := b.Update(key("a"))
	b = m.(Board)
	if b.focus != focusRemarks {
		t.Fatalf("focus = %v, want the remarks prompt", b.focus)
	}
	if b.pendingID != 1 || b.pendingVerb != tickets.Approve {
		t.Errorf("staged decision = %d/%s", b.pendingID, b.pendingVerb)
	}
	if b.remarks.Placeholder != "Approved by PMO" {
		t.Errorf("placeholder = %q, want the default remark", b.remarks.Placeholder)
	}

	// Escape cancels without submitting.
	m, _ = b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	b = m.(Board)
	if b.focus != focusList || b.loading {
		t.Error("escape must drop back to the list without a request")
	}
}

func TestApproveRefusedOutsideViewerQueue(t *testing.T) {
	b := loadedBoard(t, "PMO", []api.Ticket{
		{ID: 2, Title: "Chair", Status: "PENDING_SENIOR_PMO", CreatedAt: "2026-03-02T10:00:00Z"},
	})

	m, cmd := b.Update(key("a"))
	b = m.(Board)
	if b.focus != focusList {
		t.Fatal("acting outside the queue must not open the prompt")
	}
	if b.errMsg == "" {
		t.Fatal("expected a status-bar explanation")
	}
	if cmd == nil {
		t.Error("the notice needs a fade timer")
	}
}

func TestActionResultTriggersRefetchAndNotice(t *testing.T) {
	b := loadedBoard(t, "PMO", testTickets())
	m, cmd := b.Update(actionDoneMsg{resp: &api.ActionResponse{TicketID: 1, Action: "APPROVE"}})
	b = m.(Board)
	if !b.loading {
		t.Error("a submitted decision must refetch the list")
	}
	if cmd == nil {
		t.Error("expected fetch and fade commands")
	}
	if !strings.Contains(b.notice, "ticket 1") {
		t.Errorf("notice = %q", b.notice)
	}
	m, _ = b.Update(noticeFadeMsg{})
	b = m.(Board)
	if b.notice != "" {
		t.Error("notice must fade")
	}
}

func TestHistoryOverlay(t *testing.T) {
	b := loadedBoard(t, "EMPLOYEE", testTickets())
	m, _ := b.Update(historyLoadedMsg{history: api.TicketHistory{
		TicketID: 1,
		Title:    "Broken laptop",
		Status:   "PENDING_SENIOR_PMO",
		Steps: []api.TicketStep{
			{StepOrder: 1, Role: "TEAM_PMO", SLAHours: 24, State: "APPROVED", ActionDate: "2026-03-02T11:00:00Z", Remarks: "ok"},
			{StepOrder: 2, Role: "SENIOR_PMO", SLAHours: 48, State: "PENDING"},
		},
	}})
	b = m.(Board)
	if b.focus != focusHistory {
		t.Fatal("history result must open the overlay")
	}
	view := b.View()
	if !strings.Contains(view, "Waiting for: PENDING SENIOR PMO") {
		t.Errorf("overlay missing the waiting label:\n%s", view)
	}
	if !strings.Contains(view, "TEAM_PMO") {
		t.Error("overlay missing step rows")
	}

	m, _ = b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	b = m.(Board)
	if b.focus != focusList || b.history != nil {
		t.Error("escape must close the overlay")
	}
}

func TestErrorMessageSurfacesServerText(t *testing.T) {
	b := loadedBoard(t, "PMO", testTickets())
	m, _ := b.Update(errMsg{err: &api.Error{Status: 409, Data: []byte(`{"error":"workflow step mismatch"}`)}})
	b = m.(Board)
	if b.errMsg != "workflow step mismatch" {
		t.Errorf("errMsg = %q, want the backend's text", b.errMsg)
	}
}

func TestClipIsRuneSafe(t *testing.T) {
	got := clip("プリンタが故障しました", 5)
	if got != "プリンタ…" {
		t.Errorf("clip = %q", got)
	}
	for _, r := range got {
		if r == '�' {
			t.Fatal("clip emitted a replacement rune")
		}
	}
	if clip("short", 20) != "short" {
		t.Error("clip must leave short strings alone")
	}
}

func TestQuitKeys(t *testing.T) {
	b := loadedBoard(t, "ADMIN", testTickets())
	_, cmd := b.Update(key("q"))
	if cmd == nil {
		t.Fatal("q must quit")
	}
	_, cmd = b.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c must quit")
	}
}
