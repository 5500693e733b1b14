package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"invprime/internal/api"
	"invprime/internal/tickets"
)

// focusRegion identifies where keyboard input routes.
type focusRegion int

const (
	// focusList means navigation keys move the ticket cursor.
	focusList focusRegion = iota
	// focusFilter means keystrokes go to the search input.
	focusFilter
	// focusRemarks means an approve/reject decision is staged and
	// keystrokes go to the remarks input. Enter submits, escape
	// cancels without sending anything.
	focusRemarks
	// focusHistory means the step history overlay is open.
	focusHistory
)

// requestTimeout bounds every network command issued by the board.
const requestTimeout = 15 * time.Second

// noticeFadeDelay is how long a status-bar notice stays visible.
const noticeFadeDelay = 3 * time.Second

type ticketsLoadedMsg struct {
	items []api.Ticket
}

type historyLoadedMsg struct {
	history api.TicketHistory
}

// actionDoneMsg is sent when an approve/reject call completes. The
// processed latch was already set by the policy layer before this
// message is delivered.
type actionDoneMsg struct {
	resp *api.ActionResponse
}

type errMsg struct {
	err error
}

type noticeFadeMsg struct{}

// Board is the bubbletea model for the interactive ticket board.
type Board struct {
	client *api.Client
	board  *tickets.Board
	role   string
	userID int

	width  int
	height int

	loading bool
	spin    spinner.Model

	// items is the scoped fetch result; visible is items after the
	// search and status filters.
	items   []api.Ticket
	visible []api.Ticket
	cursor  int

	focus        focusRegion
	filter       textinput.Model
	statusFilter string

	// Staged decision, valid while focus == focusRemarks.
	pendingID   int
	pendingVerb tickets.Verb
	remarks     textinput.Model

	history *api.TicketHistory

	notice string
	errMsg string
}

// NewBoard builds the board for one signed-in viewer.
func NewBoard(client *api.Client, role string, userID int) Board {
	filter := textinput.New()
	filter.Placeholder = "search title or description"
	filter.CharLimit = 120

	remarks := textinput.New()
	remarks.Placeholder = "remarks (blank for the default)"
	remarks.CharLimit = 300

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Board{
		client:       client,
		board:        tickets.NewBoard(client, role),
		role:         role,
		userID:       userID,
		loading:      true,
		spin:         sp,
		filter:       filter,
		remarks:      remarks,
		statusFilter: "ALL",
	}
}

// Init implements tea.Model: start the spinner and the first fetch.
func (b Board) Init() tea.Cmd {
	return tea.Batch(b.spin.Tick, b.fetchCmd())
}

func (b Board) fetchCmd() tea.Cmd {
	client, role, userID := b.client, b.role, b.userID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		items, err := tickets.Fetch(ctx, client, role, userID)
		if err != nil {
			return errMsg{err}
		}
		return ticketsLoadedMsg{items}
	}
}

func (b Board) historyCmd(ticketID int) tea.Cmd {
	client := b.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		histories, err := client.TicketHistory(ctx, ticketID)
		if err != nil {
			return errMsg{err}
		}
		if len(histories) == 0 {
			return errMsg{fmt.Errorf("no history for ticket %d", ticketID)}
		}
		return historyLoadedMsg{histories[0]}
	}
}

func (b Board) actCmd(ticketID int, verb tickets.Verb, remarks string) tea.Cmd {
	board := b.board
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		resp, err := board.Act(ctx, ticketID, verb, remarks)
		if err != nil {
			return errMsg{err}
		}
		return actionDoneMsg{resp}
	}
}

func noticeFadeCmd() tea.Cmd {
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{}
	})
}

// Update implements tea.Model.
func (b Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		return b, nil

	case spinner.TickMsg:
		if !b.loading {
			return b, nil
		}
		var cmd tea.Cmd
		b.spin, cmd = b.spin.Update(msg)
		return b, cmd

	case ticketsLoadedMsg:
		b.loading = false
		b.items = msg.items
		b.applyFilter()
		return b, nil

	case historyLoadedMsg:
		b.loading = false
		h := msg.history
		b.history = &h
		b.focus = focusHistory
		return b, nil

	case actionDoneMsg:
		b.loading = true
		b.notice = fmt.Sprintf("ticket %d: %s", msg.resp.TicketID, msg.resp.Action)
		b.errMsg = ""
		return b, tea.Batch(b.spin.Tick, b.fetchCmd(), noticeFadeCmd())

	case errMsg:
		b.loading = false
		b.errMsg = userMessage(msg.err)
		return b, noticeFadeCmd()

	case noticeFadeMsg:
		b.notice = ""
		b.errMsg = ""
		return b, nil

	case tea.KeyMsg:
		return b.handleKey(msg)
	}
	return b, nil
}

func (b Board) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits, whatever has focus.
	if msg.Type == tea.KeyCtrlC {
		return b, tea.Quit
	}

	switch b.focus {
	case focusFilter:
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			b.focus = focusList
			b.filter.Blur()
			return b, nil
		}
		var cmd tea.Cmd
		b.filter, cmd = b.filter.Update(msg)
		b.applyFilter()
		return b, cmd

	case focusRemarks:
		switch msg.Type {
		case tea.KeyEsc:
			b.focus = focusList
			b.remarks.Blur()
			return b, nil
		case tea.KeyEnter:
			b.focus = focusList
			b.remarks.Blur()
			b.loading = true
			return b, tea.Batch(b.spin.Tick, b.actCmd(b.pendingID, b.pendingVerb, b.remarks.Value()))
		}
		var cmd tea.Cmd
		b.remarks, cmd = b.remarks.Update(msg)
		return b, cmd

	case focusHistory:
		switch msg.String() {
		case "esc", "q", "enter", "h":
			b.focus = focusList
			b.history = nil
		}
		return b, nil
	}

	// focusList.
	switch msg.String() {
	case "q":
		return b, tea.Quit
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < len(b.visible)-1 {
			b.cursor++
		}
	case "/":
		b.focus = focusFilter
		return b, b.filter.Focus()
	case "s":
		b.cycleStatusFilter()
	case "R":
		b.loading = true
		return b, tea.Batch(b.spin.Tick, b.fetchCmd())
	case "h", "enter":
		if t, ok := b.selected(); ok {
			b.loading = true
			return b, tea.Batch(b.spin.Tick, b.historyCmd(t.ID))
		}
	case "a":
		return b.stageDecision(tickets.Approve)
	case "r":
		return b.stageDecision(tickets.Reject)
	}
	return b, nil
}

// stageDecision opens the remarks prompt for the selected ticket, or
// explains in the status bar why it cannot be acted on.
func (b Board) stageDecision(verb tickets.Verb) (tea.Model, tea.Cmd) {
	t, ok := b.selected()
	if !ok {
		return b, nil
	}
	if b.board.Processed(t.ID) {
		b.errMsg = fmt.Sprintf("ticket %d already processed in this session", t.ID)
		return b, noticeFadeCmd()
	}
	if !b.board.CanAct(t) {
		b.errMsg = fmt.Sprintf("%s cannot act on %s", b.role, tickets.DisplayStatus(t.Status))
		return b, noticeFadeCmd()
	}
	b.pendingID = t.ID
	b.pendingVerb = verb
	b.remarks.SetValue("")
	b.remarks.Placeholder = tickets.DefaultRemarks(verb, b.role)
	b.focus = focusRemarks
	return b, b.remarks.Focus()
}

func (b *Board) selected() (api.Ticket, bool) {
	if b.cursor < 0 || b.cursor >= len(b.visible) {
		return api.Ticket{}, false
	}
	return b.visible[b.cursor], true
}

// applyFilter recomputes visible from items and clamps the cursor.
func (b *Board) applyFilter() {
	b.visible = tickets.Filter(b.items, b.filter.Value(), b.statusFilter)
	if b.cursor >= len(b.visible) {
		b.cursor = len(b.visible) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
}

// cycleStatusFilter steps through ALL plus the statuses present in the
// current fetch.
func (b *Board) cycleStatusFilter() {
	options := append([]string{"ALL"}, tickets.Statuses(b.items)...)
	next := 0
	for i, opt := range options {
		if opt == b.statusFilter {
			next = (i + 1) % len(options)
			break
		}
	}
	b.statusFilter = options[next]
	b.applyFilter()
}

// userMessage extracts the backend's error text when there is one.
func userMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return err.Error()
}
