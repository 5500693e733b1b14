// Package stub is an in-memory fake of the Kavprime backend. It speaks
// the same wire contract as the real API so the CLI and TUI can run
// against it locally, and so client tests have a fixture that behaves
// like a server instead of a canned transcript. State lives in one
// mutex-guarded struct and is gone when the process exits.
package stub

import (
	"strings"
	"sync"
	"time"

	"invprime/internal/api"
	"invprime/internal/utils"
)

type userRecord struct {
	api.User
	passwordHash string
}

type ticketRecord struct {
	api.Ticket
	steps []api.TicketStep
}

// Store holds all backend state. Handlers are stateless; every read and
// write goes through the one lock.
type Store struct {
	mu sync.Mutex

	users      map[int]*userRecord
	roles      map[int]*api.Role
	workflows  map[int]*api.Workflow
	tickets    map[int]*ticketRecord
	inventory  map[int]*api.InventoryItem
	assets     map[int]*api.AssetDetail
	nextUser   int
	nextRole   int
	nextWF     int
	nextTicket int
	nextItem   int
	nextAsset  int
}

func NewStore() *Store {
	return &Store{
		users:      make(map[int]*userRecord),
		roles:      make(map[int]*api.Role),
		workflows:  make(map[int]*api.Workflow),
		tickets:    make(map[int]*ticketRecord),
		inventory:  make(map[int]*api.InventoryItem),
		assets:     make(map[int]*api.AssetDetail),
		nextUser:   1,
		nextRole:   1,
		nextWF:     1,
		nextTicket: 1,
		nextItem:   1,
		nextAsset:  1,
	}
}

// Seed loads the development dataset: the standard role set, one user
// per role (password "password123"), and a two-step approval workflow.
func (s *Store) Seed() {
	for _, name := range []string{"ADMIN", "EMPLOYEE", "PMO", "SENIOR_PMO", "FINANCE", "TEAM_PMO"} {
		s.addRole(name)
	}
	hash, _ := utils.HashPassword("password123")
	for _, u := range []struct{ name, email, role string }{
		{"Admin User", "admin@kavprime.local", "ADMIN"},
		{"Eve Employee", "eve@kavprime.local", "EMPLOYEE"},
		{"Pat PMO", "pat@kavprime.local", "PMO"},
		{"Sam Senior", "sam@kavprime.local", "SENIOR_PMO"},
		{"Fin Finance", "fin@kavprime.local", "FINANCE"},
	} {
		s.addUser(api.User{Name: u.name, Email: u.email, Role: u.role}, hash)
	}
	s.addWorkflow(&api.Workflow{
		TicketType:   "General Issue",
		Version:      1,
		WorkflowName: "Default Approval",
		Description:  "Team PMO review followed by senior sign-off",
		IsActive:     true,
		Steps: []api.WorkflowStep{
			{StepOrder: 1, Role: "TEAM_PMO", SLAHours: 24},
			{StepOrder: 2, Role: "SENIOR_PMO", SLAHours: 48},
		},
	})
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ---- users / roles (callers hold no lock; these take it) ----

func (s *Store) addUser(u api.User, hash string) *userRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextUser
	s.nextUser++
	rec := &userRecord{User: u, passwordHash: hash}
	s.users[u.ID] = rec
	return rec
}

func (s *Store) findUserByEmail(email string) *userRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}

func (s *Store) addRole(name string) *api.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.roles {
		if strings.EqualFold(r.Name, name) {
			return r
		}
	}
	r := &api.Role{ID: s.nextRole, Name: name, IsActive: true}
	s.nextRole++
	s.roles[r.ID] = r
	return r
}

// ---- workflows ----

func (s *Store) addWorkflow(w *api.Workflow) *api.Workflow {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.WorkflowID = s.nextWF
	s.nextWF++
	if w.CreatedAt == "" {
		w.CreatedAt = now()
	}
	s.workflows[w.WorkflowID] = w
	return w
}

// activeWorkflowFor picks the workflow for a new ticket: an active one
// matching the ticket type, else any active one. Returns nil when no
// workflow exists, in which case tickets start as plain PENDING.
func (s *Store) activeWorkflowFor(ticketType string) *api.Workflow {
	s.mu.Lock()
	defer s.mu.Unlock()
	var fallback *api.Workflow
	for i := 1; i < s.nextWF; i++ {
		w, ok := s.workflows[i]
		if !ok || !w.IsActive || len(w.Steps) == 0 {
			continue
		}
		if strings.EqualFold(w.TicketType, ticketType) {
			return w
		}
		if fallback == nil {
			fallback = w
		}
	}
	return fallback
}
