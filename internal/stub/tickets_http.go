package stub

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"invprime/internal/api"
	"invprime/internal/utils"
)

type ticketHTTP struct {
	store *Store
}

func newTicketHTTP(s *Store) *ticketHTTP {
	return &ticketHTTP{store: s}
}

// POST /api/tickets/create/
func (h *ticketHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in api.CreateTicketRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		in.Title = strings.TrimSpace(in.Title)
		in.Description = strings.TrimSpace(in.Description)
		if in.EmployeeID == 0 || in.TicketType == "" || in.Title == "" || in.Description == "" {
			utils.Error(w, http.StatusBadRequest, "employee_id, ticket_type, title and description are required")
			return
		}
		t := h.store.createTicket(in)
		utils.JSON(w, http.StatusCreated, api.CreateTicketResponse{
			Message:  "Ticket created",
			Remarks:  "Routed to " + t.Status,
			TicketID: t.ID,
		})
	}
}

// POST /api/tickets/action/{ticketID}/
func (h *ticketHTTP) Action() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "ticketID"))
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid ticket id")
			return
		}
		var in api.ActionRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		t, err := h.store.applyAction(id, in.Action, in.Remarks)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, errTicketNotFound) {
				status = http.StatusNotFound
			}
			utils.Error(w, status, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, api.ActionResponse{
			Action:       strings.ToUpper(in.Action),
			TicketID:     t.ID,
			Remarks:      in.Remarks,
			RoleEmailMap: in.RoleEmailMap,
			Role:         in.Role,
		})
	}
}

// GET /api/tickets/list/?employee_id=
func (h *ticketHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employeeID := utils.QueryInt(r.URL.Query(), "employee_id", 0)
		items := h.store.ticketList(employeeID)
		if items == nil {
			items = []api.Ticket{}
		}
		utils.JSON(w, http.StatusOK, items)
	}
}

// GET /api/tickets/list/all/
func (h *ticketHTTP) ListAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := h.store.ticketList(0)
		if items == nil {
			items = []api.Ticket{}
		}
		utils.JSON(w, http.StatusOK, items)
	}
}

// GET /api/tickets/dashboard/{userID}/
func (h *ticketHTTP) Assigned() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "userID"))
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid user id")
			return
		}
		items := h.store.assignedTickets(id)
		if items == nil {
			items = []api.AssignedTicket{}
		}
		utils.JSON(w, http.StatusOK, api.AssignedTicketsResponse{
			Message: "Assigned tickets",
			Tickets: items,
			Total:   len(items),
		})
	}
}

// GET /api/tickets/ticket-history/ticket/{ticketID}/
//
// The contract returns an array of history projections; today it always
// holds exactly one element for the requested ticket.
func (h *ticketHTTP) History() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "ticketID"))
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid ticket id")
			return
		}
		hist, err := h.store.ticketHistory(id)
		if err != nil {
			utils.Error(w, http.StatusNotFound, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, []api.TicketHistory{*hist})
	}
}

// PUT /api/tickets/update-ticket-status/
func (h *ticketHTTP) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in api.UpdateTicketStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if in.Status == "" {
			utils.Error(w, http.StatusBadRequest, "status is required")
			return
		}
		n, err := h.store.updateTicketStatus(in.EmployeeID, in.Status)
		if err != nil {
			utils.Error(w, http.StatusNotFound, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, api.MessageResponse{
			Message: "Updated " + strconv.Itoa(n) + " ticket(s)",
		})
	}
}

// GET /api/dashboard/employee/{employeeID}/summary/
func (h *ticketHTTP) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "employeeID"))
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid employee id")
			return
		}
		summary, err := h.store.employeeSummary(id)
		if err != nil {
			utils.Error(w, http.StatusNotFound, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, summary)
	}
}

// GET /api/tickets/workflows/
func (h *ticketHTTP) ListWorkflows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.store.mu.Lock()
		out := make([]api.Workflow, 0, len(h.store.workflows))
		for i := 1; i < h.store.nextWF; i++ {
			if wf, ok := h.store.workflows[i]; ok {
				out = append(out, *wf)
			}
		}
		h.store.mu.Unlock()
		utils.JSON(w, http.StatusOK, out)
	}
}

// POST /api/workflows/create-with-roles/
func (h *ticketHTTP) CreateWorkflow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in api.CreateWorkflowRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if strings.TrimSpace(in.WorkflowName) == "" || len(in.Steps) == 0 {
			utils.Error(w, http.StatusBadRequest, "workflow_name and steps are required")
			return
		}
		version, _ := strconv.Atoi(strings.SplitN(in.Version, ".", 2)[0])
		if version == 0 {
			version = 1
		}
		steps := make([]api.WorkflowStep, 0, len(in.Steps))
		for i, st := range in.Steps {
			if st.Role == "" {
				utils.Error(w, http.StatusBadRequest, "every step needs a role")
				return
			}
			if st.SLAHours <= 0 {
				utils.Error(w, http.StatusBadRequest, "every step needs sla_hours > 0")
				return
			}
			order := st.StepOrder
			if order == 0 {
				order = i + 1
			}
			steps = append(steps, api.WorkflowStep{StepOrder: order, Role: st.Role, SLAHours: st.SLAHours})
		}
		wf := h.store.addWorkflow(&api.Workflow{
			TicketType:   in.TicketType,
			Version:      version,
			WorkflowName: strings.TrimSpace(in.WorkflowName),
			Description:  strings.TrimSpace(in.Description),
			IsActive:     true,
			Steps:        steps,
		})
		utils.JSON(w, http.StatusCreated, api.CreateWorkflowResponse{
			WorkflowID:   wf.WorkflowID,
			WorkflowName: wf.WorkflowName,
			Version:      wf.Version,
			IsActive:     wf.IsActive,
		})
	}
}
