package tickets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"invprime/internal/api"
)

// actionServer records decision requests and answers with the verb it
// received, echoing the backend's response shape.
func actionServer(t *testing.T, status int) (*api.Client, *[]api.ActionRequest) {
	t.Helper()
	var seen []api.ActionRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /tickets/action/", func(w http.ResponseWriter, r *http.Request) {
		var req api.ActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode action request: %v", err)
		}
		seen = append(seen, req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status >= 400 {
			json.NewEncoder(w).Encode(map[string]string{"error": "workflow step mismatch"})
			return
		}
		json.NewEncoder(w).Encode(api.ActionResponse{
			Action:   req.Action,
			TicketID: req.TicketID,
			Remarks:  req.Remarks,
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return api.New(srv.URL), &seen
}

func TestBoardActDefaultsRemarks(t *testing.T) {
	client, seen := actionServer(t, http.StatusOK)
	b := NewBoard(client, "pmo")

	resp, err := b.Act(context.Background(), 5, Approve, "   ")
	if err != nil {
		t.Fatalf("Act: %v", err)
	}
	if resp.Remarks != "Approved by PMO" {
		t.Errorf("remarks = %q, want the role-stamped default", resp.Remarks)
	}
	if len(*seen) != 1 || (*seen)[0].Action != "APPROVE" {
		t.Errorf("sent requests = %+v, want one upper-cased APPROVE", *seen)
	}
}

func TestBoardActRejectDefault(t *testing.T) {
	client, _ := actionServer(t, http.StatusOK)
	b := NewBoard(client, "SENIOR_PMO")

	resp, err := b.Act(context.Background(), 9, Reject, "")
	if err != nil {
		t.Fatalf("Act: %v", err)
	}
	if resp.Remarks != "Rejected by SENIOR_PMO" {
		t.Errorf("remarks = %q", resp.Remarks)
	}
}

func TestBoardActExplicitRemarksKept(t *testing.T) {
	client, seen := actionServer(t, http.StatusOK)
	b := NewBoard(client, "PMO")

	if _, err := b.Act(context.Background(), 5, Approve, "looks fine"); err != nil {
		t.Fatalf("Act: %v", err)
	}
	if (*seen)[0].Remarks != "looks fine" {
		t.Errorf("remarks = %q, want the caller's text", (*seen)[0].Remarks)
	}
}

func TestBoardLatchesOnlyOnSuccess(t *testing.T) {
	client, seen := actionServer(t, http.StatusConflict)
	b := NewBoard(client, "PMO")

	_, err := b.Act(context.Background(), 5, Approve, "")
	if err == nil {
		t.Fatal("Act against a failing server should error")
	}
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Message() != "workflow step mismatch" {
		t.Errorf("err = %v, want the server's message", err)
	}
	if b.Processed(5) {
		t.Fatal("a failed decision must not latch the ticket")
	}

	// The ticket stays actionable: a retry reaches the server again.
	_, _ = b.Act(context.Background(), 5, Approve, "")
	if len(*seen) != 2 {
		t.Fatalf("server saw %d requests, want 2", len(*seen))
	}
}

func TestBoardRefusesDuplicateDecision(t *testing.T) {
	client, seen := actionServer(t, http.StatusOK)
	b := NewBoard(client, "PMO")

	if _, err := b.Act(context.Background(), 5, Approve, ""); err != nil {
		t.Fatalf("first Act: %v", err)
	}
	if !b.Processed(5) {
		t.Fatal("successful decision must latch")
	}

	_, err := b.Act(context.Background(), 5, Reject, "")
	if !errors.Is(err, ErrAlreadyProcessed) {
		t.Fatalf("second Act err = %v, want ErrAlreadyProcessed", err)
	}
	if len(*seen) != 1 {
		t.Fatalf("server saw %d requests, want 1: the latch blocks before the network", len(*seen))
	}

	// Other tickets are unaffected.
	if b.Processed(6) {
		t.Error("latch leaked onto another ticket")
	}
	if !b.CanAct(api.Ticket{ID: 6, Status: "PENDING_TEAM_PMO"}) {
		t.Error("board should still act on an unprocessed pending ticket")
	}
	if b.CanAct(api.Ticket{ID: 5, Status: "PENDING_TEAM_PMO"}) {
		t.Error("board must refuse the latched ticket")
	}
}

func TestBoardActAssignedCarriesRouteMap(t *testing.T) {
	client, seen := actionServer(t, http.StatusOK)
	b := NewBoard(client, "PMO")

	next := api.User{Role: "SENIOR_PMO", Email: "sam@kavprime.local"}
	if _, err := b.ActAssigned(context.Background(), 7, Approve, "", next); err != nil {
		t.Fatalf("ActAssigned: %v", err)
	}
	got := (*seen)[0]
	if got.Remarks != "Checked and approved" {
		t.Errorf("remarks = %q", got.Remarks)
	}
	if got.RoleEmailMap["SENIOR_PMO"] != "sam@kavprime.local" {
		t.Errorf("role_email_map = %v", got.RoleEmailMap)
	}
}
