// Package tickets holds the client-side ticket policy: status
// predicates, role-based list scoping, filtering, and the action
// controller with its duplicate-submission latch. The true workflow
// state machine lives server-side; everything here treats status as an
// opaque string.
package tickets

import "strings"

// The backend's status vocabulary is open-ended (PENDING_<ROLE>,
// APPROVED, REJECTED, COMPLETED, ...). These predicates pattern-match
// by substring, as a compatibility shim, instead of enumerating a set
// the server does not publish.

func HasPending(status string) bool {
	return strings.Contains(strings.ToUpper(status), "PENDING")
}

func IsTerminal(status string) bool {
	s := strings.ToUpper(status)
	return strings.Contains(s, "APPROVED") ||
		strings.Contains(s, "REJECTED") ||
		strings.Contains(s, "COMPLETED")
}

// CanAct reports whether a viewer with the given role may act on a
// ticket in the given status. PMO covers the TEAM_PMO step.
func CanAct(viewerRole, status string) bool {
	role := strings.ToUpper(strings.TrimSpace(viewerRole))
	s := strings.ToUpper(status)
	if IsTerminal(s) {
		return false
	}
	switch role {
	case "TEAM_PMO", "PMO":
		return strings.Contains(s, "PENDING_TEAM_PMO")
	case "SENIOR_PMO":
		return strings.Contains(s, "PENDING_SENIOR_PMO")
	case "ADMIN":
		return strings.Contains(s, "PENDING_ADMIN")
	default:
		return false
	}
}

// IsApproverRole reports whether the role ever sees action controls.
func IsApproverRole(role string) bool {
	switch strings.ToUpper(strings.TrimSpace(role)) {
	case "ADMIN", "SENIOR_PMO", "PMO", "TEAM_PMO":
		return true
	}
	return false
}

// WaitingLabel renders the "someone else's turn" indicator for a
// pending ticket, e.g. "Waiting for: PENDING SENIOR PMO". Empty when
// the ticket is not pending.
func WaitingLabel(status string) string {
	if !HasPending(status) {
		return ""
	}
	return "Waiting for: " + DisplayStatus(status)
}

// DisplayStatus is the human form of a status: underscores to spaces,
// upper case.
func DisplayStatus(status string) string {
	return strings.ToUpper(strings.ReplaceAll(status, "_", " "))
}

// DisplayType is the human form of a ticket type.
func DisplayType(ticketType string) string {
	return strings.ToUpper(strings.ReplaceAll(ticketType, "_", " "))
}
