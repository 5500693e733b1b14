package main

import (
	"fmt"
	"sort"

	"invprime/internal/tickets"
)

// cmdDashboard renders the landing summary: ticket counts by outcome,
// then the asset quick stats.
func (a *app) cmdDashboard() {
	userID, _ := a.requireSession()
	summary, err := a.client.EmployeeSummary(a.ctx, userID)
	if err != nil {
		fail(err)
	}

	fmt.Printf("%s (%s)\n\n", headerStyle.Render(summary.Employee.Name), summary.Employee.Role)

	byStatus := summary.Tickets.ByStatus
	pending := 0
	for status, n := range byStatus {
		if tickets.HasPending(status) {
			pending += n
		}
	}
	fmt.Println(headerStyle.Render("Tickets"))
	fmt.Printf("  %-14s %d\n", "Total Created", summary.Tickets.TotalCreated)
	fmt.Printf("  %-14s %s\n", "Approved", approvedChip.Render(fmt.Sprintf("%d", byStatus["APPROVED"])))
	fmt.Printf("  %-14s %s\n", "Rejected", rejectedChip.Render(fmt.Sprintf("%d", byStatus["REJECTED"])))
	fmt.Printf("  %-14s %s\n", "Pending", pendingChip.Render(fmt.Sprintf("%d", pending)))

	fmt.Println(headerStyle.Render("Assets"))
	fmt.Printf("  %-14s %d\n", "Asset rows", summary.Assets.TotalAssetsRows)
	fmt.Printf("  %-14s %d\n", "Units issued", summary.Assets.TotalQuantityIssued)
	for _, status := range sortedKeys(summary.Assets.ByStatus) {
		fmt.Printf("  %-14s %d\n", tickets.DisplayStatus(status), summary.Assets.ByStatus[status])
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
