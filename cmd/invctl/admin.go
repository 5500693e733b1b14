package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"invprime/internal/api"
	"invprime/internal/workflow"
)

func (a *app) cmdRoles(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: invctl roles <list|add|toggle>")
		os.Exit(1)
	}
	switch args[0] {
	case "list":
		a.rolesList()
	case "add":
		a.rolesAdd(args[1:])
	case "toggle":
		a.rolesToggle(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown roles subcommand: %s\n", args[0])
		os.Exit(1)
	}
}

func (a *app) rolesList() {
	a.requireSession()
	roles, err := a.client.Roles(a.ctx)
	if err != nil {
		fail(err)
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-5s %-20s %s", "ID", "NAME", "ACTIVE")))
	for _, r := range roles {
		active := "yes"
		if !r.IsActive {
			active = "no"
		}
		fmt.Printf("%-5d %-20s %s\n", r.ID, r.Name, active)
	}
}

func (a *app) rolesAdd(args []string) {
	fs := pflag.NewFlagSet("roles add", pflag.ExitOnError)
	name := fs.String("name", "", "role name, e.g. TEAM_LEAD")
	fs.Parse(args)

	a.requireSession()
	if err := workflow.ValidateRoleName(*name); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	resp, err := a.client.CreateRole(a.ctx, strings.ToUpper(strings.TrimSpace(*name)))
	if err != nil {
		fail(err)
	}
	if resp.Created {
		fmt.Printf("role %s created (id %d)\n", resp.Name, resp.ID)
	} else {
		fmt.Printf("role %s already exists (id %d)\n", resp.Name, resp.ID)
	}
}

func (a *app) rolesToggle(args []string) {
	fs := pflag.NewFlagSet("roles toggle", pflag.ExitOnError)
	active := fs.Bool("active", true, "whether the role should be active")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: invctl roles toggle <id> [--active=false]")
		os.Exit(1)
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: role id must be a number")
		os.Exit(1)
	}

	a.requireSession()
	role, err := a.client.SetRoleActive(a.ctx, id, *active)
	if err != nil {
		fail(err)
	}
	state := "active"
	if !role.IsActive {
		state = "inactive"
	}
	fmt.Printf("role %s is now %s\n", role.Name, state)
}

func (a *app) cmdWorkflows(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: invctl workflows <list|create>")
		os.Exit(1)
	}
	switch args[0] {
	case "list":
		a.workflowsList()
	case "create":
		a.workflowsCreate(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown workflows subcommand: %s\n", args[0])
		os.Exit(1)
	}
}

func (a *app) workflowsList() {
	a.requireSession()
	flows, err := a.client.Workflows(a.ctx)
	if err != nil {
		fail(err)
	}
	if len(flows) == 0 {
		fmt.Println("No workflows found")
		return
	}
	for _, wf := range flows {
		fmt.Printf("%s #%d v%d (%s)\n", headerStyle.Render(wf.WorkflowName), wf.WorkflowID, wf.Version, wf.TicketType)
		for _, s := range wf.Steps {
			fmt.Printf("  %d. %-16s %dh\n", s.StepOrder, s.Role, s.SLAHours)
		}
	}
}

// workflowsCreate builds the approval chain from repeated --step flags,
// each "ROLE:SLA_HOURS", in the order given.
func (a *app) workflowsCreate(args []string) {
	fs := pflag.NewFlagSet("workflows create", pflag.ExitOnError)
	name := fs.String("name", "", "workflow name")
	description := fs.String("description", "", "what the workflow is for")
	version := fs.String("version", "1", "workflow version")
	ticketType := fs.String("type", "", "ticket type this workflow routes")
	steps := fs.StringArray("step", nil, `approval step as "ROLE:SLA_HOURS" (repeatable)`)
	fs.Parse(args)

	a.requireSession()

	form := workflow.Form{
		Name:        *name,
		Description: *description,
		Version:     *version,
		TicketType:  *ticketType,
	}
	for _, raw := range *steps {
		role, slaText, ok := strings.Cut(raw, ":")
		if !ok {
			fmt.Fprintf(os.Stderr, "error: bad --step %q, want ROLE:SLA_HOURS\n", raw)
			os.Exit(1)
		}
		sla, err := strconv.Atoi(slaText)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: bad SLA in --step %q\n", raw)
			os.Exit(1)
		}
		form.Steps = append(form.Steps, api.WorkflowStep{Role: role, SLAHours: sla})
	}

	if err := form.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	resp, err := a.client.CreateWorkflow(a.ctx, form.Payload())
	if err != nil {
		fail(err)
	}
	fmt.Printf("workflow %s created (id %d, v%d)\n", resp.WorkflowName, resp.WorkflowID, resp.Version)
}

func (a *app) cmdUsers(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: invctl users <list|register|update|delete>")
		os.Exit(1)
	}
	switch args[0] {
	case "list":
		a.usersList()
	case "register":
		a.usersRegister(args[1:])
	case "update":
		a.usersUpdate(args[1:])
	case "delete":
		a.usersDelete(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown users subcommand: %s\n", args[0])
		os.Exit(1)
	}
}

func (a *app) usersList() {
	a.requireSession()
	resp, err := a.client.Users(a.ctx)
	if err != nil {
		fail(err)
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-5s %-24s %-28s %s", "ID", "NAME", "EMAIL", "ROLE")))
	for _, u := range resp.Users {
		fmt.Printf("%-5d %-24s %-28s %s\n", u.ID, truncate(u.Name, 24), u.Email, u.Role)
	}
}

func (a *app) usersRegister(args []string) {
	fs := pflag.NewFlagSet("users register", pflag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "initial password (6+ characters)")
	role := fs.String("role", "", "role name (defaults to EMPLOYEE)")
	designation := fs.String("designation", "", "job title")
	joinDate := fs.String("join-date", "", "join date (YYYY-MM-DD)")
	fs.Parse(args)

	a.requireSession()
	if *name == "" || *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "error: --name, --email and --password are required")
		os.Exit(1)
	}
	resp, err := a.client.Register(a.ctx, api.RegisterRequest{
		Name:        *name,
		Email:       *email,
		Password:    *password,
		Role:        *role,
		Designation: *designation,
		JoinDate:    *joinDate,
	})
	if err != nil {
		fail(err)
	}
	fmt.Printf("%s (user %d, role %s)\n", resp.Message, resp.ID, resp.Role)
}

func (a *app) usersUpdate(args []string) {
	fs := pflag.NewFlagSet("users update", pflag.ExitOnError)
	id := fs.Int("id", 0, "user id")
	name := fs.String("name", "", "new name")
	role := fs.String("role", "", "new role")
	designation := fs.String("designation", "", "new job title")
	status := fs.String("employment-status", "", "new employment status")
	fs.Parse(args)

	a.requireSession()
	if *id == 0 {
		fmt.Fprintln(os.Stderr, "error: --id is required")
		os.Exit(1)
	}
	resp, err := a.client.UpdateUser(a.ctx, api.UpdateUserRequest{
		ID:               *id,
		Name:             *name,
		Role:             *role,
		Designation:      *designation,
		EmploymentStatus: *status,
	})
	if err != nil {
		fail(err)
	}
	fmt.Println(resp.Message)
}

func (a *app) usersDelete(args []string) {
	fs := pflag.NewFlagSet("users delete", pflag.ExitOnError)
	id := fs.Int("id", 0, "user id")
	fs.Parse(args)

	a.requireSession()
	if *id == 0 {
		fmt.Fprintln(os.Stderr, "error: --id is required")
		os.Exit(1)
	}
	resp, err := a.client.DeleteUser(a.ctx, *id)
	if err != nil {
		fail(err)
	}
	fmt.Println(resp.Message)
}
