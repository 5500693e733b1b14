// invctl is the terminal client for the Kavprime inventory and ticket
// backend. It signs in against the REST API, keeps the session in a
// local state file, and exposes the dashboard screens as subcommands;
// "invctl tickets board" opens the interactive board.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"invprime/internal/api"
	"invprime/internal/config"
	"invprime/internal/nav"
	"invprime/internal/session"
	"invprime/pkg/logger"
)

type app struct {
	ctx     context.Context
	cfg     config.Config
	client  *api.Client
	session *session.Store
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(0)
	}

	cfg := config.Load()
	l := logger.NewConsole(os.Stderr, cfg.Env)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a := &app{
		ctx:     ctx,
		cfg:     cfg,
		client:  api.New(cfg.BaseURL, api.WithLogger(l)),
		session: session.NewStore(cfg.StateDir),
	}

	switch os.Args[1] {
	case "login":
		a.cmdLogin(os.Args[2:])
	case "logout":
		a.cmdLogout()
	case "whoami":
		a.cmdWhoami()
	case "nav":
		a.cmdNav()
	case "dashboard":
		a.cmdDashboard()
	case "tickets":
		a.cmdTickets(os.Args[2:])
	case "inventory":
		a.cmdInventory(os.Args[2:])
	case "assets":
		a.cmdAssets(os.Args[2:])
	case "roles":
		a.cmdRoles(os.Args[2:])
	case "workflows":
		a.cmdWorkflows(os.Args[2:])
	case "users":
		a.cmdUsers(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`usage: invctl <command> [flags]

  login --email <email> --password <password>
  logout
  whoami
  nav
  dashboard
  tickets   list|create|approve|reject|history|assigned|set-status|board
  inventory list|add|update|issue|delete
  assets    [--employee N] [--inventory N] [--id N]
  roles     list|add|toggle
  workflows list|create
  users     list|register|update|delete

Environment: KAVPRIME_API_BASE_URL, INVPRIME_STATE_DIR, APP_ENV`)
}

// fail prints the user-facing form of an error and exits. Server
// errors surface the message the backend sent; everything else prints
// as-is. This is the CLI's transient-notification channel.
func fail(err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		fmt.Fprintln(os.Stderr, "error:", apiErr.Message())
	} else {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(1)
}

// requireSession loads the stored identity or exits.
func (a *app) requireSession() (int, string) {
	id, role := a.session.Read()
	if id == nil {
		fmt.Fprintln(os.Stderr, "not logged in; run: invctl login --email <email> --password <password>")
		os.Exit(1)
	}
	return *id, role
}

func (a *app) cmdLogin(args []string) {
	fs := pflag.NewFlagSet("login", pflag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: invctl login --email <email> --password <password>")
		os.Exit(1)
	}

	resp, err := a.client.Login(a.ctx, *email, *password)
	if err != nil {
		fail(err)
	}
	if err := a.session.Save(resp.UserID, resp.Role); err != nil {
		fail(fmt.Errorf("save session: %w", err))
	}
	fmt.Printf("%s (user %d, role %s)\n", resp.Message, resp.UserID, resp.Role)
}

func (a *app) cmdLogout() {
	if err := a.session.Clear(); err != nil {
		fail(err)
	}
	fmt.Println("logged out")
}

func (a *app) cmdWhoami() {
	id, role := a.session.Read()
	if id == nil {
		fmt.Println("not logged in")
		return
	}
	fmt.Printf("user %d, role %s\n", *id, role)
}

func (a *app) cmdNav() {
	_, role := a.requireSession()
	for _, item := range nav.Resolve(role) {
		fmt.Printf("%-24s %s\n", item.Title, item.Path)
	}
}
