// Command console is the terminal admin console: login, role-gated
// navigation, user and project tables, profile, logout.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/teampulse/admin-console/internal/client/apiclient"
	"github.com/teampulse/admin-console/internal/client/forms"
	"github.com/teampulse/admin-console/internal/client/gateway"
	"github.com/teampulse/admin-console/internal/client/resource"
	"github.com/teampulse/admin-console/internal/client/routes"
	"github.com/teampulse/admin-console/internal/client/session"
	"github.com/teampulse/admin-console/internal/core/domain"
	"github.com/teampulse/admin-console/internal/infrastructure/config"
	"github.com/teampulse/admin-console/pkg/logger"
)

// terminalSink prints notifications to the terminal.
type terminalSink struct{}

func (terminalSink) Success(msg string) { fmt.Println("✔", msg) }
func (terminalSink) Error(msg string)   { fmt.Println("✖", msg) }

// terminalConfirmer asks a blocking yes/no question on stdin.
type terminalConfirmer struct {
	in *bufio.Reader
}

func (c *terminalConfirmer) Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

type console struct {
	in       *bufio.Reader
	store    *session.Store
	guard    *routes.Guard
	users    *gateway.Users
	projects *gateway.Projects
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Output: os.Stderr})

	sessionFile := cfg.Console.SessionFile
	if sessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal().Err(err).Msg("cannot resolve home directory")
		}
		sessionFile = filepath.Join(home, ".admin-console", "session.json")
	}

	in := bufio.NewReader(os.Stdin)
	sink := terminalSink{}

	store := session.NewStore(session.NewFileStore(sessionFile), nil, sink, &terminalConfirmer{in: in}, log)
	store.Initialize()

	api := apiclient.New(cfg.Console.APIBaseURL, cfg.Console.RequestTimeout, store, sink, func() {
		fmt.Println("Redirecting to login...")
	}, log)

	c := &console{
		in:       in,
		store:    store,
		guard:    routes.NewGuard(store),
		users:    gateway.NewUsers(api, sink),
		projects: gateway.NewProjects(api, sink),
	}
	c.run(context.Background())
}

func (c *console) run(ctx context.Context) {
	for {
		if !c.store.Authenticated() {
			if !c.login() {
				return
			}
			continue
		}

		path, quit := c.navigate()
		if quit {
			return
		}
		if path == "/logout" {
			c.store.Logout()
			continue
		}

		switch c.guard.Evaluate(path) {
		case routes.Resolving:
			fmt.Println("Loading...")
		case routes.Unauthenticated:
			fmt.Println("Please login to continue.")
		case routes.Denied:
			fmt.Println("403 — You are not authorized to view this page.")
		case routes.Allowed:
			c.render(ctx, path)
		}
	}
}

// login prompts for credentials until a login succeeds. Returns false on EOF.
func (c *console) login() bool {
	fmt.Print("Email: ")
	email, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	fmt.Print("Password: ")
	password, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}

	form := forms.LoginForm{
		Email:    strings.TrimSpace(email),
		Password: strings.TrimSpace(password),
	}
	if problems := forms.Check(form); len(problems) > 0 {
		for field, msg := range problems {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return true
	}

	_, _ = c.store.Login(form.Email, form.Password)
	return true
}

// navigate shows the role-filtered menu and reads the next path.
func (c *console) navigate() (string, bool) {
	fmt.Println()
	fmt.Println("Navigation:")
	for _, path := range routes.Visible(c.store.Principal()) {
		fmt.Println("  ", path)
	}
	fmt.Println("   /logout")
	fmt.Print("> ")

	line, err := c.in.ReadString('\n')
	if err != nil {
		return "", true
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "/dashboard", false
	}
	if path != "/logout" && !routes.Known(path) {
		fmt.Println("404 — Page not found.")
		return c.navigate()
	}
	return path, false
}

func (c *console) render(ctx context.Context, path string) {
	switch path {
	case "/dashboard":
		c.renderDashboard(ctx)
	case "/users":
		c.renderUsers(ctx)
	case "/projects":
		c.renderProjects(ctx)
	case "/profile":
		c.renderProfile()
	}
}

func (c *console) renderDashboard(ctx context.Context) {
	p := c.store.Principal()
	fmt.Printf("\nWelcome back, %s! Role: %s\n", p.Name, strings.ToUpper(string(p.Role)))

	projectLoader := resource.NewLoader(c.projects.List, terminalSink{})
	projectLoader.Load(ctx)
	projects, ok := projectLoader.Data()
	if !ok {
		return
	}

	active, completed := 0, 0
	for _, pr := range projects {
		switch pr.Status {
		case domain.StatusActive:
			active++
		case domain.StatusCompleted:
			completed++
		}
	}
	fmt.Printf("Projects: %d total, %d active, %d completed\n", len(projects), active, completed)

	// User statistics are only shown to roles that may open /users.
	if c.store.HasPermission(domain.RoleAdmin, domain.RoleManager) {
		userLoader := resource.NewLoader(c.users.List, terminalSink{})
		userLoader.Load(ctx)
		if users, ok := userLoader.Data(); ok {
			fmt.Printf("Users: %d total\n", len(users))
		}
	}
}

func (c *console) renderUsers(ctx context.Context) {
	loader := resource.NewLoader(c.users.List, terminalSink{})
	loader.Load(ctx)
	users, ok := loader.Data()
	if !ok {
		return
	}
	fmt.Printf("\n%-36s  %-20s  %-28s  %-8s\n", "ID", "NAME", "EMAIL", "ROLE")
	for _, u := range users {
		fmt.Printf("%-36s  %-20s  %-28s  %-8s\n", u.ID, u.Name, u.Email, u.Role)
	}
}

func (c *console) renderProjects(ctx context.Context) {
	loader := resource.NewLoader(c.projects.List, terminalSink{})
	loader.Load(ctx)
	projects, ok := loader.Data()
	if !ok {
		return
	}
	fmt.Printf("\n%-36s  %-30s  %-10s  %-20s\n", "ID", "TITLE", "STATUS", "MANAGER")
	for _, p := range projects {
		fmt.Printf("%-36s  %-30s  %-10s  %-20s\n", p.ID, p.Title, p.Status, p.Manager)
	}
}

func (c *console) renderProfile() {
	p := c.store.Principal()
	fmt.Println("\nProfile")
	fmt.Println("  Name: ", p.Name)
	fmt.Println("  Email:", p.Email)
	fmt.Println("  Role: ", p.Role)
}
