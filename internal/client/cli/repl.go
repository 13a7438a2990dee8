package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jaykumar/jobportal-cli/internal/client/nav"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

func newStdinScanner() *bufio.Scanner {
	return bufio.NewScanner(os.Stdin)
}

// execIface defines the minimal page surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	menu() nav.Menu
	Home(ctx context.Context) error
	Jobs(ctx context.Context) error
	Browse(ctx context.Context) error
	Companies(ctx context.Context) error
	Profile(ctx context.Context) error
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop over the portal pages.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current visitor (from statusFn). The help output is
// derived from the navigation menu, so the advertised commands always match
// the variant of the current session:
//
//	anonymous:  home, jobs, browse, login, signup
//	student:    home, jobs, browse, profile, logout
//	recruiter:  companies, jobs, logout
//
// "nav", "help" and "exit" are available everywhere. Commands outside the
// current menu are still dispatched; the server is the authority on what the
// visitor may actually do.
//
// Any errors returned by page handlers are ignored here; handlers notify the
// user themselves. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("portal %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: " + helpLine(a.menu()))

		case "nav", "home":
			_ = a.Home(ctx)

		case "jobs":
			_ = a.Jobs(ctx)

		case "browse":
			_ = a.Browse(ctx)

		case "companies":
			_ = a.Companies(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// helpLine flattens the menu into the list of commands it advertises.
func helpLine(m nav.Menu) string {
	var cmds []string
	for _, l := range m.Links {
		cmds = append(cmds, routeCommand(l.Route))
	}
	for _, act := range m.Actions {
		cmds = append(cmds, act.Command)
	}
	cmds = append(cmds, "exit")
	return strings.Join(cmds, ", ")
}

// routeCommand maps a navigation route to its REPL command.
func routeCommand(route string) string {
	switch route {
	case "/":
		return "home"
	case "/jobs", "/admin/jobs":
		return "jobs"
	case "/browse":
		return "browse"
	case "/admin/companies":
		return "companies"
	default:
		return strings.TrimPrefix(route, "/")
	}
}
