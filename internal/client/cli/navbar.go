package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jaykumar/jobportal-cli/internal/client/nav"
)

// narrowWidth is the terminal width below which the stacked layout is used.
const narrowWidth = 60

// termWidth is a test seam returning the current terminal width in columns.
var termWidth = func() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// renderNavbar writes the navigation bar for m to w.
//
// Wide terminals get the single-line layout, narrow ones the stacked layout.
// Both are transforms of the same Menu value: the set of links and actions is
// identical, only their arrangement differs.
func renderNavbar(w io.Writer, m nav.Menu, width int) {
	fmt.Fprintln(w, "Campus Recruitment Portal")

	if width < narrowWidth {
		for _, l := range m.Links {
			fmt.Fprintln(w, "  "+l.Title)
		}
		for _, act := range m.Actions {
			fmt.Fprintln(w, "  ["+act.Title+"]")
		}
		return
	}

	titles := make([]string, 0, len(m.Links))
	for _, l := range m.Links {
		titles = append(titles, l.Title)
	}
	actions := make([]string, 0, len(m.Actions))
	for _, act := range m.Actions {
		actions = append(actions, "["+act.Title+"]")
	}
	fmt.Fprintln(w, strings.Join(titles, " | ")+"    "+strings.Join(actions, " "))
}
