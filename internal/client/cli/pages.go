package cli

import (
	"context"
	"fmt"
	"strings"
)

// Home renders the navigation bar for the current session state.
func (a *App) Home(ctx context.Context) error {
	a.renderNav()
	return nil
}

// Jobs shows the job listings page. The listing itself is served by an API
// outside this client's scope; the page exists so navigation targets resolve.
func (a *App) Jobs(ctx context.Context) error {
	a.renderNav()
	printlnFn("No openings right now. Check back soon.")
	return nil
}

// Browse shows the browse page.
func (a *App) Browse(ctx context.Context) error {
	a.renderNav()
	printlnFn("Nothing to browse yet.")
	return nil
}

// Companies renders the protected company listing.
//
// The refresh follows the log-only failure policy: a failed fetch is recorded
// in the log and the page silently shows whatever the store already held.
func (a *App) Companies(ctx context.Context) error {
	a.companyService.Refresh(ctx)

	a.renderNav()
	companies := a.companyStore.All()
	if len(companies) == 0 {
		printlnFn("No companies to show.")
		return nil
	}
	for _, c := range companies {
		line := c.Name
		if c.Location != "" {
			line = fmt.Sprintf("%s (%s)", c.Name, c.Location)
		}
		printlnFn("  " + line)
	}
	return nil
}

// Profile shows the signed-in visitor's account details.
func (a *App) Profile(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Sign in to view your profile.")
		return nil
	}

	a.renderNav()
	printlnFn("Name:  " + u.FullName)
	printlnFn("Email: " + u.Email)
	printlnFn("Phone: " + u.PhoneNumber)
	if u.Profile.Bio != "" {
		printlnFn("Bio:   " + u.Profile.Bio)
	}
	return nil
}

func (a *App) renderNav() {
	var b strings.Builder
	renderNavbar(&b, a.menu(), termWidth())
	printlnFn(strings.TrimRight(b.String(), "\n"))
}
