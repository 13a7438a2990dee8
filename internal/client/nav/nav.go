// Package nav derives the navigation menu from the session state.
//
// Derivation is pure: the same session always yields the same menu, and every
// rendering (wide or narrow) is a layout transform of one Menu value, never a
// separate state source.
package nav

import "github.com/jaykumar/jobportal-cli/internal/client/models"

// Variant names the navigation menu shown for a session state.
type Variant string

const (
	VariantAnonymous Variant = "anonymous"
	VariantStudent   Variant = "student"
	VariantRecruiter Variant = "recruiter"
)

// VariantFor computes the menu variant for the given user. A nil user is
// anonymous; any authenticated non-recruiter gets the student variant.
func VariantFor(u *models.User) Variant {
	switch {
	case u == nil:
		return VariantAnonymous
	case u.Role == models.RoleRecruiter:
		return VariantRecruiter
	default:
		return VariantStudent
	}
}

// Link is a top-level navigation entry.
type Link struct {
	Title string
	Route string
}

// Action is a menu action the visitor can trigger: the entry actions of the
// anonymous menu (Login, Signup) or the account-menu items of a signed-in
// visitor (View Profile, Logout).
type Action struct {
	Title   string
	Command string
}

// Menu is the derived set of links and actions for one session state.
type Menu struct {
	Variant Variant
	Links   []Link
	Actions []Action
}

// MenuFor derives the full menu for the given user.
func MenuFor(u *models.User) Menu {
	v := VariantFor(u)

	switch v {
	case VariantRecruiter:
		return Menu{
			Variant: v,
			Links: []Link{
				{Title: "Companies", Route: "/admin/companies"},
				{Title: "Jobs", Route: "/admin/jobs"},
			},
			Actions: []Action{
				{Title: "Logout", Command: "logout"},
			},
		}
	case VariantStudent:
		return Menu{
			Variant: v,
			Links: []Link{
				{Title: "Home", Route: "/"},
				{Title: "Jobs", Route: "/jobs"},
				{Title: "Browse", Route: "/browse"},
			},
			Actions: []Action{
				{Title: "View Profile", Command: "profile"},
				{Title: "Logout", Command: "logout"},
			},
		}
	default:
		return Menu{
			Variant: v,
			Links: []Link{
				{Title: "Home", Route: "/"},
				{Title: "Jobs", Route: "/jobs"},
				{Title: "Browse", Route: "/browse"},
			},
			Actions: []Action{
				{Title: "Login", Command: "login"},
				{Title: "Signup", Command: "signup"},
			},
		}
	}
}
