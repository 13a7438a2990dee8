package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaykumar/jobportal-cli/internal/client/models"
	"github.com/jaykumar/jobportal-cli/internal/client/nav"
)

func recruiterUser() *models.User {
	return &models.User{ID: "r1", FullName: "Anil Rao", Role: models.RoleRecruiter}
}

func TestRenderNavbar_WideLayoutIsSingleLine(t *testing.T) {
	var b bytes.Buffer
	renderNavbar(&b, nav.MenuFor(nil), 120)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Campus Recruitment Portal", lines[0])
	assert.Equal(t, "Home | Jobs | Browse    [Login] [Signup]", lines[1])
}

func TestRenderNavbar_NarrowLayoutStacksItems(t *testing.T) {
	var b bytes.Buffer
	renderNavbar(&b, nav.MenuFor(nil), 40)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Campus Recruitment Portal", lines[0])
	assert.Equal(t, []string{"  Home", "  Jobs", "  Browse", "  [Login]", "  [Signup]"}, lines[1:])
}

// Both layouts must be renderings of the same menu: every link title and
// action title appears in both, for every session state.
func TestRenderNavbar_LayoutsShowTheSameItems(t *testing.T) {
	users := map[string]*models.User{
		"anonymous": nil,
		"student":   studentUser(),
		"recruiter": recruiterUser(),
	}

	for name, u := range users {
		t.Run(name, func(t *testing.T) {
			m := nav.MenuFor(u)

			var wide, narrow bytes.Buffer
			renderNavbar(&wide, m, 120)
			renderNavbar(&narrow, m, 40)

			for _, l := range m.Links {
				assert.Contains(t, wide.String(), l.Title)
				assert.Contains(t, narrow.String(), l.Title)
			}
			for _, act := range m.Actions {
				assert.Contains(t, wide.String(), "["+act.Title+"]")
				assert.Contains(t, narrow.String(), "["+act.Title+"]")
			}
		})
	}
}

func TestRenderNavbar_RecruiterHasNoStudentLinks(t *testing.T) {
	var b bytes.Buffer
	renderNavbar(&b, nav.MenuFor(recruiterUser()), 120)

	out := b.String()
	assert.Contains(t, out, "Companies")
	assert.Contains(t, out, "[Logout]")
	assert.NotContains(t, out, "Browse")
	assert.NotContains(t, out, "Home |")
}
