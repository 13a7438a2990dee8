package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaykumar/jobportal-cli/internal/client/models"
)

func TestCompanies_RefreshesThenListsStoreContents(t *testing.T) {
	lines := muteOutput(t)

	app, _, companies := newTestApp(t)
	app.companyStore.Replace([]models.Company{
		{ID: "c1", Name: "Globex", Location: "Pune"},
		{ID: "c2", Name: "Initech"},
	})

	err := app.Companies(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, companies.refreshCalls)
	assert.Contains(t, *lines, "  Globex (Pune)")
	assert.Contains(t, *lines, "  Initech")
}

func TestCompanies_EmptyStoreShowsPlaceholder(t *testing.T) {
	lines := muteOutput(t)

	app, _, companies := newTestApp(t)

	err := app.Companies(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, companies.refreshCalls)
	assert.Contains(t, *lines, "No companies to show.")
}

func TestProfile_GuestIsAskedToSignIn(t *testing.T) {
	lines := muteOutput(t)

	app, _, _ := newTestApp(t)

	err := app.Profile(context.Background())
	require.NoError(t, err)

	assert.Contains(t, *lines, "Sign in to view your profile.")
}

func TestProfile_ShowsAccountDetails(t *testing.T) {
	lines := muteOutput(t)

	app, _, _ := newTestApp(t)
	u := studentUser()
	u.PhoneNumber = "9876543210"
	u.Profile.Bio = "Final year CS student"
	app.session.SetUser(u)

	err := app.Profile(context.Background())
	require.NoError(t, err)

	assert.Contains(t, *lines, "Name:  Priya Sharma")
	assert.Contains(t, *lines, "Email: priya@example.com")
	assert.Contains(t, *lines, "Phone: 9876543210")
	assert.Contains(t, *lines, "Bio:   Final year CS student")
}

func TestStatus_ReflectsSession(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.Equal(t, "guest", app.status())

	app.session.SetUser(studentUser())
	assert.Equal(t, "Priya Sharma (student)", app.status())
}

func TestMenu_FollowsSession(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.Equal(t, "anonymous", string(app.menu().Variant))

	app.session.SetUser(recruiterUser())
	assert.Equal(t, "recruiter", string(app.menu().Variant))
}
