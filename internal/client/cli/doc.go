// Package cli provides the interactive recruitment-portal command-line client.
//
// It wires configuration, local credential storage, API services, and an
// interactive REPL whose pages mirror the portal's routes. Typical flow:
// restore the session from the persisted cookie/token pair, render the
// navigation bar for the derived variant, and execute user commands.
//
// Key features:
//   - Signup with an optional profile-photo attachment
//   - Login / Logout
//   - Navigation menu derived from the session role (student, recruiter)
//   - Protected company listing for recruiters
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
