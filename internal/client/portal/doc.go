// Package portal contains the API gateway of the recruitment-portal client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) to talk to the
//     portal backend: Register, Login, Logout, Session and the protected
//     Companies read.
//  2. A concrete HTTP implementation (see HTTPClient) that manages a cookie
//     jar for session identity, builds the multipart registration payload,
//     attaches the bearer token to protected reads, and maps transport and
//     server failures to sentinel errors.
//
// # Credentials
//
// Two independent credential channels are part of the server contract and
// must not be collapsed into one:
//   - session-mutating calls (register, login, logout, session fetch) rely on
//     the cookie-carried session identity held in the client's jar;
//   - protected reads additionally carry an opaque bearer token in the
//     Authorization header.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is / errors.As: ErrUnavailable (transport failed, no response
// was received), ErrMalformedResponse (a response arrived but could not be
// decoded), and *RejectionError (the server answered success:false).
package portal
