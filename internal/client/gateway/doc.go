// Package gateway contains the typed wrapper over the remote WolfNotes API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): auth,
//     classes, notes, rosters, enrollment — one method per remote operation.
//  2. A concrete HTTP implementation (see HTTPClient) that performs a single
//     JSON round trip per call, carries the session cookie in its jar, and
//     classifies failures into the error taxonomy below.
//
// # Error Handling
//
// Callers match conditions with errors.Is / errors.As:
//
//   - ErrNetworkUnreachable — the request never reached the server. This is
//     the trigger for cache fallback and outbox queueing; it is never shown
//     to the user as an error.
//   - ErrUnauthorized — 401; the caller redirects to login.
//   - *APIError — any other non-2xx, with the server's message attached.
//
// All operations accept context.Context and honor cancellation/timeouts.
package gateway
