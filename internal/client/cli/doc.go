// Package cli provides the interactive WolfNotes command-line client.
//
// It wires configuration, the local cache, API services, the sync reconciler
// and the static-asset proxy behind an interactive REPL that keeps working
// offline. Typical flow: start the connectivity watcher, prompt for
// credentials, and execute user commands against the services layer.
//
// Key features:
//   - Login / Logout with a cached-profile fallback when the server is down
//   - Browse classes, rosters and notes, served from cache while offline
//   - Upload notes; offline uploads are queued and replayed on reconnect
//   - Sync on demand or automatically on the offline→online transition
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and StartOnlineStatusWatcher for details.
package cli
