// Package services contains the offline-aware data accessors of the
// WolfNotes client.
//
// Reads attempt the network gateway first; a successful response is written
// through into the local cache and returned as live data. When the network is
// unreachable the equivalent cached data is returned instead, tagged as a
// cache fallback. Note uploads performed while offline are not errors: they
// are stored in the outbox and reported as queued.
//
// gateway.ErrUnauthorized and *gateway.APIError always propagate to the
// caller; gateway.ErrNetworkUnreachable and cache failures are absorbed here
// and converted into fallback or queued paths.
package services
