// Package swproxy is the request interception layer: a background actor that
// answers every outbound page and resource request before the network does,
// sitting between the page and the wire like a browser service worker.
//
// The actor runs in its own goroutine and shares no memory with the caller;
// communication happens only through the request/response contract (Fetch)
// and the control channel (Post). The only shared resource underneath is the
// structured local cache, whose static_assets container backs the versioned
// asset cache.
//
// Routing policy per request:
//   - page navigation: network first; on failure an exact route table, then
//     a prefix rule, then the default document, then the offline document;
//   - anything under /api: always passed through to the network, never
//     cached — offline semantics for API data live in the accessors;
//   - non-GET: always passed through;
//   - otherwise (static asset): cache first, fetch-and-store on a miss, and
//     a content-type-appropriate fallback when the network is gone too.
package swproxy
