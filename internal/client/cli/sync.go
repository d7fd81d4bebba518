package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/slicedsoap/wolfnotes/internal/client/swproxy"
)

func (a *App) syncNow(ctx context.Context) {
	pending, err := a.cache.Outbox.Count(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if pending == 0 {
		fmt.Fprintln(a.out, "Nothing to sync")
		return
	}

	fmt.Fprintf(a.out, "Syncing %d queued upload(s)...\n", pending)
	drained := a.reconciler.Run(ctx)
	fmt.Fprintf(a.out, "Synced %d, %d still queued\n", drained, pending-drained)
}

// openPage renders a frontend page through the interception proxy, so it
// works offline from the precached asset set.
func (a *App) openPage(ctx context.Context, path string) {
	resp, err := a.proxy.Fetch(ctx, swproxy.Request{
		Method:      http.MethodGet,
		Path:        path,
		Mode:        swproxy.ModeNavigate,
		Destination: "document",
	})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	origin := ""
	switch resp.Source {
	case swproxy.FromCache:
		origin = " (cached)"
	case swproxy.FromFallback:
		origin = " (offline fallback)"
	}
	fmt.Fprintf(a.out, "%d %s%s, %d bytes\n", resp.Status, resp.ContentType, origin, len(resp.Body))
}
