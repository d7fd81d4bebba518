// Package sync drains the outbox: note uploads queued while offline are
// replayed against the server once connectivity returns.
package sync

import (
	"context"
	"sync/atomic"

	"github.com/slicedsoap/wolfnotes/internal/client/gateway"
	"github.com/slicedsoap/wolfnotes/internal/client/repositories/outbox"
	"github.com/slicedsoap/wolfnotes/internal/logging"
)

// Reconciler replays queued uploads in FIFO creation order. A failed entry
// stays queued and does not block later entries; there is no retry limit or
// backoff — the next online transition simply runs another pass.
type Reconciler struct {
	client    gateway.Client
	outbox    outbox.Repository
	onRefresh func(classIDs []string)
	log       logging.Logger

	running atomic.Bool
	rerun   atomic.Bool
}

// New builds a Reconciler. onRefresh is invoked after any pass that drained
// at least one entry, with the distinct class ids that gained notes; the app
// uses it to reload the affected views. It may be nil.
func New(client gateway.Client, ob outbox.Repository, onRefresh func(classIDs []string), log logging.Logger) *Reconciler {
	return &Reconciler{
		client:    client,
		outbox:    ob,
		onRefresh: onRefresh,
		log:       log.With("component", "sync"),
	}
}

// Run executes a drain pass. Passes are serialized: a call arriving while a
// pass is in flight is coalesced into one rerun afterwards, so a queued
// entry can never be applied twice. Returns the number of entries drained
// across the pass and any coalesced reruns.
func (r *Reconciler) Run(ctx context.Context) int {
	if !r.running.CompareAndSwap(false, true) {
		r.rerun.Store(true)
		return 0
	}
	defer r.running.Store(false)

	total := 0
	for {
		total += r.pass(ctx)
		if !r.rerun.Swap(false) {
			return total
		}
	}
}

func (r *Reconciler) pass(ctx context.Context) int {
	entries, err := r.outbox.GetAll(ctx)
	if err != nil {
		r.log.Warn(ctx, "cannot read outbox", "err", err)
		return 0
	}
	if len(entries) == 0 {
		return 0
	}

	r.log.Info(ctx, "drain pass started", "pending", len(entries))

	drained := 0
	classSeen := make(map[string]bool)
	var classIDs []string

	for _, e := range entries {
		if ctx.Err() != nil {
			break
		}

		err := r.client.UploadNote(ctx, e.ClassID, e.Title, e.FileName, e.FileType, e.FileBlob)
		if err != nil {
			// the entry stays queued for a future pass
			r.log.Warn(ctx, "replay failed", "temp_id", e.TempID, "class_id", e.ClassID, "err", err)
			continue
		}

		if derr := r.outbox.DeleteByID(ctx, e.TempID); derr != nil {
			r.log.Error(ctx, "cannot remove synced entry", "temp_id", e.TempID, "err", derr)
			continue
		}

		drained++
		if !classSeen[e.ClassID] {
			classSeen[e.ClassID] = true
			classIDs = append(classIDs, e.ClassID)
		}
	}

	if drained > 0 {
		r.log.Info(ctx, "drain pass complete", "drained", drained, "remaining", len(entries)-drained)
		if r.onRefresh != nil {
			r.onRefresh(classIDs)
		}
	}
	return drained
}
