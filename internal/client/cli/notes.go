package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slicedsoap/wolfnotes/internal/client/services"
)

func (a *App) myNotes(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Login first")
		return
	}

	res, err := a.notes.ByUser(ctx, a.user.ID)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if len(res.Data) == 0 {
		fmt.Fprintf(a.out, "No notes yet%s\n", sourceTag(res.Source))
		return
	}

	fmt.Fprintf(a.out, "My notes%s:\n", sourceTag(res.Source))
	for _, n := range res.Data {
		fmt.Fprintf(a.out, "  %s  %q class=%s (%d upvotes)\n", n.ID, n.Title, n.ClassID, n.Upvotes)
	}
}

func (a *App) uploadNote(ctx context.Context, classID, path string) {
	title, err := GetSimpleText(a.reader, "Note title", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(a.out, "cannot read file: %v\n", err)
		return
	}

	res, err := a.notes.Upload(ctx, classID, title, filepath.Base(path), "application/pdf", file)
	if err != nil {
		fmt.Fprintf(a.out, "Upload failed: %v\n", err)
		return
	}

	switch res.Status {
	case services.UploadCommitted:
		fmt.Fprintf(a.out, "Uploaded %q\n", title)
	case services.UploadQueued:
		fmt.Fprintf(a.out, "Offline: note queued for sync (temp id %d)\n", res.TempID)
	}
}

func (a *App) upvote(ctx context.Context, noteID string) {
	if err := a.notes.Upvote(ctx, noteID); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Upvoted")
}

func (a *App) download(ctx context.Context, noteID, dst string) {
	data, err := a.notes.Download(ctx, noteID)
	if err != nil {
		fmt.Fprintf(a.out, "Download failed: %v\n", err)
		return
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		fmt.Fprintf(a.out, "cannot write file: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Saved %d bytes to %s\n", len(data), dst)
}

func (a *App) deleteNote(ctx context.Context, noteID string) {
	if err := a.notes.Delete(ctx, noteID); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Note deleted")
}
