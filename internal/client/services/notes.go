package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/slicedsoap/wolfnotes/internal/client/cache"
	"github.com/slicedsoap/wolfnotes/internal/client/gateway"
	"github.com/slicedsoap/wolfnotes/internal/client/models"
	"github.com/slicedsoap/wolfnotes/internal/logging"
)

// UnknownAuthor is the display name used when an uploader cannot be resolved
// from the network or the author cache.
const UnknownAuthor = "Unknown Author"

// NotesService reads and writes notes with offline awareness.
type NotesService struct {
	client gateway.Client
	cache  *cache.Cache
	online func() bool
	log    logging.Logger
}

// NewNotesService wires the accessor to an API client, the cache handle and
// the connectivity flag maintained by the app's watcher.
func NewNotesService(client gateway.Client, c *cache.Cache, online func() bool, log logging.Logger) *NotesService {
	return &NotesService{client: client, cache: c, online: online, log: log.With("component", "notes")}
}

// ByClass returns the notes of one class: live on network success (cache
// refreshed), cached on network unreachability.
func (s *NotesService) ByClass(ctx context.Context, classID string) (Result[[]models.Note], error) {
	list, err := s.client.GetClassNotes(ctx, classID)
	if err == nil {
		if cerr := s.cache.Notes.SaveAll(ctx, list); cerr != nil {
			s.log.Warn(ctx, "write-through failed", "class_id", classID, "err", cerr)
		}
		return live(list), nil
	}
	if !errors.Is(err, gateway.ErrNetworkUnreachable) {
		return Result[[]models.Note]{}, err
	}

	cached, cerr := s.cache.Notes.GetByClass(ctx, classID)
	if cerr != nil {
		s.log.Warn(ctx, "cache read failed", "class_id", classID, "err", cerr)
		return fromCache[[]models.Note](nil), nil
	}
	return fromCache(cached), nil
}

// ByUser returns the notes uploaded by one user, with the same fallback
// semantics as ByClass.
func (s *NotesService) ByUser(ctx context.Context, userID string) (Result[[]models.Note], error) {
	list, err := s.client.GetUserNotes(ctx, userID)
	if err == nil {
		if cerr := s.cache.Notes.SaveAll(ctx, list); cerr != nil {
			s.log.Warn(ctx, "write-through failed", "user_id", userID, "err", cerr)
		}
		return live(list), nil
	}
	if !errors.Is(err, gateway.ErrNetworkUnreachable) {
		return Result[[]models.Note]{}, err
	}

	cached, cerr := s.cache.Notes.GetByUploader(ctx, userID)
	if cerr != nil {
		s.log.Warn(ctx, "cache read failed", "user_id", userID, "err", cerr)
		return fromCache[[]models.Note](nil), nil
	}
	return fromCache(cached), nil
}

// Upload sends a note to the server, or queues it in the outbox when the
// device is known offline or the call cannot reach the network.
func (s *NotesService) Upload(ctx context.Context, classID, title, fileName, fileType string, file []byte) (*UploadResult, error) {
	if s.online() {
		err := s.client.UploadNote(ctx, classID, title, fileName, fileType, file)
		if err == nil {
			// the commit response carries no record; refetch the class so
			// the cache picks up the server-assigned note
			if _, rerr := s.ByClass(ctx, classID); rerr != nil {
				s.log.Warn(ctx, "post-upload refresh failed", "class_id", classID, "err", rerr)
			}
			return &UploadResult{Status: UploadCommitted}, nil
		}
		if !errors.Is(err, gateway.ErrNetworkUnreachable) {
			return nil, err
		}
		// fell off the network mid-flight; queue like any offline write
	}

	tempID, err := s.cache.Outbox.Add(ctx, &models.PendingUpload{
		Title:     title,
		ClassID:   classID,
		FileBlob:  file,
		FileName:  fileName,
		FileType:  fileType,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to queue upload: %w", err)
	}

	s.log.Info(ctx, "upload queued for sync", "class_id", classID, "temp_id", tempID)
	return &UploadResult{Status: UploadQueued, TempID: tempID}, nil
}

// Upvote is an online-only write; application errors propagate.
func (s *NotesService) Upvote(ctx context.Context, noteID string) error {
	return s.client.UpvoteNote(ctx, noteID)
}

// Delete removes a note on the server and, on success, from the cache.
func (s *NotesService) Delete(ctx context.Context, noteID string) error {
	if err := s.client.DeleteNote(ctx, noteID); err != nil {
		return err
	}
	if cerr := s.cache.Notes.DeleteByID(ctx, noteID); cerr != nil {
		s.log.Warn(ctx, "cache delete failed", "note_id", noteID, "err", cerr)
	}
	return nil
}

// Download fetches the PDF body of a note. Bodies are never cached.
func (s *NotesService) Download(ctx context.Context, noteID string) ([]byte, error) {
	return s.client.DownloadNote(ctx, noteID)
}

// AuthorName resolves an uploader id to a display name: network first, then
// the author cache, then the UnknownAuthor placeholder. It never fails the
// caller over a lookup.
func (s *NotesService) AuthorName(ctx context.Context, userID string) string {
	u, err := s.client.GetUser(ctx, userID)
	if err == nil {
		author := &models.Author{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			FullName:  u.FirstName + " " + u.LastName,
			CachedAt:  time.Now().UTC(),
		}
		if cerr := s.cache.Authors.Save(ctx, author); cerr != nil {
			s.log.Warn(ctx, "author cache write failed", "user_id", userID, "err", cerr)
		}
		return author.FullName
	}

	cached, cerr := s.cache.Authors.GetByID(ctx, userID)
	if cerr != nil {
		return UnknownAuthor
	}
	return cached.FullName
}
