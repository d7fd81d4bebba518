package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slicedsoap/wolfnotes/internal/client/gateway"
	"github.com/slicedsoap/wolfnotes/internal/client/models"
)

func sampleNotes(classID string) []models.Note {
	return []models.Note{
		{ID: "n1", ClassID: classID, UploaderID: "u1", Title: "Week 1", CreatedAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC), Upvotes: 3},
		{ID: "n2", ClassID: classID, UploaderID: "u2", Title: "Week 2", CreatedAt: time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)},
	}
}

func TestByClass_WriteThroughThenFallback(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	want := sampleNotes("c1")
	gw := &fakeGateway{
		getClassNotesFn: func(ctx context.Context, classID string) ([]models.Note, error) {
			return want, nil
		},
	}
	svc := NewNotesService(gw, c, alwaysOnline, testLogger())

	res, err := svc.ByClass(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, SourceLive, res.Source)
	assert.Equal(t, want, res.Data)

	// the network goes away; the cached copy must equal the last fetch
	gw.getClassNotesFn = func(ctx context.Context, classID string) ([]models.Note, error) {
		return nil, gateway.ErrNetworkUnreachable
	}

	res, err = svc.ByClass(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, SourceCache, res.Source)
	assert.Equal(t, want, res.Data)
}

func TestByClass_ApplicationErrorPropagates(t *testing.T) {
	c := setupCache(t)
	gw := &fakeGateway{
		getClassNotesFn: func(ctx context.Context, classID string) ([]models.Note, error) {
			return nil, &gateway.APIError{Status: 500, Message: "boom"}
		},
	}
	svc := NewNotesService(gw, c, alwaysOnline, testLogger())

	_, err := svc.ByClass(context.Background(), "c1")
	var apiErr *gateway.APIError
	assert.True(t, errors.As(err, &apiErr))
}

func TestUpload_OfflineQueuesWithoutNetworkCall(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	gw := &fakeGateway{
		uploadNoteFn: func(ctx context.Context, classID, title, fileName, fileType string, file []byte) error {
			t.Fatal("no network call may be attempted while offline")
			return nil
		},
	}
	svc := NewNotesService(gw, c, alwaysOffline, testLogger())

	blob := []byte("%PDF-1.4 fake")
	res, err := svc.Upload(ctx, "c42", "Week 3", "week3.pdf", "application/pdf", blob)
	require.NoError(t, err)
	assert.Equal(t, UploadQueued, res.Status)
	assert.Zero(t, gw.uploadCalls)

	queued, err := c.Outbox.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, queued, 1)
	assert.Equal(t, "c42", queued[0].ClassID)
	assert.Equal(t, blob, queued[0].FileBlob)
	assert.Equal(t, res.TempID, queued[0].TempID)
}

func TestUpload_OnlineCommits(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	// the commit response carries no record; the refreshed class listing does
	serverNotes := []models.Note{
		{ID: "n9", ClassID: "c1", Title: "Week 3", CreatedAt: time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)},
	}
	gw := &fakeGateway{
		uploadNoteFn: func(ctx context.Context, classID, title, fileName, fileType string, file []byte) error {
			return nil
		},
		getClassNotesFn: func(ctx context.Context, classID string) ([]models.Note, error) {
			return serverNotes, nil
		},
	}
	svc := NewNotesService(gw, c, alwaysOnline, testLogger())

	res, err := svc.Upload(ctx, "c1", "Week 3", "week3.pdf", "application/pdf", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, UploadCommitted, res.Status)

	// the post-upload refresh wrote the server-assigned record through
	cached, err := c.Notes.GetByClass(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, serverNotes, cached)

	n, err := c.Outbox.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUpload_MidFlightFailureQueues(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	// the flag still says online, but the call falls off the network
	gw := &fakeGateway{
		uploadNoteFn: func(ctx context.Context, classID, title, fileName, fileType string, file []byte) error {
			return gateway.ErrNetworkUnreachable
		},
	}
	svc := NewNotesService(gw, c, alwaysOnline, testLogger())

	res, err := svc.Upload(ctx, "c1", "Week 3", "week3.pdf", "application/pdf", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, UploadQueued, res.Status)
	assert.Equal(t, 1, gw.uploadCalls)
}

func TestUpload_ApplicationErrorIsNotQueued(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	gw := &fakeGateway{
		uploadNoteFn: func(ctx context.Context, classID, title, fileName, fileType string, file []byte) error {
			return &gateway.APIError{Status: 413, Message: "file too large"}
		},
	}
	svc := NewNotesService(gw, c, alwaysOnline, testLogger())

	_, err := svc.Upload(ctx, "c1", "Week 3", "week3.pdf", "application/pdf", []byte("x"))
	var apiErr *gateway.APIError
	require.True(t, errors.As(err, &apiErr))

	n, err := c.Outbox.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "a server rejection must not be retried from the outbox")
}

func TestAuthorName_FallbackChain(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	gw := &fakeGateway{
		getUserFn: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, FirstName: "Ada", LastName: "Lovelace"}, nil
		},
	}
	svc := NewNotesService(gw, c, alwaysOnline, testLogger())

	// live lookup populates the author cache
	assert.Equal(t, "Ada Lovelace", svc.AuthorName(ctx, "u7"))

	// offline: the cached name is served
	gw.getUserFn = func(ctx context.Context, id string) (*models.User, error) {
		return nil, gateway.ErrNetworkUnreachable
	}
	assert.Equal(t, "Ada Lovelace", svc.AuthorName(ctx, "u7"))

	// offline and never seen: placeholder
	assert.Equal(t, UnknownAuthor, svc.AuthorName(ctx, "u404"))
}
