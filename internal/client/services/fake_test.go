package services

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/slicedsoap/wolfnotes/internal/client/cache"
	"github.com/slicedsoap/wolfnotes/internal/client/gateway"
	"github.com/slicedsoap/wolfnotes/internal/client/models"
	"github.com/slicedsoap/wolfnotes/internal/logging"

	_ "modernc.org/sqlite"
)

func setupCache(t *testing.T) *cache.Cache {
	t.Helper()
	c, err := cache.Open(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func testLogger() logging.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})
	return logging.NewSlogLogger(slog.New(h))
}

func alwaysOnline() bool  { return true }
func alwaysOffline() bool { return false }

// fakeGateway lets each test preset just the calls it needs. Unset methods
// panic via the embedded nil interface, catching accidental calls.
type fakeGateway struct {
	gateway.Client

	getClassNotesFn func(ctx context.Context, classID string) ([]models.Note, error)
	getUserNotesFn  func(ctx context.Context, userID string) ([]models.Note, error)
	uploadNoteFn    func(ctx context.Context, classID, title, fileName, fileType string, file []byte) error
	getUserFn       func(ctx context.Context, id string) (*models.User, error)
	getClassesFn    func(ctx context.Context) ([]models.Class, error)
	getStudentsFn   func(ctx context.Context, classID string) ([]models.Student, error)
	verifyFn        func(ctx context.Context) (*models.User, error)
	loginFn         func(ctx context.Context, email, password string) (*models.User, error)

	uploadCalls int
}

func (f *fakeGateway) GetClassNotes(ctx context.Context, classID string) ([]models.Note, error) {
	return f.getClassNotesFn(ctx, classID)
}

func (f *fakeGateway) GetUserNotes(ctx context.Context, userID string) ([]models.Note, error) {
	return f.getUserNotesFn(ctx, userID)
}

func (f *fakeGateway) UploadNote(ctx context.Context, classID, title, fileName, fileType string, file []byte) error {
	f.uploadCalls++
	return f.uploadNoteFn(ctx, classID, title, fileName, fileType, file)
}

func (f *fakeGateway) GetUser(ctx context.Context, id string) (*models.User, error) {
	return f.getUserFn(ctx, id)
}

func (f *fakeGateway) GetClasses(ctx context.Context) ([]models.Class, error) {
	return f.getClassesFn(ctx)
}

func (f *fakeGateway) GetClassStudents(ctx context.Context, classID string) ([]models.Student, error) {
	return f.getStudentsFn(ctx, classID)
}

func (f *fakeGateway) Verify(ctx context.Context) (*models.User, error) {
	return f.verifyFn(ctx)
}

func (f *fakeGateway) Login(ctx context.Context, email, password string) (*models.User, error) {
	return f.loginFn(ctx, email, password)
}
