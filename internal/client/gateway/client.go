package gateway

import (
	"context"
	"encoding/json"

	"github.com/slicedsoap/wolfnotes/internal/client/models"
)

// Registration carries the fields of a new account request.
type Registration struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	Institution string `json:"institution,omitempty"`
	Subject     string `json:"subject,omitempty"`
}

// ClassInput carries the fields of a class create/update request.
type ClassInput struct {
	InstructorID string `json:"instructorID,omitempty"`
	Name         string `json:"name"`
	ClassDesc    string `json:"classDesc"`
	Section      string `json:"section,omitempty"`
	Tags         string `json:"tags,omitempty"`
}

// CreatedClass is the server's answer to a class creation. ClassID arrives
// as a bare number on the wire, hence json.Number.
type CreatedClass struct {
	ClassID   json.Number `json:"classID"`
	ClassCode string      `json:"classCode"`
}

// Client is the typed surface of the remote WolfNotes API. One method per
// remote operation, each a single HTTP round trip.
//
// Error contract, matched with errors.Is:
//   - ErrNetworkUnreachable: the call never reached the network layer.
//   - ErrUnauthorized: the session is missing or expired (401).
//   - *APIError: any other non-2xx, carrying the server's message.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, reg Registration) error
	Verify(ctx context.Context) (*models.User, error)

	GetClasses(ctx context.Context) ([]models.Class, error)
	CreateClass(ctx context.Context, in ClassInput) (*CreatedClass, error)
	GetClass(ctx context.Context, id string) (*models.Class, error)
	UpdateClass(ctx context.Context, id string, in ClassInput) error
	DeleteClass(ctx context.Context, id string) error
	GetClassStudents(ctx context.Context, classID string) ([]models.Student, error)
	SetClassArchived(ctx context.Context, classID string, archived bool) error

	GetClassNotes(ctx context.Context, classID string) ([]models.Note, error)
	UploadNote(ctx context.Context, classID, title, fileName, fileType string, file []byte) error
	GetNote(ctx context.Context, id string) (*models.Note, error)
	DownloadNote(ctx context.Context, id string) ([]byte, error)
	UpvoteNote(ctx context.Context, id string) error
	DeleteNote(ctx context.Context, id string) error
	GetUserNotes(ctx context.Context, userID string) ([]models.Note, error)

	GetUser(ctx context.Context, id string) (*models.User, error)

	EnrollStudent(ctx context.Context, studentID, classCode string) error
	UnenrollStudent(ctx context.Context, studentID, classID string) error
}
