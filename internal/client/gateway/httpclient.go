package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/slicedsoap/wolfnotes/internal/client/models"
)

// requestIDHeader correlates client requests with server-side logs.
const requestIDHeader = "X-Request-Id"

// HTTPClient talks JSON to the remote API under /api. The session cookie set
// by login lives in the client's cookie jar, so one HTTPClient is one
// authenticated session.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the API at baseURL (scheme://host[:port],
// no trailing /api).
func NewHTTPClient(baseURL string) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}, nil
}

// errorBody is the shape of a non-2xx JSON response.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// classify turns a transport error into ErrNetworkUnreachable. Context
// cancellation is passed through untouched.
func classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%w: %v", ErrNetworkUnreachable, err)
	}
	return err
}

// do performs one round trip and decodes a 2xx body into out (skipped when
// out is nil). Non-2xx statuses become ErrUnauthorized or *APIError.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return classify(err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	var eb errorBody
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(data, &eb)
	msg := eb.Message
	if msg == "" {
		msg = eb.Error
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}

type userEnvelope struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
}

// Note endpoints wrap their payload; the other resources answer bare JSON.
type notesEnvelope struct {
	Success bool          `json:"success"`
	Notes   []models.Note `json:"notes"`
}

type noteEnvelope struct {
	Success bool        `json:"success"`
	Note    models.Note `json:"note"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	var env userEnvelope
	payload := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", payload, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", struct{}{}, nil)
}

func (c *HTTPClient) Register(ctx context.Context, reg Registration) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", reg, nil)
}

func (c *HTTPClient) Verify(ctx context.Context) (*models.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

func (c *HTTPClient) GetClasses(ctx context.Context) ([]models.Class, error) {
	var list []models.Class
	if err := c.do(ctx, http.MethodGet, "/api/classes", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) CreateClass(ctx context.Context, in ClassInput) (*CreatedClass, error) {
	var created CreatedClass
	if err := c.do(ctx, http.MethodPost, "/api/classes", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) GetClass(ctx context.Context, id string) (*models.Class, error) {
	var cls models.Class
	if err := c.do(ctx, http.MethodGet, "/api/classes/"+url.PathEscape(id), nil, &cls); err != nil {
		return nil, err
	}
	return &cls, nil
}

func (c *HTTPClient) UpdateClass(ctx context.Context, id string, in ClassInput) error {
	return c.do(ctx, http.MethodPut, "/api/classes/"+url.PathEscape(id), in, nil)
}

func (c *HTTPClient) DeleteClass(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/classes/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) GetClassStudents(ctx context.Context, classID string) ([]models.Student, error) {
	var list []models.Student
	if err := c.do(ctx, http.MethodGet, "/api/classes/"+url.PathEscape(classID)+"/students", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) SetClassArchived(ctx context.Context, classID string, archived bool) error {
	payload := map[string]bool{"archived": archived}
	return c.do(ctx, http.MethodPatch, "/api/classes/"+url.PathEscape(classID)+"/archive", payload, nil)
}

func (c *HTTPClient) GetClassNotes(ctx context.Context, classID string) ([]models.Note, error) {
	var env notesEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/notes/classes/"+url.PathEscape(classID), nil, &env); err != nil {
		return nil, err
	}
	return env.Notes, nil
}

// UploadNote posts a multipart form with a "title" field and the PDF under
// the "pdf" field, matching what the server's upload middleware expects. The
// server acknowledges with a success message only; the created record is
// picked up by the next class-notes fetch.
func (c *HTTPClient) UploadNote(ctx context.Context, classID, title, fileName, fileType string, file []byte) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("title", title); err != nil {
		return fmt.Errorf("failed to build upload form: %w", err)
	}

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="pdf"; filename=%q`, fileName))
	if fileType == "" {
		fileType = "application/pdf"
	}
	hdr.Set("Content-Type", fileType)
	part, err := w.CreatePart(hdr)
	if err != nil {
		return fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(file); err != nil {
		return fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/notes/classes/"+url.PathEscape(classID), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return classify(err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

func (c *HTTPClient) GetNote(ctx context.Context, id string) (*models.Note, error) {
	var env noteEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/notes/"+url.PathEscape(id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Note, nil
}

// DownloadNote streams the PDF body of one note.
func (c *HTTPClient) DownloadNote(ctx context.Context, id string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/notes/"+url.PathEscape(id)+"/download", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

func (c *HTTPClient) UpvoteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/api/notes/"+url.PathEscape(id)+"/upvote", struct{}{}, nil)
}

func (c *HTTPClient) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) GetUserNotes(ctx context.Context, userID string) ([]models.Note, error) {
	var env notesEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/notes/users/"+url.PathEscape(userID), nil, &env); err != nil {
		return nil, err
	}
	return env.Notes, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) EnrollStudent(ctx context.Context, studentID, classCode string) error {
	payload := map[string]string{"classID": classCode}
	return c.do(ctx, http.MethodPost, "/api/students/"+url.PathEscape(studentID)+"/enroll", payload, nil)
}

func (c *HTTPClient) UnenrollStudent(ctx context.Context, studentID, classID string) error {
	return c.do(ctx, http.MethodDelete,
		"/api/students/"+url.PathEscape(studentID)+"/classes/"+url.PathEscape(classID), nil, nil)
}
