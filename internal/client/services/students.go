package services

import (
	"context"

	"github.com/slicedsoap/wolfnotes/internal/client/gateway"
	"github.com/slicedsoap/wolfnotes/internal/logging"
)

// StudentsService covers enrollment. Both operations are online-only writes:
// joining or leaving a class while offline is reported as an error, not
// queued — the outbox holds note uploads only.
type StudentsService struct {
	client gateway.Client
	log    logging.Logger
}

func NewStudentsService(client gateway.Client, log logging.Logger) *StudentsService {
	return &StudentsService{client: client, log: log.With("component", "students")}
}

// Enroll joins a class by its join code.
func (s *StudentsService) Enroll(ctx context.Context, studentID, classCode string) error {
	return s.client.EnrollStudent(ctx, studentID, classCode)
}

// Unenroll leaves a class.
func (s *StudentsService) Unenroll(ctx context.Context, studentID, classID string) error {
	return s.client.UnenrollStudent(ctx, studentID, classID)
}
