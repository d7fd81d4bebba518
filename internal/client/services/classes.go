package services

import (
	"context"
	"errors"

	"github.com/slicedsoap/wolfnotes/internal/client/cache"
	"github.com/slicedsoap/wolfnotes/internal/client/gateway"
	"github.com/slicedsoap/wolfnotes/internal/client/models"
	"github.com/slicedsoap/wolfnotes/internal/logging"
)

// ClassesService reads and writes classes and rosters with offline awareness.
type ClassesService struct {
	client gateway.Client
	cache  *cache.Cache
	log    logging.Logger
}

func NewClassesService(client gateway.Client, c *cache.Cache, log logging.Logger) *ClassesService {
	return &ClassesService{client: client, cache: c, log: log.With("component", "classes")}
}

// All returns the classes visible to the current user, live or cached.
func (s *ClassesService) All(ctx context.Context) (Result[[]models.Class], error) {
	list, err := s.client.GetClasses(ctx)
	if err == nil {
		if cerr := s.cache.Classes.SaveAll(ctx, list); cerr != nil {
			s.log.Warn(ctx, "write-through failed", "err", cerr)
		}
		return live(list), nil
	}
	if !errors.Is(err, gateway.ErrNetworkUnreachable) {
		return Result[[]models.Class]{}, err
	}

	cached, cerr := s.cache.Classes.GetAll(ctx)
	if cerr != nil {
		s.log.Warn(ctx, "cache read failed", "err", cerr)
		return fromCache[[]models.Class](nil), nil
	}
	return fromCache(cached), nil
}

// Get returns one class, live or cached. A cache miss while offline surfaces
// the original network error so the caller knows the class is unknown here.
func (s *ClassesService) Get(ctx context.Context, id string) (Result[*models.Class], error) {
	cls, err := s.client.GetClass(ctx, id)
	if err == nil {
		if cerr := s.cache.Classes.Save(ctx, cls); cerr != nil {
			s.log.Warn(ctx, "write-through failed", "class_id", id, "err", cerr)
		}
		return live(cls), nil
	}
	if !errors.Is(err, gateway.ErrNetworkUnreachable) {
		return Result[*models.Class]{}, err
	}

	cached, cerr := s.cache.Classes.GetByID(ctx, id)
	if cerr != nil {
		return Result[*models.Class]{}, err
	}
	return fromCache(cached), nil
}

// Roster returns the students of a class, live (overwriting the cached
// roster wholesale) or cached.
func (s *ClassesService) Roster(ctx context.Context, classID string) (Result[[]models.Student], error) {
	list, err := s.client.GetClassStudents(ctx, classID)
	if err == nil {
		if cerr := s.cache.Roster.Save(ctx, classID, list); cerr != nil {
			s.log.Warn(ctx, "write-through failed", "class_id", classID, "err", cerr)
		}
		return live(list), nil
	}
	if !errors.Is(err, gateway.ErrNetworkUnreachable) {
		return Result[[]models.Student]{}, err
	}

	cached, cerr := s.cache.Roster.GetByClass(ctx, classID)
	if cerr != nil {
		s.log.Warn(ctx, "cache read failed", "class_id", classID, "err", cerr)
		return fromCache[[]models.Student](nil), nil
	}
	return fromCache(cached), nil
}

// Create registers a new class. Online-only; the caller sees the server's
// generated id and join code.
func (s *ClassesService) Create(ctx context.Context, in gateway.ClassInput) (*gateway.CreatedClass, error) {
	created, err := s.client.CreateClass(ctx, in)
	if err != nil {
		return nil, err
	}
	cls := &models.Class{
		ID:        created.ClassID.String(),
		Name:      in.Name,
		ClassCode: created.ClassCode,
		ClassDesc: in.ClassDesc,
		Section:   in.Section,
		Tags:      in.Tags,
	}
	if cerr := s.cache.Classes.Save(ctx, cls); cerr != nil {
		s.log.Warn(ctx, "write-through failed", "class_id", cls.ID, "err", cerr)
	}
	return created, nil
}

// Update edits a class. Online-only.
func (s *ClassesService) Update(ctx context.Context, id string, in gateway.ClassInput) error {
	return s.client.UpdateClass(ctx, id, in)
}

// SetArchived flips the archived flag. Online-only; the cached copy follows.
func (s *ClassesService) SetArchived(ctx context.Context, id string, archived bool) error {
	if err := s.client.SetClassArchived(ctx, id, archived); err != nil {
		return err
	}
	if cached, cerr := s.cache.Classes.GetByID(ctx, id); cerr == nil {
		cached.Archived = archived
		if cerr := s.cache.Classes.Save(ctx, cached); cerr != nil {
			s.log.Warn(ctx, "cache update failed", "class_id", id, "err", cerr)
		}
	}
	return nil
}

// Delete removes a class on the server and from the cache.
func (s *ClassesService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteClass(ctx, id); err != nil {
		return err
	}
	if cerr := s.cache.Classes.DeleteByID(ctx, id); cerr != nil {
		s.log.Warn(ctx, "cache delete failed", "class_id", id, "err", cerr)
	}
	return nil
}
