package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slicedsoap/wolfnotes/internal/client/gateway"
	"github.com/slicedsoap/wolfnotes/internal/client/models"
)

func TestAll_WriteThroughThenFallback(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	want := []models.Class{
		{ID: "c1", Name: "Databases", ClassCode: "DB101", ClassDesc: "Intro"},
		{ID: "c2", Name: "Networks", ClassCode: "NW201", ClassDesc: "Routing"},
	}
	gw := &fakeGateway{
		getClassesFn: func(ctx context.Context) ([]models.Class, error) { return want, nil },
	}
	svc := NewClassesService(gw, c, testLogger())

	res, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, SourceLive, res.Source)

	gw.getClassesFn = func(ctx context.Context) ([]models.Class, error) {
		return nil, gateway.ErrNetworkUnreachable
	}

	res, err = svc.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, SourceCache, res.Source)
	assert.Equal(t, want, res.Data)
}

func TestRoster_WholesaleOverwrite(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	first := []models.Student{{ID: "s1", FirstName: "Ada", LastName: "L", Email: "a@x"}}
	gw := &fakeGateway{
		getStudentsFn: func(ctx context.Context, classID string) ([]models.Student, error) {
			return first, nil
		},
	}
	svc := NewClassesService(gw, c, testLogger())

	_, err := svc.Roster(ctx, "c1")
	require.NoError(t, err)

	// the roster shrinks server-side; the next fetch must replace it fully
	second := []models.Student{{ID: "s2", FirstName: "Bob", LastName: "B", Email: "b@x"}}
	gw.getStudentsFn = func(ctx context.Context, classID string) ([]models.Student, error) {
		return second, nil
	}
	_, err = svc.Roster(ctx, "c1")
	require.NoError(t, err)

	gw.getStudentsFn = func(ctx context.Context, classID string) ([]models.Student, error) {
		return nil, gateway.ErrNetworkUnreachable
	}
	res, err := svc.Roster(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, SourceCache, res.Source)
	assert.Equal(t, second, res.Data)
}

func TestGet_OfflineMissSurfacesNetworkError(t *testing.T) {
	c := setupCache(t)
	gw := &fakeGateway{}
	gw.Client = failingClient{}
	svc := NewClassesService(gw, c, testLogger())

	_, err := svc.Get(context.Background(), "never-cached")
	assert.ErrorIs(t, err, gateway.ErrNetworkUnreachable)
}

// failingClient answers every call with ErrNetworkUnreachable.
type failingClient struct{ gateway.Client }

func (failingClient) GetClass(ctx context.Context, id string) (*models.Class, error) {
	return nil, gateway.ErrNetworkUnreachable
}
