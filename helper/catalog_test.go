package helper

import (
	"context"
	"errors"
	"testing"

	"cinema_admin/backend"
	"cinema_admin/backend/backendtest"
	"cinema_admin/model"
	"cinema_admin/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_WithoutRedisGoesToBackend(t *testing.T) {
	fake := backendtest.New()
	fake.Movies[1] = schedule.Movie{ID: 1, Title: "Mai", DurationMinutes: 131}
	fake.Rooms[2] = model.Room{ID: 2, CinemaId: 7, RoomNumber: 3}
	catalog := NewCatalog(nil, fake, 0, "")

	movie, err := catalog.Movie(context.Background(), "tok", 1)
	require.NoError(t, err)
	assert.Equal(t, 131, movie.DurationMinutes)

	rooms, err := catalog.Rooms(context.Background(), "tok", []uint{2, 2})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, schedule.Room{ID: 2, CinemaID: 7, Name: "Phòng 3"}, rooms[0])
	assert.Equal(t, 1, fake.Calls["GetRoom"])
}

func TestCatalog_MissingRoom(t *testing.T) {
	catalog := NewCatalog(nil, backendtest.New(), 0, "")

	_, err := catalog.Rooms(context.Background(), "tok", []uint{9})

	assert.True(t, errors.Is(err, backend.ErrNotFound))
}

func TestCatalog_RefreshWithoutRedis(t *testing.T) {
	catalog := NewCatalog(nil, backendtest.New(), 0, "")

	n, err := catalog.RefreshMovies(context.Background())

	require.NoError(t, err)
	assert.Zero(t, n)
}
