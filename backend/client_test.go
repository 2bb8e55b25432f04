package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinema_admin/schedule"
	"cinema_admin/seatplan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	auth   string
	body   map[string]any
}

func newServer(t *testing.T, status int, response string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&rec.body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", 2*time.Second), rec
}

func TestClient_GetMovieUnwrapsEnvelope(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"status":"success","data":{"id":3,"title":"Mai","duration":131}}`)

	movie, err := c.GetMovie(context.Background(), "tok", 3)

	require.NoError(t, err)
	assert.Equal(t, schedule.Movie{ID: 3, Title: "Mai", DurationMinutes: 131}, movie)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/movie/3", rec.path)
	assert.Equal(t, "Bearer tok", rec.auth)
}

func TestClient_ErrorUsesBackendMessage(t *testing.T) {
	c, _ := newServer(t, http.StatusConflict, `{"message":"Phòng đã tồn tại","error":"duplicate"}`)

	_, err := c.CreateRoom(context.Background(), "tok", RoomPayload{RoomNumber: 1})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBackend))
	assert.Equal(t, "Phòng đã tồn tại", Message(err))
}

func TestClient_ErrorWithoutMessageFallsBack(t *testing.T) {
	c, _ := newServer(t, http.StatusNotFound, `not json`)

	_, err := c.GetRoom(context.Background(), "tok", 9)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, genericMessage, Message(err))
}

func TestClient_CreateRoomSendsSeatPayload(t *testing.T) {
	c, rec := newServer(t, http.StatusCreated, `{"status":"success","data":{"id":12,"room_number":4}}`)
	layout := seatplan.Plan(5, 7, nil, true)
	payload := RoomPayload{
		CinemaId:   1,
		RoomNumber: 4,
		Type:       "Small",
		Capacity:   layout.Capacity,
		Seats:      seatplan.Payload(seatplan.Physical(layout.Seats), seatplan.PayloadOptions{}),
	}

	room, err := c.CreateRoom(context.Background(), "tok", payload)

	require.NoError(t, err)
	assert.Equal(t, uint(12), room.ID)
	assert.Equal(t, "/room", rec.path)
	assert.Equal(t, http.MethodPost, rec.method)
	seats, ok := rec.body["seats"].([]any)
	require.True(t, ok)
	assert.Len(t, seats, 35)
	first := seats[0].(map[string]any)
	assert.Equal(t, "A", first["row_number"])
	assert.EqualValues(t, 1, first["seat_number"])
	assert.Equal(t, "standard", first["type"])
	assert.NotContains(t, first, "id")
}

func TestClient_CheckAvailabilitiesReadsArray(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"status":"success","data":[
		{"movie_id":1,"room_id":2,"start_time":"19-10-2026 09:00","is_available":true,"conflicts":[]},
		{"movie_id":1,"room_id":2,"start_time":"19-10-2026 13:00","is_available":false,
		 "conflicts":[{"movie_name":"Lật Mặt","start_time":"19-10-2026 12:30","end_time":"19-10-2026 14:40"}]}
	]}`)

	results, err := c.CheckAvailabilities(context.Background(), "tok", []AvailabilityItem{
		{MovieId: 1, RoomId: 2, StartTime: "19-10-2026 09:00"},
		{MovieId: 1, RoomId: 2, StartTime: "19-10-2026 13:00"},
	})

	require.NoError(t, err)
	assert.Equal(t, "/showtime/check-availabilities", rec.path)
	require.Len(t, results, 2)
	bad := Unavailable(results)
	require.Len(t, bad, 1)
	assert.Equal(t, "19-10-2026 13:00", bad[0].StartTime)
	assert.Equal(t, "Lật Mặt", bad[0].Conflicts[0].MovieName)
}

func TestClient_CanceledContext(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `{}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.CreateBatch(ctx, "tok", nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_UnsupportedSchemeIsBackendError(t *testing.T) {
	c := New("ftp://backend.local/", time.Second)

	for i := 0; i < 3; i++ {
		_, err := c.GetMovie(context.Background(), "tok", 1)
		require.ErrorIs(t, err, ErrBackend)
		var apiErr *APIError
		assert.False(t, errors.As(err, &apiErr))
	}
}

func TestBatchFromCandidates_FormatsStartTime(t *testing.T) {
	ict := time.FixedZone("ICT", 7*3600)
	candidates := []schedule.Candidate{{
		MovieID:   1,
		RoomID:    2,
		StartTime: time.Date(2026, 10, 19, 9, 5, 0, 0, ict),
		Price:     90000,
	}}

	batch := BatchFromCandidates(candidates)

	require.Len(t, batch, 1)
	assert.Equal(t, BatchShowtime{MovieId: 1, RoomId: 2, StartTime: "19-10-2026 09:05", Price: 90000}, batch[0])
}
