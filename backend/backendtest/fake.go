// Package backendtest cung cấp backend giả trong bộ nhớ cho test.
package backendtest

import (
	"context"
	"fmt"
	"sync"

	"cinema_admin/backend"
	"cinema_admin/model"
	"cinema_admin/schedule"
)

type Fake struct {
	mu sync.Mutex

	Users  map[string]string
	Movies map[uint]schedule.Movie
	Rooms  map[uint]model.Room
	// Busy đánh dấu "roomId|start_time" đã có suất chiếu
	Busy map[string]backend.Conflict

	BatchErr error
	Batches  [][]backend.BatchShowtime
	Updated  map[uint]backend.RoomPayload
	Calls    map[string]int
	Tokens   []string
	nextRoom uint
}

func New() *Fake {
	return &Fake{
		Users:    map[string]string{},
		Movies:   map[uint]schedule.Movie{},
		Rooms:    map[uint]model.Room{},
		Busy:     map[string]backend.Conflict{},
		Updated:  map[uint]backend.RoomPayload{},
		Calls:    map[string]int{},
		nextRoom: 100,
	}
}

func (f *Fake) call(name, token string) {
	f.Calls[name]++
	if token != "" {
		f.Tokens = append(f.Tokens, token)
	}
}

func (f *Fake) Login(_ context.Context, username, password string) (model.TokenData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("Login", "")
	if pw, ok := f.Users[username]; !ok || pw != password {
		return model.TokenData{}, &backend.APIError{Status: 401, Message: "Sai tên đăng nhập hoặc mật khẩu"}
	}
	return model.TokenData{AccessToken: "access-" + username, RefreshToken: "refresh-" + username}, nil
}

func (f *Fake) RefreshToken(_ context.Context, refreshToken string) (model.TokenData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("RefreshToken", "")
	if refreshToken == "" {
		return model.TokenData{}, &backend.APIError{Status: 401, Message: "Refresh token không hợp lệ"}
	}
	return model.TokenData{AccessToken: "access-refreshed", RefreshToken: refreshToken}, nil
}

func (f *Fake) GetMovie(_ context.Context, token string, id uint) (schedule.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("GetMovie", token)
	m, ok := f.Movies[id]
	if !ok {
		return schedule.Movie{}, &backend.APIError{Status: 404, Message: "Phim không tồn tại"}
	}
	return m, nil
}

func (f *Fake) ListMovies(_ context.Context, token string) ([]schedule.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("ListMovies", token)
	out := []schedule.Movie{}
	for _, m := range f.Movies {
		out = append(out, m)
	}
	return out, nil
}

func (f *Fake) GetRoom(_ context.Context, token string, id uint) (model.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("GetRoom", token)
	r, ok := f.Rooms[id]
	if !ok {
		return model.Room{}, &backend.APIError{Status: 404, Message: "Phòng không tồn tại"}
	}
	return r, nil
}

func (f *Fake) ListRoomsByCinema(_ context.Context, token string, cinemaId uint) ([]model.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("ListRoomsByCinema", token)
	out := []model.Room{}
	for _, r := range f.Rooms {
		if r.CinemaId == cinemaId {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *Fake) CreateRoom(_ context.Context, token string, p backend.RoomPayload) (model.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("CreateRoom", token)
	f.nextRoom++
	room := model.Room{
		ID:         f.nextRoom,
		RoomNumber: p.RoomNumber,
		CinemaId:   p.CinemaId,
		Type:       p.Type,
		Status:     "available",
		Capacity:   p.Capacity,
		FormatIds:  p.FormatIds,
		Seats:      p.Seats,
	}
	f.Rooms[room.ID] = room
	return room, nil
}

func (f *Fake) UpdateRoom(_ context.Context, token string, id uint, p backend.RoomPayload) (model.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("UpdateRoom", token)
	room, ok := f.Rooms[id]
	if !ok {
		return model.Room{}, &backend.APIError{Status: 404, Message: "Phòng không tồn tại"}
	}
	f.Updated[id] = p
	room.RoomNumber = p.RoomNumber
	room.Type = p.Type
	if p.Status != "" {
		room.Status = p.Status
	}
	room.Capacity = p.Capacity
	room.FormatIds = p.FormatIds
	room.Seats = p.Seats
	f.Rooms[id] = room
	return room, nil
}

func busyKey(roomId uint, start string) string {
	return fmt.Sprintf("%d|%s", roomId, start)
}

// MarkBusy đặt sẵn một suất chiếu trùng lịch
func (f *Fake) MarkBusy(roomId uint, start string, conflict backend.Conflict) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Busy[busyKey(roomId, start)] = conflict
}

func (f *Fake) availability(roomId uint, start string) backend.Availability {
	if c, ok := f.Busy[busyKey(roomId, start)]; ok {
		return backend.Availability{IsAvailable: false, Conflicts: []backend.Conflict{c}}
	}
	return backend.Availability{IsAvailable: true, Conflicts: []backend.Conflict{}}
}

func (f *Fake) CheckAvailability(_ context.Context, token string, req backend.AvailabilityRequest) (backend.Availability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("CheckAvailability", token)
	return f.availability(req.RoomId, req.StartTime), nil
}

func (f *Fake) CheckAvailabilities(_ context.Context, token string, items []backend.AvailabilityItem) ([]backend.AvailabilityResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("CheckAvailabilities", token)
	out := make([]backend.AvailabilityResult, 0, len(items))
	for _, it := range items {
		out = append(out, backend.AvailabilityResult{AvailabilityItem: it, Availability: f.availability(it.RoomId, it.StartTime)})
	}
	return out, nil
}

func (f *Fake) CreateBatch(_ context.Context, token string, showtimes []backend.BatchShowtime) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("CreateBatch", token)
	if f.BatchErr != nil {
		return f.BatchErr
	}
	f.Batches = append(f.Batches, showtimes)
	return nil
}

var _ backend.API = (*Fake)(nil)
