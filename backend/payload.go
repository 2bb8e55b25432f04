package backend

import (
	"strconv"
	"time"

	"cinema_admin/constants"
	"cinema_admin/model"
	"cinema_admin/schedule"
	"cinema_admin/seatplan"
)

type RoomPayload struct {
	CinemaId   uint                   `json:"cinema_id,omitempty"`
	RoomNumber uint                   `json:"room_number"`
	Type       model.RoomType         `json:"type"`
	Status     string                 `json:"status,omitempty"`
	FormatIds  []uint                 `json:"format_ids,omitempty"`
	Capacity   int                    `json:"capacity"`
	Seats      []seatplan.SeatPayload `json:"seats"`
}

type AvailabilityRequest struct {
	MovieId    uint   `json:"movie_id"`
	RoomId     uint   `json:"room_id"`
	StartTime  string `json:"start_time"`
	ShowtimeId *uint  `json:"showtime_id,omitempty"`
}

type Conflict struct {
	ShowtimeId uint   `json:"showtime_id"`
	MovieName  string `json:"movie_name"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

type Availability struct {
	IsAvailable bool       `json:"is_available"`
	Conflicts   []Conflict `json:"conflicts"`
}

type AvailabilityItem struct {
	MovieId   uint   `json:"movie_id"`
	RoomId    uint   `json:"room_id"`
	StartTime string `json:"start_time"`
}

type AvailabilityResult struct {
	AvailabilityItem
	Availability
}

type BatchShowtime struct {
	MovieId   uint   `json:"movie_id"`
	RoomId    uint   `json:"room_id"`
	StartTime string `json:"start_time"`
	Price     int64  `json:"price"`
}

func FormatStartTime(t time.Time) string {
	return t.Format(constants.BACKEND_TIME_LAYOUT)
}

func BatchFromCandidates(candidates []schedule.Candidate) []BatchShowtime {
	out := make([]BatchShowtime, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, BatchShowtime{
			MovieId:   c.MovieID,
			RoomId:    c.RoomID,
			StartTime: FormatStartTime(c.StartTime),
			Price:     c.Price,
		})
	}
	return out
}

func AvailabilityItems(candidates []schedule.Candidate) []AvailabilityItem {
	out := make([]AvailabilityItem, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, AvailabilityItem{
			MovieId:   c.MovieID,
			RoomId:    c.RoomID,
			StartTime: FormatStartTime(c.StartTime),
		})
	}
	return out
}

// Unavailable lọc các suất chiếu bị trùng lịch
func Unavailable(results []AvailabilityResult) []AvailabilityResult {
	out := []AvailabilityResult{}
	for _, r := range results {
		if !r.IsAvailable {
			out = append(out, r)
		}
	}
	return out
}

// RoomFromModel chuyển phòng backend sang dạng dùng cho lập lịch
func RoomFromModel(room model.Room) schedule.Room {
	name := room.Name
	if name == "" {
		name = "Phòng " + strconv.FormatUint(uint64(room.RoomNumber), 10)
	}
	return schedule.Room{ID: room.ID, CinemaID: room.CinemaId, Name: name}
}
