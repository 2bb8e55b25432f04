package schedule

import "time"

type Movie struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration"`
}

type Room struct {
	ID       uint   `json:"id"`
	CinemaID uint   `json:"cinemaId"`
	Name     string `json:"name"`
}

// Spec is everything the batch dialog collects before preview.
type Spec struct {
	Movie        Movie
	Rooms        []Room
	Range        DateRange
	ScheduleType Type
	Days         WeekdayMask
	TimeSlots    []TimeSlot
	BasePrice    int64
}

// Candidate is an unsaved showtime.
type Candidate struct {
	MovieID   uint      `json:"movieId"`
	CinemaID  uint      `json:"cinemaId"`
	RoomID    uint      `json:"roomId"`
	Date      string    `json:"date"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Price     int64     `json:"price"`
	SlotIndex int       `json:"slotIndex"`
}

// GenerateCandidates expands selected days x rooms x slots, in that nesting
// order. Missing selections give fewer or no candidates, never an error.
func GenerateCandidates(spec Spec) []Candidate {
	candidates := []Candidate{}
	if len(spec.Rooms) == 0 || len(spec.TimeSlots) == 0 {
		return candidates
	}

	// parse once, keep slot index for overlap highlighting
	type parsedSlot struct {
		index   int
		minutes int
		adjust  int64
	}
	slots := make([]parsedSlot, 0, len(spec.TimeSlots))
	for i, s := range spec.TimeSlots {
		m, err := ParseClock(s.StartTime)
		if err != nil {
			continue
		}
		slots = append(slots, parsedSlot{index: i, minutes: m, adjust: s.PriceAdjustment})
	}

	duration := time.Duration(spec.Movie.DurationMinutes) * time.Minute
	for _, day := range SelectedDays(spec.Range, spec.ScheduleType, spec.Days) {
		y, mo, d := day.Date()
		for _, room := range spec.Rooms {
			for _, slot := range slots {
				start := time.Date(y, mo, d, slot.minutes/60, slot.minutes%60, 0, 0, day.Location())
				candidates = append(candidates, Candidate{
					MovieID:   spec.Movie.ID,
					CinemaID:  room.CinemaID,
					RoomID:    room.ID,
					Date:      day.Format("2006-01-02"),
					StartTime: start,
					EndTime:   start.Add(duration),
					Price:     spec.BasePrice + slot.adjust,
					SlotIndex: slot.index,
				})
			}
		}
	}
	return candidates
}
