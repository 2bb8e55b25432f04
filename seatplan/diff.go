package seatplan

import "strings"

// SeatRecord is a physical seat as persisted by the backend. ID is nil for
// seats that do not exist yet.
type SeatRecord struct {
	ID       *uint    `json:"id,omitempty"`
	Row      string   `json:"row"`
	Col      int      `json:"col"`
	Category Category `json:"category"`
}

type position struct {
	row string
	col int
}

func keyOf(row string, col int) position {
	return position{row: strings.ToUpper(strings.TrimSpace(row)), col: col}
}

// Physical expands logical units into one record per physical seat.
func Physical(seats []Seat) []SeatRecord {
	records := make([]SeatRecord, 0, Capacity(seats))
	for _, s := range seats {
		for _, col := range s.Columns() {
			records = append(records, SeatRecord{Row: s.Row, Col: col, Category: s.Category})
		}
	}
	return records
}

// DiffSeatsForUpdate matches the regenerated layout against persisted seats by
// (row, col). Matched positions keep their id, new positions carry none, and
// old seats with no counterpart are left out.
func DiffSeatsForUpdate(oldSeats []SeatRecord, newSeats []Seat) []SeatRecord {
	ids := make(map[position]uint, len(oldSeats))
	for _, s := range oldSeats {
		if s.ID == nil {
			continue
		}
		k := keyOf(s.Row, s.Col)
		if _, dup := ids[k]; !dup {
			ids[k] = *s.ID
		}
	}
	merged := Physical(newSeats)
	for i := range merged {
		if id, ok := ids[keyOf(merged[i].Row, merged[i].Col)]; ok {
			id := id
			merged[i].ID = &id
		}
	}
	return merged
}

type DiffStats struct {
	Kept    int    `json:"kept"`
	Created int    `json:"created"`
	Dropped int    `json:"dropped"`
	DropIDs []uint `json:"dropIds"`
}

// Summarize compares the merge result with the persisted seats.
func Summarize(oldSeats []SeatRecord, merged []SeatRecord) DiffStats {
	kept := map[uint]bool{}
	stats := DiffStats{DropIDs: []uint{}}
	for _, s := range merged {
		if s.ID == nil {
			stats.Created++
			continue
		}
		stats.Kept++
		kept[*s.ID] = true
	}
	for _, s := range oldSeats {
		if s.ID != nil && !kept[*s.ID] {
			stats.Dropped++
			stats.DropIDs = append(stats.DropIDs, *s.ID)
		}
	}
	return stats
}
