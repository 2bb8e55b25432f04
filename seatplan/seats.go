package seatplan

import "fmt"

// Seat is one logical unit of the layout. Couple units span two columns.
type Seat struct {
	Row      string   `json:"row"`
	Col      int      `json:"col"`
	Span     int      `json:"span"`
	Category Category `json:"category"`
	Label    string   `json:"label"`
}

// Columns returns the physical columns covered by the unit.
func (s Seat) Columns() []int {
	cols := make([]int, 0, s.Span)
	for i := 0; i < s.Span; i++ {
		cols = append(cols, s.Col+i)
	}
	return cols
}

// GenerateSeats lays out rowCount x columnCount seats row by row. The last row
// is always couple seats; other rows are VIP inside zone, standard elsewhere.
// Non-positive dimensions produce an empty layout.
func GenerateSeats(rowCount, columnCount int, zone *VipZone) []Seat {
	if rowCount <= 0 || columnCount <= 0 {
		return []Seat{}
	}
	seats := make([]Seat, 0, rowCount*columnCount)
	for r := 0; r < rowCount; r++ {
		row := RowLabel(r)
		if r == rowCount-1 {
			seats = append(seats, coupleRow(row, columnCount)...)
			continue
		}
		for c := 1; c <= columnCount; c++ {
			category := Standard
			if zone.Contains(row, c) {
				category = VIP
			}
			seats = append(seats, Seat{
				Row:      row,
				Col:      c,
				Span:     1,
				Category: category,
				Label:    fmt.Sprintf("%s%d", row, c),
			})
		}
	}
	return seats
}

func coupleRow(row string, columnCount int) []Seat {
	units := make([]Seat, 0, (columnCount+1)/2)
	for c := 1; c <= columnCount; c += 2 {
		if c+1 > columnCount {
			// odd column count: the leftover seat stands alone
			units = append(units, Seat{Row: row, Col: c, Span: 1, Category: Couple, Label: fmt.Sprintf("%s%d", row, c)})
			break
		}
		units = append(units, Seat{Row: row, Col: c, Span: 2, Category: Couple, Label: fmt.Sprintf("%s%d-%d", row, c, c+1)})
	}
	return units
}

// Capacity counts physical seats, so a couple pair counts as two.
func Capacity(seats []Seat) int {
	total := 0
	for _, s := range seats {
		total += s.Span
	}
	return total
}

// Layout is the derived state of a room dialog.
type Layout struct {
	RowCount    int        `json:"rowCount"`
	ColumnCount int        `json:"columnCount"`
	VipZone     *VipZone   `json:"vipZone"`
	Seats       []Seat     `json:"seats"`
	Grid        []GridRow  `json:"grid"`
	Capacity    int        `json:"capacity"`
	Counts      CountBreak `json:"counts"`
}

type CountBreak struct {
	Standard int `json:"standard"`
	VIP      int `json:"vip"`
	Couple   int `json:"couple"`
}

// Plan builds the full layout. When zone is nil and autoVip is set the default
// VIP rule applies.
func Plan(rowCount, columnCount int, zone *VipZone, autoVip bool) Layout {
	if zone == nil && autoVip {
		zone = ComputeVipZone(rowCount, columnCount)
	}
	seats := GenerateSeats(rowCount, columnCount, zone)
	layout := Layout{
		RowCount:    rowCount,
		ColumnCount: columnCount,
		VipZone:     zone,
		Seats:       seats,
		Grid:        BuildGrid(seats),
		Capacity:    Capacity(seats),
	}
	for _, s := range seats {
		switch s.Category {
		case VIP:
			layout.Counts.VIP += s.Span
		case Couple:
			layout.Counts.Couple += s.Span
		default:
			layout.Counts.Standard += s.Span
		}
	}
	return layout
}
