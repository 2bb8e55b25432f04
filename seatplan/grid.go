package seatplan

// GridRow is one rendered row. Width counts physical columns.
type GridRow struct {
	Row   string `json:"row"`
	Width int    `json:"width"`
	Seats []Seat `json:"seats"`
}

// BuildGrid groups seats by row, keeping the order rows first appear in.
func BuildGrid(seats []Seat) []GridRow {
	rows := []GridRow{}
	index := map[string]int{}
	for _, s := range seats {
		i, ok := index[s.Row]
		if !ok {
			i = len(rows)
			index[s.Row] = i
			rows = append(rows, GridRow{Row: s.Row})
		}
		rows[i].Seats = append(rows[i].Seats, s)
		rows[i].Width += s.Span
	}
	return rows
}
