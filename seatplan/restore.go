package seatplan

// InferVipZone returns the bounding box of the VIP seats, or nil when there
// are none.
func InferVipZone(records []SeatRecord) *VipZone {
	minRow, maxRow, minCol, maxCol := -1, -1, 0, 0
	for _, r := range records {
		if r.Category != VIP {
			continue
		}
		i, ok := RowIndex(r.Row)
		if !ok {
			continue
		}
		if minRow == -1 || i < minRow {
			minRow = i
		}
		if i > maxRow {
			maxRow = i
		}
		if minCol == 0 || r.Col < minCol {
			minCol = r.Col
		}
		if r.Col > maxCol {
			maxCol = r.Col
		}
	}
	if minRow == -1 {
		return nil
	}
	return &VipZone{RowStart: RowLabel(minRow), RowEnd: RowLabel(maxRow), ColStart: minCol, ColEnd: maxCol}
}

// Restore rebuilds the layout of a persisted room. VIP seats keep their
// category even when they do not form a rectangle.
func Restore(records []SeatRecord) Layout {
	rows, columns := Dimensions(records)
	vip := map[position]bool{}
	for _, r := range records {
		if r.Category == VIP {
			vip[keyOf(r.Row, r.Col)] = true
		}
	}

	layout := Plan(rows, columns, nil, false)
	layout.VipZone = InferVipZone(records)
	layout.Counts = CountBreak{}
	for i, s := range layout.Seats {
		if s.Category != Couple && vip[keyOf(s.Row, s.Col)] {
			layout.Seats[i].Category = VIP
		}
		switch layout.Seats[i].Category {
		case VIP:
			layout.Counts.VIP += s.Span
		case Couple:
			layout.Counts.Couple += s.Span
		default:
			layout.Counts.Standard += s.Span
		}
	}
	layout.Grid = BuildGrid(layout.Seats)
	return layout
}

// ZoneMatchesSeats reports whether replanning with the layout's VipZone gives
// back the same VIP seats. Hand-picked VIP seats that do not fill their
// bounding box fail this check.
func (l Layout) ZoneMatchesSeats() bool {
	for _, s := range l.Seats {
		if s.Category == Couple {
			continue
		}
		if (s.Category == VIP) != l.VipZone.Contains(s.Row, s.Col) {
			return false
		}
	}
	return true
}
