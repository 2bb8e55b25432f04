package seatplan

import "strings"

type Category string

const (
	Standard Category = "standard"
	VIP      Category = "VIP"
	Couple   Category = "couple"
)

// VipZone is an inclusive rectangle of the seat grid. Rows are letters.
type VipZone struct {
	RowStart string `json:"rowStart" validate:"required,alpha"`
	RowEnd   string `json:"rowEnd" validate:"required,alpha"`
	ColStart int    `json:"colStart" validate:"min=1"`
	ColEnd   int    `json:"colEnd" validate:"min=1"`
}

// ComputeVipZone derives the default zone: row D through the third-from-last
// row, columns 4 through columnCount-3. Small rooms get no zone.
func ComputeVipZone(rowCount, columnCount int) *VipZone {
	if rowCount < 5 || columnCount < 7 {
		return nil
	}
	return &VipZone{
		RowStart: "D",
		RowEnd:   RowLabel(rowCount - 3),
		ColStart: 4,
		ColEnd:   columnCount - 3,
	}
}

func (z *VipZone) Contains(row string, col int) bool {
	if z == nil {
		return false
	}
	r, ok := RowIndex(row)
	if !ok {
		return false
	}
	start, ok1 := RowIndex(z.RowStart)
	end, ok2 := RowIndex(z.RowEnd)
	if !ok1 || !ok2 {
		return false
	}
	return r >= start && r <= end && col >= z.ColStart && col <= z.ColEnd
}

// Empty reports whether no seat can fall inside the zone. The default rule
// yields an inverted zone for five-row rooms (D..C).
func (z *VipZone) Empty() bool {
	if z == nil {
		return true
	}
	start, ok1 := RowIndex(z.RowStart)
	end, ok2 := RowIndex(z.RowEnd)
	if !ok1 || !ok2 {
		return true
	}
	return start > end || z.ColStart > z.ColEnd
}

// RowLabel maps 0 -> "A", 25 -> "Z", 26 -> "AA".
func RowLabel(index int) string {
	if index < 0 {
		return ""
	}
	label := ""
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		label = string(rune('A'+(n-1)%26)) + label
	}
	return label
}

// RowIndex is the inverse of RowLabel. Lowercase letters are accepted.
func RowIndex(label string) (int, bool) {
	label = strings.ToUpper(strings.TrimSpace(label))
	if label == "" {
		return 0, false
	}
	n := 0
	for _, r := range label {
		if r < 'A' || r > 'Z' {
			return 0, false
		}
		n = n*26 + int(r-'A') + 1
	}
	return n - 1, true
}
