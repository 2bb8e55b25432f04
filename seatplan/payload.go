package seatplan

import "strings"

// SeatPayload is the seat entry of the backend room payload.
type SeatPayload struct {
	ID         *uint  `json:"id,omitempty"`
	RowNumber  string `json:"row_number"`
	SeatNumber int    `json:"seat_number"`
	Type       string `json:"type"`
}

const (
	PayloadStandard = "standard"
	PayloadVIP      = "VIP"
	PayloadCouple   = "couple"
)

type PayloadOptions struct {
	// ExplicitCouple sends "couple" for last-row seats instead of leaving the
	// backend to infer it from position.
	ExplicitCouple bool
}

func Payload(records []SeatRecord, opts PayloadOptions) []SeatPayload {
	out := make([]SeatPayload, 0, len(records))
	for _, r := range records {
		t := PayloadStandard
		switch r.Category {
		case VIP:
			t = PayloadVIP
		case Couple:
			if opts.ExplicitCouple {
				t = PayloadCouple
			}
		}
		out = append(out, SeatPayload{ID: r.ID, RowNumber: r.Row, SeatNumber: r.Col, Type: t})
	}
	return out
}

// FromPayload reads persisted seats back. Unknown types count as standard.
func FromPayload(payload []SeatPayload) []SeatRecord {
	out := make([]SeatRecord, 0, len(payload))
	for _, p := range payload {
		category := Standard
		switch strings.ToLower(p.Type) {
		case "vip":
			category = VIP
		case PayloadCouple:
			category = Couple
		}
		out = append(out, SeatRecord{ID: p.ID, Row: strings.ToUpper(p.RowNumber), Col: p.SeatNumber, Category: category})
	}
	return out
}

// Dimensions recovers rows x columns from persisted seats.
func Dimensions(records []SeatRecord) (rows, columns int) {
	for _, r := range records {
		if i, ok := RowIndex(r.Row); ok && i+1 > rows {
			rows = i + 1
		}
		if r.Col > columns {
			columns = r.Col
		}
	}
	return rows, columns
}
