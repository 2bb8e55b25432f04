package seatplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func persisted(seats []Seat) []SeatRecord {
	records := Physical(seats)
	for i := range records {
		id := uint(100 + i)
		records[i].ID = &id
	}
	return records
}

func TestDiffSeatsForUpdate_SameGeometryKeepsEveryId(t *testing.T) {
	seats := GenerateSeats(6, 8, ComputeVipZone(6, 8))
	old := persisted(seats)

	merged := DiffSeatsForUpdate(old, seats)

	require.Len(t, merged, len(old))
	for i := range merged {
		require.NotNil(t, merged[i].ID)
		assert.Equal(t, *old[i].ID, *merged[i].ID)
	}
	stats := Summarize(old, merged)
	assert.Equal(t, DiffStats{Kept: 48, DropIDs: []uint{}}, stats)
}

func TestDiffSeatsForUpdate_GrowKeepsOverlapAndCreatesRest(t *testing.T) {
	old := persisted(GenerateSeats(5, 6, nil))
	merged := DiffSeatsForUpdate(old, GenerateSeats(6, 8, nil))

	stats := Summarize(old, merged)
	assert.Equal(t, 30, stats.Kept)
	assert.Equal(t, 48-30, stats.Created)
	assert.Zero(t, stats.Dropped)

	for _, s := range merged {
		if s.Row == "A" && s.Col == 7 {
			assert.Nil(t, s.ID)
		}
		if s.Row == "E" && s.Col == 1 {
			// was the couple row, now a standard row with the same id
			require.NotNil(t, s.ID)
			assert.Equal(t, Standard, s.Category)
		}
	}
}

func TestDiffSeatsForUpdate_ShrinkDropsMissingPositions(t *testing.T) {
	old := persisted(GenerateSeats(6, 8, nil))
	merged := DiffSeatsForUpdate(old, GenerateSeats(5, 7, nil))

	stats := Summarize(old, merged)
	assert.Equal(t, 35, stats.Kept)
	assert.Zero(t, stats.Created)
	assert.Equal(t, 48-35, stats.Dropped)
	assert.Len(t, stats.DropIDs, 13)
}

func TestDiffSeatsForUpdate_IgnoresOldSeatsWithoutId(t *testing.T) {
	old := Physical(GenerateSeats(2, 2, nil))
	merged := DiffSeatsForUpdate(old, GenerateSeats(2, 2, nil))
	for _, s := range merged {
		assert.Nil(t, s.ID)
	}
}

func TestPayload_CoupleEncoding(t *testing.T) {
	records := Physical(GenerateSeats(2, 2, &VipZone{RowStart: "A", RowEnd: "A", ColStart: 2, ColEnd: 2}))

	positional := Payload(records, PayloadOptions{})
	assert.Equal(t, []SeatPayload{
		{RowNumber: "A", SeatNumber: 1, Type: "standard"},
		{RowNumber: "A", SeatNumber: 2, Type: "VIP"},
		{RowNumber: "B", SeatNumber: 1, Type: "standard"},
		{RowNumber: "B", SeatNumber: 2, Type: "standard"},
	}, positional)

	explicit := Payload(records, PayloadOptions{ExplicitCouple: true})
	assert.Equal(t, "couple", explicit[3].Type)
}

func TestFromPayload_Dimensions(t *testing.T) {
	id := uint(7)
	records := FromPayload([]SeatPayload{
		{ID: &id, RowNumber: "a", SeatNumber: 1, Type: "standard"},
		{RowNumber: "C", SeatNumber: 9, Type: "vip"},
	})
	assert.Equal(t, "A", records[0].Row)
	assert.Equal(t, VIP, records[1].Category)
	rows, cols := Dimensions(records)
	assert.Equal(t, 3, rows)
	assert.Equal(t, 9, cols)
}
