package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var ict = time.FixedZone("ICT", 7*3600)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, ict)
}

func TestIsDaySelected(t *testing.T) {
	monday := date(2026, time.October, 19)
	sunday := date(2026, time.October, 25)
	mask := MaskOf(time.Monday, time.Friday)

	assert.True(t, IsDaySelected(sunday, Daily, 0))
	assert.True(t, IsDaySelected(monday, Weekly, mask))
	assert.False(t, IsDaySelected(sunday, Weekly, mask))
	assert.False(t, IsDaySelected(monday, Type("monthly"), AllDays))
}

func TestMaskFromInts(t *testing.T) {
	mask := MaskFromInts([]int{1, 3, 7, 9, -1})
	assert.True(t, mask.Has(time.Monday))
	assert.True(t, mask.Has(time.Wednesday))
	assert.True(t, mask.Has(time.Sunday))
	assert.False(t, mask.Has(time.Tuesday))
	assert.Equal(t, []int{1, 3, 0}, mask.Days())
	assert.Equal(t, MaskOf(time.Sunday), MaskFromInts([]int{0}))
}

func TestDateRange_Days(t *testing.T) {
	r := DateRange{Start: date(2026, time.October, 30), End: date(2026, time.November, 2)}
	days := r.Days()
	assert.Len(t, days, 4)
	assert.Equal(t, "2026-11-02", days[3].Format("2006-01-02"))

	assert.Len(t, DateRange{Start: date(2026, 1, 2), End: date(2026, 1, 1)}.Days(), 0)
	assert.Len(t, DateRange{Start: date(2026, 1, 1), End: date(2026, 1, 1)}.Days(), 1)
}

func TestSelectedDays_Weekly(t *testing.T) {
	r := DateRange{Start: date(2026, time.October, 19), End: date(2026, time.November, 1)}
	days := SelectedDays(r, Weekly, MaskOf(time.Saturday, time.Sunday))
	var got []string
	for _, d := range days {
		got = append(got, d.Format("2006-01-02"))
	}
	assert.Equal(t, []string{"2026-10-24", "2026-10-25", "2026-10-31", "2026-11-01"}, got)
}
