package schedule

import "time"

type Type string

const (
	Daily  Type = "daily"
	Weekly Type = "weekly"
)

// WeekdayMask has bit n set when time.Weekday(n) is selected.
type WeekdayMask uint8

const AllDays WeekdayMask = 1<<7 - 1

func MaskOf(days ...time.Weekday) WeekdayMask {
	var m WeekdayMask
	for _, d := range days {
		m |= 1 << uint(d%7)
	}
	return m
}

// MaskFromInts accepts 0=Sunday..6=Saturday; 7 is read as Sunday too.
// Out of range values are ignored.
func MaskFromInts(days []int) WeekdayMask {
	var m WeekdayMask
	for _, d := range days {
		if d < 0 || d > 7 {
			continue
		}
		m |= 1 << uint(d%7)
	}
	return m
}

func (m WeekdayMask) Has(d time.Weekday) bool {
	return m&(1<<uint(d%7)) != 0
}

// Days lists selected weekdays starting from Monday.
func (m WeekdayMask) Days() []int {
	days := []int{}
	for _, d := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday} {
		if m.Has(d) {
			days = append(days, int(d))
		}
	}
	return days
}

func IsDaySelected(date time.Time, scheduleType Type, mask WeekdayMask) bool {
	switch scheduleType {
	case Daily:
		return true
	case Weekly:
		return mask.Has(date.Weekday())
	default:
		return false
	}
}

// DateRange is inclusive on both ends; only the calendar date of each bound
// matters.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Days returns every calendar day of the range at midnight in Start's
// location. An inverted range is empty.
func (r DateRange) Days() []time.Time {
	start := truncateDay(r.Start)
	end := truncateDay(r.End.In(r.Start.Location()))
	days := []time.Time{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func SelectedDays(r DateRange, scheduleType Type, mask WeekdayMask) []time.Time {
	selected := []time.Time{}
	for _, d := range r.Days() {
		if IsDaySelected(d, scheduleType, mask) {
			selected = append(selected, d)
		}
	}
	return selected
}
