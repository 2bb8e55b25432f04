package schedule

import "sort"

// DetectOverlaps returns the sorted indices of slots whose
// [start, start+duration) interval intersects another slot's. Slots with an
// unparseable start are skipped.
func DetectOverlaps(slots []TimeSlot, durationMinutes int) []int {
	type interval struct {
		index      int
		start, end int
	}
	intervals := make([]interval, 0, len(slots))
	for i, s := range slots {
		start, err := ParseClock(s.StartTime)
		if err != nil {
			continue
		}
		intervals = append(intervals, interval{index: i, start: start, end: start + durationMinutes})
	}

	flagged := map[int]bool{}
	for i := 0; i < len(intervals); i++ {
		for j := i + 1; j < len(intervals); j++ {
			a, b := intervals[i], intervals[j]
			if a.start < b.end && b.start < a.end {
				flagged[a.index] = true
				flagged[b.index] = true
			}
		}
	}

	indices := make([]int, 0, len(flagged))
	for i := range flagged {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}
