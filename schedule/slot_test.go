package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	m, err := ParseClock("18:30")
	assert.NoError(t, err)
	assert.Equal(t, 18*60+30, m)

	m, err = ParseClock("9:05")
	assert.NoError(t, err)
	assert.Equal(t, 9*60+5, m)

	for _, bad := range []string{"", "24:00", "12:60", "1230", "12:3", "aa:bb", "123:00", "+9:05", "-0:30", "09:+5", "1:-5"} {
		_, err := ParseClock(bad)
		assert.ErrorIs(t, err, ErrInvalidTime, bad)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "23:59", FormatClock(1439))
	assert.Equal(t, "01:10", FormatClock(1440+70))
}
