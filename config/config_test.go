package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTypedHelpers(t *testing.T) {
	t.Setenv("CINEMA_TEST_INT", "42")
	t.Setenv("CINEMA_TEST_BAD_INT", "x")
	t.Setenv("CINEMA_TEST_BOOL", "true")
	t.Setenv("CINEMA_TEST_DUR", "90s")

	assert.Equal(t, 42, ConfigInt("CINEMA_TEST_INT", 1))
	assert.Equal(t, 1, ConfigInt("CINEMA_TEST_BAD_INT", 1))
	assert.Equal(t, 7, ConfigInt("CINEMA_TEST_MISSING", 7))
	assert.True(t, ConfigBool("CINEMA_TEST_BOOL", false))
	assert.Equal(t, 90*time.Second, ConfigDuration("CINEMA_TEST_DUR", time.Minute))
	assert.Equal(t, "def", ConfigDefault("CINEMA_TEST_MISSING", "def"))
}

func TestLocation_DefaultsToICT(t *testing.T) {
	t.Setenv("TIMEZONE", "")
	_, offset := time.Date(2026, 1, 1, 0, 0, 0, 0, Location()).Zone()
	assert.Equal(t, 7*3600, offset)
}
