package utils_test

import (
	"testing"
	"time"

	"blog-api/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToInt64(t *testing.T) {
	assert.Equal(t, int64(42), utils.ToInt64(int64(42)))
	assert.Equal(t, int64(42), utils.ToInt64(42))
	assert.Equal(t, int64(42), utils.ToInt64(uint32(42)))
	assert.Equal(t, int64(42), utils.ToInt64(float64(42)))
	assert.Equal(t, int64(42), utils.ToInt64("42"))
	assert.Equal(t, int64(42), utils.ToInt64([]byte("42")))
	assert.Equal(t, int64(0), utils.ToInt64("not a number"))
	assert.Equal(t, int64(0), utils.ToInt64(nil))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "hello", utils.ToString("hello"))
	assert.Equal(t, "hello", utils.ToString([]byte("hello")))
	assert.Equal(t, "42", utils.ToString(42))
	assert.Equal(t, "", utils.ToString(nil))
}

func TestToTimeString(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 45, 123000000, time.UTC)
	assert.Equal(t, "2024-03-01 12:30:45.123", utils.ToTimeString(ts))
	assert.Equal(t, "2024-03-01 12:30:45.123", utils.ToTimeString("2024-03-01 12:30:45.123"))
	assert.Equal(t, "2024-03-01 12:30:45.123", utils.ToTimeString([]byte("2024-03-01 12:30:45.123")))
}

func TestNowMatchesLayout(t *testing.T) {
	now := utils.Now()
	parsed, err := time.Parse(utils.TimeLayout, now)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
}
