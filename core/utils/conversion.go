package utils

import (
	"fmt"
	"strconv"
	"time"
)

// TimeLayout is the storage format for createdAt/updatedAt values.
// Millisecond precision matches the DATETIME(3) columns created by migrate.
const TimeLayout = "2006-01-02 15:04:05.000"

// Now returns the current UTC time in the storage layout.
func Now() string {
	return time.Now().UTC().Format(TimeLayout)
}

// ToInt64 converts row values to int64 using explicit type switching.
// The MySQL driver may surface numeric columns as any integer width, a string,
// or a byte slice depending on the statement path.
func ToInt64(val any) int64 {
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int16:
		return int64(v)
	case int8:
		return int64(v)
	case uint:
		return int64(v)
	case uint64:
		return int64(v)
	case uint32:
		return int64(v)
	case uint16:
		return int64(v)
	case uint8:
		return int64(v)
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case string:
		i, _ := strconv.ParseInt(v, 10, 64)
		return i
	case []byte:
		i, _ := strconv.ParseInt(string(v), 10, 64)
		return i
	default:
		s := fmt.Sprintf("%v", v)
		i, _ := strconv.ParseInt(s, 10, 64)
		return i
	}
}

// ToString converts row values to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToTimeString converts a timestamp row value to the storage layout.
// With parseTime enabled the driver returns time.Time; mock and raw paths
// return strings or byte slices, which are passed through unchanged.
func ToTimeString(val any) string {
	if t, ok := val.(time.Time); ok {
		return t.UTC().Format(TimeLayout)
	}
	return ToString(val)
}
