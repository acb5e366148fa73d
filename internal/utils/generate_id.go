package utils

import (
	"math/rand"
	"time"
)

// GenerateId produces a per-user-unique identifier from the current epoch
// milliseconds plus a small random offset.
func GenerateId() int64 {
	return time.Now().UnixMilli() + int64(rand.Intn(1000))
}

// CurrentTimestamp returns the current UTC time as an ISO-8601 string with
// a trailing Z, the format every record stores.
func CurrentTimestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000Z07:00")
}
