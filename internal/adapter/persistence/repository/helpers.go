package repository

import (
	"errors"
	"time"
)

// DefaultSessionTTL is how long an untouched session or conversation lives.
const DefaultSessionTTL = 2 * time.Hour

var ErrDuplicateID = errors.New("id already exists")

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, v)
	return t
}
