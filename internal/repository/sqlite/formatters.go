package sqlite

import (
	"database/sql"
	"time"
)

// formatTimeForDB formats a time.Time value as RFC3339 string for consistent database storage
func formatTimeForDB(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// formatTimePtrForDB formats a *time.Time value as RFC3339 string, returning nil if the pointer is nil
func formatTimePtrForDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return formatTimeForDB(*t)
}

// parseTimeFromDB parses an RFC3339 formatted time string from the database
func parseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// parseTimePtrFromDB parses a nullable RFC3339 time column
func parseTimePtrFromDB(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := parseTimeFromDB(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
