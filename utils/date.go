package utils

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a yyyy-MM-dd form value as a UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected yyyy-MM-dd", s)
	}
	return t, nil
}

// MustParseDate is ParseDate for fixed values. It panics on bad input.
func MustParseDate(dateStr string) time.Time {
	t, err := ParseDate(dateStr)
	if err != nil {
		panic(err)
	}
	return t
}
