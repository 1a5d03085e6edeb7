package utils

import "strings"

func Ptr[T any](v T) *T {
	return &v
}

// NilIfEmpty trims s and returns nil when nothing is left.
func NilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
