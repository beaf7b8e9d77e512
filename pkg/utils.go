package pkg

import "strings"

func Filter[T any](items []T, predicate func(T) bool) []T {
	filtered := []T{}
	for _, item := range items {
		if predicate(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func NotBlank(s string) bool { return strings.TrimSpace(s) != "" }

// Clone returns a copy of s that never aliases the caller's backing array.
// A nil slice stays nil.
func Clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
