package utils

import (
	"strconv"
	"strings"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ParseSeatNumber reads a seat number such as "12" or "#12". Blank input
// yields nil.
func ParseSeatNumber(raw string) (*int, error) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
