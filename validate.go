package calpdf

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrYearOutOfRange reports a year outside [MinYear, MaxYear].
	ErrYearOutOfRange = errors.New("year out of range")
	// ErrInvalidYear reports a year argument that is not a base-10 integer.
	ErrInvalidYear = errors.New("invalid year")
)

// ValidateYear returns ErrYearOutOfRange unless MinYear <= year <= MaxYear.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return ErrYearOutOfRange
	}
	return nil
}

// ParseYear parses a year argument and validates its range.
func ParseYear(arg string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, ErrInvalidYear
	}
	if err := ValidateYear(year); err != nil {
		return 0, err
	}
	return year, nil
}
