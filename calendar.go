package calpdf

import "time"

// Supported year range, inclusive.
const (
	MinYear = 1900
	MaxYear = 2300
)

// MonthNames holds the English month names indexed 0 (January) to 11.
var MonthNames = [12]string{
	"January", "February", "March",
	"April", "May", "June",
	"July", "August", "September",
	"October", "November", "December",
}

// WeekdayLetters holds the weekday column headings, Sunday first.
var WeekdayLetters = [7]string{"S", "M", "T", "W", "T", "F", "S"}

// Month describes one month of a given year.
type Month struct {
	Index        int
	Name         string
	Days         int
	FirstWeekday time.Weekday
}

// IsLeap reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of month (0-11) in year.
func DaysInMonth(month, year int) int {
	if month == 1 {
		if IsLeap(year) {
			return 29
		}
		return 28
	}
	// bit m set: month m has 31 days
	const long = 0b1010_1101_0101
	return 30 + (long>>month)&1
}

// FirstWeekday returns the weekday of the first day of month (0-11) in
// year. The result only depends on calendar arithmetic.
func FirstWeekday(month, year int) time.Weekday {
	// 0001-01-01 is a Monday.
	return time.Weekday((ordinal(year, month) + 1) % 7)
}

// ordinal returns the number of days from 0001-01-01 to the first day of
// month (0-11) in year.
func ordinal(year, month int) int {
	y := year - 1
	days := y*365 + y/4 - y/100 + y/400
	for m := 0; m < month; m++ {
		days += DaysInMonth(m, year)
	}
	return days
}

// Months returns the descriptors of all twelve months of year. The caller
// is expected to have validated year.
func Months(year int) [12]Month {
	var months [12]Month
	for m := range months {
		months[m] = Month{
			Index:        m,
			Name:         MonthNames[m],
			Days:         DaysInMonth(m, year),
			FirstWeekday: FirstWeekday(m, year),
		}
	}
	return months
}
