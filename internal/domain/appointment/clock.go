package appointment

import (
	"fmt"
	"strings"

	"github.com/SalonLinkApp/salon-scheduler/internal/httperr"
)

// parseDigits converts an all-digit decimal string. Unlike strconv.Atoi it
// rejects sign characters, keeping "+9" and "-1" out of clock and date
// fields.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// ParseClock converts a 24h "HH:MM" string into minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("malformed clock value %q", s)
	}

	h, okH := parseDigits(parts[0])
	m, okM := parseDigits(parts[1])
	if !okH || !okM {
		return 0, fmt.Errorf("malformed clock value %q", s)
	}

	if h > 23 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}

	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate splits a strict "YYYY-MM-DD" string into calendar components,
// rejecting dates that do not exist (2023-02-29, 2024-04-31, ...).
func ParseDate(s string) (year, month, day int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return 0, 0, 0, httperr.ErrBusiness("invalid_date")
	}

	year, okY := parseDigits(parts[0])
	month, okM := parseDigits(parts[1])
	day, okD := parseDigits(parts[2])
	if !okY || !okM || !okD {
		return 0, 0, 0, httperr.ErrBusiness("invalid_date")
	}

	if year < 1 || month < 1 || month > 12 || day < 1 || day > daysInMonth(year, month) {
		return 0, 0, 0, httperr.ErrBusiness("invalid_date")
	}

	return year, month, day, nil
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if isLeap(year) {
			return 29
		}
		return 28
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Weekday computes the proleptic Gregorian day of week (Sunday = 0) from
// explicit calendar components, with no timezone involvement. Sakamoto's
// method.
func Weekday(year, month, day int) int {
	t := [...]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}
	if month < 3 {
		year--
	}
	return (year + year/4 - year/100 + year/400 + t[month-1] + day) % 7
}
