package utils

import (
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout        = "2006-01-02"
	DisplayDateLayout = "Mon 02 Jan"
	ClockLayout       = "15:04"
)

// FormatDisplayDate formats a query date for people.
// Example: "2025-09-11" -> "Thu 11 Sep"
func FormatDisplayDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}

	return t.Format(DisplayDateLayout)
}

// FormatClock returns the wall clock time of t, empty for the zero time.
// Example: 2025-09-11T06:05:00Z -> "06:05"
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(ClockLayout)
}

// CompactDate drops the separators of a query date.
// Example: "2025-09-11" -> "20250911"
func CompactDate(date string) string {
	return strings.ReplaceAll(date, "-", "")
}

// FormatEuro formats an amount with two decimals and a euro sign.
// Example: 1234.5 -> "€1,234.50"
func FormatEuro(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, fraction := str[:len(str)-3], str[len(str)-2:]

	var result []byte

	count := 0
	for i := len(whole) - 1; i >= 0; i-- {
		result = append([]byte{whole[i]}, result...)
		count++
		if count%3 == 0 && i != 0 {
			result = append([]byte{','}, result...)
		}
	}

	if negative {
		return "-€" + string(result) + "." + fraction
	}
	return "€" + string(result) + "." + fraction
}
