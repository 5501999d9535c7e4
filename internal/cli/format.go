// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"
	"strings"
	"time"

	"outlay/internal/money"
	"outlay/internal/period"
)

// FormatAmount renders cents with thousands separators and two
// decimals. e.g., 123456789 -> "1,234,567.89"
func FormatAmount(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := FormatNumber(cents/100) + "." + money.Format(cents%100)[2:]
	if neg {
		return "-" + s
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatDate renders a date the way it is entered and stored.
func FormatDate(d time.Time) string {
	return d.Format(period.DateLayout)
}

// TruncateNote shortens a note for table display.
func TruncateNote(note string, max int) string {
	if max <= 3 || len(note) <= max {
		return note
	}
	return note[:max-3] + "..."
}
