package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DisplayDate formats a timestamp the way receipts show it, e.g. "2 Jan 2006".
func DisplayDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}

// Currency renders an amount in rupees with Indian digit grouping,
// e.g. 1234567.5 -> "₹12,34,567.50". Whole amounts drop the paise.
func Currency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	cents := int64(amount*100 + 0.5)
	whole := cents / 100
	paise := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	n := len(digits)
	if n > 3 {
		// Rightmost group of three, remaining groups of two.
		first := (n - 3) % 2
		if first == 0 {
			first = 2
		}
		b.WriteString(digits[:first])
		for i := first; i < n-3; i += 2 {
			b.WriteByte(',')
			b.WriteString(digits[i : i+2])
		}
		b.WriteByte(',')
		b.WriteString(digits[n-3:])
	} else {
		b.WriteString(digits)
	}

	out := "₹" + b.String()
	if paise > 0 {
		out += fmt.Sprintf(".%02d", paise)
	}
	if neg {
		out = "-" + out
	}
	return out
}

// BookingStatusLabel maps an internal booking status to its display label.
func BookingStatusLabel(status string) string {
	labels := map[string]string{
		"accepted":  "Confirmed",
		"ongoing":   "In progress",
		"completed": "Completed",
		"cancelled": "Cancelled",
		"rejected":  "Rejected",
	}
	if label, ok := labels[status]; ok {
		return label
	}
	return strings.ReplaceAll(status, "_", " ")
}
