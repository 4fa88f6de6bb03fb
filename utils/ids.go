package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PrefixedID returns a collision-safe identifier of the form "<prefix>-<uuid>".
func PrefixedID(prefix string) string {
	return prefix + "-" + uuid.New().String()
}

// NewBookingRef returns the human-facing booking reference shown to end
// users: "BR" followed by the base-36 millisecond timestamp, uppercased.
func NewBookingRef() string {
	return "BR" + strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
}
