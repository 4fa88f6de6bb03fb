package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyGrouping(t *testing.T) {
	cases := map[float64]string{
		0:         "₹0",
		99:        "₹99",
		399:       "₹399",
		1500:      "₹1,500",
		100000:    "₹1,00,000",
		1234567.5: "₹12,34,567.50",
	}
	for amount, want := range cases {
		assert.Equal(t, want, Currency(amount), "amount %v", amount)
	}
}

func TestCurrencyPaise(t *testing.T) {
	assert.Equal(t, "₹149.05", Currency(149.05))
	assert.Equal(t, "₹149", Currency(149.004), "sub-paise noise rounds away")
}

func TestCurrencyNegative(t *testing.T) {
	assert.Equal(t, "-₹1,500.05", Currency(-1500.05))
}

func TestDisplayDate(t *testing.T) {
	ts := time.Date(2026, time.September, 2, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2 Sep 2026", DisplayDate(ts))
}

func TestBookingStatusLabel(t *testing.T) {
	assert.Equal(t, "Confirmed", BookingStatusLabel("accepted"))
	assert.Equal(t, "In progress", BookingStatusLabel("ongoing"))
	assert.Equal(t, "on hold", BookingStatusLabel("on_hold"), "unknown statuses degrade readably")
}

func TestPrefixedID(t *testing.T) {
	id := PrefixedID("bk")
	assert.True(t, strings.HasPrefix(id, "bk-"))
	assert.NotEqual(t, id, PrefixedID("bk"))
}

func TestNewBookingRef(t *testing.T) {
	ref := NewBookingRef()
	assert.True(t, strings.HasPrefix(ref, "BR"))
	assert.Equal(t, strings.ToUpper(ref), ref)
}
