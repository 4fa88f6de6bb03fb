package models

import "time"

// PaymentStatus is the lifecycle state of a payment record.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

// Payment is a payment record created alongside a booking. A booking may
// carry several payments, in practice one.
type Payment struct {
	ID          string        `json:"id"`
	BookingID   string        `json:"bookingId"`
	ServiceName string        `json:"serviceName"`
	Location    string        `json:"location"`
	Amount      float64       `json:"amount"`
	Date        string        `json:"date"` // display-formatted
	Status      PaymentStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}
