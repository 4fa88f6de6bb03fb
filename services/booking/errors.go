package booking

import "fmt"

// FunnelError is a validation or flow error raised by the booking funnel
// before any store mutation happens.
type FunnelError struct {
	Code    string
	Message string
}

func (e *FunnelError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrNoDraft means the funnel step found no booking in progress.
	ErrNoDraft = &FunnelError{Code: "noDraft", Message: "no booking in progress"}
	// ErrPastDate means the requested service date lies before today.
	ErrPastDate = &FunnelError{Code: "pastDate", Message: "service date cannot be in the past"}
	// ErrBadDate means the service date could not be parsed.
	ErrBadDate = &FunnelError{Code: "badDate", Message: "service date must be YYYY-MM-DD"}
	// ErrBadVisits means the requested visit count is below one.
	ErrBadVisits = &FunnelError{Code: "badVisits", Message: "visit count must be at least 1"}
	// ErrEmptyCart means checkout was attempted with nothing in the cart.
	ErrEmptyCart = &FunnelError{Code: "emptyCart", Message: "cart is empty"}
	// ErrMissingService means the selection lacks a service identity.
	ErrMissingService = &FunnelError{Code: "missingService", Message: "service category and slug are required"}
)
