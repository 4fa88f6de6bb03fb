package models

import "time"

// RequestStatus is the lifecycle state of a custom service request.
type RequestStatus string

const (
	RequestOpen     RequestStatus = "open"
	RequestAssigned RequestStatus = "assigned"
)

// Applicant is a provider's application to a service request. A provider can
// appear at most once per request.
type Applicant struct {
	ProviderID   string    `json:"providerId"`
	ProviderName string    `json:"providerName"`
	Message      string    `json:"message,omitempty"`
	AppliedAt    time.Time `json:"appliedAt"`
}

// ServiceRequest is a "custom work" request posted by a hire user, collecting
// provider applications until one is assigned.
type ServiceRequest struct {
	ID                   string        `json:"id"`
	Category             string        `json:"category"`
	Description          string        `json:"description"`
	PreferredDate        string        `json:"preferredDate,omitempty"`
	BudgetMin            *float64      `json:"budgetMin,omitempty"`
	BudgetMax            *float64      `json:"budgetMax,omitempty"`
	Status               RequestStatus `json:"status"`
	CreatedAt            time.Time     `json:"createdAt"`
	CreatedByUserID      string        `json:"createdByUserId,omitempty"`
	Applicants           []Applicant   `json:"applicants"`
	AssignedProviderID   string        `json:"assignedProviderId,omitempty"`
	AssignedProviderName string        `json:"assignedProviderName,omitempty"`
}
