package models

// Service is a bookable service as listed by the backend catalogue.
type Service struct {
	ID       string        `json:"id,omitempty"`
	Slug     string        `json:"slug"`
	Name     string        `json:"name"`
	Category string        `json:"category,omitempty"`
	Price    float64       `json:"price"`
	Icon     string        `json:"icon,omitempty"`
	Tiers    []ServiceTier `json:"tiers,omitempty"`
}

// UserProfile is the backend's view of the signed-in account.
type UserProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"` // "hire" or "provider"
	Onboarded bool   `json:"onboarded"`
}
