package models

// CartItem is a single line in the hire user's cart. Items are identified by
// the (serviceSlug, serviceCategory) pair; the cart never holds two lines for
// the same pair.
type CartItem struct {
	ServiceSlug     string  `json:"serviceSlug"`
	ServiceCategory string  `json:"serviceCategory"`
	ServiceName     string  `json:"serviceName"`
	Price           float64 `json:"price"`
	Quantity        int     `json:"quantity"`
}

// Key returns the identity key of the line item.
func (c CartItem) Key() (string, string) {
	return c.ServiceSlug, c.ServiceCategory
}
