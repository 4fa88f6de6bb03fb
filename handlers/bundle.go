package handlers

// HandlerBundle groups every handler the route registration needs.
type HandlerBundle struct {
	Cart     *CartHandler
	Booking  *BookingHandler
	Payment  *PaymentHandler
	Request  *RequestHandler
	Ticket   *TicketHandler
	Onboard  *OnboardHandler
	Profile  *ProfileHandler
	Catalog  *CatalogHandler
	Provider *ProviderHandler
}
