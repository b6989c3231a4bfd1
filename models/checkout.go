package models

// BookingSummary is what the booking-summary screen hands to checkout.
type BookingSummary struct {
	VehicleID     string `json:"vehicleId"`
	BookingTypeID string `json:"bookingTypeId"`
	CustomerID    string `json:"customerId"`
	StartDate     string `json:"startDate"` // "YYYY-MM-DD"
	EndDate       string `json:"endDate"`
}

// PriceQuote is the backend's total for a booking summary.
type PriceQuote struct {
	VehicleID string  `json:"vehicleId"`
	Currency  string  `json:"currency"`
	Total     float64 `json:"total"`
}

// AvailabilityResult reports whether the vehicle can be booked for the range.
type AvailabilityResult struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"` // Set when Available is false
}

// PaymentTicket is the handle returned by the payment service; the dashboard
// redirects the customer to CheckoutURL to complete payment.
type PaymentTicket struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Status      string  `json:"status"`
	CheckoutURL string  `json:"checkoutUrl"`
}
