package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"rentora/api"
	"rentora/models"
	"rentora/utils"

	"go.uber.org/zap"
)

// ErrUnavailable is returned when the availability check rejects the range.
type ErrUnavailable struct {
	Reason string
}

func (e *ErrUnavailable) Error() string {
	if e.Reason == "" {
		return "checkout: vehicle is not available for the requested range"
	}
	return "checkout: vehicle not available: " + e.Reason
}

// Service turns a booking summary into a payment ticket: price quote, then
// availability check, then ticket creation. Any failure aborts the chain;
// nothing is cached.
type Service interface {
	Checkout(ctx context.Context, summary models.BookingSummary) (*models.PaymentTicket, error)
}

// DefaultService implements Service against the backend API.
type DefaultService struct {
	API    api.Doer
	Logger *zap.Logger
}

// NewDefaultService wires a checkout service.
func NewDefaultService(client api.Doer) *DefaultService {
	return &DefaultService{API: client, Logger: utils.GetLogger()}
}

func (s *DefaultService) Checkout(ctx context.Context, summary models.BookingSummary) (*models.PaymentTicket, error) {
	if summary.VehicleID == "" {
		return nil, errors.New("checkout: vehicle id is required")
	}

	query := url.Values{
		"bookingTypeId": {summary.BookingTypeID},
		"startDate":     {summary.StartDate},
		"endDate":       {summary.EndDate},
	}.Encode()

	var quote models.PriceQuote
	if err := s.API.Get(ctx, "/vehicles/"+url.PathEscape(summary.VehicleID)+"/quote?"+query, &quote); err != nil {
		return nil, fmt.Errorf("price quote failed: %w", err)
	}

	var avail models.AvailabilityResult
	if err := s.API.Get(ctx, "/vehicles/"+url.PathEscape(summary.VehicleID)+"/availability?"+query, &avail); err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if !avail.Available {
		return nil, &ErrUnavailable{Reason: avail.Reason}
	}

	body := struct {
		models.BookingSummary
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	}{BookingSummary: summary, Amount: quote.Total, Currency: quote.Currency}

	var ticket models.PaymentTicket
	if err := s.API.Post(ctx, "/payments/tickets", body, &ticket); err != nil {
		return nil, fmt.Errorf("payment ticket creation failed: %w", err)
	}

	if s.Logger != nil {
		s.Logger.Info("payment ticket created",
			zap.String("vehicleId", summary.VehicleID),
			zap.String("ticketId", ticket.ID),
			zap.Float64("amount", ticket.Amount),
		)
	}
	return &ticket, nil
}
