package onboarding

import (
	"sort"
	"strconv"
	"strings"

	"rentora/models"
)

// PlatformFeeType tags every submitted price entry. The backend only
// supports flat-rate platform fees today.
const PlatformFeeType = "FLAT_RATE"

// BuildUpdatePayload normalizes a FormState into the PATCH body.
//
// Pricing keeps only entries whose booking type is currently selected and
// whose value is non-empty; a price typed for a later-deselected type is
// silently dropped. Discounts keep only entries with a positive percentage:
// "", "0" and "no discount configured" are not distinguished. Numeric fields
// parse with a default of 0 when empty.
func BuildUpdatePayload(form FormState, types []models.BookingType) models.UpdateVehicleConfigurationRequest {
	req := models.UpdateVehicleConfigurationRequest{
		MaxTripDurationUnit:     form.MaxTripDurationUnit,
		MaxTripDurationValue:    parseCount(form.MaxTripDurationValue),
		AdvanceNoticeUnit:       form.AdvanceNoticeUnit,
		AdvanceNoticeValue:      parseCount(form.AdvanceNoticeValue),
		WillProvideDriver:       form.WillProvideDriver == YesValue,
		WillProvideFuel:         form.WillProvideFuel == YesValue,
		SupportedBookingTypeIDs: append([]string{}, form.SupportedBookingTypeIDs...),
		OutOfBoundsAreaIDs:      append([]string{}, form.OutOfBoundsAreaIDs...),
		OutskirtFee:             parseAmount(form.OutskirtFee),
		ExtremeFee:              parseAmount(form.ExtremeFee),
		ExtraHourlyRate:         parseAmount(form.ExtraHourlyRate),
		Pricing:                 []models.PricingEntry{},
		Discounts:               []models.DiscountEntry{},
	}

	selected := make(map[string]bool, len(form.SupportedBookingTypeIDs))
	for _, id := range form.SupportedBookingTypeIDs {
		selected[id] = true
	}

	// Iterating the reference list keeps the output order stable and drops
	// stale price entries whose booking type no longer exists.
	for _, bt := range types {
		value, ok := form.Prices[bt.ID]
		if !ok || value == "" || !selected[bt.ID] {
			continue
		}
		req.Pricing = append(req.Pricing, models.PricingEntry{
			BookingTypeID:   bt.ID,
			BookingTypeName: bt.Name,
			Price:           parseAmount(value),
			PlatformFeeType: PlatformFeeType,
		})
	}

	bucketIDs := make([]string, 0, len(form.Discounts))
	for id := range form.Discounts {
		bucketIDs = append(bucketIDs, id)
	}
	sort.Strings(bucketIDs)
	for _, id := range bucketIDs {
		pct := parseAmount(form.Discounts[id])
		if pct <= 0 {
			continue
		}
		req.Discounts = append(req.Discounts, models.DiscountEntry{
			DiscountDurationID: id,
			Percentage:         pct,
		})
	}

	return req
}

func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
