package onboarding

import (
	"testing"

	"rentora/models"
)

func TestPayloadDropsPriceForUnselectedBookingType(t *testing.T) {
	form := BuildFormState(&models.VehicleConfiguration{ID: "v1"}, testTypes, testBuckets).
		ToggleBookingType("A").
		WithPrice("A", "50000").
		WithPrice("B", "20000"). // typed but B is not selected
		WithDiscount("D7", "10")

	req := BuildUpdatePayload(form, testTypes)

	if len(req.Pricing) != 1 {
		t.Fatalf("expected a single pricing entry, got %+v", req.Pricing)
	}
	entry := req.Pricing[0]
	if entry.BookingTypeID != "A" || entry.Price != 50000 {
		t.Fatalf("unexpected pricing entry: %+v", entry)
	}
	if entry.BookingTypeName != "Single day" || entry.PlatformFeeType != PlatformFeeType {
		t.Fatalf("expected display name and fee tag, got %+v", entry)
	}

	if len(req.Discounts) != 1 || req.Discounts[0].DiscountDurationID != "D7" || req.Discounts[0].Percentage != 10 {
		t.Fatalf("unexpected discounts: %+v", req.Discounts)
	}
}

func TestPayloadOmitsEmptyAndNonPositiveDiscounts(t *testing.T) {
	form := BuildFormState(&models.VehicleConfiguration{ID: "v1"}, testTypes, testBuckets).
		WithDiscount("D7", "0").
		WithDiscount("D30", "")

	req := BuildUpdatePayload(form, testTypes)
	if len(req.Discounts) != 0 {
		t.Fatalf("expected no discount entries, got %+v", req.Discounts)
	}

	form = form.WithDiscount("D7", "-5")
	req = BuildUpdatePayload(form, testTypes)
	if len(req.Discounts) != 0 {
		t.Fatalf("expected negative discount omitted, got %+v", req.Discounts)
	}
}

func TestPayloadOmitsEmptyPricesForSelectedTypes(t *testing.T) {
	form := BuildFormState(&models.VehicleConfiguration{ID: "v1"}, testTypes, testBuckets).
		ToggleBookingType("A").
		ToggleBookingType("B").
		WithPrice("B", "20000")

	req := BuildUpdatePayload(form, testTypes)
	if len(req.Pricing) != 1 || req.Pricing[0].BookingTypeID != "B" {
		t.Fatalf("expected only B priced, got %+v", req.Pricing)
	}
	if len(req.SupportedBookingTypeIDs) != 2 {
		t.Fatalf("expected both ids in the selected set, got %v", req.SupportedBookingTypeIDs)
	}
}

func TestPayloadParsesNumericFieldsWithZeroDefault(t *testing.T) {
	form := BuildFormState(&models.VehicleConfiguration{ID: "v1"}, testTypes, testBuckets).
		WithMaxTripDuration("14", "DAYS").
		WithOutskirtFee("2500.5")

	req := BuildUpdatePayload(form, testTypes)
	if req.MaxTripDurationValue != 14 || req.MaxTripDurationUnit != "DAYS" {
		t.Fatalf("unexpected trip duration: %d %s", req.MaxTripDurationValue, req.MaxTripDurationUnit)
	}
	if req.AdvanceNoticeValue != 0 {
		t.Fatalf("expected empty advance notice to parse as 0, got %d", req.AdvanceNoticeValue)
	}
	if req.OutskirtFee != 2500.5 || req.ExtremeFee != 0 || req.ExtraHourlyRate != 0 {
		t.Fatalf("unexpected fees: %v %v %v", req.OutskirtFee, req.ExtremeFee, req.ExtraHourlyRate)
	}
}

func TestPayloadDropsStalePriceKeys(t *testing.T) {
	form := BuildFormState(&models.VehicleConfiguration{ID: "v1"}, testTypes, testBuckets).
		ToggleBookingType("A").
		WithPrice("A", "100")
	// Simulate a price entry left over from a booking type the backend removed.
	form = form.WithPrice("GONE", "500")
	form.SupportedBookingTypeIDs = append(form.SupportedBookingTypeIDs, "GONE")

	req := BuildUpdatePayload(form, testTypes)
	for _, entry := range req.Pricing {
		if entry.BookingTypeID == "GONE" {
			t.Fatalf("stale booking type leaked into payload: %+v", req.Pricing)
		}
	}
}
