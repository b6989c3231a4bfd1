package onboarding

import (
	"testing"

	"rentora/models"
)

var testTypes = []models.BookingType{
	{ID: "A", Name: "Single day", DurationInMinutes: 1440},
	{ID: "B", Name: "Multi day", DurationInMinutes: 2880},
	{ID: "C", Name: "Hourly", DurationInMinutes: 60},
}

var testBuckets = []models.DiscountDuration{
	{ID: "D7", Name: "Up to a week", MinDays: 3, MaxDays: 7},
	{ID: "D30", Name: "Up to a month", MinDays: 8, MaxDays: 30},
}

func TestBuildFormStateFromUnconfiguredVehicle(t *testing.T) {
	cfg := &models.VehicleConfiguration{ID: "v1"}

	form := BuildFormState(cfg, testTypes, testBuckets)

	if len(form.SupportedBookingTypeIDs) != 0 {
		t.Fatalf("expected no selected booking types, got %v", form.SupportedBookingTypeIDs)
	}
	for _, id := range []string{"A", "B", "C"} {
		if v, ok := form.Prices[id]; !ok || v != "" {
			t.Fatalf("expected empty price entry for %s, got %q (present=%v)", id, v, ok)
		}
	}
	for _, id := range []string{"D7", "D30"} {
		if v, ok := form.Discounts[id]; !ok || v != "" {
			t.Fatalf("expected empty discount entry for %s, got %q (present=%v)", id, v, ok)
		}
	}
	if form.MaxTripDurationUnit != DefaultDurationUnit || form.AdvanceNoticeUnit != DefaultDurationUnit {
		t.Fatalf("expected default duration units, got %q / %q", form.MaxTripDurationUnit, form.AdvanceNoticeUnit)
	}
	if form.WillProvideDriver != NoValue || form.WillProvideFuel != NoValue {
		t.Fatalf("expected no/no service flags, got %q / %q", form.WillProvideDriver, form.WillProvideFuel)
	}
}

func TestBuildFormStatePrefillsPersistedValues(t *testing.T) {
	maxVal, noticeVal := 14, 2
	outskirt := 5000.0
	cfg := &models.VehicleConfiguration{
		ID:                   "v1",
		MaxTripDurationValue: &maxVal,
		MaxTripDurationUnit:  "WEEKS",
		AdvanceNoticeValue:   &noticeVal,
		WillProvideDriver:    true,
		OutskirtFee:          &outskirt,
		SupportedBookingTypes: []models.VehicleBookingType{
			{BookingTypeID: "C"}, {BookingTypeID: "A"},
		},
		OutOfBoundsAreas: []models.VehicleArea{{AreaID: "z2"}, {AreaID: "z1"}},
		Pricing: []models.VehiclePrice{
			{BookingTypeID: "A", Price: 50000},
		},
		Discounts: []models.VehicleDiscount{
			{DiscountDurationID: "D30", Percentage: 15},
		},
	}

	form := BuildFormState(cfg, testTypes, testBuckets)

	if form.MaxTripDurationValue != "14" || form.MaxTripDurationUnit != "WEEKS" {
		t.Fatalf("unexpected max trip duration: %q %q", form.MaxTripDurationValue, form.MaxTripDurationUnit)
	}
	if form.AdvanceNoticeValue != "2" || form.AdvanceNoticeUnit != DefaultDurationUnit {
		t.Fatalf("unexpected advance notice: %q %q", form.AdvanceNoticeValue, form.AdvanceNoticeUnit)
	}
	if form.WillProvideDriver != YesValue {
		t.Fatalf("expected yes, got %q", form.WillProvideDriver)
	}
	if form.OutskirtFee != "5000" || form.ExtremeFee != "" {
		t.Fatalf("unexpected fees: %q %q", form.OutskirtFee, form.ExtremeFee)
	}

	// Association ids come out sorted regardless of server order.
	if len(form.SupportedBookingTypeIDs) != 2 || form.SupportedBookingTypeIDs[0] != "A" || form.SupportedBookingTypeIDs[1] != "C" {
		t.Fatalf("expected sorted [A C], got %v", form.SupportedBookingTypeIDs)
	}
	if len(form.OutOfBoundsAreaIDs) != 2 || form.OutOfBoundsAreaIDs[0] != "z1" {
		t.Fatalf("expected sorted area ids, got %v", form.OutOfBoundsAreaIDs)
	}

	if form.Prices["A"] != "50000" || form.Prices["B"] != "" || form.Prices["C"] != "" {
		t.Fatalf("unexpected price map: %v", form.Prices)
	}
	if form.Discounts["D30"] != "15" || form.Discounts["D7"] != "" {
		t.Fatalf("unexpected discount map: %v", form.Discounts)
	}
}

func TestBuildFormStateIsDeterministic(t *testing.T) {
	price := 50000.0
	cfg := &models.VehicleConfiguration{
		ID:                    "v1",
		SupportedBookingTypes: []models.VehicleBookingType{{BookingTypeID: "B"}},
		Pricing:               []models.VehiclePrice{{BookingTypeID: "B", Price: price}},
	}

	first := BuildFormState(cfg, testTypes, testBuckets)
	second := BuildFormState(cfg, testTypes, testBuckets)
	if !first.Equal(second) {
		t.Fatalf("expected identical form states, got %+v vs %+v", first, second)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	form := BuildFormState(&models.VehicleConfiguration{ID: "v1"}, testTypes, testBuckets)
	snapshot := form.clone()

	mutated := form.WithPrice("A", "100")
	if !snapshot.Equal(form) {
		t.Fatal("mutator modified the receiver")
	}
	if mutated.Equal(snapshot) {
		t.Fatal("expected mutated state to differ from snapshot")
	}
}
