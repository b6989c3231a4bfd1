package onboarding

import (
	"sort"
	"strconv"

	"rentora/models"
)

// Select values used by the boolean service-flag selects.
const (
	YesValue = "yes"
	NoValue  = "no"
)

// DefaultDurationUnit is applied when the persisted configuration carries no
// unit yet.
const DefaultDurationUnit = "DAYS"

// FormState is the editable in-memory projection of a vehicle configuration.
// Numeric fields are string-typed so empty inputs survive round trips, and
// "" stands for an unset select. Id slices are kept sorted so snapshot
// comparison is order-independent.
type FormState struct {
	MaxTripDurationValue string `json:"maxTripDurationValue"`
	MaxTripDurationUnit  string `json:"maxTripDurationUnit"`
	AdvanceNoticeValue   string `json:"advanceNoticeValue"`
	AdvanceNoticeUnit    string `json:"advanceNoticeUnit"`

	WillProvideDriver string `json:"willProvideDriver"`
	WillProvideFuel   string `json:"willProvideFuel"`

	SupportedBookingTypeIDs []string `json:"supportedBookingTypeIds"`
	OutOfBoundsAreaIDs      []string `json:"outOfBoundsAreaIds"`

	OutskirtFee     string `json:"outskirtFee"`
	ExtremeFee      string `json:"extremeFee"`
	ExtraHourlyRate string `json:"extraHourlyRate"`

	// Sparse maps keyed by reference ids. Every known id gets a key at
	// prefill time; "" means no value entered.
	Prices    map[string]string `json:"prices"`
	Discounts map[string]string `json:"discounts"`
}

// BuildFormState projects a persisted configuration plus the reference lists
// into an editable FormState. It is deterministic: the same inputs always
// produce the same state.
func BuildFormState(cfg *models.VehicleConfiguration, types []models.BookingType, buckets []models.DiscountDuration) FormState {
	form := FormState{
		MaxTripDurationValue: intString(cfg.MaxTripDurationValue),
		MaxTripDurationUnit:  durationUnit(cfg.MaxTripDurationUnit),
		AdvanceNoticeValue:   intString(cfg.AdvanceNoticeValue),
		AdvanceNoticeUnit:    durationUnit(cfg.AdvanceNoticeUnit),
		WillProvideDriver:    boolSelect(cfg.WillProvideDriver),
		WillProvideFuel:      boolSelect(cfg.WillProvideFuel),
		OutskirtFee:          floatString(cfg.OutskirtFee),
		ExtremeFee:           floatString(cfg.ExtremeFee),
		ExtraHourlyRate:      floatString(cfg.ExtraHourlyRate),
	}

	form.SupportedBookingTypeIDs = make([]string, 0, len(cfg.SupportedBookingTypes))
	for _, assoc := range cfg.SupportedBookingTypes {
		form.SupportedBookingTypeIDs = append(form.SupportedBookingTypeIDs, assoc.BookingTypeID)
	}
	sort.Strings(form.SupportedBookingTypeIDs)

	form.OutOfBoundsAreaIDs = make([]string, 0, len(cfg.OutOfBoundsAreas))
	for _, assoc := range cfg.OutOfBoundsAreas {
		form.OutOfBoundsAreaIDs = append(form.OutOfBoundsAreaIDs, assoc.AreaID)
	}
	sort.Strings(form.OutOfBoundsAreaIDs)

	// Dense keys, sparse values: every known booking type gets an entry,
	// defaulting to "" when no price is persisted.
	form.Prices = make(map[string]string, len(types))
	for _, bt := range types {
		form.Prices[bt.ID] = ""
		for _, price := range cfg.Pricing {
			if price.BookingTypeID == bt.ID {
				form.Prices[bt.ID] = floatString(&price.Price)
				break
			}
		}
	}

	form.Discounts = make(map[string]string, len(buckets))
	for _, bucket := range buckets {
		form.Discounts[bucket.ID] = ""
		for _, disc := range cfg.Discounts {
			if disc.DiscountDurationID == bucket.ID {
				form.Discounts[bucket.ID] = floatString(&disc.Percentage)
				break
			}
		}
	}

	return form
}

// clone deep-copies the state so the snapshot and live copy never share
// slices or maps.
func (f FormState) clone() FormState {
	g := f
	g.SupportedBookingTypeIDs = append([]string(nil), f.SupportedBookingTypeIDs...)
	g.OutOfBoundsAreaIDs = append([]string(nil), f.OutOfBoundsAreaIDs...)
	g.Prices = make(map[string]string, len(f.Prices))
	for k, v := range f.Prices {
		g.Prices[k] = v
	}
	g.Discounts = make(map[string]string, len(f.Discounts))
	for k, v := range f.Discounts {
		g.Discounts[k] = v
	}
	return g
}

// Equal reports whether two form states hold the same values. Id slices are
// compared in order; they are kept sorted by construction.
func (f FormState) Equal(o FormState) bool {
	if f.MaxTripDurationValue != o.MaxTripDurationValue ||
		f.MaxTripDurationUnit != o.MaxTripDurationUnit ||
		f.AdvanceNoticeValue != o.AdvanceNoticeValue ||
		f.AdvanceNoticeUnit != o.AdvanceNoticeUnit ||
		f.WillProvideDriver != o.WillProvideDriver ||
		f.WillProvideFuel != o.WillProvideFuel ||
		f.OutskirtFee != o.OutskirtFee ||
		f.ExtremeFee != o.ExtremeFee ||
		f.ExtraHourlyRate != o.ExtraHourlyRate {
		return false
	}
	if !equalSlices(f.SupportedBookingTypeIDs, o.SupportedBookingTypeIDs) ||
		!equalSlices(f.OutOfBoundsAreaIDs, o.OutOfBoundsAreaIDs) {
		return false
	}
	return equalMaps(f.Prices, o.Prices) && equalMaps(f.Discounts, o.Discounts)
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalMaps(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

func intString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatString(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func boolSelect(v bool) string {
	if v {
		return YesValue
	}
	return NoValue
}

func durationUnit(unit string) string {
	if unit == "" {
		return DefaultDurationUnit
	}
	return unit
}
