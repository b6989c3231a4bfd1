package onboarding

import "sort"

// Field mutators. Each produces a new FormState and leaves the receiver
// untouched, so the original snapshot captured at prefill time stays valid
// for change detection.

// WithMaxTripDuration sets the compound max-trip-duration field.
func (f FormState) WithMaxTripDuration(value, unit string) FormState {
	g := f.clone()
	g.MaxTripDurationValue = value
	g.MaxTripDurationUnit = unit
	return g
}

// WithAdvanceNotice sets the compound advance-notice field.
func (f FormState) WithAdvanceNotice(value, unit string) FormState {
	g := f.clone()
	g.AdvanceNoticeValue = value
	g.AdvanceNoticeUnit = unit
	return g
}

// WithDriverProvided sets the driver-provided select (YesValue/NoValue).
func (f FormState) WithDriverProvided(value string) FormState {
	g := f.clone()
	g.WillProvideDriver = value
	return g
}

// WithFuelProvided sets the fuel-provided select (YesValue/NoValue).
func (f FormState) WithFuelProvided(value string) FormState {
	g := f.clone()
	g.WillProvideFuel = value
	return g
}

// WithOutskirtFee sets the outskirt flat fee field.
func (f FormState) WithOutskirtFee(value string) FormState {
	g := f.clone()
	g.OutskirtFee = value
	return g
}

// WithExtremeFee sets the extreme-area flat fee field.
func (f FormState) WithExtremeFee(value string) FormState {
	g := f.clone()
	g.ExtremeFee = value
	return g
}

// WithExtraHourlyRate sets the extra hourly rate field.
func (f FormState) WithExtraHourlyRate(value string) FormState {
	g := f.clone()
	g.ExtraHourlyRate = value
	return g
}

// ToggleBookingType adds or removes a booking-type id from the supported
// set, re-sorting so equality against the snapshot stays order-independent.
func (f FormState) ToggleBookingType(id string) FormState {
	g := f.clone()
	g.SupportedBookingTypeIDs = toggleID(g.SupportedBookingTypeIDs, id)
	return g
}

// ToggleOutOfBoundsArea adds or removes a geofence-area id from the
// out-of-bounds set.
func (f FormState) ToggleOutOfBoundsArea(id string) FormState {
	g := f.clone()
	g.OutOfBoundsAreaIDs = toggleID(g.OutOfBoundsAreaIDs, id)
	return g
}

// WithPrice sets the price entered for one booking type.
func (f FormState) WithPrice(bookingTypeID, value string) FormState {
	g := f.clone()
	g.Prices[bookingTypeID] = value
	return g
}

// WithDiscount sets the discount percentage entered for one duration bucket.
func (f FormState) WithDiscount(discountDurationID, value string) FormState {
	g := f.clone()
	g.Discounts[discountDurationID] = value
	return g
}

func toggleID(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	ids = append(ids, id)
	sort.Strings(ids)
	return ids
}
