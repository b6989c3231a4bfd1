package models

// VehicleConfiguration is the mutable per-vehicle record of trip policy,
// service flags, pricing and discounts. Pointer and nil-slice fields mean
// "not yet configured", not errors.
type VehicleConfiguration struct {
	ID                    string               `json:"id"`
	MaxTripDurationValue  *int                 `json:"maxTripDurationValue"`
	MaxTripDurationUnit   string               `json:"maxTripDurationUnit"`
	AdvanceNoticeValue    *int                 `json:"advanceNoticeValue"`
	AdvanceNoticeUnit     string               `json:"advanceNoticeUnit"`
	WillProvideDriver     bool                 `json:"willProvideDriver"`
	WillProvideFuel       bool                 `json:"willProvideFuel"`
	SupportedBookingTypes []VehicleBookingType `json:"supportedBookingTypes"`
	OutOfBoundsAreas      []VehicleArea        `json:"outOfBoundsAreas"`
	OutskirtFee           *float64             `json:"outskirtFee"`
	ExtremeFee            *float64             `json:"extremeFee"`
	ExtraHourlyRate       *float64             `json:"extraHourlyRate"`
	Pricing               []VehiclePrice       `json:"pricing"`
	Discounts             []VehicleDiscount    `json:"discounts"`
}

// VehicleBookingType associates a vehicle with a supported booking type.
type VehicleBookingType struct {
	BookingTypeID string `json:"bookingTypeId"`
}

// VehicleArea associates a vehicle with an out-of-bounds geofence area.
type VehicleArea struct {
	AreaID string `json:"areaId"`
}

// VehiclePrice is a persisted price entry for one booking type.
type VehiclePrice struct {
	BookingTypeID   string  `json:"bookingTypeId"`
	BookingTypeName string  `json:"bookingTypeName"`
	Price           float64 `json:"price"`
	PlatformFeeType string  `json:"platformFeeType"`
}

// VehicleDiscount is a persisted discount entry for one duration bucket.
type VehicleDiscount struct {
	DiscountDurationID string  `json:"discountDurationId"`
	Percentage         float64 `json:"percentage"`
}

// UpdateVehicleConfigurationRequest is the PATCH body for
// /vehicles/configuration?id={id}.
type UpdateVehicleConfigurationRequest struct {
	MaxTripDurationUnit     string          `json:"maxTripDurationUnit"`
	MaxTripDurationValue    int             `json:"maxTripDurationValue"`
	AdvanceNoticeUnit       string          `json:"advanceNoticeUnit"`
	AdvanceNoticeValue      int             `json:"advanceNoticeValue"`
	WillProvideDriver       bool            `json:"willProvideDriver"`
	WillProvideFuel         bool            `json:"willProvideFuel"`
	SupportedBookingTypeIDs []string        `json:"supportedBookingTypeIds"`
	OutOfBoundsAreaIDs      []string        `json:"outOfBoundsAreaIds"`
	OutskirtFee             float64         `json:"outskirtFee"`
	ExtremeFee              float64         `json:"extremeFee"`
	ExtraHourlyRate         float64         `json:"extraHourlyRate"`
	Pricing                 []PricingEntry  `json:"pricing"`
	Discounts               []DiscountEntry `json:"discounts"`
}

// PricingEntry is one submitted price row.
type PricingEntry struct {
	BookingTypeID   string  `json:"bookingTypeId"`
	BookingTypeName string  `json:"bookingTypeName"`
	Price           float64 `json:"price"`
	PlatformFeeType string  `json:"platformFeeType"`
}

// DiscountEntry is one submitted discount row.
type DiscountEntry struct {
	DiscountDurationID string  `json:"discountDurationId"`
	Percentage         float64 `json:"percentage"`
}
