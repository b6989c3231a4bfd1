package models

// Geofence area classifications.
const (
	AreaTypeOutskirt = "OUTSKIRT"
	AreaTypeExtreme  = "EXTREME"
)

// BookingType is a reference category describing a bookable duration unit.
type BookingType struct {
	ID                string `json:"id"`
	Name              string `json:"name"`              // e.g., "Single day", "Multi day"
	DurationInMinutes int    `json:"durationInMinutes"` // Typical duration of one booking of this type
}

// GeofenceArea is a named zone a vehicle may not be driven into without an
// extra fee, classified as OUTSKIRT or EXTREME.
type GeofenceArea struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	AreaType string `json:"areaType"`
}

// DiscountDuration is a trip-length bucket (minDays-maxDays) to which a
// discount percentage can be attached.
type DiscountDuration struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	MinDays int    `json:"minDays"`
	MaxDays int    `json:"maxDays"`
}
