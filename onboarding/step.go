package onboarding

import (
	"context"
	"errors"
	"sync"

	"rentora/catalog"
	"rentora/models"
	"rentora/session"
	"rentora/utils"
	"rentora/vehicle"

	"go.uber.org/zap"
)

// Phase tracks the prefill join/barrier. The step starts pending, becomes
// ready once all four fetches have resolved, and primed once the editable
// state and its frozen snapshot exist. Primed is terminal: a late
// re-resolution of any fetch can never clobber in-progress edits.
type Phase int

const (
	PhasePending Phase = iota
	PhaseReady
	PhasePrimed
)

// Outcome of a submit.
type Outcome int

const (
	// OutcomeUnchanged means nothing differed from the snapshot; no network
	// call was made and the wizard still advanced.
	OutcomeUnchanged Outcome = iota
	// OutcomeUpdated means the configuration was persisted.
	OutcomeUpdated
)

var (
	// ErrNotPrimed is returned when the form is used before prefill completed.
	ErrNotPrimed = errors.New("onboarding: step is not primed yet")
	// ErrNotAuthenticated is returned when Load is attempted without a session.
	ErrNotAuthenticated = errors.New("onboarding: no active session")
)

// Notifier receives user-facing outcome messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Navigator advances the wizard once this step is done.
type Navigator interface {
	Next()
}

// Step drives the vehicle configuration step of the onboarding wizard:
// concurrent prefill of reference lists and the vehicle record, exactly-once
// priming, pure edits, and a diff-or-skip submit.
type Step struct {
	VehicleID string
	Catalog   catalog.Service
	Vehicles  vehicle.Service
	Session   session.TokenSource
	Notifier  Notifier
	Navigator Navigator
	Logger    *zap.Logger

	phase    Phase
	types    []models.BookingType
	areas    []models.GeofenceArea
	buckets  []models.DiscountDuration
	cfg      *models.VehicleConfiguration
	form     FormState
	original FormState
}

// NewStep builds a configuration step for one vehicle.
func NewStep(vehicleID string, cat catalog.Service, veh vehicle.Service, tokens session.TokenSource) *Step {
	return &Step{
		VehicleID: vehicleID,
		Catalog:   cat,
		Vehicles:  veh,
		Session:   tokens,
		Logger:    utils.GetLogger(),
	}
}

// CurrentPhase reports where the step is in the prefill lifecycle.
func (s *Step) CurrentPhase() Phase {
	return s.phase
}

// BookingTypes exposes the loaded booking-type reference list.
func (s *Step) BookingTypes() []models.BookingType {
	return s.types
}

// GeofenceAreas exposes the loaded geofence-area reference list.
func (s *Step) GeofenceAreas() []models.GeofenceArea {
	return s.areas
}

// DiscountDurations exposes the loaded discount-duration buckets.
func (s *Step) DiscountDurations() []models.DiscountDuration {
	return s.buckets
}

// Form returns the current editable state.
func (s *Step) Form() FormState {
	return s.form
}

// Apply replaces the editable state with the result of a pure mutator.
func (s *Step) Apply(mutate func(FormState) FormState) error {
	if s.phase != PhasePrimed {
		return ErrNotPrimed
	}
	s.form = mutate(s.form)
	return nil
}

// Load runs the three reference-list fetches and the vehicle fetch
// concurrently, then primes the form state. Calling Load on a primed step is
// a no-op, which is what makes cache revalidation safe while the form is
// mounted.
func (s *Step) Load(ctx context.Context) error {
	if s.phase == PhasePrimed {
		return nil
	}
	if s.VehicleID == "" {
		return vehicle.ErrMissingVehicleID
	}
	if s.Session != nil && s.Session.Token() == "" {
		return ErrNotAuthenticated
	}

	var (
		wg      sync.WaitGroup
		types   []models.BookingType
		areas   []models.GeofenceArea
		buckets []models.DiscountDuration
		cfg     *models.VehicleConfiguration
		errs    [4]error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		types, errs[0] = s.Catalog.BookingTypes(ctx)
	}()
	go func() {
		defer wg.Done()
		areas, errs[1] = s.Catalog.GeofenceAreas(ctx)
	}()
	go func() {
		defer wg.Done()
		buckets, errs[2] = s.Catalog.DiscountDurations(ctx)
	}()
	go func() {
		defer wg.Done()
		cfg, errs[3] = s.Vehicles.Get(ctx, s.VehicleID)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	s.types = types
	s.areas = areas
	s.buckets = buckets
	s.cfg = cfg
	s.phase = PhaseReady

	s.prime()
	return nil
}

// prime constructs the editable state and freezes the snapshot. Guarded so
// it runs exactly once per step.
func (s *Step) prime() {
	if s.phase == PhasePrimed {
		return
	}
	built := BuildFormState(s.cfg, s.types, s.buckets)
	s.form = built
	s.original = built.clone()
	s.phase = PhasePrimed

	if s.Logger != nil {
		s.Logger.Debug("configuration step primed",
			zap.String("vehicleId", s.VehicleID),
			zap.Int("bookingTypes", len(s.types)),
			zap.Int("discountBuckets", len(s.buckets)),
		)
	}
}

// Submit walks idle → validating → (noop-skip | submitting) → (success | error).
// An unchanged form skips the network call entirely and still advances; a
// rejected update leaves the form populated for correction.
func (s *Step) Submit(ctx context.Context) (Outcome, error) {
	if s.phase != PhasePrimed {
		return OutcomeUnchanged, ErrNotPrimed
	}

	if s.form.Equal(s.original) {
		s.notifySuccess("No changes to save")
		s.navigate()
		return OutcomeUnchanged, nil
	}

	payload := BuildUpdatePayload(s.form, s.types)
	if err := s.Vehicles.UpdateConfiguration(ctx, s.VehicleID, payload); err != nil {
		s.notifyError(err.Error())
		return OutcomeUnchanged, err
	}

	s.notifySuccess("Vehicle configuration saved")
	s.navigate()
	return OutcomeUpdated, nil
}

func (s *Step) notifySuccess(msg string) {
	if s.Notifier != nil {
		s.Notifier.Success(msg)
	}
}

func (s *Step) notifyError(msg string) {
	if s.Notifier != nil {
		s.Notifier.Error(msg)
	}
}

func (s *Step) navigate() {
	if s.Navigator != nil {
		s.Navigator.Next()
	}
}
