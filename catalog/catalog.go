package catalog

import (
	"context"
	"encoding/json"
	"time"

	"rentora/api"
	"rentora/config"
	"rentora/models"
	"rentora/utils"

	"go.uber.org/zap"
)

// Cache keys for the reference lists.
const (
	bookingTypesKey    = "catalog:bookingTypes"
	geofenceAreasKey   = "catalog:geofenceAreas"
	discountBucketsKey = "catalog:discountDurations"
)

// Service exposes the reference lists shared across dashboard screens.
// The lists are server-owned and change rarely; reads go through an
// hour-scale cache.
type Service interface {
	BookingTypes(ctx context.Context) ([]models.BookingType, error)
	GeofenceAreas(ctx context.Context) ([]models.GeofenceArea, error)
	DiscountDurations(ctx context.Context) ([]models.DiscountDuration, error)
}

// DefaultService implements Service against the backend API.
type DefaultService struct {
	API   api.Doer
	Cache utils.Store
	TTL   time.Duration
}

// NewDefaultService wires a catalog service from AppConfig.
func NewDefaultService(client api.Doer) *DefaultService {
	return &DefaultService{
		API:   client,
		Cache: utils.GetCatalogStore(),
		TTL:   config.CatalogCacheTTL(),
	}
}

func (s *DefaultService) BookingTypes(ctx context.Context) ([]models.BookingType, error) {
	var out []models.BookingType
	if err := s.cached(ctx, bookingTypesKey, "/booking-types", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DefaultService) GeofenceAreas(ctx context.Context) ([]models.GeofenceArea, error) {
	var out []models.GeofenceArea
	if err := s.cached(ctx, geofenceAreasKey, "/geofence-areas", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DefaultService) DiscountDurations(ctx context.Context) ([]models.DiscountDuration, error) {
	var out []models.DiscountDuration
	if err := s.cached(ctx, discountBucketsKey, "/discount-durations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// cached is a read-through helper: serve from cache when possible, otherwise
// fetch and store. A corrupt cache entry falls through to a fresh fetch.
func (s *DefaultService) cached(ctx context.Context, key, path string, out interface{}) error {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, key); err == nil {
			if jsonErr := json.Unmarshal([]byte(data), out); jsonErr == nil {
				return nil
			}
		}
	}

	if err := s.API.Get(ctx, path, out); err != nil {
		return err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(out); err == nil {
			if setErr := s.Cache.Set(ctx, key, string(data), s.TTL); setErr != nil {
				utils.GetLogger().Warn("failed to cache reference list",
					zap.String("key", key), zap.Error(setErr))
			}
		}
	}
	return nil
}
