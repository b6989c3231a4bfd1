package vehicle

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"time"

	"rentora/api"
	"rentora/config"
	"rentora/models"
	"rentora/utils"

	"go.uber.org/zap"
)

// ErrMissingVehicleID guards against firing a malformed request.
var ErrMissingVehicleID = errors.New("vehicle: id is required")

// Service reads and updates per-vehicle configuration records.
type Service interface {
	Get(ctx context.Context, id string) (*models.VehicleConfiguration, error)
	UpdateConfiguration(ctx context.Context, id string, req models.UpdateVehicleConfigurationRequest) error
}

// DefaultService implements Service with a read-through cache keyed by
// vehicle id. The cache entry is invalidated only on a successful update so
// a rejected mutation never evicts the last known good record.
type DefaultService struct {
	API   api.Doer
	Cache utils.Store
	TTL   time.Duration
}

// NewDefaultService wires a vehicle service from AppConfig.
func NewDefaultService(client api.Doer) *DefaultService {
	return &DefaultService{
		API:   client,
		Cache: utils.GetVehicleStore(),
		TTL:   config.VehicleCacheTTL(),
	}
}

func cacheKey(id string) string {
	return "vehicleConfig:" + id
}

func (s *DefaultService) Get(ctx context.Context, id string) (*models.VehicleConfiguration, error) {
	if id == "" {
		return nil, ErrMissingVehicleID
	}

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, cacheKey(id)); err == nil {
			var cached models.VehicleConfiguration
			if jsonErr := json.Unmarshal([]byte(data), &cached); jsonErr == nil {
				return &cached, nil
			}
		}
	}

	var cfg models.VehicleConfiguration
	if err := s.API.Get(ctx, "/vehicles/"+url.PathEscape(id), &cfg); err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(&cfg); err == nil {
			if setErr := s.Cache.Set(ctx, cacheKey(id), string(data), s.TTL); setErr != nil {
				utils.GetLogger().Warn("failed to cache vehicle configuration",
					zap.String("vehicleId", id), zap.Error(setErr))
			}
		}
	}
	return &cfg, nil
}

func (s *DefaultService) UpdateConfiguration(ctx context.Context, id string, req models.UpdateVehicleConfigurationRequest) error {
	if id == "" {
		return ErrMissingVehicleID
	}

	if err := s.API.Patch(ctx, "/vehicles/configuration?id="+url.QueryEscape(id), req, nil); err != nil {
		return err
	}

	// Invalidate so any other screen reading this vehicle refetches rather
	// than serving stale configuration.
	if s.Cache != nil {
		if err := s.Cache.Del(ctx, cacheKey(id)); err != nil {
			utils.GetLogger().Warn("failed to invalidate vehicle configuration cache",
				zap.String("vehicleId", id), zap.Error(err))
		}
	}
	return nil
}
