package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Backend API.
	APIBaseURL        string `mapstructure:"API_BASE_URL"`
	APITimeoutSecs    int    `mapstructure:"API_TIMEOUT_SECONDS"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration. An empty address falls back to in-process caching.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCatalogDB int    `mapstructure:"REDIS_CATALOG_DB"`
	RedisVehicleDB int    `mapstructure:"REDIS_VEHICLE_DB"`

	// Cache staleness windows, in seconds. Reference lists change rarely,
	// so the catalog window is hour-scale.
	CatalogCacheTTLSecs int `mapstructure:"CATALOG_CACHE_TTL_SECONDS"`
	VehicleCacheTTLSecs int `mapstructure:"VEHICLE_CACHE_TTL_SECONDS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080/api/v1")
	viper.SetDefault("API_TIMEOUT_SECONDS", 30)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CATALOG_DB", 0)
	viper.SetDefault("REDIS_VEHICLE_DB", 1)
	viper.SetDefault("CATALOG_CACHE_TTL_SECONDS", 3600)
	viper.SetDefault("VEHICLE_CACHE_TTL_SECONDS", 300)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// APITimeout returns the outbound request timeout as a duration.
func APITimeout() time.Duration {
	if AppConfig.APITimeoutSecs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(AppConfig.APITimeoutSecs) * time.Second
}

// CatalogCacheTTL returns the staleness window for reference lists.
func CatalogCacheTTL() time.Duration {
	if AppConfig.CatalogCacheTTLSecs <= 0 {
		return time.Hour
	}
	return time.Duration(AppConfig.CatalogCacheTTLSecs) * time.Second
}

// VehicleCacheTTL returns the staleness window for vehicle configuration records.
func VehicleCacheTTL() time.Duration {
	if AppConfig.VehicleCacheTTLSecs <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(AppConfig.VehicleCacheTTLSecs) * time.Second
}
