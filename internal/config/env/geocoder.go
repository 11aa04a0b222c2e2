package env

import (
	"fmt"
	"os"

	"reviewmap_backend/internal/config"
)

const (
	geocoderAPIKeyEnvName  = "GEOCODER_API_KEY"
	geocoderBaseURLEnvName = "GEOCODER_BASE_URL"
)

const defaultGeocoderBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

type geocoderConfig struct {
	apiKey  string
	baseURL string
}

func NewGeocoderConfig() (config.GeocoderConfig, error) {
	apiKey := os.Getenv(geocoderAPIKeyEnvName)
	if len(apiKey) == 0 {
		return nil, fmt.Errorf("geocoder api key not found")
	}

	baseURL := os.Getenv(geocoderBaseURLEnvName)
	if len(baseURL) == 0 {
		baseURL = defaultGeocoderBaseURL
	}

	return &geocoderConfig{
		apiKey:  apiKey,
		baseURL: baseURL,
	}, nil
}

func (cfg *geocoderConfig) APIKey() string {
	return cfg.apiKey
}

func (cfg *geocoderConfig) BaseURL() string {
	return cfg.baseURL
}
