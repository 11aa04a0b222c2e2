// Package geocoder - клиент Google Maps Geocoding API.
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"reviewmap_backend/internal/config"
	"reviewmap_backend/internal/model"
)

const requestTimeout = 10 * time.Second

type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewClient(cfg config.GeocoderConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		apiKey:     cfg.APIKey(),
		baseURL:    cfg.BaseURL(),
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode - переводит строку адреса в координаты.
// Возвращает nil без ошибки, если геокодер ничего не нашел
func (c *Client) Geocode(ctx context.Context, address string) (*model.Location, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding failed: unexpected status %d", resp.StatusCode)
	}

	var parsed geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("geocoding failed: %w", err)
	}

	if len(parsed.Results) == 0 {
		return nil, nil
	}

	location := parsed.Results[0].Geometry.Location
	return &model.Location{
		Lat: location.Lat,
		Lng: location.Lng,
	}, nil
}
