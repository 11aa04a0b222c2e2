package geocoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type testConfig struct {
	baseURL string
}

func (c testConfig) APIKey() string  { return "test-key" }
func (c testConfig) BaseURL() string { return c.baseURL }

func TestGeocode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("address"); got != "Red Square 1" {
			t.Errorf("address param: got %q", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key param: got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":55.75,"lng":37.61}}}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig{baseURL: server.URL})

	location, err := client.Geocode(context.Background(), "Red Square 1")
	if err != nil {
		t.Fatalf("Geocode error: %v", err)
	}
	if location == nil {
		t.Fatalf("expected location, got nil")
	}
	if location.Lat != 55.75 || location.Lng != 37.61 {
		t.Fatalf("coordinates mismatch: %+v", location)
	}
}

// Пустой список результатов - не ошибка, адрес просто не найден
func TestGeocode_NoResults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig{baseURL: server.URL})

	location, err := client.Geocode(context.Background(), "gibberish")
	if err != nil {
		t.Fatalf("Geocode error: %v", err)
	}
	if location != nil {
		t.Fatalf("expected nil location, got %+v", location)
	}
}

func TestGeocode_BadStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(testConfig{baseURL: server.URL})

	if _, err := client.Geocode(context.Background(), "x"); err == nil {
		t.Fatalf("expected error for non-200 response, got nil")
	}
}
