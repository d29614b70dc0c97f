package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// weatherStub serves a fixed weatherapi.com-shaped response.
func weatherStub(t *testing.T, condition string, isDay int, tempC float64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "" {
			t.Errorf("expected q parameter, got none")
		}
		if r.URL.Query().Get("aqi") != "no" {
			t.Errorf("expected aqi=no, got %q", r.URL.Query().Get("aqi"))
		}
		fmt.Fprintf(w, `{"current":{"condition":{"text":%q},"is_day":%d,"temp_c":%g}}`, condition, isDay, tempC)
	}))
}

func newStubbedRecommendationService(t *testing.T, server *httptest.Server) *RecommendationService {
	t.Helper()
	t.Setenv("WEATHER_API_URL", server.URL)
	t.Setenv("WEATHER_API_KEY", "test-key")
	return NewRecommendationService(NewWeatherService())
}

func at(hour int) time.Time {
	return time.Date(2025, 6, 15, hour, 30, 0, 0, time.UTC)
}

func TestRecommendDecisionTable(t *testing.T) {
	cases := []struct {
		name      string
		condition string
		tempC     float64
		hour      int
		want      string
	}{
		{"rain overrides morning", "Rain", 28, 8, "Indoor jump rope"},
		{"snow overrides midday", "Snow", 10, 12, "Indoor jump rope"},
		{"storm overrides night", "Storm", 20, 2, "Indoor jump rope"},
		{"hot morning", "Sunny", 30, 7, "Outdoor jogging"},
		{"cool morning", "Cloudy", 18, 9, "Indoor yoga"},
		{"midday", "Sunny", 30, 13, "High-intensity interval training"},
		{"sunny afternoon", "Sunny", 22, 17, "Outdoor cycling"},
		{"overcast afternoon", "Overcast", 22, 18, "Strength training"},
		{"evening", "Clear", 20, 21, "Stretching and relaxation"},
		{"late night default", "Clear", 20, 23, "Basic aerobics"},
		{"early night default", "Clear", 20, 3, "Basic aerobics"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := weatherStub(t, tc.condition, 1, tc.tempC)
			defer server.Close()

			svc := newStubbedRecommendationService(t, server)
			assert.Equal(t, tc.want, svc.Recommend("London", at(tc.hour)))
		})
	}
}

func TestRecommendProviderFailureUsesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer server.Close()

	svc := newStubbedRecommendationService(t, server)

	// Fallback is 25°C "Unknown": morning picks yoga (25 is not above 25),
	// afternoon picks strength training (not sunny). Never an error.
	assert.Equal(t, "Indoor yoga", svc.Recommend("Nowhere", at(8)))
	assert.Equal(t, "Strength training", svc.Recommend("Nowhere", at(17)))
}

func TestRecommendUnreachableProviderUsesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	svc := newStubbedRecommendationService(t, server)
	assert.Equal(t, "High-intensity interval training", svc.Recommend("Nowhere", at(12)))
}

func TestCurrentWeatherParsesProviderResponse(t *testing.T) {
	server := weatherStub(t, "Partly cloudy", 0, 17.5)
	defer server.Close()

	t.Setenv("WEATHER_API_URL", server.URL)
	t.Setenv("WEATHER_API_KEY", "test-key")

	got := NewWeatherService().CurrentWeather("Paris")
	assert.Equal(t, Weather{Condition: "Partly cloudy", IsDay: 0, TempC: 17.5}, got)
}

func TestCurrentWeatherMalformedBodyUsesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer server.Close()

	t.Setenv("WEATHER_API_URL", server.URL)
	t.Setenv("WEATHER_API_KEY", "test-key")

	assert.Equal(t, fallbackWeather, NewWeatherService().CurrentWeather("Paris"))
}
