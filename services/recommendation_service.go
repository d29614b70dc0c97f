package services

import (
	"strings"
	"time"
)

type RecommendationService struct {
	weather *WeatherService
}

func NewRecommendationService(weather *WeatherService) *RecommendationService {
	return &RecommendationService{weather: weather}
}

// Recommend maps current weather and time of day onto a workout suggestion.
// The table is total: every weather/hour combination yields exactly one
// suggestion, ending in a catch-all default.
func (s *RecommendationService) Recommend(location string, now time.Time) string {
	weather := s.weather.CurrentWeather(location)
	hour := now.Hour()

	// Adverse weather overrides time of day entirely.
	switch strings.ToLower(weather.Condition) {
	case "rain", "snow", "storm":
		return "Indoor jump rope"
	}

	switch {
	case hour >= 6 && hour < 10:
		if weather.TempC > 25 {
			return "Outdoor jogging"
		}
		return "Indoor yoga"
	case hour >= 10 && hour < 16:
		return "High-intensity interval training"
	case hour >= 16 && hour < 20:
		if strings.EqualFold(weather.Condition, "sunny") {
			return "Outdoor cycling"
		}
		return "Strength training"
	case hour >= 20 && hour < 23:
		return "Stretching and relaxation"
	}
	return "Basic aerobics"
}
