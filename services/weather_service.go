package services

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"time"
)

const defaultWeatherAPIURL = "http://api.weatherapi.com/v1/current.json"

// Weather is the subset of provider data the recommendation table consumes.
type Weather struct {
	Condition string  `json:"condition"`
	IsDay     int     `json:"is_day"`
	TempC     float64 `json:"temp_c"`
}

// fallbackWeather stands in when the provider is unreachable: clear daytime
// at a moderate temperature, so the request still gets a recommendation.
var fallbackWeather = Weather{Condition: "Unknown", IsDay: 1, TempC: 25}

type WeatherService struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

func NewWeatherService() *WeatherService {
	baseURL := os.Getenv("WEATHER_API_URL")
	if baseURL == "" {
		baseURL = defaultWeatherAPIURL
	}
	return &WeatherService{
		client:  &http.Client{Timeout: 3 * time.Second},
		apiKey:  os.Getenv("WEATHER_API_KEY"),
		baseURL: baseURL,
	}
}

// CurrentWeather never fails: any provider error, timeout or malformed body
// degrades to fallbackWeather.
func (w *WeatherService) CurrentWeather(location string) Weather {
	params := url.Values{}
	params.Set("key", w.apiKey)
	params.Set("q", location)
	params.Set("aqi", "no")

	resp, err := w.client.Get(w.baseURL + "?" + params.Encode())
	if err != nil {
		return fallbackWeather
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fallbackWeather
	}

	var out struct {
		Current struct {
			Condition struct {
				Text string `json:"text"`
			} `json:"condition"`
			IsDay int     `json:"is_day"`
			TempC float64 `json:"temp_c"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fallbackWeather
	}
	if out.Current.Condition.Text == "" {
		return fallbackWeather
	}

	return Weather{
		Condition: out.Current.Condition.Text,
		IsDay:     out.Current.IsDay,
		TempC:     out.Current.TempC,
	}
}
