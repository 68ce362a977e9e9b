// Package metadata captures the optional save-time snapshot attached to an
// entry: a reverse-geocoded location label and a weather reading for the
// configured coordinates. Both lookups are best-effort and independently
// failable; a failed lookup contributes an advisory note instead of an
// error, and a capture never fails the save that requested it.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/nousjournal/nous/internal/logger"
	"github.com/nousjournal/nous/internal/models"
)

const (
	forecastBaseURL = "https://api.open-meteo.com/v1/forecast"
	geocodeBaseURL  = "https://geocoding-api.open-meteo.com/v1/reverse"

	requestTimeout = 9 * time.Second

	locationUnavailable = "Localisation indisponible"
	weatherUnavailable  = "Météo indisponible au moment de l'écriture."
	locationNote        = "Texte de localisation indisponible."
	noCoordinatesNote   = "Aucune coordonnée configurée pour cet appareil."
)

// Capturer performs metadata captures against the open-meteo APIs.
type Capturer struct {
	client      *http.Client
	forecastURL string
	geocodeURL  string
}

func NewCapturer() *Capturer {
	return &Capturer{
		client:      &http.Client{Timeout: requestTimeout},
		forecastURL: forecastBaseURL,
		geocodeURL:  geocodeBaseURL,
	}
}

// Capture builds a metadata snapshot for the given coordinates, reusing
// fields from a previous snapshot as placeholders. The two lookups run
// concurrently and are joined regardless of outcome; partial metadata is
// valid.
func (c *Capturer) Capture(ctx context.Context, lat, lon float64, prev *models.Metadata) models.Metadata {
	meta := models.Metadata{
		CapturedAt:    time.Now().UTC().Format(time.RFC3339),
		LocationLabel: locationUnavailable,
		Notes:         []string{},
	}
	if prev != nil {
		if prev.LocationLabel != "" {
			meta.LocationLabel = prev.LocationLabel
		}
		meta.Coordinates = prev.Coordinates
		meta.Weather = prev.Weather
	}

	if lat == 0 && lon == 0 {
		meta.Notes = append(meta.Notes, noCoordinatesNote)
		return meta
	}

	meta.Coordinates = &models.Coordinates{
		Latitude:  round4(lat),
		Longitude: round4(lon),
	}

	var (
		wg         sync.WaitGroup
		label      string
		labelErr   error
		weather    *models.Weather
		weatherErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		label, labelErr = c.fetchLocationLabel(ctx, lat, lon)
	}()
	go func() {
		defer wg.Done()
		weather, weatherErr = c.fetchWeather(ctx, lat, lon)
	}()
	wg.Wait()

	if labelErr == nil {
		meta.LocationLabel = label
	} else {
		logger.Debug("Location lookup failed", "error", labelErr)
		meta.Notes = append(meta.Notes, locationNote)
	}

	if weatherErr == nil {
		meta.Weather = weather
	} else {
		logger.Debug("Weather lookup failed", "error", weatherErr)
		meta.Notes = append(meta.Notes, weatherUnavailable)
	}

	return meta
}

type forecastResponse struct {
	Current struct {
		Temperature *float64 `json:"temperature_2m"`
		WeatherCode *int     `json:"weather_code"`
	} `json:"current"`
}

func (c *Capturer) fetchWeather(ctx context.Context, lat, lon float64) (*models.Weather, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", lat))
	params.Set("longitude", fmt.Sprintf("%.4f", lon))
	params.Set("current", "temperature_2m,weather_code")
	params.Set("timezone", "auto")

	var response forecastResponse
	if err := c.getJSON(ctx, c.forecastURL+"?"+params.Encode(), &response); err != nil {
		return nil, err
	}

	return &models.Weather{
		Source:       "open-meteo",
		TemperatureC: response.Current.Temperature,
		Code:         response.Current.WeatherCode,
		Description:  LabelForWeatherCode(response.Current.WeatherCode),
	}, nil
}

type geocodeResponse struct {
	Results []struct {
		Name    string `json:"name"`
		Admin1  string `json:"admin1"`
		Country string `json:"country"`
	} `json:"results"`
}

func (c *Capturer) fetchLocationLabel(ctx context.Context, lat, lon float64) (string, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", lat))
	params.Set("longitude", fmt.Sprintf("%.4f", lon))
	params.Set("language", "fr")
	params.Set("count", "1")

	var response geocodeResponse
	if err := c.getJSON(ctx, c.geocodeURL+"?"+params.Encode(), &response); err != nil {
		return "", err
	}
	if len(response.Results) == 0 {
		return locationUnavailable, nil
	}

	place := response.Results[0]
	parts := make([]string, 0, 3)
	for _, part := range []string{place.Name, place.Admin1, place.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", "), nil
}

func (c *Capturer) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
