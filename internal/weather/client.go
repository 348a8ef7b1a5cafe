package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/ytget/smart-mirror/internal/model"
)

// Open-Meteo endpoints and request constants
const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"

	currentFields = "temperature_2m,relative_humidity_2m,is_day,weather_code"
	dailyFields   = "weather_code,temperature_2m_max,temperature_2m_min"

	// pastDays must stay in sync with TodayForecastIndex
	pastDays     = TodayForecastIndex
	forecastDays = 3

	requestTimeout = 15 * time.Second
	dateLayout     = "2006-01-02"
)

// ErrLocationNotFound is returned when geocoding yields no match
var ErrLocationNotFound = errors.New("location not found")

// ErrClosed is returned by Find after Close
var ErrClosed = errors.New("weather client closed")

// ErrThrottled is returned when the request limiter has no token left. Requests
// never wait for one: they share the scheduler goroutine with the clock.
var ErrThrottled = errors.New("weather request throttled")

// Client is a Provider backed by Open-Meteo. It needs no API key.
type Client struct {
	units        Units
	httpClient   *http.Client
	limiter      *rate.Limiter
	geocodingURL string
	forecastURL  string

	mu     sync.Mutex
	places map[string]place
	closed bool
}

// Option customizes a Client
type Option func(*Client)

// WithBaseURLs points the client at other geocoding and forecast endpoints
func WithBaseURLs(geocodingURL, forecastURL string) Option {
	return func(c *Client) {
		c.geocodingURL = geocodingURL
		c.forecastURL = forecastURL
	}
}

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit replaces the request limiter
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// NewClient creates a client reporting in the given units
func NewClient(units Units, opts ...Option) *Client {
	c := &Client{
		units:        units,
		httpClient:   &http.Client{Timeout: requestTimeout},
		limiter:      rate.NewLimiter(rate.Every(10*time.Second), 4),
		geocodingURL: DefaultGeocodingURL,
		forecastURL:  DefaultForecastURL,
		places:       make(map[string]place),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Units returns the unit system the client reports in
func (c *Client) Units() Units {
	return c.units
}

type place struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type geocodingResponse struct {
	Results []place `json:"results"`
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		IsDay       int     `json:"is_day"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
	Daily struct {
		Time        []string  `json:"time"`
		WeatherCode []int     `json:"weather_code"`
		Max         []float64 `json:"temperature_2m_max"`
		Min         []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

// Find geocodes location and fetches its current conditions and daily window
func (c *Client) Find(ctx context.Context, location string) (*model.WeatherReport, error) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}

	p, err := c.lookup(ctx, location)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(p.Latitude, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(p.Longitude, 'f', 4, 64))
	q.Set("current", currentFields)
	q.Set("daily", dailyFields)
	q.Set("timezone", "auto")
	q.Set("past_days", strconv.Itoa(pastDays))
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	if c.units == Imperial {
		q.Set("temperature_unit", "fahrenheit")
		q.Set("wind_speed_unit", "mph")
	}

	var resp forecastResponse
	if err := c.getJSON(ctx, c.forecastURL, q, &resp); err != nil {
		return nil, errors.Wrapf(err, "forecast for %s", p.Name)
	}

	return buildReport(p, &resp)
}

// lookup resolves a location string, caching hits for the client's lifetime
func (c *Client) lookup(ctx context.Context, location string) (place, error) {
	key := strings.ToLower(strings.TrimSpace(location))
	if key == "" {
		return place{}, errors.Wrap(ErrLocationNotFound, "empty location")
	}

	c.mu.Lock()
	p, ok := c.places[key]
	c.mu.Unlock()
	if ok {
		return p, nil
	}

	q := url.Values{}
	q.Set("name", strings.TrimSpace(location))
	q.Set("count", "1")
	q.Set("format", "json")

	var resp geocodingResponse
	if err := c.getJSON(ctx, c.geocodingURL, q, &resp); err != nil {
		return place{}, errors.Wrapf(err, "geocode %q", location)
	}
	if len(resp.Results) == 0 {
		return place{}, errors.Wrapf(ErrLocationNotFound, "geocode %q", location)
	}

	p = resp.Results[0]
	log.Printf("weather: resolved %q to %s, %s (%.4f, %.4f)", location, p.Name, p.Country, p.Latitude, p.Longitude)

	c.mu.Lock()
	c.places[key] = p
	c.mu.Unlock()
	return p, nil
}

func (c *Client) getJSON(ctx context.Context, base string, q url.Values, out interface{}) error {
	if !c.limiter.Allow() {
		return errors.Wrapf(ErrThrottled, "GET %s", base)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+q.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

func buildReport(p place, resp *forecastResponse) (*model.WeatherReport, error) {
	daily := resp.Daily
	n := len(daily.Time)
	if len(daily.WeatherCode) != n || len(daily.Max) != n || len(daily.Min) != n {
		return nil, errors.Errorf("inconsistent daily arrays: %d times, %d codes, %d max, %d min",
			n, len(daily.WeatherCode), len(daily.Max), len(daily.Min))
	}

	isDay := resp.Current.IsDay != 0

	report := &model.WeatherReport{
		LocationName: placeName(p),
		Current: model.Conditions{
			Temperature: round(resp.Current.Temperature),
			Humidity:    round(resp.Current.Humidity),
			SkyText:     Describe(resp.Current.WeatherCode),
			Keyword:     codeKeyword(resp.Current.WeatherCode, isDay),
		},
		Forecasts: make([]model.DailyForecast, 0, n),
	}

	for i := 0; i < n; i++ {
		date, err := time.Parse(dateLayout, daily.Time[i])
		if err != nil {
			return nil, errors.Wrapf(err, "daily time %q", daily.Time[i])
		}
		report.Forecasts = append(report.Forecasts, model.DailyForecast{
			Date:    date,
			Low:     round(daily.Min[i]),
			High:    round(daily.Max[i]),
			SkyText: Describe(daily.WeatherCode[i]),
			Keyword: codeKeyword(daily.WeatherCode[i], true),
		})
	}
	return report, nil
}

func placeName(p place) string {
	if p.Country == "" {
		return p.Name
	}
	return fmt.Sprintf("%s, %s", p.Name, p.Country)
}

func round(v float64) int {
	return int(math.Round(v))
}

// Close releases idle connections; later Find calls fail with ErrClosed
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.httpClient.CloseIdleConnections()
	return nil
}
