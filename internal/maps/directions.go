package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
)

// ErrNoRoute is returned when the directions service answers without a
// usable route. Booking creation treats this as a hard failure: there
// is no retry and no straight-line fallback.
var ErrNoRoute = errors.New("no route between origin and destination")

type LatLng struct {
	Lat float64
	Lng float64
}

func (p LatLng) String() string {
	return fmt.Sprintf("%g,%g", p.Lat, p.Lng)
}

// Leg is the first leg of the first route returned by the service.
type Leg struct {
	DistanceMeters  int
	DurationSeconds int
}

// Directions resolves a road route between two coordinates.
type Directions interface {
	Route(ctx context.Context, origin, dest LatLng) (Leg, error)
}

// Client calls the Google Directions JSON API. BaseURL is overridable
// so tests can point it at a local server.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com"
	}
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: http.DefaultClient,
	}
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Distance struct {
				Value int `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

func (c *Client) Route(ctx context.Context, origin, dest LatLng) (Leg, error) {
	q := url.Values{}
	q.Set("origin", origin.String())
	q.Set("destination", dest.String())
	q.Set("key", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.BaseURL+"/maps/api/directions/json?"+q.Encode(), nil)
	if err != nil {
		return Leg{}, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Leg{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Leg{}, fmt.Errorf("directions service returned status %d", resp.StatusCode)
	}

	var body directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Leg{}, err
	}

	if body.Status != "OK" || len(body.Routes) == 0 || len(body.Routes[0].Legs) == 0 {
		return Leg{}, ErrNoRoute
	}

	leg := body.Routes[0].Legs[0]
	return Leg{
		DistanceMeters:  leg.Distance.Value,
		DurationSeconds: leg.Duration.Value,
	}, nil
}

// Kilometers converts a leg distance in meters to kilometers rounded
// to 2 decimal places, the precision stored on a booking.
func Kilometers(meters int) float64 {
	return math.Round(float64(meters)/10) / 100
}
