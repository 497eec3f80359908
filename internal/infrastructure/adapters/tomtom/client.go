// Package tomtom calls the TomTom routing and search APIs.
package tomtom

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lumenhq/lumen/internal/domain/commute"
	"github.com/lumenhq/lumen/internal/infrastructure/adapters/httpclient"
	"github.com/lumenhq/lumen/internal/infrastructure/resilient"
	sharedConfig "github.com/lumenhq/lumen/internal/shared/config"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

const (
	defaultBaseURL = "https://api.tomtom.com"
	defaultTimeout = 10 * time.Second
	maxPlaces      = 5
)

// Travel is the traffic-aware routing summary between two points.
type Travel struct {
	Duration       time.Duration
	TrafficDelay   time.Duration
	DistanceMeters float64
}

// Place is one geocoding match.
type Place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Type      string  `json:"type,omitempty"`
}

type routeResponse struct {
	Routes []struct {
		Summary struct {
			LengthInMeters        float64 `json:"lengthInMeters"`
			TravelTimeInSeconds   int     `json:"travelTimeInSeconds"`
			TrafficDelayInSeconds int     `json:"trafficDelayInSeconds"`
		} `json:"summary"`
	} `json:"routes"`
}

type searchResponse struct {
	Results []struct {
		Type    string `json:"type"`
		Address struct {
			FreeformAddress string `json:"freeformAddress"`
		} `json:"address"`
		POI *struct {
			Name string `json:"name"`
		} `json:"poi"`
		Position struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"position"`
	} `json:"results"`
}

type Client struct {
	routingURL string
	searchURL  string
	routingKey string
	searchKey  string
	routing    *http.Client
	search     *http.Client
	logger     logger.Interface
}

func NewClient(routing sharedConfig.RoutingConfig, geocode sharedConfig.GeocodeConfig, log logger.Interface) *Client {
	return &Client{
		routingURL: baseURL(routing.BaseURL),
		searchURL:  baseURL(geocode.BaseURL),
		routingKey: routing.APIKey,
		searchKey:  geocode.APIKey,
		routing:    httpclient.New(sharedConfig.Seconds(routing.TimeoutSeconds, defaultTimeout)),
		search:     httpclient.New(sharedConfig.Seconds(geocode.TimeoutSeconds, defaultTimeout)),
		logger:     log,
	}
}

func baseURL(u string) string {
	if u == "" {
		u = defaultBaseURL
	}
	return strings.TrimRight(u, "/")
}

// Route returns the travel time from origin to destination departing at
// departAt. key overrides the configured routing key when non-empty.
func (c *Client) Route(ctx context.Context, key string, origin, destination commute.Coordinate, departAt time.Time) (Travel, error) {
	if key == "" {
		key = c.routingKey
	}
	if key == "" {
		return Travel{}, resilient.ErrNotConfigured
	}

	q := url.Values{}
	q.Set("key", key)
	q.Set("traffic", "true")
	q.Set("travelMode", "car")
	q.Set("routeType", "fastest")
	if !departAt.IsZero() {
		q.Set("departAt", departAt.Format(time.RFC3339))
	}
	endpoint := fmt.Sprintf("%s/routing/1/calculateRoute/%s:%s/json?%s", c.routingURL, origin, destination, q.Encode())

	var data routeResponse
	if err := httpclient.GetJSON(ctx, c.routing, endpoint, nil, &data); err != nil {
		return Travel{}, fmt.Errorf("failed to calculate route: %w", err)
	}
	if len(data.Routes) == 0 {
		return Travel{}, fmt.Errorf("no route between %s and %s", origin, destination)
	}

	s := data.Routes[0].Summary
	return Travel{
		Duration:       time.Duration(s.TravelTimeInSeconds) * time.Second,
		TrafficDelay:   time.Duration(s.TrafficDelayInSeconds) * time.Second,
		DistanceMeters: s.LengthInMeters,
	}, nil
}

// Search geocodes a free-form query. key overrides the configured search key.
func (c *Client) Search(ctx context.Context, key, query string) ([]Place, error) {
	if key == "" {
		key = c.searchKey
	}
	if key == "" {
		return nil, resilient.ErrNotConfigured
	}

	q := url.Values{}
	q.Set("key", key)
	q.Set("limit", strconv.Itoa(maxPlaces))
	endpoint := fmt.Sprintf("%s/search/2/search/%s.json?%s", c.searchURL, url.PathEscape(query), q.Encode())

	var data searchResponse
	if err := httpclient.GetJSON(ctx, c.search, endpoint, nil, &data); err != nil {
		return nil, fmt.Errorf("failed to search places: %w", err)
	}

	places := make([]Place, 0, len(data.Results))
	for _, r := range data.Results {
		name := r.Address.FreeformAddress
		if r.POI != nil && r.POI.Name != "" {
			name = r.POI.Name + ", " + name
		}
		places = append(places, Place{
			Name:      name,
			Latitude:  r.Position.Lat,
			Longitude: r.Position.Lon,
			Type:      r.Type,
		})
	}
	return places, nil
}
