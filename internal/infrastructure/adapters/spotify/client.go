// Package spotify reads the currently playing track with a long-lived
// refresh token exchanged for access tokens through OAuth2.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/lumenhq/lumen/internal/domain/music"
	"github.com/lumenhq/lumen/internal/infrastructure/adapters/httpclient"
	"github.com/lumenhq/lumen/internal/infrastructure/resilient"
	sharedConfig "github.com/lumenhq/lumen/internal/shared/config"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

const (
	defaultAPIBaseURL = "https://api.spotify.com/v1"
	defaultTokenURL   = "https://accounts.spotify.com/api/token"
	defaultTimeout    = 5 * time.Second
)

type currentlyPlaying struct {
	IsPlaying  bool  `json:"is_playing"`
	ProgressMs int64 `json:"progress_ms"`
	Item       *struct {
		Name       string `json:"name"`
		DurationMs int64  `json:"duration_ms"`
		Artists    []struct {
			Name string `json:"name"`
		} `json:"artists"`
		Album struct {
			Name   string `json:"name"`
			Images []struct {
				URL string `json:"url"`
			} `json:"images"`
		} `json:"album"`
		ExternalURLs struct {
			Spotify string `json:"spotify"`
		} `json:"external_urls"`
	} `json:"item"`
}

type Client struct {
	apiBaseURL string
	tokens     oauth2.TokenSource
	httpClient *http.Client
	logger     logger.Interface
}

// NewClient builds a client. Without client credentials and a refresh token
// the client reports resilient.ErrNotConfigured.
func NewClient(cfg sharedConfig.SpotifyConfig, log logger.Interface) *Client {
	apiBaseURL := cfg.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	httpClient := httpclient.New(sharedConfig.Seconds(cfg.TimeoutSeconds, defaultTimeout))

	c := &Client{
		apiBaseURL: strings.TrimRight(apiBaseURL, "/"),
		httpClient: httpClient,
		logger:     log,
	}
	if cfg.ClientID != "" && cfg.ClientSecret != "" && cfg.RefreshToken != "" {
		oauthCfg := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		}
		// The token source outlives any request, so it refreshes on its own context.
		tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		c.tokens = oauthCfg.TokenSource(tokenCtx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
	}
	return c
}

func (c *Client) Configured() bool {
	return c.tokens != nil
}

// NowPlaying returns the track playing on the linked account.
func (c *Client) NowPlaying(ctx context.Context) (music.NowPlaying, error) {
	if c.tokens == nil {
		return music.NowPlaying{}, resilient.ErrNotConfigured
	}

	token, err := c.tokens.Token()
	if err != nil {
		return music.NowPlaying{}, fmt.Errorf("failed to refresh access token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/me/player/currently-playing", nil)
	if err != nil {
		return music.NowPlaying{}, fmt.Errorf("failed to create request: %w", err)
	}
	token.SetAuthHeader(req)

	body, status, err := httpclient.Do(c.httpClient, req)
	if err != nil {
		return music.NowPlaying{}, fmt.Errorf("failed to fetch currently playing: %w", err)
	}
	if status == http.StatusNoContent || len(body) == 0 {
		return music.Idle(), nil
	}

	var data currentlyPlaying
	if err := json.Unmarshal(body, &data); err != nil {
		return music.NowPlaying{}, fmt.Errorf("failed to decode currently playing: %w", err)
	}
	if data.Item == nil {
		return music.Idle(), nil
	}

	artists := make([]string, 0, len(data.Item.Artists))
	for _, a := range data.Item.Artists {
		artists = append(artists, a.Name)
	}
	np := music.NowPlaying{
		IsPlaying:  data.IsPlaying,
		Track:      data.Item.Name,
		Artist:     strings.Join(artists, ", "),
		Album:      data.Item.Album.Name,
		URL:        data.Item.ExternalURLs.Spotify,
		ProgressMs: data.ProgressMs,
		DurationMs: data.Item.DurationMs,
	}
	if len(data.Item.Album.Images) > 0 {
		np.AlbumArt = data.Item.Album.Images[0].URL
	}
	return np, nil
}
