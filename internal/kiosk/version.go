package kiosk

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/lumenhq/lumen/internal/infrastructure/adapters/httpclient"
)

// BuildInfo is the build identity the server reports.
type BuildInfo struct {
	BuildTime string `json:"buildTime"`
	Timestamp int64  `json:"timestamp"`
}

// VersionSource fetches the server's current build identity.
type VersionSource interface {
	BuildInfo(ctx context.Context) (BuildInfo, error)
}

// HTTPVersionSource reads GET /api/version.
type HTTPVersionSource struct {
	url    string
	client *http.Client
}

func NewHTTPVersionSource(serverURL string, timeout time.Duration) *HTTPVersionSource {
	return &HTTPVersionSource{
		url:    strings.TrimRight(serverURL, "/") + "/api/version",
		client: httpclient.New(timeout),
	}
}

func (s *HTTPVersionSource) BuildInfo(ctx context.Context) (BuildInfo, error) {
	var info BuildInfo
	header := http.Header{"Cache-Control": []string{"no-store"}}
	if err := httpclient.GetJSON(ctx, s.client, s.url, header, &info); err != nil {
		return BuildInfo{}, err
	}
	return info, nil
}
