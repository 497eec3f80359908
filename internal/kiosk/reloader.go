package kiosk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/exec"
	"time"

	"github.com/lumenhq/lumen/internal/infrastructure/adapters/httpclient"
)

// HTTPReloader reloads by calling a URL on the browser host, such as a
// wrapper around the browser's remote debugging endpoint.
type HTTPReloader struct {
	url    string
	client *http.Client
}

func NewHTTPReloader(url string, timeout time.Duration) *HTTPReloader {
	return &HTTPReloader{url: url, client: httpclient.New(timeout)}
}

func (r *HTTPReloader) Reload(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return fmt.Errorf("failed to create reload request: %w", err)
	}
	if _, _, err := httpclient.Do(r.client, req); err != nil {
		return fmt.Errorf("reload request failed: %w", err)
	}
	return nil
}

// CommandReloader reloads by running a command on the kiosk host.
type CommandReloader struct {
	command []string
	timeout time.Duration
}

func NewCommandReloader(command []string, timeout time.Duration) (*CommandReloader, error) {
	if len(command) == 0 || command[0] == "" {
		return nil, errors.New("reload command is empty")
	}
	return &CommandReloader{command: command, timeout: timeout}, nil
}

func (r *CommandReloader) Reload(ctx context.Context) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	out, err := exec.CommandContext(ctx, r.command[0], r.command[1:]...).CombinedOutput()
	if err != nil {
		if len(out) > 200 {
			out = out[:200]
		}
		return fmt.Errorf("reload command failed: %w: %s", err, out)
	}
	return nil
}
