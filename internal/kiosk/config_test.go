package kiosk

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiosk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server_url: http://mirror.local:3000
poll_interval_seconds: 15
reload:
  mode: command
  command: ["systemctl", "restart", "kiosk-browser"]
`), 0o600))
	t.Setenv("LUMEN_KIOSK_GRACE_DELAY_MS", "500")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://mirror.local:3000", cfg.ServerURL)
	assert.Equal(t, 15*time.Second, cfg.PollInterval())
	assert.Equal(t, 500*time.Millisecond, cfg.GraceDelay())
	assert.Equal(t, DefaultDevReloadAfter, cfg.DevReloadAfter())
	assert.Equal(t, DefaultHeartbeatInterval, cfg.HeartbeatInterval())
	assert.Equal(t, ReloadModeCommand, cfg.Reload.Mode)
	assert.Equal(t, []string{"systemctl", "restart", "kiosk-browser"}, cfg.Reload.Command)
}

func TestLoadConfig_RejectsIncompleteReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiosk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reload:\n  mode: command\n"), 0o600))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "reload.command")
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
