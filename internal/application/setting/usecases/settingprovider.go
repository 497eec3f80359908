package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// SettingProvider resolves credentials that admins may store as settings,
// falling back to the server config.
type SettingProvider struct {
	settingRepo setting.Repository
	fallbacks   map[string]string
	logger      logger.Interface
}

// NewSettingProvider creates a provider. fallbacks maps a setting key to
// its configured value.
func NewSettingProvider(settingRepo setting.Repository, fallbacks map[string]string, logger logger.Interface) *SettingProvider {
	return &SettingProvider{
		settingRepo: settingRepo,
		fallbacks:   fallbacks,
		logger:      logger,
	}
}

// Value returns the stored value of key when non-empty, else the configured
// fallback. Store errors are logged and fall through to the fallback.
func (p *SettingProvider) Value(ctx context.Context, key string) string {
	s, err := p.settingRepo.GetByKey(ctx, key)
	switch {
	case err == nil:
		if v := strings.TrimSpace(s.Value()); v != "" {
			return v
		}
	case !stderrors.Is(err, setting.ErrSettingNotFound):
		p.logger.Warnw("failed to read setting override", "key", key, "error", err)
	}
	return p.fallbacks[key]
}
