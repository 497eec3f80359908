// Package seed installs the default widgets and settings of a fresh install.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/domain/widget"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type widgetSeed struct {
	ID       string         `yaml:"id"`
	Name     string         `yaml:"name"`
	Enabled  bool           `yaml:"enabled"`
	Settings map[string]any `yaml:"settings"`
}

type settingSeed struct {
	Key       string `yaml:"key"`
	Value     string `yaml:"value"`
	Label     string `yaml:"label"`
	Encrypted bool   `yaml:"encrypted"`
}

// Defaults is the parsed seed document.
type Defaults struct {
	Widgets  []widgetSeed  `yaml:"widgets"`
	Settings []settingSeed `yaml:"settings"`
}

// Result counts the rows a run inserted.
type Result struct {
	Widgets  int
	Settings int
}

// LoadDefaults parses the embedded defaults.
func LoadDefaults() (*Defaults, error) {
	return Parse(defaultsYAML)
}

// LoadFile parses a seed document from disk.
func LoadFile(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a seed document.
func Parse(data []byte) (*Defaults, error) {
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse seed defaults: %w", err)
	}
	return &d, nil
}

type Seeder struct {
	widgets  widget.Repository
	settings setting.Repository
	logger   logger.Interface
}

func NewSeeder(widgets widget.Repository, settings setting.Repository, logger logger.Interface) *Seeder {
	return &Seeder{
		widgets:  widgets,
		settings: settings,
		logger:   logger,
	}
}

// Run inserts every default that is not stored yet. Widget order follows the
// document order. Running it again changes nothing.
func (s *Seeder) Run(ctx context.Context, d *Defaults) (Result, error) {
	var res Result

	before, err := s.widgets.List(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list widgets: %w", err)
	}
	existing := make(map[string]bool, len(before))
	for _, w := range before {
		existing[w.ID()] = true
	}

	for i, ws := range d.Widgets {
		if existing[ws.ID] {
			continue
		}
		raw, err := json.Marshal(ws.settingsObject())
		if err != nil {
			return res, fmt.Errorf("failed to encode settings of widget %s: %w", ws.ID, err)
		}
		w, err := widget.NewWidget(ws.ID, ws.Name, i, ws.Enabled, raw)
		if err != nil {
			return res, fmt.Errorf("invalid default widget %s: %w", ws.ID, err)
		}
		if err := s.widgets.CreateIfMissing(ctx, w); err != nil {
			return res, err
		}
		res.Widgets++
	}

	for _, ss := range d.Settings {
		_, err := s.settings.GetByKey(ctx, ss.Key)
		if err == nil {
			continue
		}
		if !errors.Is(err, setting.ErrSettingNotFound) {
			return res, fmt.Errorf("failed to read setting %s: %w", ss.Key, err)
		}

		st, err := setting.NewSetting(ss.Key, ss.Value, "")
		if err != nil {
			return res, fmt.Errorf("invalid default setting %s: %w", ss.Key, err)
		}
		st.SetLabel(ss.Label)
		st.SetEncrypted(ss.Encrypted)
		if err := s.settings.Upsert(ctx, st); err != nil {
			return res, err
		}
		res.Settings++
	}

	s.logger.Infow("seed completed", "widgets_created", res.Widgets, "settings_created", res.Settings)
	return res, nil
}

// settingsObject keeps an absent settings block as {} rather than null.
func (w widgetSeed) settingsObject() map[string]any {
	if w.Settings == nil {
		return map[string]any{}
	}
	return w.Settings
}
