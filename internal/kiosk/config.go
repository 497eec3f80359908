package kiosk

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	sharedConfig "github.com/lumenhq/lumen/internal/shared/config"
)

const (
	ReloadModeHTTP    = "http"
	ReloadModeCommand = "command"
)

type ReloadConfig struct {
	Mode           string   `mapstructure:"mode"`
	URL            string   `mapstructure:"url"`
	Command        []string `mapstructure:"command"`
	IndicatorURL   string   `mapstructure:"indicator_url"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds"`
}

type Config struct {
	ServerURL                string                    `mapstructure:"server_url"`
	PollIntervalSeconds      int                       `mapstructure:"poll_interval_seconds"`
	GraceDelayMillis         int                       `mapstructure:"grace_delay_ms"`
	DevReloadSeconds         int                       `mapstructure:"dev_reload_seconds"`
	HeartbeatIntervalSeconds int                       `mapstructure:"heartbeat_interval_seconds"`
	RequestTimeoutSeconds    int                       `mapstructure:"request_timeout_seconds"`
	Reload                   ReloadConfig              `mapstructure:"reload"`
	Logger                   sharedConfig.LoggerConfig `mapstructure:"logger"`
}

func (c *Config) PollInterval() time.Duration {
	return sharedConfig.Seconds(c.PollIntervalSeconds, DefaultPollInterval)
}

func (c *Config) GraceDelay() time.Duration {
	if c.GraceDelayMillis <= 0 {
		return DefaultGraceDelay
	}
	return time.Duration(c.GraceDelayMillis) * time.Millisecond
}

func (c *Config) DevReloadAfter() time.Duration {
	return sharedConfig.Seconds(c.DevReloadSeconds, DefaultDevReloadAfter)
}

func (c *Config) HeartbeatInterval() time.Duration {
	return sharedConfig.Seconds(c.HeartbeatIntervalSeconds, DefaultHeartbeatInterval)
}

func (c *Config) RequestTimeout() time.Duration {
	return sharedConfig.Seconds(c.RequestTimeoutSeconds, 10*time.Second)
}

func (c *Config) ReloadTimeout() time.Duration {
	return sharedConfig.Seconds(c.Reload.TimeoutSeconds, 10*time.Second)
}

// LoadConfig reads kiosk.yaml from path, or from the usual config
// directories when path is empty. LUMEN_KIOSK_* variables override the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("kiosk")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("/etc/lumen")
	}

	v.SetEnvPrefix("LUMEN_KIOSK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server_url is required")
	}
	switch c.Reload.Mode {
	case ReloadModeHTTP:
		if c.Reload.URL == "" {
			return fmt.Errorf("reload.url is required for http reload mode")
		}
	case ReloadModeCommand:
		if len(c.Reload.Command) == 0 {
			return fmt.Errorf("reload.command is required for command reload mode")
		}
	default:
		return fmt.Errorf("unknown reload mode %q", c.Reload.Mode)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_url", "http://localhost:3000")
	v.SetDefault("poll_interval_seconds", 30)
	v.SetDefault("grace_delay_ms", 2000)
	v.SetDefault("dev_reload_seconds", 60)
	v.SetDefault("heartbeat_interval_seconds", 60)
	v.SetDefault("request_timeout_seconds", 10)

	v.SetDefault("reload.mode", ReloadModeHTTP)
	v.SetDefault("reload.url", "http://localhost:9222/reload")
	v.SetDefault("reload.command", []string{})
	v.SetDefault("reload.indicator_url", "")
	v.SetDefault("reload.timeout_seconds", 10)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")
}
