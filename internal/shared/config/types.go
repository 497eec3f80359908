package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	BuildTime      string   `mapstructure:"build_time"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Path            string `mapstructure:"path"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN returns the MySQL DSN. SQLite uses Path directly.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret         string `mapstructure:"secret"`
	SessionExpDays int    `mapstructure:"session_exp_days"`
}

type CookieConfig struct {
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

type AuthConfig struct {
	Admin      AdminConfig  `mapstructure:"admin"`
	JWT        JWTConfig    `mapstructure:"jwt"`
	Cookie     CookieConfig `mapstructure:"cookie"`
	BcryptCost int          `mapstructure:"bcrypt_cost"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type WeatherConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	CacheMinutes   int    `mapstructure:"cache_minutes"`
}

type RoutingConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type GeocodeConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type AssistantConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	CacheMinutes   int    `mapstructure:"cache_minutes"`
}

type SpotifyConfig struct {
	ClientID       string `mapstructure:"client_id"`
	ClientSecret   string `mapstructure:"client_secret"`
	RefreshToken   string `mapstructure:"refresh_token"`
	APIBaseURL     string `mapstructure:"api_base_url"`
	TokenURL       string `mapstructure:"token_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type NewsConfig struct {
	DefaultFeeds   []string `mapstructure:"default_feeds"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds"`
	CacheMinutes   int      `mapstructure:"cache_minutes"`
}

type CalendarConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	LookaheadDays  int `mapstructure:"lookahead_days"`
	CacheMinutes   int `mapstructure:"cache_minutes"`
}

type IntegrationsConfig struct {
	Weather   WeatherConfig   `mapstructure:"weather"`
	Routing   RoutingConfig   `mapstructure:"routing"`
	Geocode   GeocodeConfig   `mapstructure:"geocode"`
	Assistant AssistantConfig `mapstructure:"assistant"`
	Spotify   SpotifyConfig   `mapstructure:"spotify"`
	News      NewsConfig      `mapstructure:"news"`
	Calendar  CalendarConfig  `mapstructure:"calendar"`
}

type SchedulerConfig struct {
	Enabled             bool `mapstructure:"enabled"`
	OfflineAfterSeconds int  `mapstructure:"offline_after_seconds"`
	WarmCacheMinutes    int  `mapstructure:"warm_cache_minutes"`
}

func (s *SchedulerConfig) OfflineAfter() time.Duration {
	return time.Duration(s.OfflineAfterSeconds) * time.Second
}

type LocationConfig struct {
	Timezone string `mapstructure:"timezone"`
}

// Seconds converts a config value in seconds to a duration, falling back to def when unset.
func Seconds(v int, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}

// Minutes converts a config value in minutes to a duration, falling back to def when unset.
func Minutes(v int, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return time.Duration(v) * time.Minute
}
