package setting

import "errors"

var (
	// ErrSettingNotFound is returned when a setting is not found
	ErrSettingNotFound = errors.New("setting not found")

	// ErrInvalidSettingKey is returned when the setting key is not a namespaced key
	ErrInvalidSettingKey = errors.New("invalid setting key")
)
