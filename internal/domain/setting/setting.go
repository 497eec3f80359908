// Package setting models namespaced key/value settings such as "weather.latitude".
package setting

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lumenhq/lumen/internal/shared/biztime"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

// Well-known categories.
const (
	CategoryWeather      = "weather"
	CategoryAI           = "ai"
	CategoryNews         = "news"
	CategoryDisplay      = "display"
	CategoryIntegrations = "integrations"
)

// Credentials an admin may store in place of the server config. A non-empty
// stored value wins over the configured one.
const (
	KeyRoutingAPIKey   = "integrations.routing_api_key"
	KeyGeocodeAPIKey   = "integrations.geocode_api_key"
	KeyAssistantAPIKey = "integrations.assistant_api_key"
)

// ValueType records how a stored value should be decoded.
type ValueType string

const (
	ValueTypeString ValueType = "string"
	ValueTypeNumber ValueType = "number"
	ValueTypeBool   ValueType = "bool"
	ValueTypeJSON   ValueType = "json"
)

// Setting is one persisted configuration value. The value is kept in its
// serialized string form.
type Setting struct {
	key       string
	value     string
	valueType ValueType
	category  string
	label     string
	encrypted bool
	updatedBy string
	updatedAt time.Time
}

// NewSetting creates a string setting. When category is empty it is derived
// from the key namespace ("weather.units" -> "weather").
func NewSetting(key, value, category string) (*Setting, error) {
	if !utils.IsSettingKey(key) {
		return nil, ErrInvalidSettingKey
	}
	if category == "" {
		category = CategoryOf(key)
	}
	return &Setting{
		key:       key,
		value:     value,
		valueType: ValueTypeString,
		category:  category,
		updatedAt: biztime.NowUTC(),
	}, nil
}

// ReconstructSetting rebuilds a Setting from persistence.
func ReconstructSetting(
	key, value string,
	valueType ValueType,
	category, label string,
	encrypted bool,
	updatedBy string,
	updatedAt time.Time,
) *Setting {
	if valueType == "" {
		valueType = ValueTypeString
	}
	return &Setting{
		key:       key,
		value:     value,
		valueType: valueType,
		category:  category,
		label:     label,
		encrypted: encrypted,
		updatedBy: updatedBy,
		updatedAt: updatedAt,
	}
}

func (s *Setting) Key() string          { return s.key }
func (s *Setting) Value() string        { return s.value }
func (s *Setting) ValueType() ValueType { return s.valueType }
func (s *Setting) Category() string     { return s.category }
func (s *Setting) Label() string        { return s.label }
func (s *Setting) Encrypted() bool      { return s.encrypted }
func (s *Setting) UpdatedBy() string    { return s.updatedBy }
func (s *Setting) UpdatedAt() time.Time { return s.updatedAt }

// Name is the key with its category prefix removed.
func (s *Setting) Name() string {
	return strings.TrimPrefix(s.key, s.category+".")
}

// DisplayValue is what admin reads see: encrypted values are masked.
func (s *Setting) DisplayValue() string {
	if s.encrypted {
		return utils.MaskSecret(s.value)
	}
	return s.value
}

// Decoded returns the value converted according to its ValueType. Values that
// fail to decode are returned as the raw string.
func (s *Setting) Decoded() any {
	switch s.valueType {
	case ValueTypeNumber:
		if f, err := strconv.ParseFloat(s.value, 64); err == nil {
			return f
		}
	case ValueTypeBool:
		if b, err := strconv.ParseBool(s.value); err == nil {
			return b
		}
	case ValueTypeJSON:
		var v any
		if err := json.Unmarshal([]byte(s.value), &v); err == nil {
			return v
		}
	}
	return s.value
}

// GetBoolValue parses the value as a boolean. An empty value is false.
func (s *Setting) GetBoolValue() (bool, error) {
	if s.value == "" {
		return false, nil
	}
	return strconv.ParseBool(s.value)
}

// GetIntValue parses the value as an integer. An empty value is zero.
func (s *Setting) GetIntValue() (int, error) {
	if s.value == "" {
		return 0, nil
	}
	return strconv.Atoi(strings.TrimSpace(s.value))
}

// GetStringArrayValue decodes a JSON array of strings.
func (s *Setting) GetStringArrayValue() ([]string, error) {
	if s.value == "" || s.value == "[]" {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s.value), &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal string array: %w", err)
	}
	return out, nil
}

// SetValue stores a string value.
func (s *Setting) SetValue(value, updatedBy string) {
	s.value = value
	s.valueType = ValueTypeString
	s.touch(updatedBy)
}

// SetAnyValue stores an arbitrary JSON-compatible value, recording its type.
func (s *Setting) SetAnyValue(value any, updatedBy string) error {
	switch v := value.(type) {
	case string:
		s.value, s.valueType = v, ValueTypeString
	case bool:
		s.value, s.valueType = strconv.FormatBool(v), ValueTypeBool
	case float64:
		s.value, s.valueType = strconv.FormatFloat(v, 'f', -1, 64), ValueTypeNumber
	case int:
		s.value, s.valueType = strconv.Itoa(v), ValueTypeNumber
	case nil:
		s.value, s.valueType = "", ValueTypeString
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal setting value: %w", err)
		}
		s.value, s.valueType = string(data), ValueTypeJSON
	}
	s.touch(updatedBy)
	return nil
}

func (s *Setting) SetLabel(label string) {
	s.label = label
}

func (s *Setting) SetEncrypted(encrypted bool) {
	s.encrypted = encrypted
}

func (s *Setting) touch(updatedBy string) {
	s.updatedBy = updatedBy
	s.updatedAt = biztime.NowUTC()
}

// CategoryOf returns the namespace of key, the part before the first dot.
func CategoryOf(key string) string {
	category, _, _ := strings.Cut(key, ".")
	return category
}

// Flatten turns settings of one category into a name->value map with the
// category prefix stripped.
func Flatten(settings []*Setting) map[string]string {
	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Name()] = s.Value()
	}
	return out
}
