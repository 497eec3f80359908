package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/lumenhq/lumen/internal/domain/briefing"
	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/domain/weather"
)

// SettingDTO is one setting as the admin portal sees it. Encrypted values
// are masked.
type SettingDTO struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Category  string    `json:"category"`
	Label     string    `json:"label,omitempty"`
	Encrypted bool      `json:"encrypted"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SettingsListResponse struct {
	Settings []SettingDTO `json:"settings"`
}

// SettingInput is one entry of a bulk settings write.
type SettingInput struct {
	Key       string  `json:"key" validate:"required,max=100,settingkey"`
	Value     any     `json:"value"`
	Category  string  `json:"category,omitempty" validate:"omitempty,max=50"`
	Label     *string `json:"label,omitempty" validate:"omitempty,max=100"`
	Encrypted *bool   `json:"encrypted,omitempty"`
}

type UpdateSettingsRequest struct {
	Settings []SettingInput `json:"settings" validate:"required,min=1,max=100,dive"`
}

// FlexString accepts a JSON string or number and keeps the literal text,
// so "41.88" and 41.88 both store as "41.88".
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

type WeatherSettingsRequest struct {
	Latitude  FlexString `json:"latitude"`
	Longitude FlexString `json:"longitude"`
	Location  string     `json:"location"`
	Units     string     `json:"units"`
}

func (r WeatherSettingsRequest) ToDomain() weather.Settings {
	return weather.Settings{
		Latitude:  string(r.Latitude),
		Longitude: string(r.Longitude),
		Location:  r.Location,
		Units:     r.Units,
	}
}

// AIPreferencesRequest is a partial update; absent fields keep their value.
type AIPreferencesRequest struct {
	IncludeWeather  *bool   `json:"includeWeather"`
	IncludeCalendar *bool   `json:"includeCalendar"`
	IncludeCommute  *bool   `json:"includeCommute"`
	Tone            *string `json:"tone"`
	CustomPrompt    *string `json:"customPrompt"`
}

// Apply overlays r on p.
func (r AIPreferencesRequest) Apply(p briefing.Preferences) briefing.Preferences {
	if r.IncludeWeather != nil {
		p.IncludeWeather = *r.IncludeWeather
	}
	if r.IncludeCalendar != nil {
		p.IncludeCalendar = *r.IncludeCalendar
	}
	if r.IncludeCommute != nil {
		p.IncludeCommute = *r.IncludeCommute
	}
	if r.Tone != nil {
		p.Tone = briefing.Tone(*r.Tone)
	}
	if r.CustomPrompt != nil {
		p.CustomPrompt = *r.CustomPrompt
	}
	return p
}

func ToSettingDTO(s *setting.Setting) SettingDTO {
	return SettingDTO{
		Key:       s.Key(),
		Value:     s.DisplayValue(),
		Category:  s.Category(),
		Label:     s.Label(),
		Encrypted: s.Encrypted(),
		UpdatedBy: s.UpdatedBy(),
		UpdatedAt: s.UpdatedAt(),
	}
}

func ToSettingDTOs(settings []*setting.Setting) []SettingDTO {
	out := make([]SettingDTO, 0, len(settings))
	for _, s := range settings {
		out = append(out, ToSettingDTO(s))
	}
	return out
}
