// Package briefing composes the morning briefing shown in the AI summary
// widget, either by prompting an assistant or locally from the same context.
package briefing

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

type Tone string

const (
	ToneFriendly Tone = "friendly"
	ToneConcise  Tone = "concise"
	ToneFormal   Tone = "formal"
)

// Setting names under the "ai." namespace.
const (
	KeyIncludeWeather  = "include_weather"
	KeyIncludeCalendar = "include_calendar"
	KeyIncludeCommute  = "include_commute"
	KeyTone            = "tone"
	KeyCustomPrompt    = "custom_prompt"
)

const MaxCustomPromptLength = 500

var (
	ErrInvalidTone         = errors.New("tone must be friendly, concise or formal")
	ErrCustomPromptTooLong = errors.New("customPrompt must be at most 500 characters")
)

// Preferences select what the briefing covers and how it reads.
type Preferences struct {
	IncludeWeather  bool   `json:"includeWeather"`
	IncludeCalendar bool   `json:"includeCalendar"`
	IncludeCommute  bool   `json:"includeCommute"`
	Tone            Tone   `json:"tone"`
	CustomPrompt    string `json:"customPrompt"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		IncludeWeather:  true,
		IncludeCalendar: true,
		IncludeCommute:  true,
		Tone:            ToneFriendly,
	}
}

func (p Preferences) Validate() error {
	switch p.Tone {
	case ToneFriendly, ToneConcise, ToneFormal:
	default:
		return ErrInvalidTone
	}
	if utf8.RuneCountInString(p.CustomPrompt) > MaxCustomPromptLength {
		return ErrCustomPromptTooLong
	}
	return nil
}

// PreferencesFromMap reads flattened "ai.*" values over the defaults.
// Unparseable booleans keep their default.
func PreferencesFromMap(values map[string]string) Preferences {
	p := DefaultPreferences()
	readBool := func(key string, dst *bool) {
		if v, ok := values[key]; ok {
			if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				*dst = b
			}
		}
	}
	readBool(KeyIncludeWeather, &p.IncludeWeather)
	readBool(KeyIncludeCalendar, &p.IncludeCalendar)
	readBool(KeyIncludeCommute, &p.IncludeCommute)
	if t := Tone(values[KeyTone]); t == ToneFriendly || t == ToneConcise || t == ToneFormal {
		p.Tone = t
	}
	p.CustomPrompt = values[KeyCustomPrompt]
	return p
}

// Map returns the preferences as setting name -> serialized value.
func (p Preferences) Map() map[string]string {
	return map[string]string{
		KeyIncludeWeather:  strconv.FormatBool(p.IncludeWeather),
		KeyIncludeCalendar: strconv.FormatBool(p.IncludeCalendar),
		KeyIncludeCommute:  strconv.FormatBool(p.IncludeCommute),
		KeyTone:            string(p.Tone),
		KeyCustomPrompt:    p.CustomPrompt,
	}
}
