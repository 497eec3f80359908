// Package mirror holds the display-wide state: the config version counter,
// the liveness record of the mirror host and the admin activity log.
package mirror

import "time"

// ConfigVersion is the singleton counter that tells displays settings changed.
// Version starts at 1 and only ever increases.
type ConfigVersion struct {
	Version   int64
	UpdatedAt time.Time
}

// MarshalView returns the public payload. A nil receiver is the "never
// bumped" default {0, null}.
func (v *ConfigVersion) MarshalView() VersionView {
	if v == nil {
		return VersionView{Version: 0}
	}
	at := v.UpdatedAt.UTC()
	return VersionView{Version: v.Version, UpdatedAt: &at}
}

// VersionView is the JSON shape served to displays.
type VersionView struct {
	Version   int64      `json:"version"`
	UpdatedAt *time.Time `json:"updatedAt"`
}
