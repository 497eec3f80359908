// Package music describes the now-playing card of the display.
package music

type NowPlaying struct {
	IsPlaying  bool   `json:"isPlaying"`
	Track      string `json:"track,omitempty"`
	Artist     string `json:"artist,omitempty"`
	Album      string `json:"album,omitempty"`
	AlbumArt   string `json:"albumArt,omitempty"`
	URL        string `json:"url,omitempty"`
	ProgressMs int64  `json:"progressMs,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	IsDemo     bool   `json:"isDemo,omitempty"`
}

// Idle is reported when nothing is playing or no account is linked.
func Idle() NowPlaying {
	return NowPlaying{}
}

// Unavailable is reported when the provider could not be reached.
func Unavailable() NowPlaying {
	return NowPlaying{IsDemo: true}
}
