package usecases

import (
	"context"

	"github.com/lumenhq/lumen/internal/domain/music"
	"github.com/lumenhq/lumen/internal/infrastructure/resilient"
)

type GetNowPlayingUseCase struct {
	source  PlaybackSource
	fetcher *resilient.Fetcher
}

func NewGetNowPlayingUseCase(source PlaybackSource, fetcher *resilient.Fetcher) *GetNowPlayingUseCase {
	return &GetNowPlayingUseCase{source: source, fetcher: fetcher}
}

// Execute reports idle when no account is linked and a demo-flagged idle
// card when the provider fails.
func (uc *GetNowPlayingUseCase) Execute(ctx context.Context) music.NowPlaying {
	if !uc.source.Configured() {
		return music.Idle()
	}
	np, _ := resilient.Fetch(ctx, uc.fetcher, "current", uc.source.NowPlaying, music.Unavailable())
	return np
}
