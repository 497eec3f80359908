package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/lumenhq/lumen/internal/domain/briefing"
	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/infrastructure/resilient"
	"github.com/lumenhq/lumen/internal/shared/biztime"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// GetSummaryUseCase writes the morning briefing. The assistant is asked
// first; the same context is composed locally when it is unavailable.
type GetSummaryUseCase struct {
	preferences PreferencesReader
	weather     *GetWeatherUseCase
	calendar    *GetCalendarUseCase
	commute     *GetCommuteUseCase
	feast       *GetFeastDayUseCase
	assistant   Assistant
	credentials CredentialSource
	markdown    MarkdownRenderer
	fetcher     *resilient.Fetcher
	now         func() time.Time
	logger      logger.Interface
}

func NewGetSummaryUseCase(
	preferences PreferencesReader,
	weatherUC *GetWeatherUseCase,
	calendarUC *GetCalendarUseCase,
	commuteUC *GetCommuteUseCase,
	feastUC *GetFeastDayUseCase,
	assistant Assistant,
	credentials CredentialSource,
	markdown MarkdownRenderer,
	fetcher *resilient.Fetcher,
	logger logger.Interface,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		preferences: preferences,
		weather:     weatherUC,
		calendar:    calendarUC,
		commute:     commuteUC,
		feast:       feastUC,
		assistant:   assistant,
		credentials: credentials,
		markdown:    markdown,
		fetcher:     fetcher,
		now:         biztime.NowUTC,
		logger:      logger,
	}
}

func (uc *GetSummaryUseCase) Execute(ctx context.Context) briefing.Summary {
	prefs, err := uc.preferences.Get(ctx)
	if err != nil {
		uc.logger.Warnw("using default briefing preferences", "error", err)
	}

	bc := uc.context(ctx, prefs)
	system, user := briefing.Prompt(bc, prefs)
	key := uc.credentials.Credential(ctx, setting.KeyAssistantAPIKey)

	text, fellBack := resilient.Fetch(ctx, uc.fetcher, promptKey(system, user), func(ctx context.Context) (string, error) {
		if key == "" {
			return "", resilient.ErrNotConfigured
		}
		return uc.assistant.Complete(ctx, key, system, user)
	}, "")
	if fellBack || text == "" {
		text = briefing.Compose(bc, prefs)
		fellBack = true
	}

	html, err := uc.markdown.ToHTMLSanitized(text)
	if err != nil {
		uc.logger.Warnw("failed to render briefing markdown", "error", err)
		html = ""
	}

	return briefing.Summary{
		Summary:     text,
		HTML:        html,
		GeneratedAt: bc.Now,
		IsDemo:      fellBack,
	}
}

// context gathers only the parts the preferences ask for. Demo data is
// never narrated.
func (uc *GetSummaryUseCase) context(ctx context.Context, prefs briefing.Preferences) briefing.Context {
	bc := briefing.Context{Now: uc.now()}
	if prefs.IncludeWeather {
		if report := uc.weather.Execute(ctx); !report.IsDemo {
			bc.Weather = &report
		}
	}
	if prefs.IncludeCalendar {
		if events, demo := uc.calendar.Events(ctx); !demo {
			bc.Events = events
		}
	}
	if prefs.IncludeCommute {
		if estimates, demo := uc.commute.Estimates(ctx); !demo {
			bc.Commute = estimates
		}
	}
	day := uc.feast.Day()
	bc.Feast = &day
	return bc
}

func promptKey(system, user string) string {
	sum := sha256.Sum256([]byte(system + "\x00" + user))
	return hex.EncodeToString(sum[:16])
}

