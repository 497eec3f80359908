package usecases

import (
	"context"

	"github.com/lumenhq/lumen/internal/application/setting/dto"
	"github.com/lumenhq/lumen/internal/domain/briefing"
	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// AIPreferencesUseCase reads and writes the briefing toggles stored as "ai.*"
type AIPreferencesUseCase struct {
	settingRepo setting.Repository
	recorder    mirror.ChangeRecorder
	logger      logger.Interface
}

func NewAIPreferencesUseCase(
	settingRepo setting.Repository,
	recorder mirror.ChangeRecorder,
	logger logger.Interface,
) *AIPreferencesUseCase {
	return &AIPreferencesUseCase{
		settingRepo: settingRepo,
		recorder:    recorder,
		logger:      logger,
	}
}

// Get returns the stored preferences over the defaults. On a store error
// the defaults are returned together with the error.
func (uc *AIPreferencesUseCase) Get(ctx context.Context) (briefing.Preferences, error) {
	stored, err := uc.settingRepo.GetByCategory(ctx, setting.CategoryAI)
	if err != nil {
		uc.logger.Warnw("failed to read ai preferences, using defaults", "error", err)
		return briefing.DefaultPreferences(), errors.WrapInternal("Failed to fetch AI summary settings", err)
	}
	return briefing.PreferencesFromMap(setting.Flatten(stored)), nil
}

// Update applies req over the current preferences and stores the result.
func (uc *AIPreferencesUseCase) Update(ctx context.Context, req dto.AIPreferencesRequest, userID string) (briefing.Preferences, error) {
	current, err := uc.Get(ctx)
	if err != nil {
		return briefing.Preferences{}, err
	}

	next := req.Apply(current)
	if err := next.Validate(); err != nil {
		return briefing.Preferences{}, errors.NewValidationError(err.Error())
	}

	batch, err := categorySettings(setting.CategoryAI, next.Map(), userID)
	if err != nil {
		return briefing.Preferences{}, err
	}
	if err := uc.settingRepo.UpsertMany(ctx, batch); err != nil {
		uc.logger.Errorw("failed to update ai preferences", "error", err)
		return briefing.Preferences{}, errors.WrapInternal("Failed to update AI summary settings", err)
	}

	uc.recorder.Record(ctx, mirror.Change{
		Action:   mirror.ActionAIUpdate,
		Category: setting.CategoryAI,
		UserID:   userID,
		Details: map[string]any{
			"tone":            string(next.Tone),
			"includeWeather":  next.IncludeWeather,
			"includeCalendar": next.IncludeCalendar,
			"includeCommute":  next.IncludeCommute,
		},
	})
	return next, nil
}
