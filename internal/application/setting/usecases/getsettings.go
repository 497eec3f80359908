package usecases

import (
	"context"
	"fmt"

	"github.com/lumenhq/lumen/internal/application/setting/dto"
	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

// GetSettingsUseCase handles admin and display reads of stored settings
type GetSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase
func NewGetSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// List returns all settings, or one category when category is set.
func (uc *GetSettingsUseCase) List(ctx context.Context, category string) (*dto.SettingsListResponse, error) {
	var (
		settings []*setting.Setting
		err      error
	)
	if category != "" {
		settings, err = uc.settingRepo.GetByCategory(ctx, category)
	} else {
		settings, err = uc.settingRepo.GetAll(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list settings", "category", category, "error", err)
		return nil, errors.WrapInternal("Failed to fetch settings", err)
	}

	return &dto.SettingsListResponse{Settings: dto.ToSettingDTOs(settings)}, nil
}

// CategoryValues returns the raw values of a category keyed by name, with
// the category prefix stripped.
func (uc *GetSettingsUseCase) CategoryValues(ctx context.Context, category string) (map[string]string, error) {
	settings, err := uc.settingRepo.GetByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s settings: %w", category, err)
	}
	return setting.Flatten(settings), nil
}
