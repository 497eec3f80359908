package usecases

import (
	"context"
	stderrors "errors"

	"github.com/lumenhq/lumen/internal/application/setting/dto"
	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

// UpdateSettingsUseCase handles bulk writes of generic settings
type UpdateSettingsUseCase struct {
	settingRepo setting.Repository
	recorder    mirror.ChangeRecorder
	logger      logger.Interface
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase
func NewUpdateSettingsUseCase(
	settingRepo setting.Repository,
	recorder mirror.ChangeRecorder,
	logger logger.Interface,
) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingRepo: settingRepo,
		recorder:    recorder,
		logger:      logger,
	}
}

// Execute validates every entry before writing any, upserts them in one
// statement and records a single change.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, req dto.UpdateSettingsRequest, userID string) error {
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}

	batch := make([]*setting.Setting, 0, len(req.Settings))
	keys := make([]string, 0, len(req.Settings))
	for _, in := range req.Settings {
		s, err := uc.merge(ctx, in, userID)
		if err != nil {
			return err
		}
		batch = append(batch, s)
		keys = append(keys, in.Key)
	}

	if err := uc.settingRepo.UpsertMany(ctx, batch); err != nil {
		uc.logger.Errorw("failed to update settings", "keys", keys, "error", err)
		return errors.WrapInternal("Failed to update settings", err)
	}

	uc.recorder.Record(ctx, mirror.Change{
		Action:  mirror.ActionSettingsUpdate,
		UserID:  userID,
		Details: map[string]any{"keys": keys},
	})
	return nil
}

// merge overlays in on the stored setting. Resubmitting the mask of an
// encrypted value keeps the stored secret.
func (uc *UpdateSettingsUseCase) merge(ctx context.Context, in dto.SettingInput, userID string) (*setting.Setting, error) {
	existing, err := uc.settingRepo.GetByKey(ctx, in.Key)
	if err != nil && !stderrors.Is(err, setting.ErrSettingNotFound) {
		uc.logger.Errorw("failed to load setting", "key", in.Key, "error", err)
		return nil, errors.WrapInternal("Failed to update settings", err)
	}

	s := existing
	if s == nil {
		s, err = setting.NewSetting(in.Key, "", in.Category)
		if err != nil {
			return nil, errors.NewValidationError("Invalid setting key: " + in.Key)
		}
	}

	if masked, ok := in.Value.(string); !(ok && masked == utils.MaskedValue && s.Encrypted()) {
		if err := s.SetAnyValue(in.Value, userID); err != nil {
			return nil, errors.NewValidationError("Invalid value for " + in.Key)
		}
	}
	if in.Label != nil {
		s.SetLabel(*in.Label)
	}
	if in.Encrypted != nil {
		s.SetEncrypted(*in.Encrypted)
	}
	return s, nil
}
