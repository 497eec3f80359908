package mappers

import (
	"github.com/lumenhq/lumen/internal/domain/setting"
	"github.com/lumenhq/lumen/internal/infrastructure/persistence/models"
)

// SettingMapper converts between setting entities and models
type SettingMapper interface {
	ToDomain(model *models.SettingModel) *setting.Setting
	ToModel(s *setting.Setting) *models.SettingModel
	ToDomainList(modelList []*models.SettingModel) []*setting.Setting
}

type settingMapper struct{}

func NewSettingMapper() SettingMapper {
	return &settingMapper{}
}

func (m *settingMapper) ToDomain(model *models.SettingModel) *setting.Setting {
	if model == nil {
		return nil
	}
	return setting.ReconstructSetting(
		model.SettingKey,
		model.Value,
		setting.ValueType(model.ValueType),
		model.Category,
		model.Label,
		model.Encrypted,
		model.UpdatedBy,
		model.UpdatedAt,
	)
}

func (m *settingMapper) ToModel(s *setting.Setting) *models.SettingModel {
	if s == nil {
		return nil
	}
	return &models.SettingModel{
		SettingKey: s.Key(),
		Value:      s.Value(),
		ValueType:  string(s.ValueType()),
		Category:   s.Category(),
		Label:      s.Label(),
		Encrypted:  s.Encrypted(),
		UpdatedBy:  s.UpdatedBy(),
		UpdatedAt:  s.UpdatedAt(),
	}
}

func (m *settingMapper) ToDomainList(modelList []*models.SettingModel) []*setting.Setting {
	out := make([]*setting.Setting, 0, len(modelList))
	for _, model := range modelList {
		if s := m.ToDomain(model); s != nil {
			out = append(out, s)
		}
	}
	return out
}
