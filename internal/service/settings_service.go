package service

import (
	"errors"

	"go-retail-backoffice/internal/model"
	"go-retail-backoffice/internal/repository"

	"gorm.io/gorm"
)

// SettingsService owns the singleton business-settings record, including
// its initialization: the first read persists the default record.
type SettingsService interface {
	GetSettings() (*model.BusinessSettings, error)
	UpdateSettings(req *model.BusinessSettings) (*model.BusinessSettings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) GetSettings() (*model.BusinessSettings, error) {
	settings, err := s.settingsRepo.Find()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := model.DefaultSettings()
		if err := s.settingsRepo.Upsert(defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(req *model.BusinessSettings) (*model.BusinessSettings, error) {
	// The id is fixed; whatever the caller sent is overridden.
	req.ID = model.SettingsID
	if err := s.settingsRepo.Upsert(req); err != nil {
		return nil, err
	}
	return req, nil
}
