package repository

import (
	"go-retail-backoffice/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	Find() (*model.BusinessSettings, error)
	Upsert(settings *model.BusinessSettings) error
}

type settingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db}
}

func (r *settingsRepo) Find() (*model.BusinessSettings, error) {
	var settings model.BusinessSettings
	err := r.db.First(&settings, "id = ?", model.SettingsID).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepo) Upsert(settings *model.BusinessSettings) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(settings).Error
}
