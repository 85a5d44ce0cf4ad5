package services

import (
	"errors"
	"fmt"
	"strconv"

	"risiko-ladder-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{
		db: db,
	}
}

// GetKFactor returns the global K-factor. A missing settings row falls back
// to the default.
func (s *SettingsService) GetKFactor() (float64, error) {
	return readKFactor(s.db)
}

// SetKFactor updates the global K-factor. Matches already recorded keep the
// value frozen into their row; only matches recorded afterward see the new
// one.
func (s *SettingsService) SetKFactor(kFactor float64) error {
	if kFactor <= 0 {
		return ErrInvalidKFactor
	}

	setting := models.Setting{
		Key:   models.SettingKFactor,
		Value: strconv.FormatFloat(kFactor, 'f', -1, 64),
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
}

// readKFactor reads the K-factor through the given handle so match recording
// can resolve it inside its own transaction.
func readKFactor(db *gorm.DB) (float64, error) {
	var setting models.Setting
	if err := db.First(&setting, "key = ?", models.SettingKFactor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultKFactor, nil
		}
		return 0, err
	}

	kFactor, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s setting %q: %w", models.SettingKFactor, setting.Value, err)
	}

	return kFactor, nil
}
