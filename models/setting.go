package models

// SettingKFactor is the settings key holding the global K-factor.
const SettingKFactor = "k_factor"

// DefaultKFactor applies when the settings row has never been written.
const DefaultKFactor = 32.0

type Setting struct {
	Key   string `gorm:"primaryKey;size:64" json:"key"`
	Value string `gorm:"not null" json:"value"`
}

func (Setting) TableName() string {
	return "settings"
}

type UpdateSettingsRequest struct {
	KFactor float64 `json:"k_factor" binding:"required"`
}
