package services

import (
	"testing"

	"risiko-ladder-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKFactorDefault(t *testing.T) {
	db := setupTestDB(t)
	settingsService := NewSettingsService(db)

	kFactor, err := settingsService.GetKFactor()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultKFactor, kFactor)
}

func TestSetKFactorRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	settingsService := NewSettingsService(db)

	require.NoError(t, settingsService.SetKFactor(24))

	kFactor, err := settingsService.GetKFactor()
	require.NoError(t, err)
	assert.Equal(t, 24.0, kFactor)

	// Updating overwrites the single settings row.
	require.NoError(t, settingsService.SetKFactor(48.5))

	kFactor, err = settingsService.GetKFactor()
	require.NoError(t, err)
	assert.Equal(t, 48.5, kFactor)

	var count int64
	require.NoError(t, db.Model(&models.Setting{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSetKFactorRejectsNonPositive(t *testing.T) {
	db := setupTestDB(t)
	settingsService := NewSettingsService(db)

	assert.ErrorIs(t, settingsService.SetKFactor(0), ErrInvalidKFactor)
	assert.ErrorIs(t, settingsService.SetKFactor(-4), ErrInvalidKFactor)
}
