package handlers

import (
	"errors"
	"net/http"

	"risiko-ladder-api/models"
	"risiko-ladder-api/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings returns the current K-factor
// @Summary Get settings
// @Description Get the global K-factor currently applied to newly recorded matches
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]float64
// @Failure 500 {object} map[string]string
// @Router /api/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	kFactor, err := h.settingsService.GetKFactor()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve settings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"k_factor": kFactor,
	})
}

// UpdateSettings sets the K-factor
// @Summary Update settings
// @Description Set the global K-factor. Only matches recorded afterward are affected; recorded matches keep the value frozen into them. Admin only.
// @Tags settings
// @Accept json
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Param settings body models.UpdateSettingsRequest true "New settings"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing k_factor",
		})
		return
	}

	if err := h.settingsService.SetKFactor(req.KFactor); err != nil {
		if errors.Is(err, services.ErrInvalidKFactor) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update settings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "updated",
		"k_factor": req.KFactor,
	})
}
