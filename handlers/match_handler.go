package handlers

import (
	"errors"
	"net/http"

	"risiko-ladder-api/models"
	"risiko-ladder-api/services"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// GetMatches returns the match history
// @Summary Get match history
// @Description Get all recorded matches newest first, with winner name and concatenated loser names
// @Tags matches
// @Produce json
// @Success 200 {array} models.MatchSummary
// @Failure 500 {object} map[string]string
// @Router /api/matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	matches, err := h.matchService.GetMatchesHistory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve matches",
		})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// RecordMatch records a new match
// @Summary Record a match
// @Description Record a winner-takes-all match. Ratings, play counts and participation rows for every participant are written in one transaction, with the K-factor in effect frozen into the match. Admin only.
// @Tags matches
// @Accept json
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Param match body models.RecordMatchRequest true "Match data"
// @Success 201 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/matches [post]
func (h *MatchHandler) RecordMatch(c *gin.Context) {
	var req models.RecordMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing fields",
		})
		return
	}

	match, err := h.matchService.RecordMatch(req.Date, req.WinnerID, req.LoserIDs)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPlayerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, services.ErrNoLosers),
			errors.Is(err, services.ErrWinnerAmongLosers),
			errors.Is(err, services.ErrDuplicateLoser):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to record match",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, match)
}

// DeleteMatch reverses a recorded match
// @Summary Delete a match
// @Description Revert every participant's rating delta and play count from the match, then delete the match and its participations. Admin only.
// @Tags matches
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/matches/{id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	matchID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid match ID",
		})
		return
	}

	if err := h.matchService.DeleteMatch(matchID); err != nil {
		if errors.Is(err, services.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Match not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete match",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "deleted",
		"id":     matchID,
	})
}
