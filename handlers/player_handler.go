package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"risiko-ladder-api/models"
	"risiko-ladder-api/services"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
	matchService  *services.MatchService
}

func NewPlayerHandler(playerService *services.PlayerService, matchService *services.MatchService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
		matchService:  matchService,
	}
}

// GetLeaderboard returns the current standings
// @Summary Get the leaderboard
// @Description Get all players ordered by rank: players above the activity threshold first, provisional players after, both by rating descending
// @Tags players
// @Produce json
// @Success 200 {array} models.LeaderboardEntry
// @Failure 500 {object} map[string]string
// @Router /api/leaderboard [get]
func (h *PlayerHandler) GetLeaderboard(c *gin.Context) {
	leaderboard, err := h.playerService.GetLeaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve leaderboard",
		})
		return
	}

	c.JSON(http.StatusOK, leaderboard)
}

// GetPlayer returns one player with history and derived statistics
// @Summary Get a player
// @Description Get a player together with their match history (newest first) and derived statistics
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} models.PlayerDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	playerID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid player ID",
		})
		return
	}

	player, err := h.playerService.GetPlayerByID(playerID)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Player not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve player",
		})
		return
	}

	history, err := h.matchService.GetPlayerHistory(playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve player history",
		})
		return
	}

	stats := services.BuildPlayerStats(player.Rating, history)

	leaderboard, err := h.playerService.GetLeaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve leaderboard",
		})
		return
	}
	for _, entry := range leaderboard {
		if entry.ID == player.ID {
			stats.Rank = entry.Rank
			break
		}
	}

	c.JSON(http.StatusOK, models.PlayerDetailResponse{
		Player:  *player,
		History: history,
		Stats:   stats,
	})
}

// CreatePlayer registers a new player
// @Summary Create a player
// @Description Register a new player at the default rating. Admin only.
// @Tags players
// @Accept json
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Param player body models.CreatePlayerRequest true "Player data"
// @Success 201 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req models.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Name required",
		})
		return
	}

	player, err := h.playerService.CreatePlayer(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateName) {
			c.JSON(http.StatusConflict, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create player",
		})
		return
	}

	c.JSON(http.StatusCreated, player)
}

// DeletePlayer removes a player and the matches they won
// @Summary Delete a player
// @Description Delete a player, the matches they won (including every participant's record of those matches) and their remaining participations. Other participants' ratings are not adjusted. Admin only.
// @Tags players
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Param id path int true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	playerID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid player ID",
		})
		return
	}

	if err := h.playerService.DeletePlayer(playerID); err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Player not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete player",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "deleted",
		"id":     playerID,
	})
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
