package tournament

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/tourney/pkg/logger"
	"github.com/DhavalSuthar-24/tourney/pkg/responses"
	"github.com/DhavalSuthar-24/tourney/pkg/validator"
)

// TournamentController handles tournament-related HTTP requests
type TournamentController struct {
	service TournamentService
}

// NewTournamentController creates a new tournament controller
func NewTournamentController(service TournamentService) *TournamentController {
	return &TournamentController{service: service}
}

// bindJSON binds and validates the body, answering 400 itself on failure.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		responses.BadRequest(c, validator.ParseError(err, obj)...)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		responses.BadRequest(c, validator.ParseError(err, obj)...)
		return false
	}
	return true
}

// fail renders a service error: business failures as 400, anything else as 500.
func fail(c *gin.Context, err error) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		responses.BadRequest(c, domainErr.Message)
		return
	}
	logger.FromGin(c).Error("request failed", zap.Error(err))
	responses.InternalServerError(c, "")
}

// CreateTournament godoc
// @Summary Create a new tournament
// @Description Creates a tournament with a generated tournamentId and no players.
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament body TournamentRequest true "Tournament Creation Data"
// @Success 201 {object} Tournament "Tournament created"
// @Failure 400 {object} responses.ErrorResponse "Validation failed or name already taken"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /addTournament [post]
func (tc *TournamentController) CreateTournament(c *gin.Context) {
	var req TournamentRequest
	if !bindJSON(c, &req) {
		return
	}
	logger.FromGin(c).Info("creating a new tournament", zap.Stringer("request", req))

	t, err := tc.service.AddTournament(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	responses.SendJSON(c, http.StatusCreated, t)
}

// GetAllTournaments godoc
// @Summary List tournaments
// @Description Returns every tournament with its players, in creation order.
// @Tags Tournaments
// @Produce json
// @Success 200 {array} Tournament "List of tournaments"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /getTournaments [get]
func (tc *TournamentController) GetAllTournaments(c *gin.Context) {
	tournaments, err := tc.service.GetTournaments(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	responses.SendJSON(c, http.StatusOK, tournaments)
}

// GetTournament godoc
// @Summary Get a tournament by its tournamentId
// @Tags Tournaments
// @Produce json
// @Param tournamentId query string true "Tournament ID"
// @Success 200 {object} Tournament "Tournament details"
// @Failure 400 {object} responses.ErrorResponse "Missing id or tournament not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /getTournament [get]
func (tc *TournamentController) GetTournament(c *gin.Context) {
	var q tournamentQuery
	if !bindQuery(c, &q) {
		return
	}

	t, err := tc.service.GetTournament(c.Request.Context(), q.TournamentID)
	if err != nil {
		fail(c, err)
		return
	}
	responses.SendJSON(c, http.StatusOK, t)
}

// UpdateTournament godoc
// @Summary Update a tournament
// @Description Partial update: a missing name or currency, or a rewardAmount of 0 or less, keeps the stored value. Players are not touched.
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournamentId query string true "Tournament ID"
// @Param tournament body TournamentPatch true "Fields to overwrite"
// @Success 200 {object} Tournament "Tournament updated"
// @Failure 400 {object} responses.ErrorResponse "Invalid input or tournament not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /updateTournament [put]
func (tc *TournamentController) UpdateTournament(c *gin.Context) {
	var q tournamentQuery
	if !bindQuery(c, &q) {
		return
	}
	var patch TournamentPatch
	if !bindJSON(c, &patch) {
		return
	}
	logger.FromGin(c).Info("updating tournament", zap.String("tournament_id", q.TournamentID))

	t, err := tc.service.UpdateTournament(c.Request.Context(), q.TournamentID, patch)
	if err != nil {
		fail(c, err)
		return
	}
	responses.SendJSON(c, http.StatusOK, t)
}

// DeleteTournament godoc
// @Summary Delete a tournament
// @Description Removes the tournament and its registrations. Player records are kept.
// @Tags Tournaments
// @Param tournamentId query string true "Tournament ID"
// @Success 200 "Tournament deleted"
// @Failure 400 {object} responses.ErrorResponse "Missing id or tournament not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /removeTournament [delete]
func (tc *TournamentController) DeleteTournament(c *gin.Context) {
	var q tournamentQuery
	if !bindQuery(c, &q) {
		return
	}
	logger.FromGin(c).Info("removing tournament", zap.String("tournament_id", q.TournamentID))

	if err := tc.service.DeleteTournament(c.Request.Context(), q.TournamentID); err != nil {
		fail(c, err)
		return
	}
	responses.SendEmpty(c, http.StatusOK)
}

// AddPlayer godoc
// @Summary Register a new player in a tournament
// @Description Creates a player record and registers it in the tournament.
// @Tags Players
// @Accept json
// @Produce json
// @Param tournamentId query string true "Tournament ID"
// @Param player body PlayerRequest true "Player Data"
// @Success 201 {object} Tournament "Tournament including the new player"
// @Failure 400 {object} responses.ErrorResponse "Invalid input or tournament not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /addPlayerIntoTournament [post]
func (tc *TournamentController) AddPlayer(c *gin.Context) {
	var q tournamentQuery
	if !bindQuery(c, &q) {
		return
	}
	var req PlayerRequest
	if !bindJSON(c, &req) {
		return
	}
	logger.FromGin(c).Info("adding player to tournament", zap.String("tournament_id", q.TournamentID), zap.Stringer("request", req))

	t, err := tc.service.AddPlayerIntoTournament(c.Request.Context(), q.TournamentID, req)
	if err != nil {
		fail(c, err)
		return
	}
	responses.SendJSON(c, http.StatusCreated, t)
}

// RemovePlayer godoc
// @Summary Remove a player from a tournament
// @Description Drops the registration only; the player record stays.
// @Tags Players
// @Param tournamentId query string true "Tournament ID"
// @Param playerId query string true "Player ID"
// @Success 200 "Player removed"
// @Failure 400 {object} responses.ErrorResponse "Tournament or player not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /removePlayerFromTournament [delete]
func (tc *TournamentController) RemovePlayer(c *gin.Context) {
	var q playerQuery
	if !bindQuery(c, &q) {
		return
	}
	logger.FromGin(c).Info("removing player from tournament",
		zap.String("tournament_id", q.TournamentID), zap.String("player_id", q.PlayerID))

	if err := tc.service.RemovePlayerFromTournament(c.Request.Context(), q.TournamentID, q.PlayerID); err != nil {
		fail(c, err)
		return
	}
	responses.SendEmpty(c, http.StatusOK)
}

// GetPlayers godoc
// @Summary List the players of a tournament
// @Tags Players
// @Produce json
// @Param tournamentId query string true "Tournament ID"
// @Success 200 {array} PlayerView "Registered players"
// @Failure 400 {object} responses.ErrorResponse "Missing id or tournament not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /getPlayersInTournament [get]
func (tc *TournamentController) GetPlayers(c *gin.Context) {
	var q tournamentQuery
	if !bindQuery(c, &q) {
		return
	}

	players, err := tc.service.GetPlayersInTournament(c.Request.Context(), q.TournamentID)
	if err != nil {
		fail(c, err)
		return
	}
	responses.SendJSON(c, http.StatusOK, players)
}
