// internal/tournament/tournament_model.go
package tournament

import (
	"fmt"

	"github.com/DhavalSuthar-24/tourney/internal/models"
)

const joinTable = "tournament_players"

// Tournament is a competition with a reward and its registered players.
type Tournament struct {
	models.BaseModel
	TournamentID   string   `json:"tournamentId" gorm:"uniqueIndex;not null"`
	TournamentName string   `json:"tournamentName" gorm:"unique;not null"`
	RewardAmount   int      `json:"rewardAmount"`
	Currency       string   `json:"currency" gorm:"not null"`
	Players        []Player `json:"players" gorm:"many2many:tournament_players;"`
}

func (Tournament) TableName() string { return "tournament_tbl" }

// Player exists independently of the tournaments it is registered in.
type Player struct {
	models.BaseModel
	PlayerID   string `json:"playerId" gorm:"uniqueIndex;not null"`
	PlayerName string `json:"playerName" gorm:"not null"`
}

func (Player) TableName() string { return "players_tbl" }

// TournamentPlayer is the association row between a tournament and a player.
type TournamentPlayer struct {
	TournamentID uint `gorm:"primaryKey"`
	PlayerID     uint `gorm:"primaryKey"`
}

func (TournamentPlayer) TableName() string { return joinTable }

// PlayerView is the public projection of a player inside a tournament.
type PlayerView struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

// hasPlayer reports whether playerID is currently registered.
func (t *Tournament) hasPlayer(playerID string) bool {
	for _, p := range t.Players {
		if p.PlayerID == playerID {
			return true
		}
	}
	return false
}

func (t *Tournament) dropPlayer(id uint) {
	kept := t.Players[:0]
	for _, p := range t.Players {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	t.Players = kept
}

// --- DTOs for requests ---

// TournamentRequest creates a tournament. The name is checked for emptiness
// only: a whitespace-only name is stored as given. Players are ignored.
type TournamentRequest struct {
	TournamentName string          `json:"tournamentName" binding:"required" msg:"Name of Tournament is required!"`
	RewardAmount   int             `json:"rewardAmount" binding:"min=1" msg:"rewardAmount cannot be less than 1"`
	Currency       string          `json:"currency" binding:"required" msg:"Currency is required!"`
	Players        []PlayerRequest `json:"players"`
}

func (r TournamentRequest) String() string {
	return fmt.Sprintf("TournamentRequest{tournamentName=%q, rewardAmount=%d, currency=%q, players=%v}",
		r.TournamentName, r.RewardAmount, r.Currency, r.Players)
}

// TournamentPatch carries a partial update. Nil name or currency and a
// non-positive reward leave the stored value unchanged.
type TournamentPatch struct {
	TournamentName *string `json:"tournamentName"`
	RewardAmount   int     `json:"rewardAmount"`
	Currency       *string `json:"currency"`
}

type PlayerRequest struct {
	PlayerName *string `json:"playerName" binding:"notblank" msg:"Name of the Player is required!"`
}

func (r PlayerRequest) String() string {
	if r.PlayerName == nil {
		return "PlayerRequest{playerName=<nil>}"
	}
	return fmt.Sprintf("PlayerRequest{playerName=%q}", *r.PlayerName)
}

type tournamentQuery struct {
	TournamentID string `form:"tournamentId" binding:"required" msg:"tournamentId query parameter is required"`
}

type playerQuery struct {
	TournamentID string `form:"tournamentId" binding:"required" msg:"tournamentId query parameter is required"`
	PlayerID     string `form:"playerId" binding:"required" msg:"playerId query parameter is required"`
}
