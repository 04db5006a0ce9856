package tournament

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/tourney/pkg/logger"
)

// TournamentService owns the business rules for tournaments and their players.
type TournamentService interface {
	AddTournament(ctx context.Context, req TournamentRequest) (*Tournament, error)
	GetTournaments(ctx context.Context) ([]Tournament, error)
	GetTournament(ctx context.Context, tournamentID string) (*Tournament, error)
	UpdateTournament(ctx context.Context, tournamentID string, patch TournamentPatch) (*Tournament, error)
	DeleteTournament(ctx context.Context, tournamentID string) error
	AddPlayerIntoTournament(ctx context.Context, tournamentID string, req PlayerRequest) (*Tournament, error)
	RemovePlayerFromTournament(ctx context.Context, tournamentID, playerID string) error
	GetPlayersInTournament(ctx context.Context, tournamentID string) ([]PlayerView, error)
}

type tournamentService struct {
	tournaments TournamentRepository
	players     PlayerRepository
	newID       func() string
}

// ServiceOption customises a TournamentService.
type ServiceOption func(*tournamentService)

// WithIDGenerator replaces the UUID generator used for business ids.
func WithIDGenerator(gen func() string) ServiceOption {
	return func(s *tournamentService) { s.newID = gen }
}

// NewTournamentService creates a new tournament service
func NewTournamentService(tournaments TournamentRepository, players PlayerRepository, opts ...ServiceOption) TournamentService {
	s := &tournamentService{
		tournaments: tournaments,
		players:     players,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *tournamentService) AddTournament(ctx context.Context, req TournamentRequest) (*Tournament, error) {
	log := logger.FromContext(ctx).With(zap.String("op", "addTournament"))

	if !validRequest(req) {
		log.Error("invalid tournament request", zap.Stringer("request", req))
		return nil, invalidTournamentRequest(req)
	}

	t := &Tournament{
		TournamentID:   s.newID(),
		TournamentName: req.TournamentName,
		RewardAmount:   req.RewardAmount,
		Currency:       req.Currency,
		Players:        []Player{},
	}
	err := s.tournaments.WithTransaction(ctx, func(tournaments TournamentRepository, _ PlayerRepository) error {
		return tournaments.Save(ctx, t)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Error("tournament name already taken", zap.String("tournament_name", req.TournamentName))
			return nil, nameTaken(req.TournamentName)
		}
		return nil, fmt.Errorf("saving tournament: %w", err)
	}

	log.Info("tournament created", zap.String("tournament_id", t.TournamentID))
	return t, nil
}

func (s *tournamentService) GetTournaments(ctx context.Context) ([]Tournament, error) {
	tournaments, err := s.tournaments.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tournaments: %w", err)
	}
	return tournaments, nil
}

func (s *tournamentService) GetTournament(ctx context.Context, tournamentID string) (*Tournament, error) {
	return s.load(ctx, s.tournaments, tournamentID)
}

func (s *tournamentService) UpdateTournament(ctx context.Context, tournamentID string, patch TournamentPatch) (*Tournament, error) {
	log := logger.FromContext(ctx).With(zap.String("op", "updateTournament"), zap.String("tournament_id", tournamentID))

	var updated *Tournament
	err := s.tournaments.WithTransaction(ctx, func(tournaments TournamentRepository, _ PlayerRepository) error {
		t, err := s.load(ctx, tournaments, tournamentID)
		if err != nil {
			return err
		}

		if patch.TournamentName != nil {
			t.TournamentName = *patch.TournamentName
		}
		if patch.RewardAmount > 0 {
			t.RewardAmount = patch.RewardAmount
		}
		if patch.Currency != nil {
			t.Currency = *patch.Currency
		}

		if err := tournaments.Save(ctx, t); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nameTaken(t.TournamentName)
			}
			return fmt.Errorf("saving tournament: %w", err)
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("tournament updated")
	return updated, nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, tournamentID string) error {
	err := s.tournaments.WithTransaction(ctx, func(tournaments TournamentRepository, _ PlayerRepository) error {
		if _, err := s.load(ctx, tournaments, tournamentID); err != nil {
			return err
		}
		if err := tournaments.DeleteByTournamentID(ctx, tournamentID); err != nil {
			return fmt.Errorf("deleting tournament: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("tournament deleted", zap.String("tournament_id", tournamentID))
	return nil
}

func (s *tournamentService) AddPlayerIntoTournament(ctx context.Context, tournamentID string, req PlayerRequest) (*Tournament, error) {
	log := logger.FromContext(ctx).With(zap.String("op", "addPlayerIntoTournament"), zap.String("tournament_id", tournamentID))

	var updated *Tournament
	err := s.tournaments.WithTransaction(ctx, func(tournaments TournamentRepository, players PlayerRepository) error {
		t, err := s.load(ctx, tournaments, tournamentID)
		if err != nil {
			return err
		}
		if !validPlayerRequest(req) {
			log.Error("invalid player request", zap.Stringer("request", req))
			return invalidPlayerRequest(req)
		}

		p := &Player{PlayerID: s.newID(), PlayerName: *req.PlayerName}
		if err := players.Save(ctx, p); err != nil {
			return fmt.Errorf("saving player: %w", err)
		}
		if err := tournaments.AddPlayer(ctx, t, p); err != nil {
			return fmt.Errorf("registering player: %w", err)
		}
		t.Players = append(t.Players, *p)
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("player added to tournament", zap.String("player_id", updated.Players[len(updated.Players)-1].PlayerID))
	return updated, nil
}

// RemovePlayerFromTournament checks membership against the tournament and then
// looks the player up in the player store; either miss is ErrPlayerNotFound.
func (s *tournamentService) RemovePlayerFromTournament(ctx context.Context, tournamentID, playerID string) error {
	log := logger.FromContext(ctx).With(
		zap.String("op", "removePlayerFromTournament"),
		zap.String("tournament_id", tournamentID),
		zap.String("player_id", playerID),
	)

	err := s.tournaments.WithTransaction(ctx, func(tournaments TournamentRepository, players PlayerRepository) error {
		t, err := s.load(ctx, tournaments, tournamentID)
		if err != nil {
			return err
		}
		if !t.hasPlayer(playerID) {
			log.Error("player is not registered in tournament")
			return playerNotFound(playerID)
		}

		p, err := players.FindByPlayerID(ctx, playerID)
		if err != nil {
			return fmt.Errorf("loading player: %w", err)
		}
		if p == nil {
			log.Error("player record missing")
			return playerNotFound(playerID)
		}

		if err := tournaments.RemovePlayer(ctx, t, p); err != nil {
			return fmt.Errorf("unregistering player: %w", err)
		}
		t.dropPlayer(p.ID)
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("player removed from tournament")
	return nil
}

func (s *tournamentService) GetPlayersInTournament(ctx context.Context, tournamentID string) ([]PlayerView, error) {
	t, err := s.load(ctx, s.tournaments, tournamentID)
	if err != nil {
		return nil, err
	}

	views := make([]PlayerView, 0, len(t.Players))
	for _, p := range t.Players {
		views = append(views, PlayerView{PlayerID: p.PlayerID, PlayerName: p.PlayerName})
	}
	return views, nil
}

// load fetches a tournament through repo, mapping a miss to ErrTournamentNotFound.
func (s *tournamentService) load(ctx context.Context, repo TournamentRepository, tournamentID string) (*Tournament, error) {
	t, err := repo.FindByTournamentID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("loading tournament: %w", err)
	}
	if t == nil {
		logger.FromContext(ctx).Error(tournamentNotFoundMsg + tournamentID)
		return nil, tournamentNotFound(tournamentID)
	}
	return t, nil
}

func validRequest(req TournamentRequest) bool {
	return req.TournamentName != "" && req.RewardAmount >= 1 && req.Currency != ""
}

func validPlayerRequest(req PlayerRequest) bool {
	return req.PlayerName != nil && strings.TrimSpace(*req.PlayerName) != ""
}
