package tournament

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TournamentRepository defines the interface for tournament data operations
type TournamentRepository interface {
	FindByTournamentID(ctx context.Context, tournamentID string) (*Tournament, error)
	FindAll(ctx context.Context) ([]Tournament, error)
	Save(ctx context.Context, tournament *Tournament) error
	DeleteByTournamentID(ctx context.Context, tournamentID string) error
	AddPlayer(ctx context.Context, tournament *Tournament, player *Player) error
	RemovePlayer(ctx context.Context, tournament *Tournament, player *Player) error
	Count(ctx context.Context) (int64, error)
	WithTransaction(ctx context.Context, txFunc func(TournamentRepository, PlayerRepository) error) error
}

// PlayerRepository defines the interface for player data operations
type PlayerRepository interface {
	FindByPlayerID(ctx context.Context, playerID string) (*Player, error)
	Save(ctx context.Context, player *Player) error
	Count(ctx context.Context) (int64, error)
}

type tournamentRepository struct {
	db *gorm.DB
}

type playerRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new instance of TournamentRepository
func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &tournamentRepository{db: db}
}

// NewPlayerRepository creates a new instance of PlayerRepository
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// AutoMigrate creates or updates the tournament, player and join tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Tournament{}, "Players", &TournamentPlayer{}); err != nil {
		return err
	}
	return db.AutoMigrate(&Player{}, &Tournament{})
}

// inRegistrationOrder sorts players by key. Keys grow with insertion and a
// player row is only created when it is registered, so this is join order.
func inRegistrationOrder(players []Player) {
	slices.SortFunc(players, func(a, b Player) int { return cmp.Compare(a.ID, b.ID) })
}

// --- Tournament Operations ---

func (r *tournamentRepository) FindByTournamentID(ctx context.Context, tournamentID string) (*Tournament, error) {
	var t Tournament
	err := r.db.WithContext(ctx).
		Preload("Players").
		Where("tournament_id = ?", tournamentID).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	inRegistrationOrder(t.Players)
	return &t, nil
}

func (r *tournamentRepository) FindAll(ctx context.Context) ([]Tournament, error) {
	tournaments := make([]Tournament, 0)
	err := r.db.WithContext(ctx).
		Preload("Players").
		Order("id ASC").
		Find(&tournaments).Error
	if err != nil {
		return nil, err
	}
	for i := range tournaments {
		inRegistrationOrder(tournaments[i].Players)
	}
	return tournaments, nil
}

// Save inserts the tournament when it has no key yet, otherwise updates its
// columns. The players association is managed by AddPlayer/RemovePlayer only.
func (r *tournamentRepository) Save(ctx context.Context, t *Tournament) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(t).Error
}

func (r *tournamentRepository) DeleteByTournamentID(ctx context.Context, tournamentID string) error {
	db := r.db.WithContext(ctx)
	keys := db.Model(&Tournament{}).Select("id").Where("tournament_id = ?", tournamentID)
	if err := db.Where("tournament_id IN (?)", keys).Delete(&TournamentPlayer{}).Error; err != nil {
		return err
	}
	return db.Where("tournament_id = ?", tournamentID).Delete(&Tournament{}).Error
}

func (r *tournamentRepository) AddPlayer(ctx context.Context, t *Tournament, p *Player) error {
	return r.db.WithContext(ctx).Create(&TournamentPlayer{TournamentID: t.ID, PlayerID: p.ID}).Error
}

func (r *tournamentRepository) RemovePlayer(ctx context.Context, t *Tournament, p *Player) error {
	return r.db.WithContext(ctx).
		Where("tournament_id = ? AND player_id = ?", t.ID, p.ID).
		Delete(&TournamentPlayer{}).Error
}

func (r *tournamentRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&Tournament{}).Count(&total).Error
	return total, err
}

func (r *tournamentRepository) WithTransaction(ctx context.Context, txFunc func(TournamentRepository, PlayerRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return txFunc(&tournamentRepository{db: tx}, &playerRepository{db: tx})
	})
}

// --- Player Operations ---

func (r *playerRepository) FindByPlayerID(ctx context.Context, playerID string) (*Player, error) {
	var p Player
	err := r.db.WithContext(ctx).Where("player_id = ?", playerID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) Save(ctx context.Context, p *Player) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *playerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&Player{}).Count(&total).Error
	return total, err
}
