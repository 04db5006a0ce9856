package tournament

import "errors"

var (
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrTournamentNameTaken = errors.New("tournament name already taken")
)

const (
	tournamentNotFoundMsg = "Tournament not found with id: "
	playerNotFoundMsg     = "Player not found with id: "
)

// DomainError is a business rule failure reported back to the caller as-is.
type DomainError struct {
	Err     error
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.Err }

func tournamentNotFound(id string) error {
	return &DomainError{Err: ErrTournamentNotFound, Message: tournamentNotFoundMsg + id}
}

func playerNotFound(id string) error {
	return &DomainError{Err: ErrPlayerNotFound, Message: playerNotFoundMsg + id}
}

func invalidTournamentRequest(req TournamentRequest) error {
	return &DomainError{Err: ErrInvalidRequest, Message: "Invalid tournament request: " + req.String()}
}

func invalidPlayerRequest(req PlayerRequest) error {
	return &DomainError{Err: ErrInvalidRequest, Message: "Invalid player request: " + req.String()}
}

func nameTaken(name string) error {
	return &DomainError{Err: ErrTournamentNameTaken, Message: "Tournament already exists with name: " + name}
}
