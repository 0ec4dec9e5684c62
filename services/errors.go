package services

import "errors"

// Shared errors used across services and the HTTP error mapping.
var (
	// Validation / business rules
	ErrValidationFailed   = errors.New("validation failed")
	ErrTeamNameRequired   = errors.New("team name is required")
	ErrTeamPoolInvalid    = errors.New("pool must be one of A, B or C")
	ErrSameTeamGame       = errors.New("a game requires two distinct teams")
	ErrInvalidSetKey      = errors.New("set key must be set1 or set2")
	ErrInvalidTeamSlot    = errors.New("team must be team1 or team2")
	ErrInvalidScoreDelta  = errors.New("score delta must be +1 or -1")
	ErrLogoContentInvalid = errors.New("logo must be a PNG or JPEG image")

	// Conflicts
	ErrTeamNameConflict    = errors.New("team name is already in use")
	ErrTeamLimitExceeded   = errors.New("maximum number of teams reached")
	ErrTeamHasActiveGames  = errors.New("team has games still in progress")
	ErrDuplicateActiveGame = errors.New("an active game already exists for this pair")
	ErrGameAlreadyCompleted = errors.New("game is already completed")

	// Not found
	ErrTeamNotFound = errors.New("team not found")
	ErrGameNotFound = errors.New("game not found")

	// Authentication
	ErrAuthInvalidCredentials = errors.New("invalid username or password")

	// Infrastructure
	ErrLogoStorageUnavailable = errors.New("logo storage is not configured")
)
