package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound     = errors.New("player not found")
	ErrInvalidPlayerCount = errors.New("player count must be between 2 and 6")

	// Player name errors
	ErrNameHasWhitespace = errors.New("name cannot contain spaces")
	ErrNameTooLong       = errors.New("name must be 20 characters or less")
	ErrNameNotASCII      = errors.New("name can only contain ASCII characters")
	ErrNameTaken         = errors.New("name has already been used")

	// Map errors
	ErrSquareNotFound = errors.New("square not found")
	ErrMapNotFound    = errors.New("map file not found")
	ErrInvalidMap     = errors.New("invalid map")
	ErrNoJailSquare   = errors.New("map has no In Jail/Just Visiting square")

	// Save errors
	ErrSaveNotFound = errors.New("save not found")
	ErrInvalidSave  = errors.New("invalid save")
)
