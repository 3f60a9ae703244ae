package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrInvalidDimensions = errors.New("board dimensions must be positive and within the cell limit")
	ErrInvalidColumn     = errors.New("column is out of range")
	ErrColumnFull        = errors.New("column is full")
	ErrInvalidColor      = errors.New("invalid piece color")

	// Game errors
	ErrNotColorsTurn = errors.New("not this color's turn")
	ErrGameFinished  = errors.New("game is already finished")

	// Configuration errors
	ErrInvalidVariant = errors.New("invalid win variant")
)
