package games

import "errors"

var (
	// ErrGameNotFound is returned when no game has the requested id.
	ErrGameNotFound = errors.New("game not found")
	// ErrGameNotLive is returned when a score update targets a game that is not in progress.
	ErrGameNotLive = errors.New("game is not live")
	// ErrInvalidScore is returned when a score update is out of range.
	ErrInvalidScore = errors.New("invalid score")
)
