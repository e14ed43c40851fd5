package providers

import "errors"

var (
	// ErrProviderUnavailable is returned when no provider is configured.
	ErrProviderUnavailable = errors.New("dataset provider unavailable")
	// ErrEmptyDataset is returned when a provider yields a dataset without games.
	ErrEmptyDataset = errors.New("dataset has no games")
)
