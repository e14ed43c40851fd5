package providers

import (
	"context"

	"sports-data-service/internal/domain"
)

// DatasetProvider supplies the catalog the service answers queries from.
// Implementations either generate a dataset or load a previously written one.
type DatasetProvider interface {
	FetchDataset(ctx context.Context) (domain.Dataset, error)
}

// ProviderFunc adapts a function to DatasetProvider.
type ProviderFunc func(ctx context.Context) (domain.Dataset, error)

// FetchDataset calls f(ctx).
func (f ProviderFunc) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	return f(ctx)
}
