package testutil

import (
	"sports-data-service/internal/domain"
	"sports-data-service/internal/store"
)

// NewStoreWithDataset builds an in-memory store preloaded with ds.
func NewStoreWithDataset(ds domain.Dataset) *store.MemoryStore {
	ms := store.NewMemoryStore()
	ms.Replace(ds)
	return ms
}
