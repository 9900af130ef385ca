package service

import (
	"context"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/store"
	"github.com/aussiebroadwan/bloggr/pkg/slogx"
)

type TestingService struct {
	Store store.Store
}

// DeleteAll wipes every table.
func (s *TestingService) DeleteAll(ctx context.Context) error {
	if err := s.Store.DeleteAll(ctx); err != nil {
		return err
	}
	slogx.FromContext(ctx).Warn("all data deleted")
	return nil
}
