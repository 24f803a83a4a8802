package mocks

import (
	"context"

	"entra-sync/core/source"

	"github.com/stretchr/testify/mock"
)

// Repository is a mock implementation of source.Repository
type Repository struct {
	mock.Mock
}

func (m *Repository) Records(ctx context.Context) ([]source.Record, error) {
	args := m.Called(ctx)
	if records, ok := args.Get(0).([]source.Record); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Repository) UIDSet(ctx context.Context) (map[string]struct{}, error) {
	args := m.Called(ctx)
	if uids, ok := args.Get(0).(map[string]struct{}); ok {
		return uids, args.Error(1)
	}
	return nil, args.Error(1)
}
