package mocks

import (
	"context"

	"entra-sync/core/directory"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of directory.Client
type Client struct {
	mock.Mock
}

func (m *Client) FindByPrincipalName(ctx context.Context, principalName string, selectFields []string) (*directory.Account, error) {
	args := m.Called(ctx, principalName, selectFields)
	if account, ok := args.Get(0).(*directory.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Create(ctx context.Context, payload directory.Payload) (*directory.Account, error) {
	args := m.Called(ctx, payload)
	if account, ok := args.Get(0).(*directory.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Update(ctx context.Context, accountID string, payload directory.Payload) error {
	args := m.Called(ctx, accountID, payload)
	return args.Error(0)
}

func (m *Client) Delete(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *Client) ListAll(ctx context.Context, selectFields []string, fn func(directory.Account) bool) error {
	args := m.Called(ctx, selectFields, fn)
	return args.Error(0)
}
