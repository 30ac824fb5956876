package mocks

import (
	"context"

	"translation-sheet/core/sheets"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of sheets.Client
type Client struct {
	mock.Mock
}

func (m *Client) GetValues(ctx context.Context, rng string) ([][]string, error) {
	args := m.Called(ctx, rng)
	if rows, ok := args.Get(0).([][]string); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) UpdateValues(ctx context.Context, rng string, values [][]string) error {
	args := m.Called(ctx, rng, values)
	return args.Error(0)
}

func (m *Client) ClearValues(ctx context.Context, rng string) error {
	args := m.Called(ctx, rng)
	return args.Error(0)
}

func (m *Client) ListSheets(ctx context.Context) ([]sheets.Sheet, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]sheets.Sheet); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) DuplicateSheet(ctx context.Context, sourceID int64, title string) error {
	args := m.Called(ctx, sourceID, title)
	return args.Error(0)
}

func (m *Client) DeleteSheet(ctx context.Context, sheetID int64) error {
	args := m.Called(ctx, sheetID)
	return args.Error(0)
}
