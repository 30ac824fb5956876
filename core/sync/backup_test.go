package sync

import (
	"context"
	"testing"

	"translation-sheet/core/sheets"
	"translation-sheet/core/sheets/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestPrune_KeepsNewest tests retention ordering: backups are pruned
// oldest-first by the timestamp in their title.
func TestPrune_KeepsNewest(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListSheets", mock.Anything).Return([]sheets.Sheet{
		{ID: 0, Title: "Sheet1"},
		{ID: 1, Title: "Backup 2026-08-28 10:00:00"},
		{ID: 2, Title: "Backup 2026-08-30 10:00:00"},
		{ID: 3, Title: "Backup 2026-08-29 10:00:00"},
	}, nil)
	client.On("DeleteSheet", mock.Anything, int64(1)).Return(nil)

	deleted, err := Prune(context.Background(), client, 2, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	client.AssertExpectations(t)
}

// TestPrune_IgnoresForeignTitles tests that sheets whose title does not
// parse as a backup are never pruning candidates.
func TestPrune_IgnoresForeignTitles(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListSheets", mock.Anything).Return([]sheets.Sheet{
		{ID: 0, Title: "Sheet1"},
		{ID: 1, Title: "Backup notes"},
		{ID: 2, Title: "Backup 2026-08-30 10:00:00"},
	}, nil)

	deleted, err := Prune(context.Background(), client, 1, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
	client.AssertNotCalled(t, "DeleteSheet", mock.Anything, mock.Anything)
}

func TestPrune_KeepZeroDeletesAll(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListSheets", mock.Anything).Return([]sheets.Sheet{
		{ID: 2, Title: "Backup 2026-08-30 10:00:00"},
	}, nil)
	client.On("DeleteSheet", mock.Anything, int64(2)).Return(nil)

	deleted, err := Prune(context.Background(), client, 0, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestTargetSheet(t *testing.T) {
	list := []sheets.Sheet{
		{ID: 0, Title: "Sheet1"},
		{ID: 5, Title: "Translations"},
	}

	s, err := TargetSheet(list, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.ID)

	s, err = TargetSheet(list, "Translations")
	require.NoError(t, err)
	assert.Equal(t, int64(5), s.ID)

	_, err = TargetSheet(list, "Missing")
	assert.Error(t, err)

	_, err = TargetSheet(nil, "")
	assert.Error(t, err)
}

// TestBackup_DuplicatesThenPrunes tests the full rotation: duplicate the
// target sheet under a timestamped title, then prune past the keep count.
func TestBackup_DuplicatesThenPrunes(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListSheets", mock.Anything).Return([]sheets.Sheet{
		{ID: 0, Title: "Sheet1"},
		{ID: 1, Title: "Backup 2026-08-27 10:00:00"},
		{ID: 2, Title: "Backup 2026-08-28 10:00:00"},
	}, nil)
	client.On("DuplicateSheet", mock.Anything, int64(0), mock.Anything).Return(nil)
	client.On("DeleteSheet", mock.Anything, int64(1)).Return(nil)

	cfg := testSheetConfig()
	cfg.BackupKeep = 1

	require.NoError(t, Backup(context.Background(), client, cfg, zap.NewNop()))
	client.AssertExpectations(t)
}
