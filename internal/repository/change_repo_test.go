package repository

import (
	"testing"
	"time"

	"go-pos-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeRepoFindAllNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewChangeRepo(db)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	entries := []model.InventoryChange{
		{ID: "c1", Action: "add", ItemID: "A", ItemName: "Apple", CreatedAt: base},
		{ID: "c2", Action: "update", ItemID: "A", ItemName: "Apple", CreatedAt: base.Add(time.Minute)},
		{ID: "c3", Action: "delete", ItemID: "B", ItemName: "Bread", CreatedAt: base.Add(2 * time.Minute)},
	}
	for i := range entries {
		require.NoError(t, repo.Create(testCtx(), &entries[i]))
	}

	changes, err := repo.FindAll(testCtx())
	require.NoError(t, err)
	require.Len(t, changes, 3)
	assert.Equal(t, "c3", changes[0].ID)
	assert.Equal(t, "c2", changes[1].ID)
	assert.Equal(t, "c1", changes[2].ID)
}

func TestChangeRepoDuplicateID(t *testing.T) {
	db := newTestDB(t)
	repo := NewChangeRepo(db)

	entry := model.InventoryChange{ID: "c1", Action: "add", ItemID: "A", ItemName: "Apple"}
	require.NoError(t, repo.Create(testCtx(), &entry))

	dup := model.InventoryChange{ID: "c1", Action: "add", ItemID: "A", ItemName: "Apple"}
	err := repo.Create(testCtx(), &dup)
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))
}
