package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

func TestPreparationStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewPreparationStore()

	record := domain.PreparationRecord{
		ID:         "run-1",
		Ref:        "confluence-url:https://x/display/S/T",
		CacheToken: "123",
		OutputDir:  "/tmp/out",
		SiteName:   "T",
		PreparedAt: time.Now(),
	}
	require.NoError(t, store.Save(ctx, record))

	got, err := store.Get(ctx, record.Ref)
	require.NoError(t, err)
	assert.Equal(t, record, *got)
}

func TestPreparationStore_Get_NotFound(t *testing.T) {
	_, err := NewPreparationStore().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPreparationStore_Save_ReplacesByRef(t *testing.T) {
	ctx := context.Background()
	store := NewPreparationStore()

	require.NoError(t, store.Save(ctx, domain.PreparationRecord{ID: "a", Ref: "ref", CacheToken: "1"}))
	require.NoError(t, store.Save(ctx, domain.PreparationRecord{ID: "b", Ref: "ref", CacheToken: "2"}))

	got, err := store.Get(ctx, "ref")
	require.NoError(t, err)
	assert.Equal(t, "b", got.ID)
	assert.Equal(t, "2", got.CacheToken)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPreparationStore_List_MostRecentFirst(t *testing.T) {
	ctx := context.Background()
	store := NewPreparationStore()
	now := time.Now()

	require.NoError(t, store.Save(ctx, domain.PreparationRecord{Ref: "old", PreparedAt: now.Add(-time.Hour)}))
	require.NoError(t, store.Save(ctx, domain.PreparationRecord{Ref: "new", PreparedAt: now}))
	require.NoError(t, store.Save(ctx, domain.PreparationRecord{Ref: "mid", PreparedAt: now.Add(-time.Minute)}))

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "new", records[0].Ref)
	assert.Equal(t, "mid", records[1].Ref)
	assert.Equal(t, "old", records[2].Ref)
}

func TestPreparationStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewPreparationStore()

	require.NoError(t, store.Save(ctx, domain.PreparationRecord{Ref: "ref"}))
	require.NoError(t, store.Delete(ctx, "ref"))
	require.NoError(t, store.Delete(ctx, "never-saved"))

	_, err := store.Get(ctx, "ref")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
