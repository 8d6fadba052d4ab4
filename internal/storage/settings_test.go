package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const themeKey = "theme"

func TestSettingsManager_GetMissing(t *testing.T) {
	sm := NewSettingsManager(NewTestDB(t))

	value, ok, err := sm.Get(context.Background(), themeKey)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSettingsManager_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	sm := NewSettingsManager(NewTestDB(t))

	require.NoError(t, sm.Set(ctx, themeKey, "--ion-color-base: #fff;"))
	require.NoError(t, sm.Set(ctx, themeKey, "--ion-color-base: #000;"))

	value, ok, err := sm.Get(ctx, themeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "--ion-color-base: #000;", value)

	var rows int
	require.NoError(t, sm.db.conn.QueryRow("SELECT COUNT(*) FROM settings").Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestSettingsManager_Delete(t *testing.T) {
	ctx := context.Background()
	sm := NewSettingsManager(NewTestDB(t))

	require.NoError(t, sm.Set(ctx, "other", "1"))
	require.NoError(t, sm.Delete(ctx, "other"))
	require.NoError(t, sm.Delete(ctx, "never-set"))

	_, ok, err := sm.Get(ctx, "other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSettingsManager_CanceledContext(t *testing.T) {
	sm := NewSettingsManager(NewTestDB(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, sm.Set(ctx, themeKey, "x"))
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "irodori.db")

	st, err := NewStorage(path)
	require.NoError(t, err)
	require.NoError(t, st.Settings.Set(ctx, themeKey, "--ion-text-color: #222428;"))
	require.NoError(t, st.Close())

	st, err = NewStorage(path)
	require.NoError(t, err)
	defer st.Close()

	value, ok, err := st.Settings.Get(ctx, themeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "--ion-text-color: #222428;", value)
	assert.NotNil(t, st.GetDB())
}
