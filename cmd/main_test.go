package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtitletools/srt-translator/internal/store"
)

func TestRun_SetKeyPersistsAndReturns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "settings.db")
	t.Setenv("SETTINGS_DB", dbPath)

	// run must return (not exit) so deferred resource closes fire.
	err := run(options{setKey: "fresh-key"})
	require.NoError(t, err)

	settings, err := store.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer settings.Close()

	value, ok, err := settings.Get(store.KeyAPIKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "fresh-key", value)
}

func TestRun_MissingPathsIsError(t *testing.T) {
	t.Setenv("SETTINGS_DB", filepath.Join(t.TempDir(), "settings.db"))

	err := run(options{})
	assert.Error(t, err)
}
