package config

import (
	"io"
	"io/ioutil"
	"log"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tempDir := t.TempDir()
	if _, err := Initialize(tempDir, log.New(ioutil.Discard, "", 0)); err != nil {
		t.Fatal(err)
	}

	// Check that the config is valid
	cfg, err := Load(tempDir)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Dir", func(t *testing.T) {
		assert.Equal(t, tempDir, cfg.Dir())
	})

	t.Run("HistoryPath", func(t *testing.T) {
		assert.Equal(t, filepath.Join(tempDir, "history"), cfg.HistoryPath())
	})

	t.Run("EventLog", func(t *testing.T) {
		fd, err := cfg.OpenEventLog()
		require.NoError(t, err)
		_, err = io.WriteString(fd, "{}\n")
		assert.NoError(t, err)
		fd.Close()

		fd, err = cfg.ReadEventLog()
		require.NoError(t, err)
		defer fd.Close()
		contents, err := io.ReadAll(fd)
		assert.NoError(t, err)
		assert.Equal(t, "{}\n", string(contents))
	})

	t.Run("ReinitializeFails", func(t *testing.T) {
		_, err := Initialize(tempDir, log.New(ioutil.Discard, "", 0))
		assert.Error(t, err)
	})

	t.Run("LoadConfigFile", func(t *testing.T) {
		byFile, err := Load(filepath.Join(tempDir, ConfigurationName))
		require.NoError(t, err)
		assert.Equal(t, cfg.Prompt, byFile.Prompt)
	})
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(t.TempDir(), log.New(ioutil.Discard, "", 0))
	require.NoError(t, err)
	assert.Equal(t, Default().Prompt, cfg.Prompt)
	assert.Empty(t, cfg.Dir())
	assert.Empty(t, cfg.EventLog, "defaults have nowhere to keep events")
}
