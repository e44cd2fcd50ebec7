package config

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "Simple_shell", cfg.Prompt)
	assert.Equal(t, "PATH", cfg.SearchPathEnv)
	assert.Equal(t, OverlongReject, cfg.OverlongLines)

	// Without a directory nothing is persisted.
	assert.Empty(t, cfg.HistoryPath())
	assert.Empty(t, cfg.EventLog)

	_, err := cfg.OpenEventLog()
	assert.True(t, errors.Is(err, ErrNoEventLog))
	_, err = cfg.ReadEventLog()
	assert.True(t, errors.Is(err, ErrNoEventLog))
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*Configuration)
		wantErr string
	}{
		"valid":            {func(*Configuration) {}, ""},
		"no-prompt":        {func(c *Configuration) { c.Prompt = "" }, "prompt"},
		"no-search-path":   {func(c *Configuration) { c.SearchPathEnv = "" }, "search_path_env"},
		"zero-line-length": {func(c *Configuration) { c.MaxLineLength = 0 }, "max_line_length"},
		"bad-overlong":     {func(c *Configuration) { c.OverlongLines = "wrap" }, "overlong_lines"},
		"negative-max":     {func(c *Configuration) { c.MaxCommands = -1 }, "max_commands"},
		"bad-color":        {func(c *Configuration) { c.Color = "sometimes" }, "color"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadFs(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := loadFs(afero.NewMemMapFs())
		assert.Error(t, err)
	})

	t.Run("unknown-field", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, ConfigurationName, []byte("bogus: 1\n"), 0600))

		_, err := loadFs(fs)
		assert.Error(t, err)
	})

	t.Run("invalid", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		contents := strings.Replace(string(defaultConfigData), "overlong_lines: reject", "overlong_lines: wrap", 1)
		require.NoError(t, afero.WriteFile(fs, ConfigurationName, []byte(contents), 0600))

		_, err := loadFs(fs)
		assert.Error(t, err)
	})

	t.Run("override", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		contents := strings.Replace(string(defaultConfigData), "prompt: Simple_shell", "prompt: custom", 1)
		require.NoError(t, afero.WriteFile(fs, ConfigurationName, []byte(contents), 0600))

		cfg, err := loadFs(fs)
		require.NoError(t, err)
		assert.Equal(t, "custom", cfg.Prompt)
	})
}

func TestShouldColor(t *testing.T) {
	cfg := Default()
	for _, tc := range []struct {
		color    string
		terminal bool
		expected bool
	}{
		{ColorAlways, false, true},
		{ColorNever, true, false},
		{ColorAuto, true, true},
		{ColorAuto, false, false},
	} {
		cfg.Color = tc.color
		assert.Equal(t, tc.expected, cfg.ShouldColor(tc.terminal), "color=%s terminal=%v", tc.color, tc.terminal)
	}
}
