/*
Copyright © 2021 Joseph Lewis <joseph@josephlewis.net>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"

	OverlongReject   = "reject"
	OverlongTruncate = "truncate"

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// ErrNoEventLog is returned when opening the event log of a configuration
// that doesn't keep one.
var ErrNoEventLog = errors.New("no event log configured")

type Configuration struct {
	configFs afero.Fs
	// configDir is the on-disk directory backing configFs, empty if the
	// configuration only lives in memory.
	configDir string

	Prompt        string `json:"prompt" validate:"required"`
	SearchPathEnv string `json:"search_path_env" validate:"required"`
	MaxLineLength int    `json:"max_line_length" validate:"gte=1"`
	OverlongLines string `json:"overlong_lines" validate:"oneof=reject truncate"`
	MaxCommands   int    `json:"max_commands" validate:"gte=0"`
	Color         string `json:"color" validate:"oneof=always auto never"`
	HistoryFile   string `json:"history_file"`
	EventLog      string `json:"event_log"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		c.configFs = afero.NewMemMapFs()
	}
	return c.configFs
}

// Dir returns the directory the configuration was loaded from, or the empty
// string if it wasn't loaded from disk.
func (c *Configuration) Dir() string {
	return c.configDir
}

// HistoryPath returns the OS path of the interactive history file, or the
// empty string if history shouldn't be persisted.
func (c *Configuration) HistoryPath() string {
	if c.HistoryFile == "" || c.configDir == "" {
		return ""
	}
	if filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	return filepath.Join(c.configDir, c.HistoryFile)
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	if c.EventLog == "" {
		return nil, ErrNoEventLog
	}
	return c.fs().OpenFile(c.EventLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	if c.EventLog == "" {
		return nil, ErrNoEventLog
	}
	return c.fs().OpenFile(c.EventLog, os.O_RDONLY, 0600)
}

// ShouldColor reports whether output should be colorized given whether the
// output is a terminal.
func (c *Configuration) ShouldColor(isTerminal bool) bool {
	switch c.Color {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isTerminal
	}
}

// Default returns the built-in configuration. It isn't backed by a
// directory, so there's nowhere to keep history or events and both are off.
func Default() *Configuration {
	out := defaultConfig()
	out.HistoryFile = ""
	out.EventLog = ""
	return out
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
