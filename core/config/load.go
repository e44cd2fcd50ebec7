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
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	out, err := loadFs(afero.NewBasePathFs(afero.NewOsFs(), path))
	if err != nil {
		return nil, err
	}
	out.configDir = path
	return out, nil
}

// LoadOrDefault loads the configuration from the directory, falling back to
// the built-in configuration if the directory hasn't been initialized.
func LoadOrDefault(path string, logger *log.Logger) (*Configuration, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Printf("No %s in %q, using defaults without history or an event log. Run init to create one.", ConfigurationName, path)
		return Default(), nil
	}
	return cfg, err
}

func loadFs(configFs afero.Fs) (*Configuration, error) {
	configContents, err := afero.ReadFile(configFs, ConfigurationName)
	if err != nil {
		return nil, err
	}
	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, fmt.Errorf("couldn't parse %s: %w", ConfigurationName, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigurationName, err)
	}
	out.configFs = configFs
	return &out, nil
}

// Initialize writes the default configuration into dir and loads it.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	configFs := afero.NewBasePathFs(afero.NewOsFs(), dir)

	exists, err := afero.Exists(configFs, ConfigurationName)
	switch {
	case err != nil:
		return nil, err
	case exists:
		return nil, fmt.Errorf("%s already exists in %q", ConfigurationName, dir)
	}

	logger.Printf("Writing %s to %q\n", ConfigurationName, dir)
	if err := configFs.MkdirAll("/", 0700); err != nil {
		return nil, err
	}
	if err := afero.WriteFile(configFs, ConfigurationName, defaultConfigData, 0600); err != nil {
		return nil, err
	}

	return Load(dir)
}
