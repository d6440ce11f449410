// Copyright 2025, Shiki0138
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
)

// Environment variables controlling which config files are loaded.
//
// VCS_CONFIG_PREFIX points at the directory holding the TOML files; when
// unset the current working directory is used. VCS_RUNTIME names the runtime
// overlay (e.g. "local", "prod") so that `.env.toml` provides shared values
// and `.env.<runtime>.toml` overrides them per environment.
const (
	ConfigFileBaseName  = ".env"
	ConfigFileExtension = ".toml"
	ConfigSeparator     = "."
	EnvConfigFilePrefix = "VCS_CONFIG_PREFIX"
	EnvConfigRuntime    = "VCS_RUNTIME"
	DefaultRuntime      = "test"
)

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

// Load populates the given Config from the TOML config files. The base file
// (.env.toml) is decoded first, then the runtime overlay
// (.env.<runtime>.toml) on top of it, so overlay values win. Missing files
// are skipped silently; a file that exists but fails to decode is an error.
//
// Inputs:
//   - cfg: the Config to populate, typically from NewConfig()
//
// Outputs:
//   - error: non-nil if any present config file fails to decode
func Load(cfg *Config) error {
	prefix := os.Getenv(EnvConfigFilePrefix)
	runtime := os.Getenv(EnvConfigRuntime)
	if runtime == "" {
		runtime = DefaultRuntime
	}

	base := ConfigFileBaseName + ConfigFileExtension
	overlay := ConfigFileBaseName + ConfigSeparator + runtime + ConfigFileExtension
	if prefix != "" {
		base = prefix + string(os.PathSeparator) + base
		overlay = prefix + string(os.PathSeparator) + overlay
	}

	for _, path := range []string{base, overlay} {
		if !fileExists(path) {
			slog.Debug("config file not present, skipping", "path", path)
			continue
		}
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("failed to decode config file %q: %w", path, err)
		}
		slog.Info("loaded config file", "path", path)
	}
	return nil
}
