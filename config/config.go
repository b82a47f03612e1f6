// SPDX-License-Identifier: EPL-2.0

// Package config holds the settings programs need to wire the backends:
// where the runtime-loaded libraries live and how verbose logging is.
//
// A YAML file looks like:
//
//	libraries:
//	  sndfile: /opt/homebrew/lib/libsndfile.1.dylib
//	  wavpack: libwavpack.so.1
//	log_level: debug
//
// AUDSRC_SNDFILE, AUDSRC_WAVPACK and AUDSRC_LOG_LEVEL override the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/goccy/go-yaml"
	"github.com/sirupsen/logrus"
)

const (
	EnvSndfile  = "AUDSRC_SNDFILE"
	EnvWavpack  = "AUDSRC_WAVPACK"
	EnvLogLevel = "AUDSRC_LOG_LEVEL"
)

// Libraries names the shared libraries to load, as paths or as names for
// the dynamic loader to search.
type Libraries struct {
	Sndfile string `yaml:"sndfile"`
	Wavpack string `yaml:"wavpack"`
}

type Config struct {
	Libraries Libraries `yaml:"libraries"`
	LogLevel  string    `yaml:"log_level"`
}

// Default returns the platform's usual library names and "info" logging.
func Default() *Config {
	c := &Config{
		Libraries: Libraries{
			Sndfile: "libsndfile.so.1",
			Wavpack: "libwavpack.so.1",
		},
		LogLevel: logrus.InfoLevel.String(),
	}

	if runtime.GOOS == "darwin" {
		c.Libraries.Sndfile = "libsndfile.1.dylib"
		c.Libraries.Wavpack = "libwavpack.1.dylib"
	}

	return c
}

// Load reads the YAML file at path over the defaults, then applies the
// environment. An empty path skips the file.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %q not found: %w", path, err)
			}
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	c.applyEnv()

	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvSndfile); v != "" {
		c.Libraries.Sndfile = v
	}
	if v := os.Getenv(EnvWavpack); v != "" {
		c.Libraries.Wavpack = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Apply sets the level of the standard logrus logger.
func (c *Config) Apply() error {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	logrus.SetLevel(lvl)

	return nil
}
