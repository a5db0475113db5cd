// Package config loads .conflictview.toml and turns it into a paint
// palette. A missing file yields the defaults; bad values fall back
// per-field rather than failing the load.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"conflictview/internal/paint"
)

const FileName = ".conflictview.toml"

type Config struct {
	Colors Colors `toml:"colors"`
	Labels Labels `toml:"labels"`
}

type Colors struct {
	Current  string `toml:"current"`
	Incoming string `toml:"incoming"`
	Ancestor string `toml:"ancestor"`
}

type Labels struct {
	Shade *int `toml:"shade"`
}

func Default() Config {
	return Config{}
}

// Load reads the config file from dir. A missing file is not an error.
func Load(dir string) (Config, error) {
	cfg := Default()

	fileName := filepath.Join(dir, FileName)
	if _, err := os.Stat(fileName); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	file, err := os.ReadFile(fileName)
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(file, &cfg); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// Palette resolves the configured colors against the fixed defaults.
func (c Config) Palette() paint.Palette {
	p := paint.DefaultPalette()
	p.Current = paint.Resolve(c.Colors.Current, paint.DefaultCurrent)
	p.Incoming = paint.Resolve(c.Colors.Incoming, paint.DefaultIncoming)
	p.Ancestor = paint.Resolve(c.Colors.Ancestor, paint.DefaultAncestor)
	if c.Labels.Shade != nil {
		p.LabelShade = *c.Labels.Shade
	}
	return p
}
