// Copyright 2026 The PKHeX Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package config loads the storage layout used by the boxdump tool.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kang1806/PKHeX/boxstore"
	"github.com/kang1806/PKHeX/list"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

// Config is the boxdump configuration file.
type Config struct {
	Layout  Layout  `yaml:"layout"`
	List    List    `yaml:"list"`
	Logging Logging `yaml:"logging"`
}

// Layout describes a flat box storage file.
type Layout struct {
	Generation  int  `yaml:"generation"`
	Japanese    bool `yaml:"japanese"`
	Start       int  `yaml:"start"`
	SlotsPerBox int  `yaml:"slots_per_box"`
}

// List describes where a serialized list sits inside a file.
type List struct {
	Offset   int `yaml:"offset"`
	Capacity int `yaml:"capacity"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Layout: Layout{
			Generation:  2,
			SlotsPerBox: boxstore.DefaultSlotsPerBox,
		},
		List: List{
			Capacity: int(list.Party),
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values a storage or list cannot be built from.
func (c *Config) Validate() error {
	if c.Layout.Generation != 1 && c.Layout.Generation != 2 {
		return fmt.Errorf("generation %d: %w", c.Layout.Generation, ErrInvalidConfig)
	}
	if c.Layout.Start < 0 {
		return fmt.Errorf("start %d: %w", c.Layout.Start, ErrInvalidConfig)
	}
	if c.Layout.SlotsPerBox <= 0 {
		return fmt.Errorf("slots_per_box %d: %w", c.Layout.SlotsPerBox, ErrInvalidConfig)
	}
	if c.List.Offset < 0 {
		return fmt.Errorf("list offset %d: %w", c.List.Offset, ErrInvalidConfig)
	}
	if _, err := c.List.ListCapacity(); err != nil {
		return err
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// ListCapacity maps the configured capacity onto one of the list sizes.
func (l List) ListCapacity() (list.Capacity, error) {
	switch c := list.Capacity(l.Capacity); c {
	case list.Single, list.Party, list.Stored, list.StoredJP:
		if int(c) == l.Capacity {
			return c, nil
		}
	}
	return 0, fmt.Errorf("list capacity %d: %w", l.Capacity, ErrInvalidConfig)
}

// SlogLevel parses the configured level name.
func (l Logging) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", l.Level, ErrInvalidConfig)
	}
	return level, nil
}
