// Copyright (c) 2024 The Falcon Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Package config loads the optional TOML configuration file that tunes
// debug dumps, color output, and codegen constants.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full set of tunables. Every field has a sensible default
// from DefaultConfig, so an absent or partial file is always valid.
type Config struct {
	Debug struct {
		DumpTokens   bool `toml:"dump_tokens"`
		DumpAST      bool `toml:"dump_ast"`
		DumpIRBefore bool `toml:"dump_ir_before"`
		DumpIRAfter  bool `toml:"dump_ir_after"`
	} `toml:"debug"`

	Display struct {
		Color bool `toml:"color"`
	} `toml:"display"`

	Codegen struct {
		WordSize           int  `toml:"word_size"`
		WarnOnCommonLocals bool `toml:"warn_on_common_locals"`
	} `toml:"codegen"`
}

// DefaultConfig returns a Config with every tunable at its documented
// default.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Display.Color = true
	cfg.Codegen.WordSize = 8
	cfg.Codegen.WarnOnCommonLocals = true
	return cfg
}

// Load reads and decodes a TOML file at path over the defaults. A missing
// file is not an error: it simply yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}
	return cfg, nil
}

// EnableDebugDumps turns every Debug.* flag on, the effect of the CLI's
// -z flag.
func (c *Config) EnableDebugDumps() {
	c.Debug.DumpTokens = true
	c.Debug.DumpAST = true
	c.Debug.DumpIRBefore = true
	c.Debug.DumpIRAfter = true
}
