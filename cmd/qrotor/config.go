/*
 * config.go, part of goAton.
 *
 * Copyright 2024 The goAton authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rmera/goaton/qrotor"
)

// systemConfig holds the keys of a system in the TOML file. Unset keys are nil, so
// they don't override the defaults.
type systemConfig struct {
	Comment                *string   `toml:"comment"`
	Group                  *string   `toml:"group"`
	B                      *float64  `toml:"B"`
	GridSize               *int      `toml:"gridsize"`
	Levels                 *int      `toml:"levels"`
	PotentialName          *string   `toml:"potential_name"`
	PotentialConstants     []float64 `toml:"potential_constants"`
	PotentialFile          *string   `toml:"potential_file"`
	PotentialUnit          *string   `toml:"potential_unit"`
	PotentialValues        []float64 `toml:"potential_values"`
	CorrectPotentialOffset *bool     `toml:"correct_potential_offset"`
	SaveEigenvectors       *bool     `toml:"save_eigenvectors"`
}

// qrotor config.toml key mapping. The [defaults] table applies to every [[systems]] entry,
// which can override any of its keys.
type fileConfig struct {
	Comment   string         `toml:"comment"`
	Output    string         `toml:"output"`
	Method    string         `toml:"method"`
	Tolerance float64        `toml:"tolerance"`
	MaxIter   int            `toml:"max_iter"`
	CPUs      int            `toml:"cpus"`
	Defaults  systemConfig   `toml:"defaults"`
	Systems   []systemConfig `toml:"systems"`
}

type config struct {
	Experiment *qrotor.Experiment
	Options    *qrotor.Options
	Output     string
}

// apply sets on S the keys defined in c. Setting the group also sets B, unless B is given.
func (c *systemConfig) apply(S *qrotor.System, dir string) error {
	if c.Group != nil {
		S.Group = strings.TrimSpace(*c.Group)
		b, err := qrotor.GroupB(S.Group)
		if err != nil {
			return err
		}
		S.B = b
		if S.Comment == "" {
			S.Comment = S.Group
		}
	}
	if c.Comment != nil {
		S.Comment = *c.Comment
	}
	if c.B != nil {
		S.B = *c.B
	}
	if c.GridSize != nil {
		S.GridSize = *c.GridSize
	}
	if c.Levels != nil {
		S.Levels = *c.Levels
	}
	if c.PotentialName != nil {
		S.PotentialName = strings.TrimSpace(*c.PotentialName)
	}
	if c.PotentialConstants != nil {
		S.PotentialConstants = append([]float64(nil), c.PotentialConstants...)
	}
	if c.PotentialFile != nil {
		S.PotentialFile = strings.TrimSpace(*c.PotentialFile)
		if S.PotentialFile != "" && !filepath.IsAbs(S.PotentialFile) {
			S.PotentialFile = filepath.Join(dir, S.PotentialFile)
		}
	}
	if c.PotentialUnit != nil {
		S.PotentialUnit = strings.TrimSpace(*c.PotentialUnit)
	}
	if c.PotentialValues != nil {
		S.PotentialValues = append([]float64(nil), c.PotentialValues...)
	}
	if c.CorrectPotentialOffset != nil {
		S.CorrectPotentialOffset = *c.CorrectPotentialOffset
	}
	if c.SaveEigenvectors != nil {
		S.SaveEigenvectors = *c.SaveEigenvectors
	}
	return nil
}

// parseMethod returns the diagonalization method named by s, which may be empty for qrotor.Auto.
func parseMethod(s string) (string, error) {
	m := strings.ToLower(strings.TrimSpace(s))
	switch m {
	case qrotor.Auto, "auto":
		return qrotor.Auto, nil
	case qrotor.Dense, qrotor.Subspace:
		return m, nil
	}
	return "", fmt.Errorf("unknown method %q", s)
}

// loadConfig reads an experiment from a TOML file, overlaying the keys defined there on
// qrotor.NewSystem and qrotor.DefaultOptions. Relative paths are taken from the file's folder.
func loadConfig(path string) (config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load qrotor config: %w", err)
	}
	if und := meta.Undecoded(); len(und) > 0 {
		return config{}, fmt.Errorf("load qrotor config: unknown key %q", und[0].String())
	}
	dir := filepath.Dir(path)
	opts := qrotor.DefaultOptions()
	if meta.IsDefined("method") {
		if opts.Method, err = parseMethod(raw.Method); err != nil {
			return config{}, fmt.Errorf("load qrotor config: %w", err)
		}
	}
	if meta.IsDefined("tolerance") {
		if raw.Tolerance <= 0 {
			return config{}, fmt.Errorf("load qrotor config: tolerance must be positive, not %g", raw.Tolerance)
		}
		opts.Tolerance = raw.Tolerance
	}
	if meta.IsDefined("max_iter") {
		if raw.MaxIter <= 0 {
			return config{}, fmt.Errorf("load qrotor config: max_iter must be positive, not %d", raw.MaxIter)
		}
		opts.MaxIter = raw.MaxIter
	}
	if meta.IsDefined("cpus") {
		opts.CPUs = raw.CPUs
	}
	out := strings.TrimSuffix(path, filepath.Ext(path))
	if meta.IsDefined("output") {
		out = strings.TrimSpace(raw.Output)
		if out != "" && !filepath.IsAbs(out) {
			out = filepath.Join(dir, out)
		}
	}
	exp := &qrotor.Experiment{Comment: raw.Comment}
	systems := raw.Systems
	if len(systems) == 0 {
		systems = []systemConfig{{}}
	}
	for i, sc := range systems {
		S, err := qrotor.NewSystem("")
		if err != nil {
			return config{}, err
		}
		if err := raw.Defaults.apply(S, dir); err != nil {
			return config{}, fmt.Errorf("load qrotor config: defaults: %w", err)
		}
		if err := sc.apply(S, dir); err != nil {
			return config{}, fmt.Errorf("load qrotor config: system %d: %w", i+1, err)
		}
		if err := S.Validate(); err != nil {
			return config{}, fmt.Errorf("load qrotor config: system %d: %w", i+1, err)
		}
		exp.Systems = append(exp.Systems, S)
	}
	return config{Experiment: exp, Options: opts, Output: out}, nil
}
