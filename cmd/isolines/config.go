// seehuhn.de/go/isoline - contour lines for sampled scalar fields
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/isoline"
)

// config holds the settings of one isolines run.  Values are read from an
// optional TOML file and then overridden by command line flags.
type config struct {
	Input          string   `toml:"input"`          // JSON grid file
	Case           string   `toml:"case"`           // built-in test case, "category_name"
	Isovalue       *float64 `toml:"isovalue"`       // nil: taken from the test case
	Mode           string   `toml:"mode"`           // "interpolation" or "midpoint"
	Disambiguation string   `toml:"disambiguation"` // "fixed" or "center"
	ColumnGap      float64  `toml:"column_gap"`
	RowGap         float64  `toml:"row_gap"`
	Output         string   `toml:"output"` // .json, .pdf or .png; empty for JSON on stdout
	LineWidth      float64  `toml:"line_width"`
	Scale          float64  `toml:"scale"`
	ShowGrid       bool     `toml:"show_grid"`
}

func defaultConfig() config {
	return config{
		Mode:           isoline.Interpolation.String(),
		Disambiguation: isoline.FixedPairing.String(),
		LineWidth:      2,
		Scale:          1,
	}
}

// loadConfig reads a TOML file into cfg.  Keys missing from the file
// leave the corresponding fields unchanged; unknown keys are an error.
func loadConfig(fileName string, cfg *config) (err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%s: %s", fileName, strict.String())
		}
		return fmt.Errorf("%s: %w", fileName, err)
	}
	return nil
}

// validate checks the settings and converts the enumerated values.
func (cfg *config) validate() (isoline.Mode, isoline.Disambiguation, error) {
	if (cfg.Input == "") == (cfg.Case == "") {
		return 0, 0, errors.New("exactly one of input and case must be given")
	}
	if cfg.Input != "" && cfg.Isovalue == nil {
		return 0, 0, errors.New("isovalue: required when reading a grid file")
	}
	mode, err := isoline.ParseMode(cfg.Mode)
	if err != nil {
		return 0, 0, fmt.Errorf("mode: %w", err)
	}
	d, err := isoline.ParseDisambiguation(cfg.Disambiguation)
	if err != nil {
		return 0, 0, fmt.Errorf("disambiguation: %w", err)
	}
	if cfg.ColumnGap < 0 || cfg.RowGap < 0 {
		return 0, 0, errors.New("column_gap, row_gap: must not be negative")
	}
	if cfg.Scale <= 0 {
		return 0, 0, errors.New("scale: must be positive")
	}
	if cfg.LineWidth <= 0 {
		return 0, 0, errors.New("line_width: must be positive")
	}
	return mode, d, nil
}
