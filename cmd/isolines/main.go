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

// Command isolines extracts the contour lines of a scalar grid and writes
// them as JSON, as a PDF page, or as a PNG image.
//
// The grid is either read from a JSON file of the form
// {"rows": [[v00, v01, ...], [v10, v11, ...], ...]} or taken from the
// built-in test cases.  Settings can be given in a TOML file (-config);
// command line flags override values from the file.
//
// Usage:
//
//	isolines -case field_circle -o circle.pdf
//	isolines -in grid.json -iso 0.4 -mode midpoint -o out.png
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"seehuhn.de/go/isoline"
	"seehuhn.de/go/isoline/preview"
	"seehuhn.de/go/isoline/testcases"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "isolines:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("isolines", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "TOML settings `file`")
	verbose := fs.Bool("v", false, "log extraction statistics")
	listCases := fs.Bool("list", false, "list the built-in test cases and exit")
	fs.StringVar(&cfg.Input, "in", cfg.Input, "JSON grid `file`")
	fs.StringVar(&cfg.Case, "case", cfg.Case, "built-in test case `name`")
	fs.Func("iso", "isovalue", func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		cfg.Isovalue = &v
		return nil
	})
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "endpoint placement: interpolation or midpoint")
	fs.StringVar(&cfg.Disambiguation, "saddle", cfg.Disambiguation, "saddle pairing: fixed or center")
	fs.Float64Var(&cfg.ColumnGap, "dx", cfg.ColumnGap, "horizontal sample spacing")
	fs.Float64Var(&cfg.RowGap, "dy", cfg.RowGap, "vertical sample spacing")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "output `file` (.json, .pdf or .png)")
	fs.Float64Var(&cfg.LineWidth, "width", cfg.LineWidth, "line width in device units")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "device units per output unit")
	fs.BoolVar(&cfg.ShowGrid, "grid", cfg.ShowGrid, "draw the cell grid behind the contour")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configFile != "" {
		if err := loadConfig(*configFile, &cfg); err != nil {
			return err
		}
		// parse again, so that flags override the file
		if err := fs.Parse(args); err != nil {
			return err
		}
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	isoline.SetLogger(logger)
	defer isoline.SetLogger(nil)

	if *listCases {
		for _, name := range slices.Sorted(maps.Keys(caseIndex())) {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	mode, d, err := cfg.validate()
	if err != nil {
		return err
	}

	g, isovalue, res, err := loadGrid(&cfg)
	if err != nil {
		return err
	}

	e := isoline.NewExtractor(res)
	e.Mode = mode
	e.Disambiguation = d
	segs, err := e.Extract(g, isovalue)
	if err != nil {
		return err
	}
	logger.Info("contour extracted",
		slog.Int("segments", len(segs)),
		slog.Float64("isovalue", isovalue))

	return writeOutput(&cfg, stdout, g, res, isovalue, mode, segs)
}

// caseIndex returns the built-in test cases, keyed by "category_name".
func caseIndex() map[string]testcases.TestCase {
	idx := make(map[string]testcases.TestCase)
	for category, cases := range testcases.All {
		for _, tc := range cases {
			idx[category+"_"+tc.Name] = tc
		}
	}
	return idx
}

// loadGrid reads the grid named by cfg.  Isovalue and sample spacing from
// cfg take precedence over the values stored in a test case.
func loadGrid(cfg *config) (*isoline.Grid, float64, isoline.Resolution, error) {
	var rows [][]float64
	var isovalue float64
	res := isoline.UnitResolution

	if cfg.Case != "" {
		tc, ok := caseIndex()[cfg.Case]
		if !ok {
			return nil, 0, res, fmt.Errorf("case: unknown test case %q", cfg.Case)
		}
		rows = tc.Rows
		isovalue = tc.Isovalue
		res.ColumnGap, res.RowGap = tc.Gaps()
	} else {
		var err error
		rows, err = readGridFile(cfg.Input)
		if err != nil {
			return nil, 0, res, err
		}
	}

	if cfg.Isovalue != nil {
		isovalue = *cfg.Isovalue
	}
	if cfg.ColumnGap > 0 {
		res.ColumnGap = cfg.ColumnGap
	}
	if cfg.RowGap > 0 {
		res.RowGap = cfg.RowGap
	}

	g, err := isoline.GridFromRows(rows)
	if err != nil {
		return nil, 0, res, err
	}
	return g, isovalue, res, nil
}

// gridFile is the JSON representation of a grid.
type gridFile struct {
	Rows [][]float64 `json:"rows"`
}

func readGridFile(fileName string) ([][]float64, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	var gf gridFile
	if err := json.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return gf.Rows, nil
}

// segmentFile is the JSON representation of the extracted contour.
type segmentFile struct {
	Isovalue float64      `json:"isovalue"`
	Mode     string       `json:"mode"`
	Segments [][4]float64 `json:"segments"` // x0, y0, x1, y1
}

func writeOutput(cfg *config, stdout io.Writer, g *isoline.Grid, res isoline.Resolution, isovalue float64, mode isoline.Mode, segs []isoline.Segment) error {
	opt := &preview.Options{
		Scale:     cfg.Scale,
		LineWidth: cfg.LineWidth,
		Margin:    cfg.LineWidth + 4,
	}
	if cfg.ShowGrid {
		opt.Grid = res
	}
	bounds := res.Bounds(g)

	switch ext := strings.ToLower(filepath.Ext(cfg.Output)); {
	case cfg.Output == "" || cfg.Output == "-":
		return writeJSON(stdout, isovalue, mode, segs)
	case ext == ".json":
		return writeFile(cfg.Output, func(w io.Writer) error {
			return writeJSON(w, isovalue, mode, segs)
		})
	case ext == ".pdf":
		return preview.WritePDF(cfg.Output, bounds, segs, opt)
	case ext == ".png":
		img := preview.Rasterize(bounds, segs, opt)
		return writeFile(cfg.Output, func(w io.Writer) error {
			return png.Encode(w, img)
		})
	default:
		return fmt.Errorf("output: unsupported file type %q", ext)
	}
}

func writeJSON(w io.Writer, isovalue float64, mode isoline.Mode, segs []isoline.Segment) error {
	out := segmentFile{
		Isovalue: isovalue,
		Mode:     mode.String(),
		Segments: make([][4]float64, len(segs)),
	}
	for i, s := range segs {
		out.Segments[i] = [4]float64{s.P0.X, s.P0.Y, s.P1.X, s.P1.Y}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeFile(fileName string, write func(io.Writer) error) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
