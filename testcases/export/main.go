// Command export writes the test cases, together with their contour
// segments in both placement modes, to JSON.
// Run from the go-isoline module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/isoline"
	"seehuhn.de/go/isoline/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name          string       `json:"name"`
	Rows          [][]float64  `json:"rows"`
	Isovalue      float64      `json:"isovalue"`
	ColumnGap     float64      `json:"column_gap"`
	RowGap        float64      `json:"row_gap"`
	Midpoint      [][4]float64 `json:"midpoint"`
	Interpolation [][4]float64 `json:"interpolation"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	dx, dy := tc.Gaps()
	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Rows:      tc.Rows,
		Isovalue:  tc.Isovalue,
		ColumnGap: dx,
		RowGap:    dy,
	}

	g, err := isoline.GridFromRows(tc.Rows)
	if err != nil {
		return jtc, err
	}
	e := isoline.NewExtractor(isoline.Resolution{ColumnGap: dx, RowGap: dy})
	for _, mode := range []isoline.Mode{isoline.Midpoint, isoline.Interpolation} {
		e.Mode = mode
		segs, err := e.Extract(g, tc.Isovalue)
		if err != nil {
			return jtc, err
		}
		pts := segmentsToJSON(segs)
		if mode == isoline.Midpoint {
			jtc.Midpoint = pts
		} else {
			jtc.Interpolation = pts
		}
	}
	return jtc, nil
}

func segmentsToJSON(segs []isoline.Segment) [][4]float64 {
	res := make([][4]float64, len(segs))
	for i, s := range segs {
		res[i] = [4]float64{s.P0.X, s.P0.Y, s.P1.X, s.P1.Y}
	}
	return res
}
