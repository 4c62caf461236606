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

package isoline

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	g := mustGrid(t, [][]float64{{1, 0}, {0, 1}})
	if _, err := Extract(g, 0.5, Midpoint, UnitResolution); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"contour extracted", "segments=2", "saddles=1", "mode=midpoint"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() returned nil after SetLogger(nil)")
	}
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
