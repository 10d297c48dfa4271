// Package pattern runs Tengo scripts that compute a color for every cell of a
// grid. A script sees row, col, rows, cols, picked and background and sets
// color to a hex string, or leaves it empty to keep the cell as it is.
package pattern

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/pixelmap/grid"
	"github.com/milk9111/pixelmap/palette"
)

// modules are the stdlib modules a script may import. Scripts can come from
// disk, so nothing with file, process or network access.
var modules = []string{"fmt", "math", "text"}

// ErrBadColor is returned when a script assigns something that is not a color.
var ErrBadColor = errors.New("script produced an invalid color")

// Pattern is a compiled script.
type Pattern struct {
	Name     string
	compiled *tengo.Compiled
}

// Compile prepares a script for evaluation.
func Compile(name string, src []byte) (*Pattern, error) {
	script := tengo.NewScript(src)
	for _, v := range []struct {
		name  string
		value any
	}{
		{"row", 0},
		{"col", 0},
		{"rows", 0},
		{"cols", 0},
		{"picked", ""},
		{"background", ""},
		{"color", ""},
	} {
		if err := script.Add(v.name, v.value); err != nil {
			return nil, fmt.Errorf("pattern: %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(modules...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("pattern: compile %s: %w", name, err)
	}
	return &Pattern{Name: name, compiled: compiled}, nil
}

// Eval runs the script once per cell of g and returns the resulting colors in
// a form Controller.Apply accepts. Nothing is returned unless every cell
// evaluated cleanly.
func (p *Pattern) Eval(ctx context.Context, g *grid.Grid, picked, background color.RGBA) (func(row, col int) (color.RGBA, bool), error) {
	if p == nil || p.compiled == nil {
		return nil, fmt.Errorf("pattern: nil pattern")
	}
	if g.Empty() {
		return func(int, int) (color.RGBA, bool) { return color.RGBA{}, false }, nil
	}

	type result struct {
		c  color.RGBA
		ok bool
	}
	results := make([]result, g.Len())

	set := func(name string, v any) error {
		if err := p.compiled.Set(name, v); err != nil {
			return fmt.Errorf("pattern: %s: set %s: %w", p.Name, name, err)
		}
		return nil
	}
	if err := set("rows", g.Rows()); err != nil {
		return nil, err
	}
	if err := set("cols", g.Cols()); err != nil {
		return nil, err
	}
	if err := set("picked", palette.Hex(picked)); err != nil {
		return nil, err
	}
	if err := set("background", palette.Hex(background)); err != nil {
		return nil, err
	}

	for i, cell := range g.Cells() {
		if err := set("row", cell.Row); err != nil {
			return nil, err
		}
		if err := set("col", cell.Col); err != nil {
			return nil, err
		}
		if err := set("color", ""); err != nil {
			return nil, err
		}
		if err := p.compiled.RunContext(ctx); err != nil {
			return nil, fmt.Errorf("pattern: %s: run at (%d,%d): %w", p.Name, cell.Row, cell.Col, err)
		}
		out := strings.TrimSpace(p.compiled.Get("color").String())
		if out == "" {
			continue
		}
		c, err := palette.ParseHex(out)
		if err != nil {
			return nil, fmt.Errorf("pattern: %s: %q at (%d,%d): %w", p.Name, out, cell.Row, cell.Col, ErrBadColor)
		}
		results[i] = result{c: c, ok: true}
	}

	return func(row, col int) (color.RGBA, bool) {
		idx := g.Index(row, col)
		if idx < 0 {
			return color.RGBA{}, false
		}
		return results[idx].c, results[idx].ok
	}, nil
}
