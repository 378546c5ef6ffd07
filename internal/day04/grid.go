package day04

import (
	"fmt"
	"strings"

	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/puzzle"
)

type Cell uint8

const (
	CellX Cell = iota
	CellM
	CellA
	CellS
)

func (c Cell) Rune() rune {
	switch c {
	case CellX:
		return 'X'
	case CellM:
		return 'M'
	case CellA:
		return 'A'
	case CellS:
		return 'S'
	}
	panic(fmt.Sprintf("unknown cell %d", uint8(c)))
}

func cellFromByte(b byte) (Cell, bool) {
	switch b {
	case 'X':
		return CellX, true
	case 'M':
		return CellM, true
	case 'A':
		return CellA, true
	case 'S':
		return CellS, true
	}
	return 0, false
}

type Point struct {
	X, Y int
}

type Direction struct {
	DX, DY int
}

func (d Direction) Reverse() Direction {
	return Direction{-d.DX, -d.DY}
}

// TryMove returns p shifted by d. It fails if a coordinate would become negative.
func (p Point) TryMove(d Direction) (Point, bool) {
	moved := Point{p.X + d.DX, p.Y + d.DY}
	if moved.X < 0 || moved.Y < 0 {
		return Point{}, false
	}
	return moved, true
}

// Grid stores cells row by row, (0,0) is the top left corner.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell
}

func ParseGrid(input string) (Grid, error) {
	lines := puzzle.Lines(input)
	width := len(lines[0])
	if width == 0 {
		return Grid{}, &puzzle.ParseError{Line: 1, Column: 1, Expected: "grid row", Got: "empty line"}
	}
	g := Grid{
		Width:  width,
		Height: len(lines),
		Cells:  make([]Cell, 0, width*len(lines)),
	}
	for y, line := range lines {
		if len(line) != width {
			return Grid{}, &puzzle.ParseError{
				Line:     y + 1,
				Column:   min(len(line), width) + 1,
				Expected: fmt.Sprintf("row of %d cells", width),
				Got:      fmt.Sprintf("%d cells", len(line)),
			}
		}
		for x := 0; x < len(line); x++ {
			c, ok := cellFromByte(line[x])
			if !ok {
				return Grid{}, &puzzle.ParseError{Line: y + 1, Column: x + 1, Expected: "one of X, M, A, S", Got: line[x : x+1]}
			}
			g.Cells = append(g.Cells, c)
		}
	}
	return g, nil
}

func (g Grid) index(p Point) (int, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= g.Width || p.Y >= g.Height {
		return 0, false
	}
	return p.Y*g.Width + p.X, true
}

// Cell returns the cell at p, false when p is outside of the grid.
func (g Grid) Cell(p Point) (Cell, bool) {
	i, ok := g.index(p)
	if !ok {
		return 0, false
	}
	return g.Cells[i], true
}

func (g Grid) is(p Point, c Cell) bool {
	got, ok := g.Cell(p)
	return ok && got == c
}

// String renders the grid in its input format.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sb.WriteRune(g.Cells[y*g.Width+x].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
