// Package day04 is a word search for XMAS.
package day04

import (
	_ "embed"
	"fmt"
)

//go:embed sample.txt
var sample string

var directions = [8]Direction{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

var diagonals = [4]Direction{
	{-1, -1}, {1, -1},
	{-1, 1}, {1, 1},
}

var xmasTail = [3]Cell{CellM, CellA, CellS}

// XmasFrom counts XMAS words starting at p in every direction. Zero if p is not X.
func XmasFrom(g Grid, p Point) int {
	if !g.is(p, CellX) {
		return 0
	}
	total := 0
	for _, d := range directions {
		if chainFollows(g, p, d) {
			total++
		}
	}
	return total
}

func chainFollows(g Grid, from Point, d Direction) bool {
	cur := from
	for _, want := range xmasTail {
		next, ok := cur.TryMove(d)
		if !ok || !g.is(next, want) {
			return false
		}
		cur = next
	}
	return true
}

// IsXMas reports whether p is the A in the middle of two crossing MAS words.
func IsXMas(g Grid, p Point) bool {
	if p.X == 0 || p.Y == 0 || p.X >= g.Width-1 || p.Y >= g.Height-1 {
		return false
	}
	if !g.is(p, CellA) {
		return false
	}

	m1, m2, found := mPair(g, p)
	if !found {
		return false
	}
	s1, ok1 := p.TryMove(m1.Reverse())
	s2, ok2 := p.TryMove(m2.Reverse())
	return ok1 && ok2 && g.is(s1, CellS) && g.is(s2, CellS)
}

// mPair finds the first two diagonals around p that both hold M.
func mPair(g Grid, p Point) (Direction, Direction, bool) {
	for i := 0; i < len(diagonals); i++ {
		for j := i + 1; j < len(diagonals); j++ {
			p1, ok1 := p.TryMove(diagonals[i])
			p2, ok2 := p.TryMove(diagonals[j])
			if ok1 && ok2 && g.is(p1, CellM) && g.is(p2, CellM) {
				return diagonals[i], diagonals[j], true
			}
		}
	}
	return Direction{}, Direction{}, false
}

func CountXmas(g Grid) int {
	total := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			total += XmasFrom(g, Point{x, y})
		}
	}
	return total
}

func CountXMas(g Grid) int {
	total := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if IsXMas(g, Point{x, y}) {
				total++
			}
		}
	}
	return total
}

type Solver struct{}

func New() Solver {
	return Solver{}
}

func (Solver) Day() int       { return 4 }
func (Solver) Sample() string { return sample }

func (Solver) Part1(input string) (int, error) {
	g, err := ParseGrid(input)
	if err != nil {
		return 0, fmt.Errorf("cannot parse grid: %w", err)
	}
	return CountXmas(g), nil
}

func (Solver) Part2(input string) (int, error) {
	g, err := ParseGrid(input)
	if err != nil {
		return 0, fmt.Errorf("cannot parse grid: %w", err)
	}
	return CountXMas(g), nil
}
