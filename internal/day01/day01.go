// Package day01 compares two columns of location IDs.
package day01

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/aocutil"
	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/puzzle"
)

//go:embed sample.txt
var sample string

type Lists struct {
	Left  []uint32
	Right []uint32
}

func Parse(input string) (Lists, error) {
	lines := puzzle.Lines(input)
	result := Lists{
		Left:  make([]uint32, 0, len(lines)),
		Right: make([]uint32, 0, len(lines)),
	}
	for i, line := range lines {
		fields, err := puzzle.UintFields(line, i+1, 32)
		if err != nil {
			return Lists{}, err
		}
		if len(fields) != 2 {
			return Lists{}, &puzzle.ParseError{Line: i + 1, Column: 1, Expected: "two integers", Got: line}
		}
		result.Left = append(result.Left, uint32(fields[0]))
		result.Right = append(result.Right, uint32(fields[1]))
	}
	return result, nil
}

// TotalDistance pairs up the smallest numbers of both lists, then the second
// smallest and so on, and sums the distances within each pair.
func TotalDistance(l Lists) int {
	left := slices.Clone(l.Left)
	right := slices.Clone(l.Right)
	slices.Sort(left)
	slices.Sort(right)

	sum := 0
	for i := range left {
		sum += int(aocutil.AbsDiff(left[i], right[i]))
	}
	return sum
}

// Similarity multiplies every left number by how often it appears on the right.
func Similarity(l Lists) int {
	counts := aocutil.Counts(l.Right)
	sum := 0
	for _, v := range l.Left {
		sum += int(v) * counts[v]
	}
	return sum
}

type Solver struct{}

func New() Solver {
	return Solver{}
}

func (Solver) Day() int       { return 1 }
func (Solver) Sample() string { return sample }

func (Solver) Part1(input string) (int, error) {
	lists, err := Parse(input)
	if err != nil {
		return 0, fmt.Errorf("cannot parse lists: %w", err)
	}
	return TotalDistance(lists), nil
}

func (Solver) Part2(input string) (int, error) {
	lists, err := Parse(input)
	if err != nil {
		return 0, fmt.Errorf("cannot parse lists: %w", err)
	}
	return Similarity(lists), nil
}
