// Package day02 checks reactor reports for safely changing levels.
package day02

import (
	_ "embed"
	"fmt"

	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/aocutil"
	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/puzzle"
)

//go:embed sample.txt
var sample string

const (
	minStep = 1
	maxStep = 3
)

type Report struct {
	Levels []uint8
}

func Parse(input string) ([]Report, error) {
	lines := puzzle.Lines(input)
	reports := make([]Report, 0, len(lines))
	for i, line := range lines {
		fields, err := puzzle.UintFields(line, i+1, 8)
		if err != nil {
			return nil, err
		}
		levels := make([]uint8, 0, len(fields))
		for _, f := range fields {
			levels = append(levels, uint8(f))
		}
		reports = append(reports, Report{Levels: levels})
	}
	return reports, nil
}

// Diffs returns levels[i+1]-levels[i] for every consecutive pair.
func Diffs(levels []uint8) []int {
	if len(levels) < 2 {
		return nil
	}
	diffs := make([]int, 0, len(levels)-1)
	for i := 1; i < len(levels); i++ {
		diffs = append(diffs, int(levels[i])-int(levels[i-1]))
	}
	return diffs
}

// Monotonic reports whether levels are all increasing or all decreasing by
// 1 to 3 at every step. Fewer than two levels have no step to violate the rule.
func Monotonic(levels []uint8) bool {
	diffs := Diffs(levels)
	if len(diffs) == 0 {
		return true
	}
	sign := aocutil.Sign(diffs[0])
	for _, d := range diffs {
		if aocutil.Sign(d) != sign {
			return false
		}
		if abs := aocutil.Abs(d); abs < minStep || abs > maxStep {
			return false
		}
	}
	return true
}

// MonotonicWithTolerance also accepts reports that become monotonic once a
// single level is removed.
func MonotonicWithTolerance(levels []uint8) bool {
	if Monotonic(levels) {
		return true
	}
	candidate := make([]uint8, 0, len(levels))
	for skip := range levels {
		candidate = candidate[:0]
		candidate = append(candidate, levels[:skip]...)
		candidate = append(candidate, levels[skip+1:]...)
		if Monotonic(candidate) {
			return true
		}
	}
	return false
}

func countSafe(reports []Report, isSafe func([]uint8) bool) int {
	safe := 0
	for _, r := range reports {
		if isSafe(r.Levels) {
			safe++
		}
	}
	return safe
}

type Solver struct{}

func New() Solver {
	return Solver{}
}

func (Solver) Day() int       { return 2 }
func (Solver) Sample() string { return sample }

func (Solver) Part1(input string) (int, error) {
	reports, err := Parse(input)
	if err != nil {
		return 0, fmt.Errorf("cannot parse reports: %w", err)
	}
	return countSafe(reports, Monotonic), nil
}

func (Solver) Part2(input string) (int, error) {
	reports, err := Parse(input)
	if err != nil {
		return 0, fmt.Errorf("cannot parse reports: %w", err)
	}
	return countSafe(reports, MonotonicWithTolerance), nil
}
