// Package day03 runs the multiplications hidden in corrupted memory.
package day03

import (
	_ "embed"
	"fmt"
)

//go:embed sample.txt
var sample string

// DefaultMaxTokens bounds a single scan.
const DefaultMaxTokens = 2000

func SumAll(tokens []Token) int {
	sum := 0
	for _, t := range tokens {
		if t.Kind == KindMul {
			sum += int(t.A) * int(t.B)
		}
	}
	return sum
}

// SumEnabled honours do() and don't(): multiplications after a don't() are
// ignored until the next do(). Memory starts enabled.
func SumEnabled(tokens []Token) int {
	enabled := true
	sum := 0
	for _, t := range tokens {
		switch t.Kind {
		case KindDo:
			enabled = true
		case KindDont:
			enabled = false
		case KindMul:
			if enabled {
				sum += int(t.A) * int(t.B)
			}
		}
	}
	return sum
}

type Solver struct {
	maxTokens int
}

func New(maxTokens int) Solver {
	return Solver{maxTokens: maxTokens}
}

func (Solver) Day() int       { return 3 }
func (Solver) Sample() string { return sample }

func (s Solver) Part1(input string) (int, error) {
	tokens, err := Scan(input, s.maxTokens)
	if err != nil {
		return 0, fmt.Errorf("cannot scan memory: %w", err)
	}
	return SumAll(tokens), nil
}

func (s Solver) Part2(input string) (int, error) {
	tokens, err := Scan(input, s.maxTokens)
	if err != nil {
		return 0, fmt.Errorf("cannot scan memory: %w", err)
	}
	return SumEnabled(tokens), nil
}
