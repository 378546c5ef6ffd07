// Package puzzle defines what a daily solver looks like and how its answers are
// reported.
package puzzle

import (
	"errors"
	"fmt"
	"sort"
)

// Solver solves both parts of one day. Every part parses the input on its own,
// parsed data never outlives the call.
type Solver interface {
	Day() int
	Sample() string
	Part1(input string) (int, error)
	Part2(input string) (int, error)
}

var (
	ErrUnknownDay   = errors.New("unknown day")
	ErrDuplicateDay = errors.New("day already registered")
)

type Registry struct {
	solvers map[int]Solver
}

func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) Register(s Solver) error {
	if _, found := r.solvers[s.Day()]; found {
		return fmt.Errorf("day %d: %w", s.Day(), ErrDuplicateDay)
	}
	r.solvers[s.Day()] = s
	return nil
}

func (r *Registry) Lookup(day int) (Solver, error) {
	s, found := r.solvers[day]
	if !found {
		return nil, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}
	return s, nil
}

// Days returns registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
