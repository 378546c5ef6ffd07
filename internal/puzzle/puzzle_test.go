package puzzle

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSolver struct {
	day int
}

func (f fakeSolver) Day() int                  { return f.day }
func (f fakeSolver) Sample() string            { return "" }
func (f fakeSolver) Part1(string) (int, error) { return f.day, nil }
func (f fakeSolver) Part2(string) (int, error) { return -f.day, nil }

func TestRegistryDaysSorted(t *testing.T) {
	r, err := NewRegistry(fakeSolver{4}, fakeSolver{1}, fakeSolver{3})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, r.Days())

	s, err := r.Lookup(3)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Day())
}

func TestRegistryUnknownDay(t *testing.T) {
	r, err := NewRegistry(fakeSolver{1})
	require.NoError(t, err)
	_, err = r.Lookup(25)
	require.ErrorIs(t, err, ErrUnknownDay)
}

func TestRegistryDuplicatesNotAllowed(t *testing.T) {
	_, err := NewRegistry(fakeSolver{2}, fakeSolver{2})
	require.ErrorIs(t, err, ErrDuplicateDay)
}

func TestAnswersFormat(t *testing.T) {
	var buf bytes.Buffer
	_, err := Answers{Part1Sample: 11, Part1: 1234, Part2Sample: 31, Part2: 5678}.WriteTo(&buf)
	require.NoError(t, err)

	expected := "Part 1 (sample): 11\n" +
		"Part 1: 1234\n" +
		"\n" +
		"==============================\n" +
		"\n" +
		"Part 2 (sample): 31\n" +
		"Part 2: 5678\n"
	assert.Equal(t, expected, buf.String())
}

func TestParseErrorUnwraps(t *testing.T) {
	err := fmt.Errorf("day 01: %w", &ParseError{Line: 2, Column: 5, Expected: "digit", Got: "x"})
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, `day 01: parse error at 2:5: expected digit, got "x"`, err.Error())
}
