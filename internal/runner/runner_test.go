package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"testing"

	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/config"
	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/day01"
	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/day02"
	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/day03"
	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/day04"
	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/inputs"
	"github.com/ilyalavrinov/justforfun/adventofcode2024/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type memStore map[int]string

var _ inputs.Store = memStore(nil)

func (ms memStore) Load(_ context.Context, day int) (string, error) {
	input, found := ms[day]
	if !found {
		return "", fmt.Errorf("day %d: %w", day, fs.ErrNotExist)
	}
	return input, nil
}

func (ms memStore) Save(_ context.Context, day int, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	ms[day] = string(data)
	return nil
}

func newTestRunner(t *testing.T, cfg config.Config, store inputs.Store) *Runner {
	registry, err := puzzle.NewRegistry(day01.New(), day02.New(), day03.New(cfg.Day03.MaxTokens), day04.New())
	require.NoError(t, err)
	return New(cfg, registry, store, zap.NewNop())
}

// every day's sample doubles as its real input
func samplesStore() memStore {
	return memStore{
		1: day01.New().Sample(),
		2: day02.New().Sample(),
		3: day03.New(0).Sample(),
		4: day04.New().Sample(),
	}
}

func TestSolveAllDays(t *testing.T) {
	r := newTestRunner(t, config.Default(), samplesStore())
	expected := map[int]puzzle.Answers{
		1: {Part1Sample: 11, Part1: 11, Part2Sample: 31, Part2: 31},
		2: {Part1Sample: 2, Part1: 2, Part2Sample: 4, Part2: 4},
		3: {Part1Sample: 161, Part1: 161, Part2Sample: 48, Part2: 48},
		4: {Part1Sample: 18, Part1: 18, Part2Sample: 9, Part2: 9},
	}
	for day, want := range expected {
		got, err := r.Solve(context.Background(), day)
		require.NoError(t, err, "day %d", day)
		assert.Equal(t, want, got, "day %d", day)
	}
}

func TestRunPrints(t *testing.T) {
	r := newTestRunner(t, config.Default(), samplesStore())
	var out bytes.Buffer
	require.NoError(t, r.Run(context.Background(), 1, &out))
	assert.Equal(t, "Part 1 (sample): 11\nPart 1: 11\n\n==============================\n\nPart 2 (sample): 31\nPart 2: 31\n", out.String())
}

func TestRunSilent(t *testing.T) {
	cfg := config.Default()
	cfg.PrintResult = false
	r := newTestRunner(t, cfg, samplesStore())

	var out bytes.Buffer
	require.NoError(t, r.Run(context.Background(), 2, &out))
	require.NoError(t, r.RunAll(context.Background(), &out))
	assert.Empty(t, out.String())
}

func TestRunUnknownDay(t *testing.T) {
	r := newTestRunner(t, config.Default(), samplesStore())
	err := r.Run(context.Background(), 17, io.Discard)
	require.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestRunMissingInput(t *testing.T) {
	r := newTestRunner(t, config.Default(), memStore{})
	var out bytes.Buffer
	err := r.Run(context.Background(), 1, &out)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, out.String())
}

func TestRunParseErrorIsFatal(t *testing.T) {
	store := samplesStore()
	store[4] = "XMAS\nXMAQ\nXMAS\nXMAS\n"
	r := newTestRunner(t, config.Default(), store)

	var out bytes.Buffer
	err := r.Run(context.Background(), 4, &out)
	var perr *puzzle.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, 4, perr.Column)
	assert.Empty(t, out.String())
}

func TestRunTokenCap(t *testing.T) {
	cfg := config.Default()
	cfg.Day03.MaxTokens = 3
	r := newTestRunner(t, cfg, samplesStore())
	err := r.Run(context.Background(), 3, io.Discard)
	require.ErrorIs(t, err, day03.ErrTooManyTokens)
}

func TestRunAllOrdered(t *testing.T) {
	cfg := config.Default()
	cfg.Parallelism = 2
	r := newTestRunner(t, cfg, samplesStore())

	var out bytes.Buffer
	require.NoError(t, r.RunAll(context.Background(), &out, 3, 1))

	var expected bytes.Buffer
	expected.WriteString("Day 03\n")
	_, _ = puzzle.Answers{Part1Sample: 161, Part1: 161, Part2Sample: 48, Part2: 48}.WriteTo(&expected)
	expected.WriteString("\nDay 01\n")
	_, _ = puzzle.Answers{Part1Sample: 11, Part1: 11, Part2Sample: 31, Part2: 31}.WriteTo(&expected)
	assert.Equal(t, expected.String(), out.String())
}

func TestRunAllStopsOnError(t *testing.T) {
	store := samplesStore()
	delete(store, 2)
	r := newTestRunner(t, config.Default(), store)

	var out bytes.Buffer
	err := r.RunAll(context.Background(), &out)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, out.String())
}

func TestRunAllCancelled(t *testing.T) {
	r := newTestRunner(t, config.Default(), samplesStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := r.RunAll(ctx, io.Discard)
	require.ErrorIs(t, err, context.Canceled)
}
