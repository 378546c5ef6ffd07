package inputs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// localStore reads inputs from <rootDir>/dayNN/input.txt.
type localStore struct {
	rootDir string
	logger  *zap.Logger
}

var _ Store = (*localStore)(nil)

func NewLocalStore(rootDir string, logger *zap.Logger) Store {
	return &localStore{
		rootDir: rootDir,
		logger:  logger,
	}
}

func (ls *localStore) Load(_ context.Context, day int) (string, error) {
	fullpath := path.Join(ls.rootDir, dayFile(day))

	data, err := os.ReadFile(fullpath)
	if err != nil {
		return "", fmt.Errorf("cannot read input for day %d at %s, err: %w", day, fullpath, err)
	}
	ls.logger.Debug("input loaded", zap.String("fullpath", fullpath), zap.String("size", humanize.Bytes(uint64(len(data)))))
	return string(data), nil
}

// ErrInputExists is returned by Save when the day already has an input.
var ErrInputExists = errors.New("input already exists")

// Save writes into a temp file next to the target and renames it into place, so a
// failed copy never leaves a partial input behind.
func (ls *localStore) Save(_ context.Context, day int, reader io.Reader) error {
	fullpath := path.Join(ls.rootDir, dayFile(day))
	_, err := os.Stat(fullpath)
	if err == nil {
		return fmt.Errorf("%w at %s", ErrInputExists, fullpath)
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("cannot stat %s: %w", fullpath, err)
	}

	err = os.MkdirAll(path.Dir(fullpath), fs.FileMode(0o700))
	if err != nil {
		return fmt.Errorf("cannot mkdirall: %w", err)
	}

	tmp, err := os.CreateTemp(path.Dir(fullpath), ".input-*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	written, err := io.Copy(tmp, reader)
	if err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("cannot write input: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("cannot close input: %w", err)
	}
	if err := os.Rename(tmpPath, fullpath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("cannot move input into place: %w", err)
	}
	ls.logger.Info("input saved", zap.String("fullpath", fullpath), zap.String("size", humanize.Bytes(uint64(written))))
	return nil
}
