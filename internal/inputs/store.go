// Package inputs keeps personal puzzle inputs outside of the source tree.
package inputs

import (
	"context"
	"fmt"
	"io"
)

type Store interface {
	Load(ctx context.Context, day int) (string, error)
	Save(ctx context.Context, day int, reader io.Reader) error
}

func dayFile(day int) string {
	return fmt.Sprintf("day%02d/input.txt", day)
}
