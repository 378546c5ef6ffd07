package puzzle

import (
	"fmt"
	"io"
	"strings"
)

var separator = strings.Repeat("=", 30)

type Answers struct {
	Part1Sample int
	Part1       int
	Part2Sample int
	Part2       int
}

func (a Answers) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Part 1 (sample): %d\nPart 1: %d\n\n%s\n\nPart 2 (sample): %d\nPart 2: %d\n",
		a.Part1Sample, a.Part1, separator, a.Part2Sample, a.Part2)
	return int64(n), err
}
