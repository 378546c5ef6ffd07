package puzzle

import (
	"strconv"
	"strings"
)

// Lines splits input on line endings. A single trailing line ending is dropped;
// any other empty line is kept so that parsers can reject it.
func Lines(input string) []string {
	input = strings.TrimSuffix(input, "\n")
	input = strings.TrimSuffix(input, "\r")
	lines := strings.Split(input, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// UintFields parses a line of unsigned decimal numbers separated by one or more
// spaces or tabs. Each number must fit in bitSize bits. lineNo is used for errors only.
func UintFields(line string, lineNo int, bitSize int) ([]uint64, error) {
	result := make([]uint64, 0, 8)
	pos := 0
	for {
		start := pos
		for pos < len(line) && isDigit(line[pos]) {
			pos++
		}
		if start == pos {
			return nil, &ParseError{Line: lineNo, Column: pos + 1, Expected: "unsigned integer", Got: got(line, pos)}
		}
		n, err := strconv.ParseUint(line[start:pos], 10, bitSize)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Column: start + 1, Expected: "unsigned " + strconv.Itoa(bitSize) + "-bit integer", Got: line[start:pos]}
		}
		result = append(result, n)

		if pos == len(line) {
			return result, nil
		}
		spaceStart := pos
		for pos < len(line) && isSpace(line[pos]) {
			pos++
		}
		if spaceStart == pos {
			return nil, &ParseError{Line: lineNo, Column: pos + 1, Expected: "whitespace", Got: got(line, pos)}
		}
	}
}

func got(line string, pos int) string {
	if pos >= len(line) {
		return "end of line"
	}
	return line[pos : pos+1]
}
