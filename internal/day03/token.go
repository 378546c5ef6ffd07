package day03

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Kind uint8

const (
	KindMul Kind = iota
	KindDo
	KindDont
)

func (k Kind) String() string {
	switch k {
	case KindMul:
		return "mul"
	case KindDo:
		return "do"
	case KindDont:
		return "don't"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Token is one recognised instruction. A and B are set only for KindMul.
type Token struct {
	Kind Kind
	A, B uint16
}

func Mul(a, b uint16) Token { return Token{Kind: KindMul, A: a, B: b} }

var (
	Do   = Token{Kind: KindDo}
	Dont = Token{Kind: KindDont}
)

// ErrTooManyTokens is returned by Scan when the token cap is exceeded.
var ErrTooManyTokens = errors.New("too many tokens")

const (
	litMul     = "mul("
	litDo      = "do()"
	litDont    = "don't()"
	maxOperand = 3
)

// Scan extracts instructions from corrupted memory, left to right. Text that does
// not form an instruction is skipped. maxTokens <= 0 means no limit.
func Scan(text string, maxTokens int) ([]Token, error) {
	tokens := make([]Token, 0, 64)
	pos := 0
	for pos < len(text) {
		tok, width, ok := scanToken(text[pos:])
		if !ok {
			pos += skip(text[pos:])
			continue
		}
		if maxTokens > 0 && len(tokens) == maxTokens {
			return nil, fmt.Errorf("more than %d tokens at offset %d: %w", maxTokens, pos, ErrTooManyTokens)
		}
		tokens = append(tokens, tok)
		pos += width
	}
	return tokens, nil
}

func scanToken(s string) (Token, int, bool) {
	if a, b, width, ok := scanMul(s); ok {
		return Mul(a, b), width, true
	}
	if strings.HasPrefix(s, litDo) {
		return Do, len(litDo), true
	}
	if strings.HasPrefix(s, litDont) {
		return Dont, len(litDont), true
	}
	return Token{}, 0, false
}

// scanMul matches mul(<1-3 digits>,<1-3 digits>) at the start of s.
func scanMul(s string) (uint16, uint16, int, bool) {
	if !strings.HasPrefix(s, litMul) {
		return 0, 0, 0, false
	}
	pos := len(litMul)
	a, n := operand(s[pos:])
	if n == 0 {
		return 0, 0, 0, false
	}
	pos += n
	if pos >= len(s) || s[pos] != ',' {
		return 0, 0, 0, false
	}
	pos++
	b, n := operand(s[pos:])
	if n == 0 {
		return 0, 0, 0, false
	}
	pos += n
	if pos >= len(s) || s[pos] != ')' {
		return 0, 0, 0, false
	}
	return a, b, pos + 1, true
}

// operand reads up to three leading digits.
func operand(s string) (uint16, int) {
	n := 0
	for n < len(s) && n < maxOperand && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, 0
	}
	v, err := strconv.ParseUint(s[:n], 10, 16)
	if err != nil {
		return 0, 0
	}
	return uint16(v), n
}

// skip returns how many bytes to drop to reach the next possible instruction start.
func skip(s string) int {
	next := strings.IndexAny(s[1:], "md")
	if next < 0 {
		return len(s)
	}
	return next + 1
}
