package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize bounds a single selection line. A menu index needs
	// a handful of bytes; anything near this size is noise.
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize names the variable that overrides DefaultMaxInputSize.
	EnvMaxInputSize = "OFFHOOK_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// SanitizeInput checks a selection line against the default size limit and
// removes terminal control characters.
func SanitizeInput(input string) (string, error) {
	return SanitizeInputWithLimit(input, 0)
}

// SanitizeInputWithLimit is SanitizeInput with an explicit size limit.
// A non-positive limit falls back to the environment or DefaultMaxInputSize.
//
// Oversized lines are rejected whole, never truncated, so a long paste
// cannot turn into a different index. Tab, newline and carriage return are
// kept; every other control rune (ESC, NUL, BEL) is dropped so echoed input
// and log lines cannot carry escape sequences.
func SanitizeInputWithLimit(input string, limit int) (string, error) {
	if limit <= 0 {
		limit = maxInputSizeFromEnv()
	}
	if len(input) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}

	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	if strings.IndexFunc(input, isUnsafeControl) < 0 {
		return input, nil
	}
	return strings.Map(func(r rune) rune {
		if isUnsafeControl(r) {
			return -1
		}
		return r
	}, input), nil
}

func isUnsafeControl(r rune) bool {
	if !unicode.IsControl(r) {
		return false
	}
	return r != '\n' && r != '\t' && r != '\r'
}

func maxInputSizeFromEnv() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
