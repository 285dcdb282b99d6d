// Package text loads text files and splits them into case-folded words.
package text

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ErrNotFound is returned when the text file cannot be opened or read.
var ErrNotFound = errors.New("text file not found")

// Load reads the whole content of the text file at path.
func Load(path string) (content string, retErr error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrNotFound)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && retErr == nil {
			retErr = fmt.Errorf("%w: closing file: %w", ErrNotFound, cerr)
		}
	}()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %w", ErrNotFound, path, err)
	}

	slog.Debug("text loaded", "path", path, "bytes", len(b))
	return string(b), nil
}

// Tokenize splits s into case-folded words. A word is a maximal run of
// letters, digits and combining marks after NFC normalization.
func Tokenize(s string) []string {
	fold := cases.Fold()
	fields := strings.FieldsFunc(norm.NFC.String(s), isSeparator)
	for i, f := range fields {
		fields[i] = fold.String(f)
	}
	return fields
}

// Key joins the tokens of s into the form used for table lookups. It
// returns "" when s has no word characters.
func Key(s string) string {
	return strings.Join(Tokenize(s), " ")
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsMark(r)
}
