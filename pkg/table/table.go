// Package table parses and validates the word/score database.
package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/mchmarny/spamdetector/pkg/hashmap"
	"github.com/mchmarny/spamdetector/pkg/text"
)

const (
	fieldDelimiter = ","
	fieldCount     = 2
	maxLineBytes   = 1 << 20
)

var (
	// ErrNotFound is returned when the database file cannot be opened.
	ErrNotFound = errors.New("database file not found")

	// ErrMalformed is returned when any row violates the table format.
	ErrMalformed = errors.New("malformed database")
)

// Entry is a single validated row.
type Entry struct {
	Word  string `json:"word" yaml:"word"`
	Score int64  `json:"score" yaml:"score"`
	Line  int    `json:"line" yaml:"line"`
}

// Table is the immutable lookup built from a fully validated file. Keys are
// the normalized token sequences of the word column.
type Table struct {
	weights *hashmap.HashMap[string, int64]
	lengths []int
}

// Load opens, reads and validates the database file at path.
func Load(path string) (tbl *Table, retErr error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrNotFound)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && retErr == nil {
			tbl, retErr = nil, fmt.Errorf("closing database file: %w", cerr)
		}
	}()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	tbl, err = Parse(f)
	if err != nil {
		return nil, err
	}

	slog.Debug("database loaded", "path", path, "entries", tbl.Len())
	return tbl, nil
}

// Parse validates every row read from r and only then builds the table. Any
// violation rejects the whole input.
func Parse(r io.Reader) (*Table, error) {
	entries, err := ParseEntries(r)
	if err != nil {
		return nil, err
	}
	return New(entries), nil
}

// ParseEntries validates every row read from r and returns them in file
// order. It never returns entries together with an error.
func ParseEntries(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var staged []Entry
	line := 0
	for scanner.Scan() {
		line++
		e, err := parseRow(line, scanner.Text())
		if err != nil {
			return nil, err
		}
		staged = append(staged, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, &SyntaxError{Line: line + 1, Reason: ReasonUnreadable, Err: err}
	}

	return staged, nil
}

func parseRow(line int, raw string) (Entry, error) {
	row := strings.TrimSuffix(raw, "\r")
	fail := func(reason Reason) (Entry, error) {
		return Entry{}, &SyntaxError{Line: line, Reason: reason}
	}

	if strings.TrimSpace(row) == "" {
		return fail(ReasonEmptyRow)
	}

	fields := strings.Split(row, fieldDelimiter)
	if len(fields) < fieldCount {
		return fail(ReasonWrongStructure)
	}

	if len(fields) > fieldCount {
		for _, extra := range fields[fieldCount:] {
			if strings.TrimSpace(extra) != "" {
				return fail(ReasonExtraColumn)
			}
		}
		return fail(ReasonEmptyExtraColumn)
	}

	word := strings.TrimSpace(fields[0])
	value := strings.TrimSpace(fields[1])
	if word == "" || value == "" {
		return fail(ReasonWrongStructure)
	}

	score, err := parseScore(value)
	if err != nil {
		return fail(ReasonNonInteger)
	}

	return Entry{Word: word, Score: score, Line: line}, nil
}

// parseScore accepts an optionally signed base-10 integer in the 32-bit range.
func parseScore(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	v, err := safecast.Conv[int32](n)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// New builds a table from already validated entries. Later entries win when
// two words normalize to the same key.
func New(entries []Entry) *Table {
	t := &Table{weights: hashmap.New[string, int64]()}
	for _, e := range entries {
		key := text.Key(e.Word)
		if key == "" {
			slog.Debug("entry has no word characters and never matches", "line", e.Line, "word", e.Word)
			continue
		}
		if t.weights.ContainsKey(key) {
			slog.Debug("duplicate entry replaces earlier weight", "line", e.Line, "key", key)
		}
		t.weights.Set(key, e.Score)

		n := strings.Count(key, " ") + 1
		if !slices.Contains(t.lengths, n) {
			t.lengths = append(t.lengths, n)
		}
	}
	slices.Sort(t.lengths)
	return t
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return t.weights.Size()
}

// Weight returns the score stored for an already normalized key.
func (t *Table) Weight(key string) (int64, bool) {
	return t.weights.Get(key)
}

// PhraseLengths returns the distinct token counts of all keys in ascending
// order.
func (t *Table) PhraseLengths() []int {
	return slices.Clone(t.lengths)
}
