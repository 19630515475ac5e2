package oracle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/shortdeck/poker"
)

// ParseError locates a malformed line in a strength table.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s at line %d: %q", ErrUnparseableRecord, e.Line, e.Text)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return ErrUnparseableRecord }

// Load reads a "<key>,<value>" strength table from path and freezes it.
// A missing or unreadable file is an error.
func Load(path string, logger *log.Logger) (*Table, error) {
	if logger == nil {
		logger = log.Default()
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingTable, path)
		}
		return nil, fmt.Errorf("open strength table: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("parsed strength table", "path", path, "entries", len(entries))

	t, err := Freeze(entries)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded strength table", "path", path, "hands", t.Len())
	return t, nil
}

// Read parses and freezes a table from r.
func Read(r io.Reader) (*Table, error) {
	entries, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return Freeze(entries)
}

// Parse reads every record of r. Blank lines are skipped and a repeated key
// keeps its last value.
func Parse(r io.Reader) (map[poker.CardSet]Rank, error) {
	entries := make(map[poker.CardSet]Rank)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		key, rank, err := parseRecord(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		entries[key] = rank
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read strength table: %w", err)
	}
	return entries, nil
}

func parseRecord(text string) (poker.CardSet, Rank, error) {
	keyText, valueText, ok := strings.Cut(text, ",")
	if !ok {
		return 0, 0, errors.New("missing separator")
	}
	key, err := strconv.ParseUint(strings.TrimSpace(keyText), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("key: %w", err)
	}
	value, err := strconv.ParseInt(strings.TrimSpace(valueText), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("value: %w", err)
	}
	return poker.CardSet(key), Rank(value), nil
}

// Write serialises entries in the format Parse reads, in the table's slot
// order.
func (t *Table) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var err error
	t.Each(func(hand poker.CardSet, rank Rank) bool {
		_, err = fmt.Fprintf(bw, "%d,%d\n", uint64(hand), int64(rank))
		return err == nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}
