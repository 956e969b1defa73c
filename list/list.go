package list

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Entry is one source path drawn from the input list. Line is its original
// 1-based position in the file, headers and blank lines included, so
// diagnostics correlate with the file as the user sees it.
type Entry struct {
	Line int
	Path string
}

// Format selects how the list file is parsed.
type Format int

const (
	// FormatAuto picks FormatCSV for .csv files and FormatPlain otherwise.
	FormatAuto Format = iota
	FormatPlain
	FormatCSV
)

// DefaultColumn is the CSV column consulted when none is configured.
const DefaultColumn = "Path"

// headerNames are the first tokens that mark a plain list's leading line as
// a header rather than a path.
var headerNames = []string{"Path", "File", "Source"}

type Options struct {
	// StartOffset skips the first StartOffset-1 entries, counted after
	// header removal. Values below 1 mean "from the beginning".
	StartOffset int

	Format Format

	// Column names the CSV column holding the paths.
	Column string
}

// Read loads all entries from the list file. Any failure here is fatal for
// the run; per-entry problems are not its concern.
func Read(path string, opts Options) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open list file")
	}
	defer f.Close()

	format := opts.Format
	if format == FormatAuto {
		if strings.EqualFold(filepath.Ext(path), ".csv") {
			format = FormatCSV
		} else {
			format = FormatPlain
		}
	}

	var entries []Entry
	switch format {
	case FormatCSV:
		column := opts.Column
		if column == "" {
			column = DefaultColumn
		}
		entries, err = readCSV(f, column)
	default:
		entries, err = readPlain(f)
	}
	if err != nil {
		return nil, err
	}

	if opts.StartOffset > 1 {
		skip := opts.StartOffset - 1
		if skip >= len(entries) {
			return nil, nil
		}
		entries = entries[skip:]
	}
	return entries, nil
}

func readPlain(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	line := 0
	sawHeader := false
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if !sawHeader && len(entries) == 0 && isHeader(text) {
			sawHeader = true
			continue
		}
		entries = append(entries, Entry{Line: line, Path: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "line %d", line)
	}
	return entries, nil
}

func isHeader(line string) bool {
	token := line
	if i := strings.IndexAny(line, ",;\t "); i >= 0 {
		token = line[:i]
	}
	for _, name := range headerNames {
		if strings.EqualFold(token, name) {
			return true
		}
	}
	return false
}

func readCSV(r io.Reader, column string) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("list file is empty")
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}

	col := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), column) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, errors.Errorf("column %q not found in header", column)
	}

	var entries []Entry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.ParseError already carries the line number.
			return nil, errors.Wrap(err, "read record")
		}
		line, _ := reader.FieldPos(0)
		if col >= len(record) {
			return nil, errors.Errorf("line %d: row has %d columns, need at least %d for %q", line, len(record), col+1, column)
		}
		path := strings.TrimSpace(record[col])
		if path == "" {
			continue
		}
		entries = append(entries, Entry{Line: line, Path: path})
	}
	return entries, nil
}
