package model

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// AliveMark is the only pattern file character that creates a live cell
const AliveMark = '*'

// Loader reads plain text patterns into a grid of fixed size
type Loader struct {
	rows int
	cols int
}

// NewLoader returns a loader that accepts at most rows lines of cols characters
func NewLoader(rows, cols int) *Loader {
	return &Loader{rows: rows, cols: cols}
}

// LoadFile opens path and loads its pattern into g
func (l *Loader) LoadFile(path string, g *Grid) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(&FileError{Path: path, Err: err}, "[LoadFile] failed to open pattern: %+v", path)
	}
	defer f.Close()

	if err = l.Load(f, g); err != nil {
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			err = &FileError{Path: path, Err: err}
		}
		return errors.Wrapf(err, "[LoadFile] failed to load pattern: %+v", path)
	}
	return nil
}

// Load reads a pattern from r into g.
//
// Line k of the input maps to interior row k+1 and character i to column i+1.
// Only '*' marks a live cell, every other character leaves the cell as it is.
func (l *Loader) Load(r io.Reader, g *Grid) error {
	br := bufio.NewReader(r)

	for row := 1; ; row++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return errors.Wrap(err, "[Load] failed to read pattern")
		}
		if line == "" && err != nil {
			return nil
		}

		if row > l.rows {
			return &FormatError{Line: row, Limit: l.rows, Err: ErrTooManyRows}
		}

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if utf8.RuneCountInString(line) > l.cols {
			return &FormatError{Line: row, Limit: l.cols, Err: ErrLineTooLong}
		}

		col := 1
		for _, ch := range line {
			if ch == AliveMark {
				g.Set(row, col, Alive)
			}
			col++
		}

		if err != nil {
			return nil
		}
	}
}
