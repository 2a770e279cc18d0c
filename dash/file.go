package dash

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/dashcharts"
)

// Limit restricts the data rows read from a file: rows before Beg are
// skipped, reading stops at End (0 means until the end of the file).
type Limit struct {
	Beg int `yaml:"beg"`
	End int `yaml:"end"`
}

func (i Limit) keep(row int) (bool, bool) {
	if i.End > 0 && row >= i.End {
		return false, true
	}
	return row >= i.Beg, false
}

// File is a CSV dataset: one data point per row.
type File struct {
	Path      string `yaml:"path"`
	Ident     string `yaml:"ident"`
	Label     int    `yaml:"label"`
	Value     []int  `yaml:"value"`
	Sum       bool   `yaml:"sum"`
	Header    *bool  `yaml:"header"`
	Color     *int   `yaml:"color"`
	Delimiter string `yaml:"delimiter"`
	Limit     Limit  `yaml:"limit"`
}

func (f File) Name() string {
	if f.Ident != "" {
		return f.Ident
	}
	return strings.TrimSuffix(filepath.Base(f.Path), filepath.Ext(f.Path))
}

// Location gives the path of the file, relative ones taken from dir.
func (f File) Location(dir string) string {
	if f.Path == "" || filepath.IsAbs(f.Path) || dir == "" {
		return f.Path
	}
	return filepath.Join(dir, f.Path)
}

func (f File) selector() (Selector, error) {
	var sel Selector
	switch {
	case len(f.Value) == 0:
		sel = SelectSingle(1)
	case f.Sum:
		sel = SelectSum(f.Value)
	case len(f.Value) == 1:
		sel = SelectSingle(f.Value[0])
	default:
		return nil, fmt.Errorf("%d value columns given without sum", len(f.Value))
	}
	for _, i := range sel.columns() {
		if i < 0 {
			return nil, fmt.Errorf("column %d: %w", i, ErrIndex)
		}
		if i == f.Label {
			return nil, fmt.Errorf("column %d: used for labels and values", i)
		}
	}
	return sel, nil
}

func (f File) comma() (rune, error) {
	switch f.Delimiter {
	case "":
		return ',', nil
	case "tab", `\t`:
		return '\t', nil
	}
	rs := []rune(f.Delimiter)
	if len(rs) != 1 {
		return 0, fmt.Errorf("%s: delimiter should be a single character", f.Delimiter)
	}
	return rs[0], nil
}

func (f File) header() bool {
	return f.Header == nil || *f.Header
}

// Load reads the dataset of the file, relative paths taken from dir.
func (f File) Load(dir string) (charts.Dataset, error) {
	sel, err := f.selector()
	if err != nil {
		return nil, err
	}
	get := func(row []string) (charts.DataPoint, error) {
		var pt charts.DataPoint
		if f.Label < 0 || f.Label >= len(row) {
			return pt, fmt.Errorf("column %d: %w", f.Label, ErrIndex)
		}
		pt.Label = strings.TrimSpace(row[f.Label])
		if pt.Value, err = sel.Select(row); err != nil {
			return pt, err
		}
		if f.Color != nil && *f.Color >= 0 {
			if *f.Color >= len(row) {
				return pt, fmt.Errorf("column %d: %w", *f.Color, ErrIndex)
			}
			pt.Color = strings.TrimSpace(row[*f.Color])
		}
		return pt, nil
	}
	return loadPoints(f, f.Location(dir), get)
}

// FileError reports a problem in a dataset file.
type FileError struct {
	File string
	Line int
	Err  error
}

func (e FileError) Error() string {
	if e.Line <= 0 {
		return fmt.Sprintf("%s: %s", e.File, e.Err)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

type pointFunc func([]string) (charts.DataPoint, error)

func loadPoints(f File, file string, get pointFunc) (charts.Dataset, error) {
	comma, err := f.comma()
	if err != nil {
		return nil, FileError{File: file, Err: err}
	}
	r, err := os.Open(file)
	if err != nil {
		return nil, FileError{File: file, Err: err}
	}
	defer r.Close()

	rs := csv.NewReader(r)
	rs.Comma = comma
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	if f.header() {
		if _, err := rs.Read(); err != nil && !errors.Is(err, io.EOF) {
			return nil, FileError{File: file, Err: err}
		}
	}
	var list charts.Dataset
	for i := 0; ; i++ {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, FileError{File: file, Err: err}
		}
		keep, done := f.Limit.keep(i)
		if done {
			break
		}
		if !keep {
			continue
		}
		pt, err := get(row)
		if err != nil {
			line, _ := rs.FieldPos(0)
			return nil, FileError{File: file, Line: line, Err: err}
		}
		list = append(list, pt)
	}
	return list, nil
}
