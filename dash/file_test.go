package dash

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/midbel/dashcharts"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("fail to write %s: %s", name, err)
	}
}

func TestFileLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stages.csv", "stage,q1,q2\nLead,10,12\nWon,3,5\nLost,4,1\n")
	writeFile(t, dir, "raw.tsv", "Lead\t10\nWon\t3\n")
	writeFile(t, dir, "colors.csv", "source;visits;color\ndirect;120;#ff0000\nsearch;300;\n")

	tests := []struct {
		Name string
		File
		Want charts.Dataset
	}{
		{
			Name: "default",
			File: File{Path: "stages.csv"},
			Want: charts.Dataset{
				charts.Point("Lead", 10),
				charts.Point("Won", 3),
				charts.Point("Lost", 4),
			},
		},
		{
			Name: "sum",
			File: File{Path: "stages.csv", Value: []int{1, 2}, Sum: true},
			Want: charts.Dataset{
				charts.Point("Lead", 22),
				charts.Point("Won", 8),
				charts.Point("Lost", 5),
			},
		},
		{
			Name: "column",
			File: File{Path: "stages.csv", Value: []int{2}},
			Want: charts.Dataset{
				charts.Point("Lead", 12),
				charts.Point("Won", 5),
				charts.Point("Lost", 1),
			},
		},
		{
			Name: "limit",
			File: File{Path: "stages.csv", Limit: Limit{Beg: 1, End: 2}},
			Want: charts.Dataset{
				charts.Point("Won", 3),
			},
		},
		{
			Name: "no-header",
			File: File{Path: "raw.tsv", Header: Bool(false), Delimiter: "tab"},
			Want: charts.Dataset{
				charts.Point("Lead", 10),
				charts.Point("Won", 3),
			},
		},
		{
			Name: "color",
			File: File{Path: "colors.csv", Delimiter: ";", Color: intPtr(2)},
			Want: charts.Dataset{
				charts.ColorPoint("direct", 120, "#ff0000"),
				charts.Point("search", 300),
			},
		},
	}
	for _, c := range tests {
		got, err := c.File.Load(dir)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", c.Name, err)
			continue
		}
		if diff := cmp.Diff(c.Want, got); diff != "" {
			t.Errorf("%s: dataset mismatched (-want +got):\n%s", c.Name, diff)
		}
	}
}

func TestFileLoadError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.csv", "stage,count\nLead,10\nWon,many\n")
	writeFile(t, dir, "short.csv", "stage,count\nLead\n")

	tests := []struct {
		Name string
		File
		Line  int
		Index bool
	}{
		{Name: "number", File: File{Path: "bad.csv"}, Line: 3},
		{Name: "short", File: File{Path: "short.csv"}, Line: 2, Index: true},
		{Name: "label", File: File{Path: "bad.csv", Label: 5, Value: []int{1}}, Line: 2, Index: true},
		{Name: "missing", File: File{Path: "missing.csv"}},
	}
	for _, c := range tests {
		_, err := c.File.Load(dir)
		var ferr FileError
		if !errors.As(err, &ferr) {
			t.Errorf("%s: expected FileError, got %v", c.Name, err)
			continue
		}
		if ferr.Line != c.Line {
			t.Errorf("%s: line mismatched! want %d - got %d", c.Name, c.Line, ferr.Line)
		}
		if c.Index && !errors.Is(err, ErrIndex) {
			t.Errorf("%s: expected ErrIndex, got %v", c.Name, err)
		}
	}
}

func TestFileSelector(t *testing.T) {
	tests := []struct {
		Name string
		File
		Fail bool
	}{
		{Name: "default", File: File{}},
		{Name: "sum", File: File{Value: []int{1, 2, 3}, Sum: true}},
		{Name: "many", File: File{Value: []int{1, 2}}, Fail: true},
		{Name: "negative", File: File{Value: []int{-1}}, Fail: true},
		{Name: "label", File: File{Label: 1}, Fail: true},
	}
	for _, c := range tests {
		_, err := c.File.selector()
		if c.Fail && err == nil {
			t.Errorf("%s: expected an error", c.Name)
		}
		if !c.Fail && err != nil {
			t.Errorf("%s: unexpected error: %s", c.Name, err)
		}
	}
}

func TestParseColumns(t *testing.T) {
	tests := []struct {
		Input string
		Want  []int
		Fail  bool
	}{
		{Input: "1", Want: []int{1}},
		{Input: "1,3", Want: []int{1, 3}},
		{Input: "1-3", Want: []int{1, 2, 3}},
		{Input: "1-2, 5", Want: []int{1, 2, 5}},
		{Input: "", Fail: true},
		{Input: "3-1", Fail: true},
		{Input: "a", Fail: true},
	}
	for _, c := range tests {
		got, err := ParseColumns(c.Input)
		if c.Fail {
			if err == nil {
				t.Errorf("%q: expected an error", c.Input)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %s", c.Input, err)
			continue
		}
		if diff := cmp.Diff(c.Want, got); diff != "" {
			t.Errorf("%q: columns mismatched (-want +got):\n%s", c.Input, diff)
		}
	}
}

func intPtr(i int) *int {
	return &i
}
