package charts

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sequence() func() string {
	var n int
	return func() string {
		n++
		return "chart-" + strconv.Itoa(n)
	}
}

func TestRegistryCreate(t *testing.T) {
	var (
		reg  = NewRegistry(WithIDGenerator(sequence()))
		ctr  = NewMemoryContainer("sales")
		data = Dataset{Point("Jan", 12500), Point("Feb", 14000), Point("Mar", 9000)}
	)
	id, err := reg.Create(ctr, TypeLine, data, DefaultOptions(TypeLine))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if id != "chart-1" {
		t.Errorf("id mismatched! want chart-1 - got %s", id)
	}
	inst, ok := reg.Get(id)
	if !ok {
		t.Fatalf("%s: instance not found", id)
	}
	if diff := cmp.Diff(data, inst.Dataset); diff != "" {
		t.Errorf("dataset mismatched (-want +got):\n%s", diff)
	}
	if inst.Type != TypeLine {
		t.Errorf("type mismatched! want line - got %s", inst.Type)
	}
	data[0].Value = 0
	if inst, _ := reg.Get(id); inst.Dataset[0].Value != 12500 {
		t.Errorf("registry should keep its own copy of the dataset")
	}
	cv, ok := ctr.Current()
	if !ok || len(cv.SVG) == 0 {
		t.Errorf("container should hold the rendered chart")
	}
	if got, ok := reg.Lookup("sales"); !ok || got != id {
		t.Errorf("lookup mismatched! want %s - got %s", id, got)
	}
}

func TestRegistryDestroy(t *testing.T) {
	var (
		reg = NewRegistry()
		ctr = NewMemoryContainer("share")
	)
	id, err := reg.Create(ctr, TypePie, Dataset{Point("A", 30), Point("B", 70)}, DefaultOptions(TypePie))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := reg.Destroy(id); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, ok := reg.Get(id); ok {
		t.Errorf("%s: instance should be gone", id)
	}
	if len(ctr.Mounted()) != 0 {
		t.Errorf("container should be empty")
	}
	if reg.Len() != 0 {
		t.Errorf("registry should be empty")
	}
	if err := reg.Destroy(id); err != nil {
		t.Errorf("destroying twice should not fail: %s", err)
	}
}

func TestRegistryReplace(t *testing.T) {
	var (
		reg = NewRegistry(WithIDGenerator(sequence()))
		ctr = NewMemoryContainer("ratings")
	)
	first, err := reg.Create(ctr, TypeBar, Dataset{Point("A", 1)}, DefaultOptions(TypeBar))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	second, err := reg.Create(ctr, TypeDonut, Dataset{Point("5", 70), Point("4", 30)}, DefaultOptions(TypeDonut))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got := len(ctr.Mounted()); got != 1 {
		t.Errorf("container should hold exactly one chart, got %d", got)
	}
	if _, ok := reg.Get(first); ok {
		t.Errorf("%s: replaced instance should be gone", first)
	}
	if diff := cmp.Diff([]string{second}, reg.IDs()); diff != "" {
		t.Errorf("ids mismatched (-want +got):\n%s", diff)
	}
	cv, _ := ctr.Current()
	if cv.Scene.Type != TypeDonut {
		t.Errorf("container should show the donut, got %s", cv.Scene.Type)
	}
}

func TestRegistryMissingContainer(t *testing.T) {
	var nilmem *MemoryContainer
	tests := []Container{
		nil,
		nilmem,
		NewMemoryContainer(""),
	}
	reg := NewRegistry()
	for _, c := range tests {
		_, err := reg.Create(c, TypeBar, Dataset{Point("A", 1)}, DefaultOptions(TypeBar))
		if !errors.Is(err, ErrContainerNotFound) {
			t.Errorf("expected ErrContainerNotFound, got %v", err)
		}
	}
	if reg.Len() != 0 {
		t.Errorf("registry should be empty")
	}
}

func TestRegistryUpdate(t *testing.T) {
	var (
		reg = NewRegistry()
		ctr = NewMemoryContainer("sales")
	)
	id, err := reg.Create(ctr, TypeBar, Dataset{Point("A", 1)}, DefaultOptions(TypeBar))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	next := Dataset{Point("A", 1), Point("B", 2)}
	if err := reg.Update(id, next); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	inst, _ := reg.Get(id)
	if diff := cmp.Diff(next, inst.Dataset); diff != "" {
		t.Errorf("dataset mismatched (-want +got):\n%s", diff)
	}
	if got := len(ctr.Mounted()); got != 1 {
		t.Errorf("container should hold exactly one chart, got %d", got)
	}
	cv, _ := ctr.Current()
	if got := len(cv.Scene.Filter("bar")); got != 2 {
		t.Errorf("updated chart should have 2 bars, got %d", got)
	}

	err = reg.Update("unknown", next)
	if !errors.Is(err, ErrInstanceNotFound) {
		t.Errorf("expected ErrInstanceNotFound, got %v", err)
	}
}

func TestRegistryRejectInvalid(t *testing.T) {
	var (
		reg = NewRegistry()
		ctr = NewMemoryContainer("sales")
	)
	id, err := reg.Create(ctr, TypeBar, Dataset{Point("A", 1)}, DefaultOptions(TypeBar))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := reg.Create(ctr, ChartType("radar"), Dataset{Point("A", 1)}, Options{}); err == nil {
		t.Errorf("expected error for unsupported type")
	}
	if _, ok := reg.Get(id); !ok {
		t.Errorf("failed creation should leave the previous chart in place")
	}
	if err := reg.Update(id, Dataset{Point("A", -1)}); err != nil {
		t.Errorf("bar chart should accept negative values: %s", err)
	}
}

func TestFileContainer(t *testing.T) {
	var (
		dir = t.TempDir()
		reg = NewRegistry()
		ctr = NewFileContainer(dir, "share")
	)
	id, err := reg.Create(ctr, TypePie, Dataset{Point("A", 30), Point("B", 70)}, DefaultOptions(TypePie))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if ctr.Path() != filepath.Join(dir, "share.svg") {
		t.Errorf("path mismatched! got %s", ctr.Path())
	}
	buf, err := os.ReadFile(ctr.Path())
	if err != nil {
		t.Fatalf("chart file not written: %s", err)
	}
	inst, _ := reg.Get(id)
	if diff := cmp.Diff(string(inst.Canvas.SVG), string(buf)); diff != "" {
		t.Errorf("file content mismatched (-want +got):\n%s", diff)
	}
	if err := reg.Destroy(id); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := os.Stat(ctr.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("chart file should be removed")
	}

	missing := NewFileContainer(filepath.Join(dir, "missing"), "share")
	_, err = reg.Create(missing, TypePie, Dataset{Point("A", 1)}, DefaultOptions(TypePie))
	if !errors.Is(err, ErrContainerNotFound) {
		t.Errorf("expected ErrContainerNotFound, got %v", err)
	}
}
