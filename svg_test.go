package charts

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteSVG(t *testing.T) {
	data := Dataset{Point("A", 30), Point("B", 70)}
	opts := DefaultOptions(TypePie)
	opts.Title = "Traffic <share>"
	scene, err := PieRenderer{Viewport: DefaultViewport()}.Render(data, opts)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	var buf bytes.Buffer
	if err := WriteSVG(&buf, scene); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	str := buf.String()
	tests := []string{
		"<svg",
		`class="chart chart-pie animated"`,
		`aria-label="Traffic &lt;share&gt;"`,
		`data-tooltip="A: 30.0%"`,
		`data-tooltip="B: 70.0%"`,
		`class="chart-tooltip"`,
		`class="legend legend-label"`,
		"<script",
		"</svg>",
	}
	for _, want := range tests {
		if !strings.Contains(str, want) {
			t.Errorf("output should contain %s", want)
		}
	}
	if got := strings.Count(str, `class="datum"`); got != 2 {
		t.Errorf("expected 2 interactive groups, got %d", got)
	}
}

func TestWriteSVGEmpty(t *testing.T) {
	scene, err := DonutRenderer{Viewport: DefaultViewport()}.Render(nil, DefaultOptions(TypeDonut))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	cv, err := NewCanvas(scene)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	str := string(cv.SVG)
	if !strings.Contains(str, "No data") {
		t.Errorf("empty chart should show a placeholder")
	}
	if strings.Contains(str, "<script") {
		t.Errorf("empty chart should not need a tooltip script")
	}
	if strings.Contains(str, "NaN") {
		t.Errorf("output should not contain NaN")
	}
	inline := cv.Inline()
	if strings.HasPrefix(inline, "<?xml") || !strings.HasPrefix(inline, "<svg") {
		t.Errorf("inline output should start with the svg element, got %.20s", inline)
	}
}

func TestCanvasInline(t *testing.T) {
	data := Dataset{Point("A", 30), Point("B", 70)}
	scene, err := PieRenderer{Viewport: DefaultViewport()}.Render(data, DefaultOptions(TypePie))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	cv, err := NewCanvas(scene)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	inline := cv.Inline()
	if !strings.HasPrefix(inline, "<svg") {
		t.Errorf("inline output should start with the svg element, got %.20s", inline)
	}
	if !strings.HasSuffix(inline, "</svg>") {
		t.Errorf("inline output should end with the svg element")
	}
	if strings.Contains(inline, "<!--") || strings.Contains(inline, "<?xml") {
		t.Errorf("inline output should not keep what precedes the svg element")
	}
}
