package charts

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

const stylesheet = `
.chart-tooltip{opacity:0;visibility:hidden;pointer-events:none;transition:opacity .15s}
.chart-tooltip.visible{opacity:1;visibility:visible}
.datum{cursor:pointer;outline:none}
.datum:hover,.datum:focus{opacity:.85}
.animated .datum{animation:chart-enter .6s ease-out both}
@keyframes chart-enter{from{opacity:0}to{opacity:1}}
`

const tooltipScript = `
(function() {
  var root = document.currentScript ? document.currentScript.closest("svg") : null;
  if (!root) {
    root = document.documentElement;
  }
  var tip = root.querySelector(".chart-tooltip");
  if (!tip) {
    return;
  }
  var box = tip.querySelector("rect");
  var text = tip.querySelector("text");
  function locate(ev) {
    var m = root.getScreenCTM();
    if (ev.clientX === undefined || !m) {
      var b = ev.currentTarget.getBBox();
      return {x: b.x + b.width / 2, y: b.y};
    }
    return new DOMPoint(ev.clientX, ev.clientY).matrixTransform(m.inverse());
  }
  function show(ev) {
    var p = locate(ev);
    text.textContent = ev.currentTarget.getAttribute("data-tooltip");
    var b = text.getBBox();
    box.setAttribute("width", b.width + 12);
    box.setAttribute("height", b.height + 8);
    tip.setAttribute("transform", "translate(" + (p.x + %[1]s) + "," + (p.y + %[2]s) + ")");
    tip.classList.add("visible");
  }
  function hide() {
    tip.classList.remove("visible");
  }
  root.querySelectorAll(".datum").forEach(function(el) {
    el.addEventListener("pointerenter", show);
    el.addEventListener("pointermove", show);
    el.addEventListener("pointerleave", hide);
    el.addEventListener("focus", show);
    el.addEventListener("blur", hide);
  });
})();
`

// WriteSVG translates a scene to a standalone SVG document. Every shape
// bound to a tooltip is wrapped in a focusable group carrying the tooltip
// text, shared by a single tooltip element shown from an inline script.
func WriteSVG(w io.Writer, scene Scene) error {
	var (
		bw     = bufio.NewWriter(w)
		canvas = svg.New(bw)
		vp     = scene.Viewport
	)
	canvas.Startview(vp.Width, vp.Height, 0, 0, vp.Width, vp.Height)
	if scene.Title != "" {
		canvas.Title(scene.Title)
	}
	canvas.Style("text/css", stylesheet)

	class := []string{"chart", "chart-" + scene.Type.String()}
	if scene.Animated {
		class = append(class, "animated")
	}
	if scene.Empty {
		class = append(class, "empty")
	}
	canvas.Group(classAttr(class...), fmt.Sprintf(`aria-label="%s"`, html.EscapeString(scene.Title)))
	for _, el := range scene.Shapes {
		if !el.Interactive() {
			writeShape(canvas, el)
			continue
		}
		canvas.Group(
			classAttr("datum"),
			`tabindex="0"`,
			fmt.Sprintf(`data-index="%d"`, el.Index),
			fmt.Sprintf(`data-tooltip="%s"`, html.EscapeString(el.Tooltip)),
		)
		canvas.Title(el.Tooltip)
		writeShape(canvas, el)
		canvas.Gend()
	}
	canvas.Gend()

	if len(scene.Interactive()) > 0 {
		writeTooltip(canvas, scene.Theme)
		script := fmt.Sprintf(tooltipScript, formatCoord(TooltipOffset.X), formatCoord(TooltipOffset.Y))
		canvas.Script("application/javascript", script)
	}
	canvas.End()
	return bw.Flush()
}

func writeTooltip(canvas *svg.SVG, theme Theme) {
	font := NewFont(FontSize)
	font.Anchor = "start"
	font.Baseline = "hanging"

	canvas.Group(classAttr(Tooltip{}.Class()))
	canvas.Rect(0, 0, 0, 0, Paint{Fill: theme.Foreground, Opacity: 0.9}.css(), `rx="4"`)
	canvas.Text(6, 4, "", joinCSS(font.css(), FillPaint(theme.Background).css()))
	canvas.Gend()
}

func writeShape(canvas *svg.SVG, el Shape) {
	attrs := shapeAttributes(el)
	switch el.Kind {
	case KindPath:
		canvas.Path(el.Path.String(), attrs...)
	case KindRect:
		canvas.Rect(el.Pos.X, el.Pos.Y, el.Dim.W, el.Dim.H, attrs...)
	case KindCircle:
		canvas.Circle(el.Pos.X, el.Pos.Y, el.Radius, attrs...)
	case KindLine:
		canvas.Line(el.Pos.X, el.Pos.Y, el.End.X, el.End.Y, attrs...)
	case KindText:
		canvas.Text(el.Pos.X, el.Pos.Y, el.Text, attrs...)
	default:
	}
}

func shapeAttributes(el Shape) []string {
	var (
		list []string
		css  = el.Paint.css()
	)
	if el.Kind == KindText {
		css = joinCSS(el.Font.css(), css)
	}
	if css != "" {
		list = append(list, css)
	}
	if len(el.Class) > 0 {
		list = append(list, classAttr(el.Class...))
	}
	if el.Index >= 0 && !el.Interactive() {
		list = append(list, `data-index="`+strconv.Itoa(el.Index)+`"`)
	}
	return list
}

func classAttr(class ...string) string {
	return fmt.Sprintf(`class="%s"`, html.EscapeString(strings.Join(class, " ")))
}

func joinCSS(list ...string) string {
	var parts []string
	for _, s := range list {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ";")
}
