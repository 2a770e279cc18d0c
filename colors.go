package charts

import (
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

func (p Palette) At(i int) string {
	if len(p) == 0 {
		return ""
	}
	return p[i%len(p)]
}

const (
	TokenPrimary    = "primary"
	TokenBorder     = "border"
	TokenMuted      = "muted-foreground"
	TokenForeground = "foreground"
	TokenBackground = "background"
)

// Theme carries the resolved values of the color tokens the dashboard
// stylesheet defines (--primary, --border, ...).
type Theme struct {
	Primary    string  `yaml:"primary"`
	Border     string  `yaml:"border"`
	Muted      string  `yaml:"muted"`
	Foreground string  `yaml:"foreground"`
	Background string  `yaml:"background"`
	Palette    Palette `yaml:"palette"`
}

func DefaultTheme() Theme {
	return Theme{
		Primary:    "#3b82f6",
		Border:     "#e5e7eb",
		Muted:      "#6b7280",
		Foreground: "#111827",
		Background: "#ffffff",
		Palette:    Tableau10,
	}
}

// Lookup resolves a token given as "primary", "--primary" or
// "var(--primary)".
func (t Theme) Lookup(token string) (string, bool) {
	switch TokenName(token) {
	case TokenPrimary, "accent":
		return t.Primary, true
	case TokenBorder:
		return t.Border, true
	case TokenMuted, "muted":
		return t.Muted, true
	case TokenForeground:
		return t.Foreground, true
	case TokenBackground:
		return t.Background, true
	default:
		return "", false
	}
}

// Resolve turns a color given by a point or an option into a value usable
// in the output: tokens are looked up, hex strings are normalized to
// #rrggbb, plain keywords (steelblue, none, currentColor) are kept as is.
func (t Theme) Resolve(color string) (string, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return "", nil
	}
	if v, ok := t.Lookup(color); ok {
		if _, nested := t.Lookup(v); nested || v == "" {
			return "", ColorError{Color: color}
		}
		color = strings.TrimSpace(v)
	}
	if strings.HasPrefix(color, "#") {
		c, err := colorful.Hex(color)
		if err != nil {
			return "", ColorError{Color: color, Err: err}
		}
		return c.Hex(), nil
	}
	if isKeyword(color) {
		return color, nil
	}
	return "", ColorError{Color: color}
}

func (t Theme) Equal(other Theme) bool {
	return t.Primary == other.Primary &&
		t.Border == other.Border &&
		t.Muted == other.Muted &&
		t.Foreground == other.Foreground &&
		t.Background == other.Background &&
		slices.Equal(t.Palette, other.Palette)
}

func (t Theme) Validate() error {
	_, err := t.normalize()
	return err
}

// Merge fills the empty values of t with the ones of other.
func (t Theme) Merge(other Theme) Theme {
	if t.Primary == "" {
		t.Primary = other.Primary
	}
	if t.Border == "" {
		t.Border = other.Border
	}
	if t.Muted == "" {
		t.Muted = other.Muted
	}
	if t.Foreground == "" {
		t.Foreground = other.Foreground
	}
	if t.Background == "" {
		t.Background = other.Background
	}
	if len(t.Palette) == 0 {
		t.Palette = other.Palette
	}
	return t
}

// normalize resolves every token of the theme, missing ones taken from the
// default theme. A token whose value refers to another token is rejected.
func (t Theme) normalize() (Theme, error) {
	t = t.Merge(DefaultTheme())
	var (
		x   = t
		err error
	)
	fields := []struct {
		Token string
		Value *string
	}{
		{Token: TokenPrimary, Value: &x.Primary},
		{Token: TokenBorder, Value: &x.Border},
		{Token: TokenMuted, Value: &x.Muted},
		{Token: TokenForeground, Value: &x.Foreground},
		{Token: TokenBackground, Value: &x.Background},
	}
	for _, f := range fields {
		if *f.Value, err = t.Resolve(f.Token); err != nil {
			return t, err
		}
	}
	x.Palette = make(Palette, 0, len(t.Palette))
	for _, c := range t.Palette {
		c, err = t.Resolve(c)
		if err != nil {
			return t, err
		}
		x.Palette = append(x.Palette, c)
	}
	return x, nil
}

func (t Theme) fill(color string, fallback string) (string, error) {
	if color == "" {
		color = fallback
	}
	return t.Resolve(color)
}

func TokenName(str string) string {
	str = strings.TrimSpace(str)
	if rest, ok := strings.CutPrefix(str, "var("); ok {
		str = strings.TrimSuffix(rest, ")")
	}
	return strings.TrimPrefix(strings.TrimSpace(str), "--")
}

func isKeyword(str string) bool {
	for _, r := range str {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
