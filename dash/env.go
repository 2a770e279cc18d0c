package dash

import (
	"errors"
	"fmt"
	"strings"

	"github.com/midbel/dashcharts"
)

var ErrUndefined = errors.New("undefined color")

// Environ is a scope of named values. Lookups that fail in a scope continue
// in its parent: chart scope, then dashboard scope, then the built-in
// tokens.
type Environ[T any] struct {
	parent *Environ[T]
	values map[string]T
}

func EnclosedEnv[T any](parent *Environ[T]) *Environ[T] {
	return &Environ[T]{
		parent: parent,
		values: make(map[string]T),
	}
}

func EmptyEnv[T any]() *Environ[T] {
	return EnclosedEnv[T](nil)
}

func (e *Environ[T]) Wrap() *Environ[T] {
	return EnclosedEnv(e)
}

func (e *Environ[T]) Unwrap() *Environ[T] {
	if e.parent == nil {
		return e
	}
	return e.parent
}

func (e *Environ[T]) Resolve(name string) (T, error) {
	var zero T
	v, ok := e.values[name]
	if !ok {
		if e.parent != nil {
			return e.parent.Resolve(name)
		}
		return zero, fmt.Errorf("%s: %w", name, ErrUndefined)
	}
	return v, nil
}

func (e *Environ[T]) Define(name string, value T) {
	e.values[name] = value
}

const maxIndirection = 8

// tokenEnv holds the built-in tokens of the default theme.
func tokenEnv() *Environ[string] {
	env := EmptyEnv[string]()
	defineTheme(env, charts.DefaultTheme())
	return env
}

// defineTheme defines the non empty tokens of theme in env.
func defineTheme(env *Environ[string], theme charts.Theme) {
	set := func(name, value string) {
		if value = strings.TrimSpace(value); value != "" {
			env.Define(name, value)
		}
	}
	set(charts.TokenPrimary, theme.Primary)
	set(charts.TokenBorder, theme.Border)
	set(charts.TokenMuted, theme.Muted)
	set(charts.TokenForeground, theme.Foreground)
	set(charts.TokenBackground, theme.Background)
}

// resolveColor replaces a reference to a named color (--brand or
// var(--brand)) by its value. A name may refer to another name, up to a few
// levels. Anything else is returned as is.
func resolveColor(env *Environ[string], color string) (string, error) {
	for i := 0; i < maxIndirection; i++ {
		if !isReference(color) {
			return color, nil
		}
		v, err := env.Resolve(charts.TokenName(color))
		if err != nil {
			return "", err
		}
		color = v
	}
	return "", fmt.Errorf("%s: too many indirections", color)
}

func isReference(str string) bool {
	str = strings.TrimSpace(str)
	return strings.HasPrefix(str, "--") || strings.HasPrefix(str, "var(")
}

// themeFrom builds the theme a chart is drawn with from the tokens visible
// in env.
func themeFrom(env *Environ[string], palette charts.Palette) (charts.Theme, error) {
	var (
		theme charts.Theme
		err   error
	)
	fields := []struct {
		Name  string
		Value *string
	}{
		{Name: charts.TokenPrimary, Value: &theme.Primary},
		{Name: charts.TokenBorder, Value: &theme.Border},
		{Name: charts.TokenMuted, Value: &theme.Muted},
		{Name: charts.TokenForeground, Value: &theme.Foreground},
		{Name: charts.TokenBackground, Value: &theme.Background},
	}
	for _, f := range fields {
		v, err := env.Resolve(f.Name)
		if err != nil {
			return theme, err
		}
		if *f.Value, err = resolveColor(env, v); err != nil {
			return theme, err
		}
	}
	for _, c := range palette {
		c, err = resolveColor(env, c)
		if err != nil {
			return theme, err
		}
		theme.Palette = append(theme.Palette, c)
	}
	return theme, nil
}
