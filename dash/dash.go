package dash

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/dashcharts"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	DefaultOutput = "out"
	DefaultPage   = ""
)

var ErrConfig = errors.New("invalid dashboard")

// ConfigError reports a problem in a dashboard definition. Chart is empty
// when the problem is not specific to a chart.
type ConfigError struct {
	File  string
	Chart string
	Err   error
}

func (e ConfigError) Error() string {
	var str strings.Builder
	if e.File != "" {
		str.WriteString(e.File)
		str.WriteString(": ")
	}
	if e.Chart != "" {
		str.WriteString(e.Chart)
		str.WriteString(": ")
	}
	str.WriteString(e.Err.Error())
	return str.String()
}

func (e ConfigError) Unwrap() error {
	return e.Err
}

// Padding accepts either a single size or a mapping with top, right, bottom
// and left.
type Padding charts.Padding

func (p *Padding) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var size float64
		if err := node.Decode(&size); err != nil {
			return err
		}
		*p = Padding(charts.UniformPadding(size))
		return nil
	}
	var x charts.Padding
	if err := node.Decode(&x); err != nil {
		return err
	}
	*p = Padding(x)
	return nil
}

type Viewport struct {
	Width   float64  `yaml:"width"`
	Height  float64  `yaml:"height"`
	Padding *Padding `yaml:"padding"`
	Margin  *float64 `yaml:"margin"`
}

func (v Viewport) viewport() charts.Viewport {
	vp := charts.DefaultViewport()
	if v.Width != 0 {
		vp.Width = v.Width
	}
	if v.Height != 0 {
		vp.Height = v.Height
	}
	if v.Padding != nil {
		vp.Padding = charts.Padding(*v.Padding)
	}
	if v.Margin != nil {
		vp.Margin = *v.Margin
	}
	return vp
}

// Theme is a set of token overrides. Colors defines extra named colors that
// points, palettes and tokens can refer to with --name or var(--name).
type Theme struct {
	charts.Theme `yaml:",inline"`
	Colors       map[string]string `yaml:"colors"`
}

func (t Theme) define(env *Environ[string]) {
	for k, v := range t.Colors {
		env.Define(charts.TokenName(k), strings.TrimSpace(v))
	}
	defineTheme(env, t.Theme)
}

type Chart struct {
	Name  string             `yaml:"name"`
	Type  string             `yaml:"type"`
	Title string             `yaml:"title"`
	Style Style              `yaml:"options"`
	Theme Theme              `yaml:"theme"`
	Data  []charts.DataPoint `yaml:"data"`
	File  *File              `yaml:"file"`
}

// Config is a dashboard definition.
type Config struct {
	Title    string   `yaml:"title"`
	Output   string   `yaml:"output"`
	Page     string   `yaml:"page"`
	Viewport Viewport `yaml:"viewport"`
	Theme    Theme    `yaml:"theme"`
	Style    Style    `yaml:"options"`
	Charts   []Chart  `yaml:"charts"`

	// Dir is the directory relative paths are resolved from.
	Dir  string `yaml:"-"`
	File string `yaml:"-"`
}

func Default() Config {
	return Config{
		Output: DefaultOutput,
		Page:   DefaultPage,
	}
}

// Load reads the dashboard definition in file.
func Load(file string) (Config, error) {
	r, err := os.Open(file)
	if err != nil {
		return Config{}, err
	}
	defer r.Close()

	cfg, err := Decode(r)
	if err != nil {
		var cerr ConfigError
		if errors.As(err, &cerr) {
			cerr.File = file
			return cfg, cerr
		}
		return cfg, ConfigError{File: file, Err: err}
	}
	cfg.File = file
	cfg.Dir = filepath.Dir(file)
	return cfg, nil
}

func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate checks the definition without reading its datasets.
func (c Config) Validate() error {
	if len(c.Charts) == 0 {
		return ConfigError{Err: fmt.Errorf("%w: no chart defined", ErrConfig)}
	}
	if err := c.Viewport.viewport().Validate(); err != nil {
		return ConfigError{Err: err}
	}
	seen := make(map[string]struct{})
	for i, ch := range c.Charts {
		name := ch.Name
		if name == "" {
			return ConfigError{Err: fmt.Errorf("%w: chart #%d has no name", ErrConfig, i+1)}
		}
		if strings.ContainsAny(name, `/\`) {
			return ConfigError{Chart: name, Err: fmt.Errorf("%w: name can not contain a path separator", ErrConfig)}
		}
		if _, ok := seen[name]; ok {
			return ConfigError{Chart: name, Err: fmt.Errorf("%w: name already used", ErrConfig)}
		}
		seen[name] = struct{}{}
		if _, err := charts.ParseChartType(ch.Type); err != nil {
			return ConfigError{Chart: name, Err: err}
		}
		if ch.File != nil && len(ch.Data) > 0 {
			return ConfigError{Chart: name, Err: fmt.Errorf("%w: data and file are exclusive", ErrConfig)}
		}
		if ch.File != nil {
			if ch.File.Path == "" {
				return ConfigError{Chart: name, Err: fmt.Errorf("%w: file without path", ErrConfig)}
			}
			if _, err := ch.File.selector(); err != nil {
				return ConfigError{Chart: name, Err: err}
			}
		}
		if _, err := c.theme(ch); err != nil {
			return ConfigError{Chart: name, Err: err}
		}
	}
	return nil
}

// Sources lists the files a dashboard depends on: its definition and its
// datasets.
func (c Config) Sources() []string {
	var list []string
	if c.File != "" {
		list = append(list, c.File)
	}
	for _, ch := range c.Charts {
		if ch.File != nil {
			list = append(list, ch.File.Location(c.Dir))
		}
	}
	return list
}

func (c Config) OutputDir() string {
	dir := c.Output
	if dir == "" {
		dir = DefaultOutput
	}
	if filepath.IsAbs(dir) || c.Dir == "" {
		return dir
	}
	return filepath.Join(c.Dir, dir)
}

func (c Config) environ() *Environ[string] {
	env := tokenEnv().Wrap()
	c.Theme.define(env)
	return env
}

// theme gives the tokens of the dashboard overridden by the ones of the
// chart.
func (c Config) theme(ch Chart) (charts.Theme, error) {
	env := c.environ().Wrap()
	ch.Theme.define(env)

	palette := ch.Theme.Palette
	if len(palette) == 0 {
		palette = c.Theme.Palette
	}
	theme, err := themeFrom(env, palette)
	if err != nil {
		return theme, err
	}
	return theme, theme.Validate()
}

func (c Config) options(ch Chart) (charts.ChartType, charts.Options, error) {
	t, err := charts.ParseChartType(ch.Type)
	if err != nil {
		return t, charts.Options{}, err
	}
	opts := ch.Style.merge(c.Style).options(t)
	opts.Title = ch.Title
	if opts.Theme, err = c.theme(ch); err != nil {
		return t, opts, err
	}
	return t, opts, nil
}

// dataset reads the points of a chart and resolves the named colors they
// refer to.
func (c Config) dataset(ch Chart) (charts.Dataset, error) {
	var (
		data charts.Dataset
		err  error
	)
	if ch.File != nil {
		data, err = ch.File.Load(c.Dir)
		if err != nil {
			return nil, err
		}
	} else {
		data = charts.Dataset(ch.Data).Clone()
	}
	env := c.environ().Wrap()
	ch.Theme.define(env)
	for i := range data {
		if data[i].Color == "" {
			continue
		}
		if data[i].Color, err = resolveColor(env, data[i].Color); err != nil {
			return nil, fmt.Errorf("%s: %w", data[i].Label, err)
		}
	}
	return data, nil
}

type Option func(*Dashboard)

func WithLogger(logger *zap.Logger) Option {
	return func(d *Dashboard) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithContainer changes where charts are mounted. By default each chart is
// written to <output>/<name>.svg.
func WithContainer(fn func(dir, name string) charts.Container) Option {
	return func(d *Dashboard) {
		if fn != nil {
			d.container = fn
		}
	}
}

// Dashboard keeps the charts of a definition mounted in their containers,
// one per chart named after it. It is not safe for concurrent use.
type Dashboard struct {
	Config

	registry  *charts.Registry
	viewport  charts.Viewport
	logger    *zap.Logger
	container func(dir, name string) charts.Container
	mounted   map[string]string
	outputs   map[string]string
}

func New(cfg Config, options ...Option) *Dashboard {
	d := Dashboard{
		Config:    cfg,
		logger:    zap.NewNop(),
		mounted:   make(map[string]string),
		outputs:   make(map[string]string),
		container: fileContainer,
	}
	for _, o := range options {
		o(&d)
	}
	d.reset(cfg.Viewport.viewport())
	return &d
}

func (d *Dashboard) reset(vp charts.Viewport) error {
	if d.registry != nil {
		for _, id := range d.registry.IDs() {
			if err := d.registry.Destroy(id); err != nil {
				return err
			}
		}
	}
	clear(d.mounted)
	clear(d.outputs)
	d.viewport = vp
	d.registry = charts.NewRegistry(
		charts.WithViewport(vp),
		charts.WithLogger(d.logger.Named("registry")),
	)
	return nil
}

func fileContainer(dir, name string) charts.Container {
	return charts.NewFileContainer(dir, name)
}

// Render mounts every chart of the dashboard and writes its page.
func (d *Dashboard) Render() error {
	return d.Reload(d.Config)
}

// Reload brings the mounted charts in line with cfg. Charts whose type,
// options and output directory did not change are updated in place with
// their new dataset, others are created again. Charts no longer defined are
// destroyed.
func (d *Dashboard) Reload(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return withFile(err, cfg.File)
	}
	if vp := cfg.Viewport.viewport(); vp != d.viewport {
		if err := d.reset(vp); err != nil {
			return err
		}
	}
	dir := cfg.OutputDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	keep := make(map[string]struct{})
	for _, ch := range cfg.Charts {
		keep[ch.Name] = struct{}{}
		if err := d.mount(cfg, dir, ch); err != nil {
			return ConfigError{File: cfg.File, Chart: ch.Name, Err: err}
		}
	}
	for name, id := range d.mounted {
		if _, ok := keep[name]; ok {
			continue
		}
		if err := d.registry.Destroy(id); err != nil {
			return err
		}
		delete(d.mounted, name)
		delete(d.outputs, name)
		d.logger.Info("chart removed", zap.String("chart", name))
	}
	d.Config = cfg
	if cfg.Page == "" {
		return nil
	}
	return d.writePage(filepath.Join(dir, cfg.Page))
}

func (d *Dashboard) mount(cfg Config, dir string, ch Chart) error {
	t, opts, err := cfg.options(ch)
	if err != nil {
		return err
	}
	data, err := cfg.dataset(ch)
	if err != nil {
		return err
	}
	if id, ok := d.mounted[ch.Name]; ok && d.outputs[ch.Name] == dir {
		inst, ok := d.registry.Get(id)
		if ok && inst.Type == t && inst.Options.Equal(opts) {
			if err := d.registry.Update(id, data); err != nil {
				return err
			}
			d.logger.Debug("chart updated", zap.String("chart", ch.Name), zap.Int("points", len(data)))
			return nil
		}
	}
	id, err := d.registry.Create(d.container(dir, ch.Name), t, data, opts)
	if err != nil {
		return err
	}
	d.mounted[ch.Name] = id
	d.outputs[ch.Name] = dir
	d.logger.Info("chart rendered",
		zap.String("chart", ch.Name),
		zap.String("type", t.String()),
		zap.Int("points", len(data)))
	return nil
}

// Canvas gives the current rendering of the named chart.
func (d *Dashboard) Canvas(name string) (charts.Canvas, bool) {
	id, ok := d.mounted[name]
	if !ok {
		return charts.Canvas{}, false
	}
	inst, ok := d.registry.Get(id)
	if !ok {
		return charts.Canvas{}, false
	}
	return inst.Canvas, true
}

func (d *Dashboard) writePage(file string) error {
	var buf bytes.Buffer
	if err := d.WritePage(&buf); err != nil {
		return err
	}
	tmp := file + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, file)
}

// Check loads the datasets of the definition and renders each chart without
// mounting it.
func Check(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return withFile(err, cfg.File)
	}
	vp := cfg.Viewport.viewport()
	for _, ch := range cfg.Charts {
		t, opts, err := cfg.options(ch)
		if err != nil {
			return ConfigError{File: cfg.File, Chart: ch.Name, Err: err}
		}
		data, err := cfg.dataset(ch)
		if err != nil {
			return ConfigError{File: cfg.File, Chart: ch.Name, Err: err}
		}
		rdr, err := charts.NewRenderer(t, vp, charts.DefaultTheme())
		if err != nil {
			return ConfigError{File: cfg.File, Chart: ch.Name, Err: err}
		}
		if _, err := rdr.Render(data, opts); err != nil {
			return ConfigError{File: cfg.File, Chart: ch.Name, Err: err}
		}
	}
	return nil
}

func withFile(err error, file string) error {
	var cerr ConfigError
	if errors.As(err, &cerr) && cerr.File == "" {
		cerr.File = file
		return cerr
	}
	return err
}
