package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/midbel/cli"
	"github.com/midbel/dashcharts"
	"github.com/midbel/dashcharts/dash"
	"go.uber.org/zap"
)

var (
	summary = "draw"
	help    = "render dashboards of line, bar, pie and donut charts to svg"
)

func main() {
	var (
		set  = cli.NewFlagSet("draw")
		root = prepare()
	)
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	err := root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"render"}, &renderCmd)
	root.Register([]string{"watch"}, &watchCmd)
	root.Register([]string{"chart"}, &chartCmd)
	root.Register([]string{"check"}, &checkCmd)
	return root
}

var renderCmd = cli.Command{
	Name:    "render",
	Alias:   []string{"build"},
	Summary: "render the charts of one or more dashboards",
	Usage:   "render [-v] <dashboard.yml> [<dashboard.yml>...]",
	Handler: &RenderCommand{},
}

var watchCmd = cli.Command{
	Name:    "watch",
	Alias:   []string{"serve"},
	Summary: "render a dashboard each time its definition or its data change",
	Usage:   "watch [-v] [-d delay] <dashboard.yml>",
	Handler: &WatchCommand{},
}

var chartCmd = cli.Command{
	Name:    "chart",
	Alias:   []string{"draw"},
	Summary: "render a single chart from a csv file",
	Usage:   "chart -type <line|bar|pie|donut> [-o file] [-title title] [-label col] [-value cols] [-sum] <file.csv>",
	Handler: &ChartCommand{},
}

var checkCmd = cli.Command{
	Name:    "check",
	Alias:   []string{"lint"},
	Summary: "check dashboards and their datasets without writing anything",
	Usage:   "check <dashboard.yml> [<dashboard.yml>...]",
	Handler: &CheckCommand{},
}

type RenderCommand struct {
	Verbose bool
}

func (c RenderCommand) Run(args []string) error {
	set := cli.NewFlagSet("render")
	set.BoolVar(&c.Verbose, "v", false, "verbose")
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() == 0 {
		return fmt.Errorf("no dashboard given")
	}
	logger, err := createLogger(c.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return dash.RenderAll(ctx, set.Args(), dash.WithLogger(logger))
}

type WatchCommand struct {
	Verbose bool
	Delay   time.Duration
}

func (c WatchCommand) Run(args []string) error {
	set := cli.NewFlagSet("watch")
	set.BoolVar(&c.Verbose, "v", false, "verbose")
	set.Func("d", "delay before rendering after a change", func(str string) error {
		d, err := time.ParseDuration(str)
		if err == nil {
			c.Delay = d
		}
		return err
	})
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() != 1 {
		return fmt.Errorf("one dashboard expected")
	}
	logger, err := createLogger(c.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	w := dash.NewWatcher(set.Arg(0), c.Delay, dash.WithLogger(logger))
	return w.Watch(ctx)
}

type CheckCommand struct{}

func (c CheckCommand) Run(args []string) error {
	set := cli.NewFlagSet("check")
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() == 0 {
		return fmt.Errorf("no dashboard given")
	}
	if err := dash.CheckAll(context.Background(), set.Args()); err != nil {
		return err
	}
	for _, f := range set.Args() {
		fmt.Fprintf(os.Stdout, "%s: ok", f)
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

type ChartCommand struct {
	Type    string
	Title   string
	OutFile string

	Width  float64
	Height float64

	dash.File
	Columns string

	Show []string
	Hide []string
}

func (c ChartCommand) Run(args []string) error {
	set := cli.NewFlagSet("chart")
	set.StringVar(&c.Type, "type", "bar", "chart type")
	set.StringVar(&c.Title, "title", "", "chart title")
	set.StringVar(&c.OutFile, "o", "", "write chart to output file")
	set.IntVar(&c.Label, "label", 0, "index of label column")
	set.StringVar(&c.Columns, "value", "1", "index of value column(s): 1, 1,3 or 1-3")
	set.BoolVar(&c.Sum, "sum", false, "sum the value columns")
	set.StringVar(&c.Delimiter, "delimiter", "", "csv delimiter")
	set.Func("width", "chart width", func(str string) error {
		return parseSize(str, &c.Width)
	})
	set.Func("height", "chart height", func(str string) error {
		return parseSize(str, &c.Height)
	})
	set.Func("show", "elements to show: grid, labels, values, legend, animated", func(str string) error {
		c.Show = append(c.Show, splitList(str)...)
		return nil
	})
	set.Func("hide", "elements to hide: grid, labels, values, legend, animated", func(str string) error {
		c.Hide = append(c.Hide, splitList(str)...)
		return nil
	})
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() != 1 {
		return fmt.Errorf("one csv file expected")
	}
	t, err := charts.ParseChartType(c.Type)
	if err != nil {
		return err
	}
	if c.Value, err = dash.ParseColumns(c.Columns); err != nil {
		return err
	}
	c.Path = set.Arg(0)
	data, err := c.Load("")
	if err != nil {
		return err
	}
	opts, err := c.options(t)
	if err != nil {
		return err
	}
	vp := charts.DefaultViewport()
	if c.Width > 0 {
		vp.Width = c.Width
	}
	if c.Height > 0 {
		vp.Height = c.Height
	}
	var (
		reg = charts.NewRegistry(charts.WithViewport(vp))
		ctr = charts.NewMemoryContainer(c.Name())
	)
	if _, err := reg.Create(ctr, t, data, opts); err != nil {
		return err
	}
	cv, _ := ctr.Current()
	return writeCanvas(c.OutFile, cv)
}

func (c ChartCommand) options(t charts.ChartType) (charts.Options, error) {
	opts := charts.DefaultOptions(t)
	opts.Title = c.Title
	set := func(list []string, value bool) error {
		for _, str := range list {
			switch str {
			case "grid":
				opts.ShowGrid = value
			case "labels":
				opts.ShowLabels = value
			case "values":
				opts.ShowValues = value
			case "legend":
				opts.ShowLegend = value
			case "animated", "animation":
				opts.Animated = value
			default:
				return fmt.Errorf("%s: unknown element", str)
			}
		}
		return nil
	}
	if err := set(c.Show, true); err != nil {
		return opts, err
	}
	return opts, set(c.Hide, false)
}

func writeCanvas(file string, cv charts.Canvas) error {
	var w io.Writer = os.Stdout
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return err
		}
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	ws := bufio.NewWriter(w)
	if _, err := ws.Write(cv.SVG); err != nil {
		return err
	}
	return ws.Flush()
}

func createLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func parseSize(str string, size *float64) error {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return err
	}
	if f <= 0 {
		return fmt.Errorf("%s: size should be positive", str)
	}
	*size = f
	return nil
}

func splitList(str string) []string {
	var list []string
	for _, s := range strings.Split(str, ",") {
		if s = strings.TrimSpace(s); s != "" {
			list = append(list, s)
		}
	}
	return list
}
