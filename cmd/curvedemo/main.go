// Command curvedemo measures cubic Bezier segments described in a YAML or
// TOML file, rolls the configured wheel along each of them and optionally
// renders a preview PNG.
package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/curve3d"
	"github.com/gogpu/curve3d/internal/config"
	"github.com/gogpu/curve3d/internal/drive"
	"github.com/gogpu/curve3d/internal/render"
)

// wheelSteps is the number of equal advances used to roll a wheel.
const wheelSteps = 8

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("curvedemo: %v", err)
	}
}

type measured struct {
	name    string
	samples int
	segment curve3d.Segment
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("curvedemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "segment file (.yaml, .yml or .toml); built-in demo if empty")
		samples    = fs.Int("samples", 0, "line pieces per segment, overrides the file when > 0")
		output     = fs.String("output", "", "preview PNG path; no image if empty")
		verbose    = fs.Bool("v", false, "debug logging")
		lang       = fs.String("lang", "en", "report locale")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := config.CheckSamples(*samples); err != nil {
		return err
	}
	if *samples > 0 {
		cfg.Samples = *samples
	}

	level := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	curve3d.SetLogger(logger)
	defer curve3d.SetLogger(nil)

	results := make([]measured, len(cfg.Segments))
	var g errgroup.Group
	for i, sc := range cfg.Segments {
		seg, n := sc.Build(cfg.SamplesOrDefault())
		if *samples > 0 {
			n = *samples
		}
		g.Go(func() error {
			seg.CalculateLength(n)
			results[i] = measured{name: sc.Name, samples: n, segment: seg}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("measured segments", "count", len(results))

	p := message.NewPrinter(language.Make(*lang))
	for _, m := range results {
		report(p, stdout, m)
	}

	if cfg.Wheel != nil {
		tables := drive.NewTableCache(len(results))
		for _, m := range results {
			roll(p, stdout, tables, m, cfg.Wheel.NewWheel())
		}
		hits, misses := tables.Stats()
		logger.Debug("arc tables", "hits", hits, "misses", misses, "cached", tables.Len())
	}

	if *output != "" {
		items := make([]render.Item, len(results))
		for i, m := range results {
			items[i] = render.Item{Name: m.name, Segment: m.segment}
		}
		img, err := render.Draw(items, render.DefaultOptions())
		if err != nil {
			return err
		}
		if err := render.SavePNG(*output, img); err != nil {
			return err
		}
		logger.Info("preview saved", "path", *output)
	}
	return nil
}

// roll drives wheel from start to end of the segment in equal steps.
func roll(p *message.Printer, w io.Writer, tables *drive.TableCache, m measured, wheel *drive.Wheel) {
	follower := tables.Follow(m.segment, m.samples, wheel)
	step := follower.Remaining() / wheelSteps
	pos := m.segment.Start()
	for !follower.Done() && step > 0 {
		pos, _ = follower.Advance(step)
	}
	p.Fprintf(w, "wheel on %s: diameter %.3f, %.2f revolutions, stopped at %s\n",
		displayName(m.name), wheel.Diameter, wheel.Revolutions(follower.Travelled()), pos)
}

func report(p *message.Printer, w io.Writer, m measured) {
	seg := m.segment
	p.Fprintf(w, "%s: length %.4f over %d samples\n", displayName(m.name), seg.Length(), m.samples)
	p.Fprintf(w, "  start %s  mid %s  end %s\n", seg.Start(), seg.Position(0.5), seg.End())
}

func displayName(name string) string {
	if name == "" {
		return "segment"
	}
	return name
}
