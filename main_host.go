package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"visualterm/app"
	"visualterm/hal"
	"visualterm/internal/buildinfo"
	"visualterm/visual/glyph"
)

// Cell size of the text surface when -cell-w/-cell-h are not given.
const (
	textCellW = 10
	textCellH = 20
)

func main() {
	var hcfg hal.HeadlessConfig
	cfg := app.DefaultConfig()
	var cellW, cellH int
	var version bool

	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window, writing frames to stdout.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&hcfg.Width, "width", 800, "Surface width in pixels.")
	flag.IntVar(&hcfg.Height, "height", 480, "Surface height in pixels.")
	flag.IntVar(&cellW, "cell-w", 0, "Cell width in pixels (0 = from the surface font).")
	flag.IntVar(&cellH, "cell-h", 0, "Cell height in pixels (0 = from the surface font).")
	flag.StringVar(&cfg.Charset, "charset", cfg.Charset, "Glyph preset (ascii|ramp|shade) or literal glyphs.")
	flag.StringVar(&cfg.Sampler, "sampler", cfg.Sampler, "Calibration rasterizer: tinyfont|truetype.")
	flag.IntVar(&cfg.SampleSize, "sample-size", cfg.SampleSize, "Calibration bitmap size in pixels.")
	flag.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene: random|fixed.")
	flag.IntVar(&cfg.Spheres, "spheres", cfg.Spheres, "Number of spheres in the random scene.")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random scene seed.")
	flag.Float64Var(&cfg.Spin, "spin", 0, "Wheel delta applied every tick (0 = still).")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, func(h hal.HAL) (func() error, error) {
			s, err := app.NewTextSurface(os.Stdout, hcfg.Width, hcfg.Height, orDefault(cellW, textCellW), orDefault(cellH, textCellH))
			if err != nil {
				return nil, err
			}
			return app.New(h, s, cfg)
		}, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(func(h hal.HAL) (func() error, error) {
		s, err := app.NewFramebufferSurface(h.Display(), glyph.DefaultFont, cellW, cellH)
		if err != nil {
			return nil, err
		}
		return app.New(h, s, cfg)
	}, hal.WindowConfig{Width: hcfg.Width, Height: hcfg.Height}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
