package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/mathx"
	"github.com/gogpu/sketch/palette"
)

// config is the resolved command configuration.
type config struct {
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	Palette     string `mapstructure:"palette"`
	PaletteFile string `mapstructure:"palette-file"`
	Seed        uint64 `mapstructure:"seed"`
	Variants    int    `mapstructure:"variants"`
	Output      string `mapstructure:"output"`
	Verbose     bool   `mapstructure:"verbose"`
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "sketchdemo",
		Short:        "Render a generative composition to PNG",
		SilenceUsage: true,
		PreRunE: func(*cobra.Command, []string) error {
			return loadConfigFile(v)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg config
			if err := v.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("sketchdemo: reading config: %w", err)
			}
			return run(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.String("config", "", "config file (yaml, toml or json)")
	f.Int("width", 800, "image width")
	f.Int("height", 600, "image height")
	f.String("palette", "", "palette name (random when empty)")
	f.String("palette-file", "", "JSON file with additional palettes")
	f.Uint64("seed", 1, "random seed")
	f.Int("variants", 0, "number of extra variants rendered concurrently")
	f.String("output", "sketch.png", "output file")
	f.BoolP("verbose", "v", false, "log diagnostics to stderr")

	_ = v.BindPFlags(f)
	v.SetEnvPrefix("SKETCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func loadConfigFile(v *viper.Viper) error {
	path := v.GetString("config")
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("sketchdemo: %w", err)
	}
	return nil
}

func run(cmd *cobra.Command, cfg config) error {
	if cfg.Verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	log := sketch.Logger()

	pal, err := choosePalette(cfg)
	if err != nil {
		return err
	}
	log.Info("rendering", "palette", pal.Name, "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), "seed", cfg.Seed)

	if err := renderMain(cfg, pal); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Sketch saved to %s (%dx%d, palette %s)\n", cfg.Output, cfg.Width, cfg.Height, pal.Name)

	if cfg.Variants <= 0 {
		return nil
	}
	paths, err := renderVariants(cfg, pal)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Variant saved to %s\n", p)
	}
	return nil
}

func choosePalette(cfg config) (palette.Palette, error) {
	catalog := palette.Builtin()
	if cfg.PaletteFile != "" {
		data, err := os.ReadFile(cfg.PaletteFile)
		if err != nil {
			return palette.Palette{}, fmt.Errorf("sketchdemo: %w", err)
		}
		n, err := catalog.LoadJSON(data)
		if err != nil {
			// Partially valid files are still usable.
			sketch.Logger().Warn("skipped palettes", "file", cfg.PaletteFile, "err", err)
		}
		sketch.Logger().Debug("loaded palettes", "file", cfg.PaletteFile, "count", n)
	}

	if cfg.Palette == "" {
		p, _ := catalog.Random(mathx.NewRand(cfg.Seed))
		return p, nil
	}
	p, ok := catalog.Lookup(cfg.Palette)
	if !ok {
		return palette.Palette{}, fmt.Errorf("sketchdemo: unknown palette %q (available: %s)",
			cfg.Palette, strings.Join(catalog.Names(), ", "))
	}
	return p, nil
}

// renderMain draws the primary composition through the default host.
func renderMain(cfg config, pal palette.Palette) error {
	rnd := mathx.NewRand(cfg.Seed)
	host := sketch.DefaultHost()
	host.Configure(
		sketch.WithSize(cfg.Width, cfg.Height),
		sketch.WithDraw(func(dc *gg.Context) error {
			return drawComposition(dc, pal, rnd)
		}),
	)
	// Drop any context built with a previous configuration.
	host.Reset()

	if err := host.Frame(); err != nil {
		return fmt.Errorf("sketchdemo: drawing: %w", err)
	}
	if err := sketch.CurrentContext().SavePNG(cfg.Output); err != nil {
		return fmt.Errorf("sketchdemo: saving %s: %w", cfg.Output, err)
	}
	return nil
}

// renderVariants draws extra compositions concurrently, each on its own
// context so they never touch the shared host.
func renderVariants(cfg config, pal palette.Palette) ([]string, error) {
	paths := make([]string, cfg.Variants)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range cfg.Variants {
		paths[i] = variantPath(cfg.Output, i+1)
		g.Go(func() error {
			dc := gg.NewContext(cfg.Width, cfg.Height)
			defer func() { _ = dc.Close() }()

			rnd := mathx.NewRand(cfg.Seed + uint64(i) + 1)
			if err := drawComposition(dc, pal.Shuffled(rnd), rnd); err != nil {
				return fmt.Errorf("sketchdemo: variant %d: %w", i+1, err)
			}
			if err := dc.SavePNG(paths[i]); err != nil {
				return fmt.Errorf("sketchdemo: saving %s: %w", paths[i], err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// variantPath turns "out/sketch.png" into "out/sketch-3.png".
func variantPath(output string, n int) string {
	ext := filepath.Ext(output)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(output, ext), n, ext)
}
