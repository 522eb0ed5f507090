// whitted renders one of the built-in scenes with the recursive ray tracer
// and writes the result as a PNG.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
)

// cliFlags holds the command line settings that override the config file
type cliFlags struct {
	config     string
	scene      string
	width      int
	height     int
	depth      int
	samples    int
	workers    int
	out        string
	texture    string
	debugPixel string
}

func registerFlags(fs *flag.FlagSet) *cliFlags {
	defaults := loaders.DefaultRenderConfig()
	f := &cliFlags{}
	fs.StringVar(&f.config, "config", "", "YAML render configuration file.")
	fs.StringVar(&f.scene, "scene", defaults.Scene, fmt.Sprintf("Scene to render: %s.", strings.Join(scene.Names(), ", ")))
	fs.IntVar(&f.width, "width", defaults.Width, "Image width in pixels.")
	fs.IntVar(&f.height, "height", defaults.Height, "Image height in pixels.")
	fs.IntVar(&f.depth, "depth", defaults.Depth, "Number of reflection bounces.")
	fs.IntVar(&f.samples, "samples", defaults.Samples, "Supersamples per axis; each pixel averages samples² rays.")
	fs.IntVar(&f.workers, "workers", defaults.Workers, "Tiles rendered concurrently, 0 uses every CPU.")
	fs.StringVar(&f.out, "out", "", "Output PNG path. Defaults to output/<scene>/render_<timestamp>.png.")
	fs.StringVar(&f.texture, "texture", "", "PNG or JPEG image used as the scene texture.")
	fs.StringVar(&f.debugPixel, "debug-pixel", "", "Log every sample of pixel \"x,y\" (origin at the bottom left).")
	return f
}

// renderConfig loads the config file, if any, and applies every flag that was
// set explicitly on the command line
func (f *cliFlags) renderConfig(fs *flag.FlagSet) (loaders.RenderConfig, error) {
	cfg := loaders.DefaultRenderConfig()
	if f.config != "" {
		var err error
		if cfg, err = loaders.LoadRenderConfig(f.config); err != nil {
			return cfg, err
		}
	}

	var err error
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "scene":
			cfg.Scene = f.scene
		case "width":
			cfg.Width = f.width
		case "height":
			cfg.Height = f.height
		case "depth":
			cfg.Depth = f.depth
		case "samples":
			cfg.Samples = f.samples
		case "workers":
			cfg.Workers = f.workers
		case "out":
			cfg.Out = f.out
		case "texture":
			cfg.Texture = f.texture
		case "debug-pixel":
			var p *[2]int
			if p, err = parseDebugPixel(f.debugPixel); err == nil {
				cfg.DebugPixel = p
			}
		}
	})
	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// parseDebugPixel parses "x,y"
func parseDebugPixel(s string) (*[2]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("debug pixel %q: want x,y", s)
	}
	var p [2]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("debug pixel %q: %w", s, err)
		}
		p[i] = v
	}
	return &p, nil
}

// outputPath returns the configured output path or a timestamped default
func outputPath(cfg loaders.RenderConfig, now time.Time) string {
	if cfg.Out != "" {
		return cfg.Out
	}
	return filepath.Join("output", cfg.Scene, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

// glogLogger adapts glog to core.Logger
type glogLogger struct{}

func (glogLogger) Printf(format string, args ...interface{}) {
	glog.InfoDepth(1, strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
}

// buildScene creates the configured scene with light and background overrides applied
func buildScene(cfg loaders.RenderConfig) (*scene.Scene, error) {
	opts, err := cfg.SceneOptions()
	if err != nil {
		return nil, err
	}
	s, err := scene.ByName(cfg.Scene, opts)
	if err != nil {
		return nil, err
	}
	if err := s.ApplyLightOverrides(cfg.Lights); err != nil {
		return nil, err
	}
	if b := cfg.Background; b != nil {
		s.Background = core.NewVec3(b[0], b[1], b[2])
	}
	return s, nil
}

func run(cfg loaders.RenderConfig, logger core.Logger) (string, renderer.RenderStats, error) {
	s, err := buildScene(cfg)
	if err != nil {
		return "", renderer.RenderStats{}, err
	}

	if glog.V(1) {
		for i, light := range s.Lights {
			glog.Infof("light %d: %v", i, light)
		}
	}

	opts := []renderer.Option{renderer.WithLogger(logger), renderer.WithWorkers(cfg.Workers)}
	if p := cfg.DebugPixel; p != nil {
		opts = append(opts, renderer.WithDebugPixel(p[0], p[1]))
	}
	rt := renderer.NewRayTracer(s.Background, opts...)

	fb := renderer.NewImageBuffer(cfg.Width, cfg.Height)
	stats, err := rt.Render(fb, cfg.Depth, s, cfg.Samples)
	if err != nil {
		return "", stats, fmt.Errorf("while rendering scene %s: %w", cfg.Scene, err)
	}

	filename := outputPath(cfg, time.Now())
	if err := loaders.SavePNG(filename, fb.Image()); err != nil {
		return "", stats, err
	}
	return filename, stats, nil
}

// summary formats the headline numbers of a render for the log
func summary(stats renderer.RenderStats, fileSize int64) string {
	perSecond := 0.0
	if seconds := stats.Duration.Seconds(); seconds > 0 {
		perSecond = float64(stats.TotalSamples) / seconds
	}
	return fmt.Sprintf("%s samples in %v (%s samples/s), %s written",
		humanize.Comma(int64(stats.TotalSamples)), stats.Duration.Round(time.Millisecond),
		humanize.Comma(int64(perSecond)), humanize.Bytes(uint64(max(0, fileSize))))
}

func main() {
	f := registerFlags(flag.CommandLine)
	flag.Parse()
	defer glog.Flush()

	cfg, err := f.renderConfig(flag.CommandLine)
	if err != nil {
		glog.Errorf("Invalid configuration: %v", err)
		glog.Flush()
		os.Exit(2)
	}

	glog.Infof("scene: %v", cfg.Scene)
	glog.Infof("size: %dx%d", cfg.Width, cfg.Height)
	glog.Infof("depth: %v", cfg.Depth)
	glog.Infof("samples: %v", cfg.Samples)

	filename, stats, err := run(cfg, glogLogger{})
	if err != nil {
		glog.Errorf("Render failed: %v", err)
		glog.Flush()
		os.Exit(1)
	}

	var size int64
	if info, err := os.Stat(filename); err == nil {
		size = info.Size()
	}
	glog.Infof("Render completed: %s", summary(stats, size))
	glog.Infof("Render saved as %s", filename)
}
