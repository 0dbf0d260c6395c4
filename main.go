package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/renderer"
	"github.com/df07/go-offline-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName string
	width     int
	height    int
	samples   int
	depth     int
	seed      int64
	output    string
	format    string
	quiet     bool
	list      bool
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.sceneName, "scene", "default", "Scene to render (see -list)")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	fs.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum scatter depth (0 = scene default)")
	fs.Int64Var(&opts.seed, "seed", 1, "Random seed; the same seed renders the same image")
	fs.StringVar(&opts.output, "output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	fs.StringVar(&opts.format, "format", "", "Image format: ppm or png (default from -output, else ppm)")
	fs.BoolVar(&opts.quiet, "quiet", false, "Only log errors")
	fs.BoolVar(&opts.list, "list", false, "List available scenes and exit")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Offline Raytracer")
		fmt.Fprintln(stderr, "Usage: raytracer [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	sizes := []struct {
		name  string
		value int
	}{
		{"width", opts.width},
		{"height", opts.height},
		{"samples", opts.samples},
		{"depth", opts.depth},
	}
	for _, flagValue := range sizes {
		if flagValue.value < 0 {
			return options{}, fmt.Errorf("-%s must not be negative, got %d", flagValue.name, flagValue.value)
		}
	}
	return opts, nil
}

// createScene looks up a built-in scene and applies command line overrides
func createScene(opts options) (*scene.Scene, error) {
	s, err := scene.Lookup(opts.sceneName)
	if err != nil {
		return nil, err
	}

	cfg := s.SamplingConfig
	if opts.width > 0 {
		cfg.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Height = opts.height
	}
	if opts.samples > 0 {
		cfg.SamplesPerPixel = opts.samples
	}
	if opts.depth > 0 {
		cfg.MaxDepth = opts.depth
	}
	s.SamplingConfig = cfg
	return s, nil
}

// resolveOutput picks the output path and format from the flags
func resolveOutput(opts options, now time.Time) (string, renderer.Format, error) {
	var format renderer.Format
	var err error

	switch {
	case opts.format != "":
		format, err = renderer.ParseFormat(opts.format)
	case opts.output != "":
		format, err = renderer.FormatFromPath(opts.output)
	default:
		format = renderer.FormatPPM
	}
	if err != nil {
		return "", "", err
	}

	path := opts.output
	if path == "" {
		timestamp := now.Format("20060102_150405")
		path = filepath.Join("output", opts.sceneName, fmt.Sprintf("render_%s.%s", timestamp, format))
	}
	return path, format, nil
}

// logSystemInfo logs the host CPU and memory, best effort
func logSystemInfo(logger core.Logger) {
	cpuInfo, err := cpu.Info()
	if err != nil || len(cpuInfo) == 0 {
		logger.Printf("CPU information unavailable: %v\n", err)
	} else {
		logger.Printf("CPU: %s (%.2f GHz)\n", cpuInfo[0].ModelName, cpuInfo[0].Mhz/1000)
	}

	if cores, err := cpu.Counts(true); err != nil {
		logger.Printf("CPU core count unavailable: %v\n", err)
	} else {
		logger.Printf("CPU cores: %d logical\n", cores)
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Printf("Memory information unavailable: %v\n", err)
		return
	}
	logger.Printf("RAM: %d MiB total\n", memInfo.Total/(1024*1024))
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}

	if opts.list {
		for _, info := range scene.ListScenes() {
			fmt.Fprintf(stdout, "  %-12s %s\n", info.Name, info.Description)
		}
		return nil
	}

	var logger core.Logger = log.New(stderr, "", log.LstdFlags)
	if opts.quiet {
		logger = core.NopLogger{}
	}

	selectedScene, err := createScene(opts)
	if err != nil {
		return err
	}
	path, format, err := resolveOutput(opts, time.Now())
	if err != nil {
		return err
	}

	logSystemInfo(logger)
	logger.Printf("Using %s scene with seed %d\n", opts.sceneName, opts.seed)

	raytracer := renderer.NewRaytracer(selectedScene, core.NewSeededSampler(opts.seed), logger)
	img, stats := raytracer.RenderPass()

	if err := renderer.SaveImage(path, img, format); err != nil {
		return err
	}
	logger.Printf("Render saved as %s (%d pixels, %d samples in %v)\n",
		path, stats.TotalPixels, stats.TotalSamples, stats.Elapsed)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
