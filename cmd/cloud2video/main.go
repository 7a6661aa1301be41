package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ivlev/cloud2video/internal/config"
	"github.com/ivlev/cloud2video/internal/director"
	"github.com/ivlev/cloud2video/internal/effects"
	"github.com/ivlev/cloud2video/internal/engine"
	"github.com/ivlev/cloud2video/internal/renderer"
	"github.com/ivlev/cloud2video/internal/source"
	"github.com/ivlev/cloud2video/internal/system"
	"github.com/ivlev/cloud2video/internal/video"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <output.mp4|output.gif>\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Reads point-cloud frames from stdin (x y z per line, blank line between frames)")
		fmt.Fprintln(flag.CommandLine.Output(), "and renders them as a video with the camera turning one degree per frame.")
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
	}

	def := config.Default()
	configPtr := flag.String("config", "", "YAML file with settings; explicit flags take precedence")
	inputPtr := flag.String("input", def.InputPath, "Frame stream to read (- for stdin)")
	fpsPtr := flag.Int("fps", def.FPS, "Output frame rate")
	sizePtr := flag.Int("size", def.Size, "Width and height of the video in pixels")
	pointSizePtr := flag.Float64("point-size", def.PointSize, "Marker area in points² (matplotlib s)")
	depthShadePtr := flag.Bool("depth-shade", def.DepthShade, "Fade distant points toward the background")
	encoderPtr := flag.String("encoder", "", "ffmpeg video codec (empty: best available H.264)")
	qualityPtr := flag.Int("quality", 0, "Video quality (0 - auto, x264: CRF 1-51, NVENC: CQ, VideoToolbox: bitrate = Q*100kbit/s)")
	scenarioPtr := flag.String("scenario-output", "", "Write the camera sweep as YAML to this path (\"auto\" places it next to the video)")
	progressPtr := flag.Int("progress", def.ProgressEvery, "Report progress every N frames (0 - only at the end)")
	debugPtr := flag.Bool("debug", false, "Stamp frame index and camera angles on every frame")
	qrPtr := flag.Bool("qr", false, "Stamp a QR code with the frame index on every frame")
	statsPtr := flag.Bool("stats", false, "Print a performance report and append it to benchmark.log")

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPtr != "" {
		if err := config.Load(*configPtr, cfg); err != nil {
			log.Fatalf("[-] Error loading config: %v", err)
		}
	}

	// Explicitly set flags override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.InputPath = *inputPtr
		case "fps":
			cfg.FPS = *fpsPtr
		case "size":
			cfg.Size = *sizePtr
		case "point-size":
			cfg.PointSize = *pointSizePtr
		case "depth-shade":
			cfg.DepthShade = *depthShadePtr
		case "encoder":
			cfg.VideoEncoder = *encoderPtr
		case "quality":
			cfg.Quality = *qualityPtr
		case "scenario-output":
			cfg.ScenarioOutput = *scenarioPtr
		case "progress":
			cfg.ProgressEvery = *progressPtr
		case "debug":
			cfg.Debug = *debugPtr
		case "qr":
			cfg.QRStamp = *qrPtr
		case "stats":
			cfg.ShowStats = *statsPtr
		}
	})
	cfg.OutputVideo = flag.Arg(0)
	cfg.BuildVersion = version
	if cfg.ScenarioOutput == "auto" {
		cfg.ScenarioOutput = director.ScenarioPathFor(cfg.OutputVideo)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] Invalid settings: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ve := video.ForPath(cfg.OutputVideo)
	if _, ok := ve.(*video.FFmpegEncoder); ok && cfg.VideoEncoder == "" {
		if err := ve.(video.Checker).Check(); err != nil {
			log.Fatalf("[-] %v", err)
		}
		cfg.VideoEncoder = system.GetBestH264Encoder(ctx)
		if cfg.VideoEncoder != "libx264" {
			fmt.Printf("[*] Hardware acceleration detected: %s\n", cfg.VideoEncoder)
		}
	}

	src, err := source.Open(cfg.InputPath)
	if err != nil {
		log.Fatalf("[-] Error opening input: %v", err)
	}
	defer src.Close()

	opts := renderer.DefaultOptions()
	opts.Size = cfg.Size
	opts.Bounds = config.AxisBounds
	opts.PointSize = cfg.PointSize
	opts.DepthShade = cfg.DepthShade

	var effs []effects.Effect
	if cfg.Debug {
		effs = append(effs, &effects.DebugText{})
	}
	if cfg.QRStamp {
		effs = append(effs, &effects.QRStamp{})
	}

	project := engine.NewVideoProject(cfg, src, ve, renderer.NewScatterRenderer(opts), effs...)
	if err := project.Run(ctx); err != nil {
		log.Fatalf("[-] Project error: %v", err)
	}

	fmt.Printf("[+++] Success! Result: %s\n", cfg.OutputVideo)
}
