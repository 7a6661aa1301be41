package engine

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/cloud2video/internal/analyzer"
	"github.com/ivlev/cloud2video/internal/config"
	"github.com/ivlev/cloud2video/internal/director"
	"github.com/ivlev/cloud2video/internal/effects"
	"github.com/ivlev/cloud2video/internal/renderer"
	"github.com/ivlev/cloud2video/internal/source"
	"github.com/ivlev/cloud2video/internal/system"
	"github.com/ivlev/cloud2video/internal/video"
)

// VideoProject turns a frame stream into one video file.
type VideoProject struct {
	Config   *config.Config
	Source   source.Source
	Encoder  video.Encoder
	Renderer renderer.Renderer
	Effects  []effects.Effect

	// BenchmarkLog receives one line per run when Config.ShowStats is set.
	BenchmarkLog string
}

func NewVideoProject(cfg *config.Config, src source.Source, ve video.Encoder, r renderer.Renderer, effs ...effects.Effect) *VideoProject {
	return &VideoProject{
		Config:       cfg,
		Source:       src,
		Encoder:      ve,
		Renderer:     r,
		Effects:      effs,
		BenchmarkLog: "benchmark.log",
	}
}

// timings are the wall-clock durations of the pipeline stages.
type timings struct {
	parse, render, finalize, total time.Duration
}

// Run parses the whole input, then renders and encodes it. Nothing is
// written to the output path unless every frame parsed.
func (p *VideoProject) Run(ctx context.Context) error {
	startTime := time.Now()
	var t timings

	if c, ok := p.Encoder.(video.Checker); ok {
		if err := c.Check(); err != nil {
			return err
		}
	}

	frames, err := source.ReadAll(p.Source)
	if err != nil {
		return err
	}
	t.parse = time.Since(startTime)

	summary := analyzer.Summarize(frames, config.AxisBounds)
	for _, w := range summary.Warnings() {
		fmt.Printf("[!] %s\n", w)
	}

	sweep := director.Sweep{Elevation: config.Elevation}

	fmt.Println("--- [PROJECT: POINT CLOUD SWEEP] ---")
	fmt.Printf("[*] Source: %s | Frames: %d | Points: %d\n", p.Config.InputPath, len(frames), summary.Points)
	fmt.Printf("[*] Resolution: %dx%d @ %d FPS | Duration: %.2fs\n",
		p.Config.Size, p.Config.Size, p.Config.FPS, float64(len(frames))/float64(p.Config.FPS))
	fmt.Println("------------------------------------")

	stream, err := p.Encoder.Open(ctx, p.Config.OutputVideo, video.Params{
		Width:   p.Config.Size,
		Height:  p.Config.Size,
		FPS:     p.Config.FPS,
		Codec:   p.Config.VideoEncoder,
		Quality: p.Config.Quality,
	})
	if err != nil {
		return err
	}

	renderStart := time.Now()
	if err := p.renderAndEncode(ctx, frames, sweep, stream); err != nil {
		if aerr := stream.Abort(); aerr != nil {
			log.Printf("[!] Failed to remove partial output: %v", aerr)
		}
		return err
	}
	t.render = time.Since(renderStart)

	fmt.Println("[*] Finalizing video...")
	finalizeStart := time.Now()
	if err := stream.Close(); err != nil {
		return fmt.Errorf("finalize video: %w", err)
	}
	t.finalize = time.Since(finalizeStart)

	// The scenario describes a finished video only.
	if p.Config.ScenarioOutput != "" {
		if err := p.writeScenario(sweep, frames); err != nil {
			return err
		}
	}
	t.total = time.Since(startTime)

	if p.Config.ShowStats {
		p.report(len(frames), t)
	}
	return nil
}

// renderAndEncode runs the driver and the encoder as two stages joined by an
// unbuffered channel. The driver is the only goroutine touching the
// renderer; the encoder receives images in frame order.
func (p *VideoProject) renderAndEncode(ctx context.Context, frames []source.Frame, sweep director.Sweep, stream video.Stream) error {
	g, gctx := errgroup.WithContext(ctx)
	rendered := make(chan Rendered)
	driver := NewDriver(p.Renderer, sweep, p.Effects...)

	g.Go(func() error {
		defer close(rendered)
		_, err := driver.Run(gctx, Frames(frames), func(r Rendered) error {
			select {
			case rendered <- r:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
		return err
	})

	g.Go(func() error {
		total := len(frames)
		next := 0
		for r := range rendered {
			if r.Index != next {
				return fmt.Errorf("frame %d delivered out of order, expected %d", r.Index, next)
			}
			if err := stream.WriteFrame(r.Image); err != nil {
				return fmt.Errorf("encode frame %d: %w", r.Index, err)
			}
			system.PutImage(r.Image)
			next++
			if every := p.Config.ProgressEvery; (every > 0 && next%every == 0) || next == total {
				fmt.Printf("[>] Ready: %d/%d\n", next, total)
			}
		}
		return nil
	})

	return g.Wait()
}

func (p *VideoProject) writeScenario(sweep director.Sweep, frames []source.Frame) error {
	scenario := sweep.BuildScenario(frames, director.Settings{
		FPS:       p.Config.FPS,
		Size:      p.Config.Size,
		Elevation: config.Elevation,
		Bounds:    config.AxisBounds,
	})
	if err := director.WriteScenario(scenario, p.Config.ScenarioOutput); err != nil {
		return fmt.Errorf("write scenario: %w", err)
	}
	fmt.Printf("[*] Scenario saved: %s\n", p.Config.ScenarioOutput)
	return nil
}

func (p *VideoProject) report(frameCount int, t timings) {
	fps := float64(frameCount) / t.total.Seconds()
	snap := system.TakeSnapshot()
	report := fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Total Time: %.2fs\n"+
			"Parsing: %.2fs\n"+
			"Rendering + Encoding: %.2fs\n"+
			"Finalizing: %.2fs\n"+
			"Effective FPS: %.2f\n"+
			"Memory: %s\n"+
			"----------------------------\n",
		p.Config.BuildVersion, t.total.Seconds(), t.parse.Seconds(), t.render.Seconds(),
		t.finalize.Seconds(), fps, snap,
	)
	fmt.Print(report)

	if p.BenchmarkLog == "" {
		return
	}
	logEntry := fmt.Sprintf("[%s] Build: %s | Input: %s | Frames: %d | Total: %.2fs | Render: %.2fs | FPS: %.2f | RSS: %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.Config.BuildVersion,
		filepath.Base(p.Config.InputPath),
		frameCount,
		t.total.Seconds(),
		t.render.Seconds(),
		fps,
		system.FormatBytes(snap.RSS),
	)
	f, err := os.OpenFile(p.BenchmarkLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Printf("[!] Failed to write %s: %v\n", p.BenchmarkLog, err)
		return
	}
	_, werr := f.WriteString(logEntry)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		fmt.Printf("[!] Failed to write %s: %v\n", p.BenchmarkLog, werr)
	}
}
