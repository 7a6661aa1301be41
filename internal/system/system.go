package system

import (
	"context"
	"os/exec"
	"strings"
	"sync"
)

// FFmpegBinary is the name of the encoder executable looked up on PATH.
var FFmpegBinary = "ffmpeg"

// LookupFFmpeg returns the resolved path of the ffmpeg executable.
func LookupFFmpeg() (string, error) {
	return exec.LookPath(FFmpegBinary)
}

var (
	encodersOnce sync.Once
	encodersOut  string
)

// listEncoders returns the output of `ffmpeg -encoders`, cached per process.
func listEncoders(ctx context.Context) string {
	encodersOnce.Do(func() {
		out, err := exec.CommandContext(ctx, FFmpegBinary, "-hide_banner", "-encoders").CombinedOutput()
		if err == nil {
			encodersOut = string(out)
		}
	})
	return encodersOut
}

// GetBestH264Encoder returns the preferred H.264 encoder available to ffmpeg.
func GetBestH264Encoder(ctx context.Context) string {
	// Priority:
	// 1. macOS (VideoToolbox)
	// 2. NVIDIA (NVENC)
	// 3. Software (libx264)
	out := listEncoders(ctx)
	for _, name := range []string{"h264_videotoolbox", "h264_nvenc"} {
		if strings.Contains(out, name) {
			return name
		}
	}
	return "libx264"
}

// DefaultQuality returns the automatic quality setting for an encoder.
func DefaultQuality(encoderName string) int {
	switch encoderName {
	case "h264_videotoolbox":
		return 75 // bitrate = Q*100 kbit/s
	case "h264_nvenc":
		return 28 // CQ, roughly CRF
	default:
		return 23 // x264 CRF
	}
}
