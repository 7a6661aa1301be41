package video

import "fmt"

// EvenSizeFilter returns an ffmpeg filter that pads odd dimensions to the
// next even size, which yuv420p requires. Even sizes pass through unchanged.
func EvenSizeFilter(width, height int) string {
	w, h := width+width%2, height+height%2
	return fmt.Sprintf("pad=%d:%d:0:0:white,setsar=1", w, h)
}
