package director

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ScenarioPathFor derives the scenario file name that accompanies a video,
// e.g. out/run.mp4 -> out/run.scenario.yaml.
func ScenarioPathFor(videoPath string) string {
	ext := filepath.Ext(videoPath)
	base := strings.TrimSuffix(videoPath, ext)
	return fmt.Sprintf("%s.scenario.yaml", base)
}
