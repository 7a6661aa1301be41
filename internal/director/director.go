package director

import "fmt"

const (
	// DefaultElevation is the fixed camera elevation in degrees.
	DefaultElevation = 30.0

	// FullTurn is the number of frames in one complete camera orbit.
	FullTurn = 360
)

// AzimuthFor returns the camera azimuth in degrees for the zero-based frame
// index. The camera advances one degree per frame and wraps every full turn.
func AzimuthFor(index int) int {
	if index < 0 {
		panic(fmt.Sprintf("director: negative frame index %d", index))
	}
	return index % FullTurn
}

// CameraState is the camera placement requested for one frame.
type CameraState struct {
	Elevation float64 // degrees above the xy plane
	Azimuth   float64 // degrees around the z axis
}

// Sweep orbits the camera at a constant elevation.
type Sweep struct {
	Elevation float64
}

// NewSweep returns a Sweep at DefaultElevation.
func NewSweep() Sweep {
	return Sweep{Elevation: DefaultElevation}
}

// Camera returns the camera placement for the frame index.
func (s Sweep) Camera(index int) CameraState {
	return CameraState{
		Elevation: s.Elevation,
		Azimuth:   float64(AzimuthFor(index)),
	}
}
