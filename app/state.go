package app

import (
	"sync"

	"spheretrace/internal/geom"
	"spheretrace/internal/tracer"
)

// CameraState is the camera shared by the input path and the render path.
//
// Input mutates it through Nudge; a render pass works on one Snapshot taken
// before the pass starts, so a pass never observes a half-applied move.
type CameraState struct {
	mu  sync.Mutex
	cam tracer.Camera
	rev uint64
}

func NewCameraState(cam tracer.Camera) *CameraState {
	return &CameraState{cam: cam}
}

// Snapshot returns a copy of the camera and its revision. The revision
// increases on every Nudge.
func (s *CameraState) Snapshot() (tracer.Camera, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cam, s.rev
}

// Nudge moves the camera origin vertically by dy.
func (s *CameraState) Nudge(dy float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam.Origin.Y += dy
	s.rev++
}

func (s *CameraState) Origin() geom.Vec3 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cam.Origin
}
