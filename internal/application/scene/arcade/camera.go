package arcade

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/barrelrun/internal/application/system"
	"github.com/younwookim/barrelrun/internal/domain/entity"
)

const (
	fieldOfView = 50.0 // degrees
	nearPlane   = 0.1
	farPlane    = 200.0
)

var (
	worldUp = mgl64.Vec3{0, 1, 0}

	// side view frames the whole girder stack from the front
	sideEye    = mgl64.Vec3{1, -0.5, 42}
	sideCenter = mgl64.Vec3{1, -0.5, 5}

	// follow view trails the player, looking down +x
	followOffset = mgl64.Vec3{-7, 2.5, 0}
	followLook   = mgl64.Vec3{4, 0.5, 0}
)

// Camera projects world positions onto the screen
type Camera struct {
	mvp mgl64.Mat4
	w   float64
	h   float64
}

// NewCamera builds the camera for mode; target is the followed position
func NewCamera(mode system.CameraMode, target mgl64.Vec3, screenW, screenH int) Camera {
	eye, center := sideEye, sideCenter
	if mode == system.CameraFollow {
		eye, center = target.Add(followOffset), target.Add(followLook)
	}

	proj := mgl64.Perspective(mgl64.DegToRad(fieldOfView), float64(screenW)/float64(screenH), nearPlane, farPlane)
	view := mgl64.LookAtV(eye, center, worldUp)

	return Camera{
		mvp: proj.Mul4(view),
		w:   float64(screenW),
		h:   float64(screenH),
	}
}

// Project returns the screen position of p.
// ok is false when p lies behind the camera.
func (c Camera) Project(p mgl64.Vec3) (x, y float64, ok bool) {
	clip := c.mvp.Mul4x1(p.Vec4(1))
	if clip[3] <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip[3])
	return (ndc[0] + 1) / 2 * c.w, (1 - ndc[1]) / 2 * c.h, true
}

// ProjectBox returns the screen rectangle covering every corner of b
func (c Camera) ProjectBox(b entity.Box) (x0, y0, x1, y1 float64, ok bool) {
	for i := 0; i < 8; i++ {
		var corner mgl64.Vec3
		for axis := 0; axis < 3; axis++ {
			corner[axis] = b.Min[axis]
			if i&(1<<axis) != 0 {
				corner[axis] = b.Max[axis]
			}
		}
		sx, sy, visible := c.Project(corner)
		if !visible {
			return 0, 0, 0, 0, false
		}
		if i == 0 {
			x0, y0, x1, y1 = sx, sy, sx, sy
			continue
		}
		x0, y0 = min(x0, sx), min(y0, sy)
		x1, y1 = max(x1, sx), max(y1, sy)
	}
	return x0, y0, x1, y1, true
}
