package entity

import "github.com/go-gl/mathgl/mgl64"

// Box is an axis-aligned bounding box
type Box struct {
	Min, Max mgl64.Vec3
}

// BoxAround builds a box from its center and half extents
func BoxAround(center, half mgl64.Vec3) Box {
	return Box{Min: center.Sub(half), Max: center.Add(half)}
}

// Intersects reports whether two boxes overlap (touching counts)
func (b Box) Intersects(o Box) bool {
	for i := 0; i < 3; i++ {
		if b.Max[i] < o.Min[i] || o.Max[i] < b.Min[i] {
			return false
		}
	}
	return true
}

// Top returns the upper face height
func (b Box) Top() float64 {
	return b.Max[1]
}

// ContainsXZ reports whether the vertical line through p crosses the box footprint
func (b Box) ContainsXZ(p mgl64.Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] && p[2] >= b.Min[2] && p[2] <= b.Max[2]
}
