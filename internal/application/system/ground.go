package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/barrelrun/internal/domain/entity"
	"github.com/younwookim/barrelrun/internal/infrastructure/config"
)

// probeRange is how far below the ray origin surfaces are searched
const probeRange = 100.0

// GroundResult is the outcome of a ground probe
type GroundResult struct {
	Grounded bool
	Platform *entity.Platform
	Hit      Hit
	HasHit   bool
	Gap      float64 // distance between the feet and the hit surface (may be negative)
}

// GroundDetector probes the ground under actors
type GroundDetector struct {
	config config.GroundConfig
	ray    Raycaster
	level  *entity.Level
}

// NewGroundDetector creates a ground detector over the given geometry
func NewGroundDetector(cfg config.GroundConfig, ray Raycaster, level *entity.Level) *GroundDetector {
	return &GroundDetector{config: cfg, ray: ray, level: level}
}

func (d *GroundDetector) probe(pos mgl64.Vec3, threshold float64) GroundResult {
	if d.ray == nil {
		return GroundResult{}
	}
	origin := pos.Add(mgl64.Vec3{0, d.config.RayLift, 0})
	hit, ok := d.ray.CastDown(origin, probeRange)
	if !ok {
		return GroundResult{}
	}

	res := GroundResult{Hit: hit, HasHit: true, Gap: hit.Distance - d.config.RayLift}
	res.Grounded = res.Gap < threshold
	if res.Grounded && hit.Surface != nil {
		res.Platform = hit.Surface.Platform
	}
	return res
}

// DetectPlayer probes under the player. Hits are accepted only near a legal
// platform height, which rejects false positives from other geometry.
func (d *GroundDetector) DetectPlayer(pos mgl64.Vec3) GroundResult {
	res := d.probe(pos, d.config.Threshold)
	if !res.Grounded || d.level == nil {
		return res
	}

	height, dist := d.level.NearestHeight(pos[1])
	if dist > d.config.HeightTolerance {
		res.Grounded = false
		res.Platform = nil
		return res
	}
	if res.Platform == nil || res.Platform.Height != height {
		if p, ok := d.level.PlatformAt(height, pos[0]); ok {
			res.Platform = p
		}
	}
	return res
}

// DetectBarrel probes under a barrel using the raw threshold
func (d *GroundDetector) DetectBarrel(pos mgl64.Vec3) GroundResult {
	res := d.probe(pos, d.config.BarrelThreshold)
	if res.Grounded && res.Platform == nil && d.level != nil {
		// decorative floor: borrow the nearest platform for snapping
		height, _ := d.level.NearestHeight(res.Hit.Point[1])
		if p, ok := d.level.PlatformAt(height, pos[0]); ok {
			res.Platform = p
		}
	}
	return res
}

// within reports whether a and b differ by at most tol
func within(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
