package config

// PhysicsConfig is the root config for physics.json.
// Velocities and accelerations are in world units per tick.
type PhysicsConfig struct {
	Display  DisplayConfig  `json:"display"`
	Ground   GroundConfig   `json:"ground"`
	Movement MovementConfig `json:"movement"`
	Jump     JumpConfig     `json:"jump"`
	Ladder   LadderConfig   `json:"ladder"`
	Barrel   BarrelConfig   `json:"barrel"`
	Scoring  ScoringConfig  `json:"scoring"`
	Win      WinConfig      `json:"win"`
	Pause    PauseConfig    `json:"pause"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// GroundConfig configures the downward ground probe
type GroundConfig struct {
	RayLift         float64 `json:"rayLift"`         // ray origin above the feet
	Threshold       float64 `json:"threshold"`       // max gap below the feet for the player
	BarrelThreshold float64 `json:"barrelThreshold"` // max gap below the feet for barrels
	HeightTolerance float64 `json:"heightTolerance"` // distance to a legal platform height
}

type MovementConfig struct {
	Gravity         float64 `json:"gravity"`
	MinFallVelocity float64 `json:"minFallVelocity"`
	WalkSpeed       float64 `json:"walkSpeed"`
	AirSpeed        float64 `json:"airSpeed"`
	SnapDistance    float64 `json:"snapDistance"`
	LandingOffset   float64 `json:"landingOffset"`
	HeadMargin      float64 `json:"headMargin"`
	HeadClearance   float64 `json:"headClearance"`
}

type JumpConfig struct {
	Force           float64 `json:"force"`
	Duration        float64 `json:"duration"` // seconds
	Cooldown        float64 `json:"cooldown"` // seconds
	Nudge           float64 `json:"nudge"`
	HorizontalSpeed float64 `json:"horizontalSpeed"`
}

type LadderConfig struct {
	ClimbUp    float64 `json:"climbUp"`
	ClimbDown  float64 `json:"climbDown"`
	DepthShift float64 `json:"depthShift"`
	HeightBand float64 `json:"heightBand"`
}

type BarrelConfig struct {
	SpawnInterval   float64 `json:"spawnInterval"` // seconds
	DescendChance   float64 `json:"descendChance"` // per tick while over a ladder
	DepthShift      float64 `json:"depthShift"`
	Gravity         float64 `json:"gravity"`
	MinFallVelocity float64 `json:"minFallVelocity"`
}

type ScoringConfig struct {
	JumpOverPoints      int     `json:"jumpOverPoints"`
	JumpOverMargin      float64 `json:"jumpOverMargin"`
	HorizontalTolerance float64 `json:"horizontalTolerance"`
	DepthTolerance      float64 `json:"depthTolerance"`
	MaxDistance         float64 `json:"maxDistance"`
	DeathDistance       float64 `json:"deathDistance"`
}

type WinConfig struct {
	GoalTolerance float64 `json:"goalTolerance"`
	EntityRadius  float64 `json:"entityRadius"`
}

type PauseConfig struct {
	ResumeCountdown float64 `json:"resumeCountdown"` // seconds, 0 resumes at once
}

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player PlayerConfig `json:"player"`
	Barrel BarrelEntity `json:"barrel"`
}

type PlayerConfig struct {
	HalfExtents [3]float64 `json:"halfExtents"`
}

type BarrelEntity struct {
	Radius      float64 `json:"radius"`
	PatrolSpeed float64 `json:"patrolSpeed"`
}
