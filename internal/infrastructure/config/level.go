package config

// LevelConfig is the root config for levels/level<N>.yaml
type LevelConfig struct {
	ID          int              `yaml:"id"`
	Name        string           `yaml:"name"`
	Bounds      BoundsConfig     `yaml:"bounds"`
	LaneDepth   float64          `yaml:"laneDepth"`
	Platforms   []PlatformConfig `yaml:"platforms"`
	Ladders     []LadderSpan     `yaml:"ladders"`
	PlayerSpawn PointConfig      `yaml:"playerSpawn"`
	BarrelSpawn PointConfig      `yaml:"barrelSpawn"`
	Goal        GoalConfig       `yaml:"goal"`
}

type BoundsConfig struct {
	XMin   float64 `yaml:"xMin"`
	XMax   float64 `yaml:"xMax"`
	FloorY float64 `yaml:"floorY"`
}

type PlatformConfig struct {
	Height float64 `yaml:"height"`
	XMin   float64 `yaml:"xMin"`
	XMax   float64 `yaml:"xMax"`
	Depth  float64 `yaml:"depth"`
}

type LadderSpan struct {
	XMin   float64 `yaml:"xMin"`
	XMax   float64 `yaml:"xMax"`
	Height float64 `yaml:"height"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type GoalConfig struct {
	Point  PointConfig `yaml:"point"`
	Entity PointConfig `yaml:"entity"`
}
