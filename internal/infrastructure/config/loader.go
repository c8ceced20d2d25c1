package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownLevel is returned when no level file exists for an id
var ErrUnknownLevel = errors.New("unknown level")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
}

// Loader loads game configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	return &cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "entities.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities.json: %w", err)
	}

	var cfg EntitiesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entities.json: %w", err)
	}

	return &cfg, nil
}

// LoadLevel loads levels/level<id>.yaml
func (l *Loader) LoadLevel(id int) (*LevelConfig, error) {
	path := fmt.Sprintf("levels/level%d.yaml", id)
	data, err := fs.ReadFile(l.fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("level %d: %w", id, ErrUnknownLevel)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read level %d: %w", id, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %d: %w", id, err)
	}
	if cfg.ID != id {
		return nil, fmt.Errorf("level file %s declares id %d", path, cfg.ID)
	}
	if len(cfg.Platforms) == 0 {
		return nil, fmt.Errorf("level %d has no platforms", id)
	}

	return &cfg, nil
}

// LoadLevels loads every listed level
func (l *Loader) LoadLevels(ids ...int) (map[int]*LevelConfig, error) {
	levels := make(map[int]*LevelConfig, len(ids))
	for _, id := range ids {
		cfg, err := l.LoadLevel(id)
		if err != nil {
			return nil, err
		}
		levels[id] = cfg
	}
	return levels, nil
}

// LoadAll loads all base configurations (physics, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Entities: entities,
	}, nil
}
