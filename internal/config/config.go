package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path is the tunables file location, relative to the process working directory.
const Path = "config/interaction.yaml"

// Config holds the interaction engine tunables. All distances are in meters,
// all angles in radians.
type Config struct {
	// TouchRadius is how close a controller origin must be to a handle sphere
	// for the handle to become a candidate.
	TouchRadius float32 `yaml:"touch_radius"`
	// HandleRadius is the rendered radius of grab/rotate handle spheres.
	HandleRadius float32 `yaml:"handle_radius"`
	// PanelMargin extends a surface's pointable area beyond its rectangle.
	PanelMargin float32 `yaml:"panel_margin"`
	// ActiveMarginScale widens PanelMargin while a drag is active on that
	// surface, so the gesture is not lost at the rectangle edge.
	ActiveMarginScale float32 `yaml:"active_margin_scale"`
	// FloorMin is the lowest Y any HUD placement may reach.
	FloorMin float32 `yaml:"floor_min"`
	// MinRayLength and MaxRayLength clamp the displayed controller ray.
	MinRayLength float32 `yaml:"min_ray_length"`
	MaxRayLength float32 `yaml:"max_ray_length"`
	// PlacementEpsilon is the change threshold below which a placement write
	// does not re-dirty the rendered transform.
	PlacementEpsilon float32 `yaml:"placement_epsilon"`
	// PitchLimit keeps pitch gestures short of gimbal lock at +-pi/2.
	PitchLimitEpsilon float32 `yaml:"pitch_limit_epsilon"`
	// MinVolumeScale and MaxVolumeScale bound the user scale gesture.
	MinVolumeScale float32 `yaml:"min_volume_scale"`
	MaxVolumeScale float32 `yaml:"max_volume_scale"`
	// RecenterDuration is how long a HUD placement reset animates, in seconds.
	RecenterDuration float32 `yaml:"recenter_duration"`
}

// Default returns the engine tunables used when no config file exists.
func Default() Config {
	return Config{
		TouchRadius:       0.12,
		HandleRadius:      0.02,
		PanelMargin:       0.05,
		ActiveMarginScale: 1.5,
		FloorMin:          0.05,
		MinRayLength:      0.05,
		MaxRayLength:      5.0,
		PlacementEpsilon:  1e-4,
		PitchLimitEpsilon: 0.01,
		MinVolumeScale:    0.25,
		MaxVolumeScale:    4.0,
		RecenterDuration:  0.3,
	}
}

// Load reads tunables from config/interaction.yaml. If the file is missing or
// invalid, returns Default() and does not create a file.
func Load() Config {
	data, err := os.ReadFile(Path)
	if err != nil {
		return Default()
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// Save writes tunables to config/interaction.yaml, creating the config
// directory if needed.
func Save(cfg Config) error {
	dir := filepath.Dir(Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(Path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
