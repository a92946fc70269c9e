// Package config provides YAML-based game configuration loading and
// difficulty presets for the log roll game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/logroll/internal/grid"
)

// LogrollConfig contains all tuning for the log roll game.
type LogrollConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Inertia InertiaConfig `yaml:"inertia"`
	Balance BalanceConfig `yaml:"balance"`
	Walking WalkingConfig `yaml:"walking"`
	Items   ItemsConfig   `yaml:"items"`
	Scoring ScoringConfig `yaml:"scoring"`
	Session SessionConfig `yaml:"session"`
	Scene   SceneConfig   `yaml:"scene"`
	Physics PhysicsConfig `yaml:"physics"`
}

// GridConfig defines the logical layout the walking band is expressed in.
type GridConfig struct {
	Columns int    `yaml:"columns"`
	Rows    int    `yaml:"rows"`
	Anchor  string `yaml:"anchor"` // "start", "center" or "end"
}

// InertiaConfig defines how input pressure accumulates.
type InertiaConfig struct {
	XStep          float64 `yaml:"x_step"`          // Lateral inertia added per tick of left/right input
	YStep          float64 `yaml:"y_step"`          // Vertical inertia added per tick of up/down input
	Growth         float64 `yaml:"growth"`          // Lateral inertia multiplier applied every tick
	Perturbation   float64 `yaml:"perturbation"`    // Width of the random kick given to zero lateral inertia
	AngularDivisor float64 `yaml:"angular_divisor"` // Lateral inertia / divisor = log angular velocity
	VerticalNudge  float64 `yaml:"vertical_nudge"`  // Pixels the character and log move per tick of up/down input
	SlaveFactor    float64 `yaml:"slave_factor"`    // Horizontal pixels per degree of log tilt
}

// BalanceConfig defines tilt thresholds in degrees.
type BalanceConfig struct {
	DropAngle         float64 `yaml:"drop_angle"`
	WalkTiltThreshold float64 `yaml:"walk_tilt_threshold"`
}

// WalkingConfig defines the walking band and distance rules.
type WalkingConfig struct {
	BandRowMin    int     `yaml:"band_row_min"`
	BandRowMax    int     `yaml:"band_row_max"`
	DeadZone      float64 `yaml:"dead_zone"`    // Pixels around the band middle that count as standing still
	StepDivisor   float64 `yaml:"step_divisor"` // |yInertia| / divisor = distance per moving tick
	MaxWalkedBack float64 `yaml:"max_walked_back"`
	Goal          float64 `yaml:"goal"` // 0 disables the goal
}

// ItemsConfig defines item spawning and loss.
type ItemsConfig struct {
	DropCadence       float64       `yaml:"drop_cadence"`         // Walked distance between spawns
	OutOfBoundsMargin float64       `yaml:"out_of_bounds_margin"` // Pixels below the playfield before an item is lost
	PenaltyFactor     int           `yaml:"penalty_factor"`       // Score lost per multiplier point
	Kinds             []ItemKindCfg `yaml:"kinds"`
}

// ItemKindCfg describes one item type.
type ItemKindCfg struct {
	Name       string  `yaml:"name"`
	Multiplier int     `yaml:"multiplier"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
}

// ScoringConfig defines score ticks and bonuses.
type ScoringConfig struct {
	PerUnit         int `yaml:"per_unit"`         // Score per whole unit walked
	BonusCadence    int `yaml:"bonus_cadence"`    // Whole units between bonuses
	BonusMultiplier int `yaml:"bonus_multiplier"` // Bonus per carried multiplier point
}

// SessionConfig defines the end of a run.
type SessionConfig struct {
	EndDelay float64 `yaml:"end_delay"` // Seconds between game over and the session-ended notification
}

// SceneConfig defines body sizes and the pixel scale of the playfield.
type SceneConfig struct {
	LogWidth    float64 `yaml:"log_width"`
	LogHeight   float64 `yaml:"log_height"`
	LaneMarkers int     `yaml:"lane_markers"`
	CellPixelsX float64 `yaml:"cell_pixels_x"` // World pixels per terminal column
	CellPixelsY float64 `yaml:"cell_pixels_y"` // World pixels per terminal row
}

// PhysicsConfig tunes the physics provider.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	FrictionAir float64 `yaml:"friction_air"`
	SurfaceDrag float64 `yaml:"surface_drag"`
}

// Anchor returns the parsed grid anchor.
func (c LogrollConfig) Anchor() grid.Anchor {
	a, err := grid.ParseAnchor(c.Grid.Anchor)
	if err != nil {
		return grid.AnchorCenter
	}
	return a
}

// Validate reports every invalid field at once.
func (c LogrollConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Grid.Columns > 0 && c.Grid.Rows > 0, "grid: columns and rows must be positive, got %dx%d", c.Grid.Columns, c.Grid.Rows)
	if _, err := grid.ParseAnchor(c.Grid.Anchor); err != nil {
		errs = append(errs, err)
	}
	check(c.Inertia.Growth > 1, "inertia: growth must be greater than 1, got %v", c.Inertia.Growth)
	check(c.Inertia.Perturbation != 0, "inertia: perturbation must not be zero")
	check(c.Inertia.AngularDivisor > 0, "inertia: angular_divisor must be positive, got %v", c.Inertia.AngularDivisor)
	check(c.Balance.DropAngle > 0, "balance: drop_angle must be positive, got %v", c.Balance.DropAngle)
	check(c.Walking.BandRowMin >= 0 && c.Walking.BandRowMin <= c.Walking.BandRowMax,
		"walking: band rows must satisfy 0 <= min <= max, got %d..%d", c.Walking.BandRowMin, c.Walking.BandRowMax)
	check(c.Walking.BandRowMax < c.Grid.Rows, "walking: band_row_max %d is outside a %d-row grid", c.Walking.BandRowMax, c.Grid.Rows)
	check(c.Walking.StepDivisor > 0, "walking: step_divisor must be positive, got %v", c.Walking.StepDivisor)
	check(c.Walking.MaxWalkedBack > 0, "walking: max_walked_back must be positive, got %v", c.Walking.MaxWalkedBack)
	check(c.Walking.Goal >= 0, "walking: goal must not be negative, got %v", c.Walking.Goal)
	check(c.Items.DropCadence > 0, "items: drop_cadence must be positive, got %v", c.Items.DropCadence)
	check(len(c.Items.Kinds) > 0, "items: at least one kind is required")
	check(c.Scoring.BonusCadence > 0, "scoring: bonus_cadence must be positive, got %d", c.Scoring.BonusCadence)
	check(c.Session.EndDelay >= 0, "session: end_delay must not be negative, got %v", c.Session.EndDelay)
	check(c.Scene.LogWidth > 0 && c.Scene.LogHeight > 0, "scene: log size must be positive")
	check(c.Scene.CellPixelsX > 0 && c.Scene.CellPixelsY > 0, "scene: cell pixel scale must be positive")

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset adjusts balance tolerances for a difficulty preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *LogrollConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Balance.DropAngle = 25
		cfg.Walking.MaxWalkedBack = 10
		cfg.Inertia.Growth = 1.005
	case DifficultyHard:
		cfg.Balance.DropAngle = 15
		cfg.Walking.MaxWalkedBack = 5
		cfg.Inertia.Growth = 1.015
	}
}
