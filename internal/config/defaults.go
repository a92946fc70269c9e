package config

import (
	_ "embed"
)

//go:embed defaults/logroll.yaml
var defaultLogrollYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultLogrollYAML))
	copy(out, defaultLogrollYAML)
	return out
}

// DefaultLogrollConfig returns the default log roll configuration.
// It matches defaults/logroll.yaml and is used if the embed cannot be parsed.
func DefaultLogrollConfig() LogrollConfig {
	return LogrollConfig{
		Grid: GridConfig{
			Columns: 16,
			Rows:    12,
			Anchor:  "center",
		},
		Inertia: InertiaConfig{
			XStep:          0.05,
			YStep:          0.05,
			Growth:         1.01,
			Perturbation:   0.1,
			AngularDivisor: 100,
			VerticalNudge:  0.5,
			SlaveFactor:    0.05,
		},
		Balance: BalanceConfig{
			DropAngle:         20,
			WalkTiltThreshold: 3,
		},
		Walking: WalkingConfig{
			BandRowMin:    9,
			BandRowMax:    10,
			DeadZone:      3,
			StepDivisor:   10,
			MaxWalkedBack: 7,
			Goal:          100,
		},
		Items: ItemsConfig{
			DropCadence:       5,
			OutOfBoundsMargin: 50,
			PenaltyFactor:     100,
			Kinds: []ItemKindCfg{
				{Name: "box_1", Multiplier: 1, Width: 16, Height: 16},
				{Name: "box_2", Multiplier: 2, Width: 16, Height: 16},
				{Name: "mini_log_1", Multiplier: 3, Width: 24, Height: 8},
				{Name: "mini_log_2", Multiplier: 3, Width: 24, Height: 8},
			},
		},
		Scoring: ScoringConfig{
			PerUnit:         100,
			BonusCadence:    10,
			BonusMultiplier: 50,
		},
		Session: SessionConfig{
			EndDelay: 1.5,
		},
		Scene: SceneConfig{
			LogWidth:    96,
			LogHeight:   16,
			LaneMarkers: 20,
			CellPixelsX: 10,
			CellPixelsY: 25,
		},
		Physics: PhysicsConfig{
			Gravity:     0.3,
			FrictionAir: 0.01,
			SurfaceDrag: 0.02,
		},
	}
}
