package config

import "github.com/vovakirdan/penguin-flap/internal/core"

// GapSize returns the gap for the given score. The gap shrinks by ShrinkBy
// every ShrinkEvery points and stays within [Min, Max].
func (g GapConfig) GapSize(score int) float64 {
	if score < 0 {
		score = 0
	}
	reduction := 0.0
	if g.ShrinkEvery > 0 {
		reduction = float64(score/g.ShrinkEvery) * g.ShrinkBy
	}
	return core.Clamp(g.Base-reduction, g.Min, g.Max)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// baseGapCut returns how far below Max a preset starts the gap.
func baseGapCut(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 10
	case DifficultyHard:
		return 30
	default:
		return 0
	}
}

// ApplyPenguinPreset modifies the config based on a difficulty preset.
// Presets shift the starting gap only; the shrink rule is unchanged
// except for fixed, which disables shrinking.
func ApplyPenguinPreset(cfg *PenguinConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Gap.ShrinkBy = 0
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Gap.Base = core.Clamp(cfg.Gap.Max-baseGapCut(preset), cfg.Gap.Min, cfg.Gap.Max)
	}
}
