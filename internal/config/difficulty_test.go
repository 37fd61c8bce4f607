package config

import "testing"

func TestGapSizeScenarios(t *testing.T) {
	g := DefaultPenguinConfig().Gap

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 220},
		{4, 220},
		{5, 219},
		{9, 219},
		{10, 218},
		{349, 151},
		{350, 150},
		{1000, 150},
	}

	for _, tc := range tests {
		if got := g.GapSize(tc.score); got != tc.expected {
			t.Errorf("GapSize(%d) = %g, expected %g", tc.score, got, tc.expected)
		}
	}
}

func TestGapSizeBoundedAndNonIncreasing(t *testing.T) {
	configs := []GapConfig{
		DefaultPenguinConfig().Gap,
		{Base: 300, Min: 100, Max: 250, ShrinkEvery: 3, ShrinkBy: 7},
		{Base: 120, Min: 130, Max: 200, ShrinkEvery: 1, ShrinkBy: 1},
		{Base: 180, Min: 150, Max: 220, ShrinkEvery: 0, ShrinkBy: 5},
	}

	for i, g := range configs {
		prev := g.GapSize(0)
		for s := 0; s <= 2000; s++ {
			got := g.GapSize(s)
			if got < g.Min || got > g.Max {
				t.Fatalf("config %d: GapSize(%d) = %g outside [%g, %g]", i, s, got, g.Min, g.Max)
			}
			if got > prev {
				t.Fatalf("config %d: GapSize(%d) = %g grew from %g", i, s, got, prev)
			}
			prev = got
		}
	}
}

func TestGapSizeNegativeScore(t *testing.T) {
	g := DefaultPenguinConfig().Gap
	if got := g.GapSize(-7); got != g.GapSize(0) {
		t.Errorf("Negative score should behave like zero, got %g", got)
	}
}

func TestApplyPenguinPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		base       float64
		shrinkBy   float64
		parsedFrom string
	}{
		{DifficultyEasy, 220, 1, "easy"},
		{DifficultyNormal, 210, 1, "normal"},
		{DifficultyHard, 190, 1, "hard"},
		{DifficultyFixed, 220, 0, "fixed"},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			if ParsePreset(tc.parsedFrom) != tc.preset {
				t.Fatalf("ParsePreset(%q) = %q", tc.parsedFrom, ParsePreset(tc.parsedFrom))
			}
			cfg := DefaultPenguinConfig()
			ApplyPenguinPreset(&cfg, tc.preset)
			if cfg.Gap.Base != tc.base {
				t.Errorf("Base = %g, expected %g", cfg.Gap.Base, tc.base)
			}
			if cfg.Gap.ShrinkBy != tc.shrinkBy {
				t.Errorf("ShrinkBy = %g, expected %g", cfg.Gap.ShrinkBy, tc.shrinkBy)
			}
		})
	}

	if ParsePreset("insane") != "" {
		t.Error("Unknown preset should parse to empty")
	}
}

func TestFixedPresetKeepsGap(t *testing.T) {
	cfg := DefaultPenguinConfig()
	ApplyPenguinPreset(&cfg, DifficultyFixed)
	if cfg.Gap.GapSize(500) != cfg.Gap.Base {
		t.Errorf("Fixed preset should never shrink the gap, got %g", cfg.Gap.GapSize(500))
	}
}
