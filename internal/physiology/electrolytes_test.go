package physiology

import (
	"math"
	"testing"

	"bloodgas/domain/abg"
)

// TestAnionGapIdentity verifies the gap arithmetic
func TestAnionGapIdentity(t *testing.T) {
	if gap := AnionGap(140, 104, 24); gap != 12 {
		t.Errorf("Expected AG of 12, got %v", gap)
	}
	if gap := AnionGapWithPotassium(140, 4, 104, 24); gap != 16 {
		t.Errorf("Expected AG with K of 16, got %v", gap)
	}
}

// TestCorrectAnionGapForAlbumin adds 2.5 per g/dL below 4
func TestCorrectAnionGapForAlbumin(t *testing.T) {
	if got := CorrectAnionGapForAlbumin(12, 4.0); got != 12 {
		t.Errorf("Normal albumin should not shift AG, got %v", got)
	}
	if got := CorrectAnionGapForAlbumin(12, 2.0); got != 17 {
		t.Errorf("Albumin of 2 should add 5: got %v", got)
	}
}

// TestDeltaRatio covers the undefined-denominator rules
func TestDeltaRatio(t *testing.T) {
	// Classic 1:1 HAGMA: AG 22, HCO3 14.
	ratio := DeltaRatio(22, 14)
	if math.Abs(ratio-1.0) > tolerance {
		t.Errorf("Expected delta ratio of 1.0, got %v", ratio)
	}

	// Normal HCO3 with a big gap: concurrent alkalosis, +Inf.
	ratio = DeltaRatio(20, 25)
	if !math.IsInf(ratio, 1) {
		t.Errorf("Expected +Inf for elevated AG with normal HCO3, got %v", ratio)
	}

	// Normal HCO3 with a near-normal gap: defined as 1.0.
	ratio = DeltaRatio(14, 25)
	if ratio != 1.0 {
		t.Errorf("Expected 1.0 for small delta AG with normal HCO3, got %v", ratio)
	}

	hiddenNonGap, hiddenAlk := AnalyzeDeltaRatio(0.5)
	if !hiddenNonGap || hiddenAlk {
		t.Error("Ratio of 0.5 should flag hidden non-gap acidosis only")
	}
	hiddenNonGap, hiddenAlk = AnalyzeDeltaRatio(2.5)
	if hiddenNonGap || !hiddenAlk {
		t.Error("Ratio of 2.5 should flag hidden metabolic alkalosis only")
	}
}

// TestCalculateOsmolality verifies 2*Na + glucose/18 + BUN/2.8
func TestCalculateOsmolality(t *testing.T) {
	osm := CalculateOsmolality(140, 90, 14)
	if math.Abs(osm-290) > 0.01 {
		t.Errorf("Expected osmolality of 290, got %v", osm)
	}
	if gap := OsmolarGap(310, 140, 90, 14); math.Abs(gap-20) > 0.01 {
		t.Errorf("Expected osmolar gap of 20, got %v", gap)
	}
}

// TestCorrectSodiumForGlucose applies the two-slope correction
func TestCorrectSodiumForGlucose(t *testing.T) {
	if got := CorrectSodiumForGlucose(140, 90); got != 140 {
		t.Errorf("Normal glucose should not shift sodium, got %v", got)
	}
	// Glucose 300: +1.6 * 2 = +3.2.
	if got := CorrectSodiumForGlucose(130, 300); math.Abs(got-133.2) > tolerance {
		t.Errorf("Expected 133.2, got %v", got)
	}
	// Glucose 600: +2.4 * 5 = +12.
	if got := CorrectSodiumForGlucose(128, 600); math.Abs(got-140) > tolerance {
		t.Errorf("Expected 140, got %v", got)
	}
}

// TestCorrectPotassiumForPH shifts 0.6 per 0.1 pH unit
func TestCorrectPotassiumForPH(t *testing.T) {
	// Acidemic K of 5.5 at pH 7.20 normalizes to 4.3.
	if got := CorrectPotassiumForPH(5.5, 7.20); math.Abs(got-4.3) > tolerance {
		t.Errorf("Expected 4.3, got %v", got)
	}
}

// TestGenerateElectrolytesNormal produces an unremarkable panel
func TestGenerateElectrolytesNormal(t *testing.T) {
	state := GenerateElectrolytes(ElectrolyteInput{HCO3: 24, PH: 7.40})
	if state.Sodium != 140 || state.Potassium != 4.0 {
		t.Errorf("Unexpected defaults: Na=%v K=%v", state.Sodium, state.Potassium)
	}
	if state.AnionGap != 10 {
		t.Errorf("Expected default AG of 10, got %v", state.AnionGap)
	}
	// Cl = 140 - 10 - 24 = 106.
	if state.Chloride != 106 {
		t.Errorf("Expected chloride of 106, got %v", state.Chloride)
	}
	if state.AnionGapCategory != abg.AnionGapNormal {
		t.Errorf("Expected normal AG category, got %s", state.AnionGapCategory)
	}
}

// TestGenerateElectrolytesElevatedGap uses cause-specific targets
func TestGenerateElectrolytesElevatedGap(t *testing.T) {
	state := GenerateElectrolytes(ElectrolyteInput{
		HCO3: 14, PH: 7.28, ElevatedAnionGap: true, AnionGapCause: "dka",
	})
	if state.AnionGap != 24 {
		t.Errorf("DKA target AG should be 24, got %v", state.AnionGap)
	}
	// Cl = 140 - 24 - 14 = 102, inside the clamp.
	if state.Chloride != 102 {
		t.Errorf("Expected chloride of 102, got %v", state.Chloride)
	}
	if state.AnionGapCategory != abg.AnionGapElevated {
		t.Errorf("Expected elevated category, got %s", state.AnionGapCategory)
	}

	// The anion gap identity must hold for the generated panel.
	if gap := AnionGap(state.Sodium, state.Chloride, 14); math.Abs(gap-state.AnionGap) > tolerance {
		t.Errorf("AG identity broken: %v vs %v", gap, state.AnionGap)
	}
}

// TestGenerateElectrolytesChlorideClamp bounds back-derived chloride
func TestGenerateElectrolytesChlorideClamp(t *testing.T) {
	// Na 120 with AG 28 and HCO3 14 would give Cl 78: clamp to 85.
	state := GenerateElectrolytes(ElectrolyteInput{
		HCO3: 14, PH: 7.2, SodiumTarget: 120, ElevatedAnionGap: true, AnionGapCause: "toxic",
	})
	if state.Chloride != 85 {
		t.Errorf("Expected chloride clamped to 85, got %v", state.Chloride)
	}
}

// TestGenerateElectrolytesChlorideTarget forces the gap from chloride
func TestGenerateElectrolytesChlorideTarget(t *testing.T) {
	state := GenerateElectrolytes(ElectrolyteInput{
		HCO3: 16, PH: 7.30, ChlorideTarget: 112,
	})
	// AG recomputed: 140 - 112 - 16 = 12.
	if state.AnionGap != 12 {
		t.Errorf("Expected recomputed AG of 12, got %v", state.AnionGap)
	}
}

// TestGenerateElectrolytesHypoalbuminemiaCorrection verifies the
// corrected gap drives the category.
func TestGenerateElectrolytesHypoalbuminemiaCorrection(t *testing.T) {
	state := GenerateElectrolytes(ElectrolyteInput{
		HCO3: 20, PH: 7.35, Albumin: 2.0,
	})
	// Raw gap 10 + 2.5*2 = 15: elevated after correction.
	if state.CorrectedAnionGap != 15 {
		t.Errorf("Expected corrected AG of 15, got %v", state.CorrectedAnionGap)
	}
	if state.AnionGapCategory != abg.AnionGapElevated {
		t.Errorf("Expected elevated category from corrected gap, got %s", state.AnionGapCategory)
	}
}

// TestInterpretElectrolytesCommentary spot-checks the commentary lines
func TestInterpretElectrolytesCommentary(t *testing.T) {
	state := GenerateElectrolytes(ElectrolyteInput{
		HCO3: 12, PH: 7.2, ElevatedAnionGap: true, AnionGapCause: "lactic",
		LactateTarget: 8.0, GlucoseTarget: 300,
	})
	points := InterpretElectrolytes(state)
	if len(points) == 0 {
		t.Fatal("Expected commentary for an abnormal panel")
	}

	var sawLactate, sawGlucose bool
	for _, p := range points {
		if p == "Elevated lactate (8.0 mmol/L) - lactic acidosis contributing to AG" {
			sawLactate = true
		}
		if p == "Significant hyperglycemia (300 mg/dL)" {
			sawGlucose = true
		}
	}
	if !sawLactate {
		t.Errorf("Missing lactate commentary in %v", points)
	}
	if !sawGlucose {
		t.Errorf("Missing hyperglycemia commentary in %v", points)
	}
}
