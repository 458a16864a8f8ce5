package physiology

import (
	"fmt"
	"math"

	"bloodgas/domain/abg"
)

// Electrolyte reference ranges.
var (
	NormalSodium    = abg.Range{Min: 136, Max: 145}
	NormalPotassium = abg.Range{Min: 3.5, Max: 5.0}
	NormalChloride  = abg.Range{Min: 98, Max: 106}
	NormalGlucose   = abg.Range{Min: 70, Max: 100}
	NormalLactate   = abg.Range{Min: 0.5, Max: 2.0}
	NormalAnionGap  = abg.Range{Min: 8, Max: 12}
)

const (
	referenceAnionGap = 12.0
	referenceHCO3     = 24.0
	referenceAlbumin  = 4.0
	normalBUN         = 14.0 // mg/dL
)

// ElectrolyteState is the electrolyte component of a panel plus the
// gap arithmetic derived from it.
type ElectrolyteState struct {
	Sodium    float64
	Potassium float64
	Chloride  float64
	Glucose   float64
	Lactate   float64
	Albumin   float64

	AnionGap          float64
	CorrectedAnionGap float64
	DeltaGap          float64
	DeltaRatio        float64

	AnionGapCategory            abg.AnionGapCategory
	HasHiddenNonGapAcidosis     bool
	HasHiddenMetabolicAlkalosis bool

	CalculatedOsmolality float64
}

// AnionGap is Na - (Cl + HCO3).
func AnionGap(sodium, chloride, hco3 float64) float64 {
	return sodium - (chloride + hco3)
}

// AnionGapWithPotassium is (Na + K) - (Cl + HCO3); normal 12 to 16.
func AnionGapWithPotassium(sodium, potassium, chloride, hco3 float64) float64 {
	return (sodium + potassium) - (chloride + hco3)
}

// CorrectAnionGapForAlbumin adds 2.5 mEq/L per g/dL of albumin below
// 4, since albumin is the main unmeasured anion.
func CorrectAnionGapForAlbumin(anionGap, albumin float64) float64 {
	return anionGap + 2.5*(referenceAlbumin-albumin)
}

// DeltaGap is the excess anion gap over the reference 12.
func DeltaGap(anionGap float64) float64 {
	return anionGap - referenceAnionGap
}

// DeltaRatio is delta AG over delta HCO3. When HCO3 is normal or high
// the ratio is not meaningful: a significantly elevated gap implies a
// concurrent metabolic alkalosis (+Inf), otherwise 1.0.
func DeltaRatio(anionGap, hco3 float64) float64 {
	deltaAG := anionGap - referenceAnionGap
	deltaHCO3 := referenceHCO3 - hco3
	if deltaHCO3 <= 0 {
		if deltaAG > 4 {
			return math.Inf(1)
		}
		return 1.0
	}
	return deltaAG / deltaHCO3
}

// AnalyzeDeltaRatio flags hidden disorders: a ratio below 1 implies a
// concurrent non-gap acidosis, above 2 a concurrent metabolic
// alkalosis or chronic respiratory acidosis.
func AnalyzeDeltaRatio(ratio float64) (hiddenNonGapAcidosis, hiddenMetabolicAlkalosis bool) {
	return ratio < 1.0, ratio > 2.0
}

// CalculateOsmolality is 2*Na + glucose/18 + BUN/2.8, in mOsm/kg.
func CalculateOsmolality(sodium, glucose, bun float64) float64 {
	return 2*sodium + glucose/18 + bun/2.8
}

// OsmolarGap is measured minus calculated osmolality; above 10
// suggests an unmeasured osmole such as methanol or ethylene glycol.
func OsmolarGap(measured, sodium, glucose, bun float64) float64 {
	return measured - CalculateOsmolality(sodium, glucose, bun)
}

// CorrectSodiumForGlucose adds back the dilutional drop from
// hyperglycemia: 1.6 mEq/L per 100 mg/dL of glucose above 100, 2.4
// when glucose exceeds 400.
func CorrectSodiumForGlucose(sodium, glucose float64) float64 {
	if glucose <= 100 {
		return sodium
	}
	factor := 1.6
	if glucose > 400 {
		factor = 2.4
	}
	return sodium + factor*(glucose-100)/100
}

// CorrectPotassiumForPH estimates potassium at pH 7.40. K rises about
// 0.6 mEq/L per 0.1 pH drop as hydrogen enters cells.
func CorrectPotassiumForPH(potassium, ph float64) float64 {
	return potassium - (7.40-ph)*6
}

// ElectrolyteInput collects the knobs for GenerateElectrolytes. Zero
// target values mean use normal defaults; TargetAnionGap of zero means
// derive from the elevated flag and cause.
type ElectrolyteInput struct {
	HCO3 float64
	PH   float64

	ElevatedAnionGap bool
	TargetAnionGap   float64
	AnionGapCause    string

	SodiumTarget    float64
	PotassiumTarget float64
	ChlorideTarget  float64
	GlucoseTarget   float64
	LactateTarget   float64
	Albumin         float64
}

// Typical anion gap targets per etiology.
func anionGapForCause(cause string) float64 {
	switch cause {
	case "dka":
		return 24.0
	case "lactic":
		return 20.0
	case "renal":
		return 18.0
	case "toxic":
		return 28.0
	default:
		return 22.0
	}
}

// GenerateElectrolytes produces a consistent electrolyte panel.
// Chloride is back-derived from the anion gap identity
// Cl = Na - AG - HCO3 unless a target chloride forces the gap instead.
func GenerateElectrolytes(in ElectrolyteInput) ElectrolyteState {
	sodium := in.SodiumTarget
	if sodium == 0 {
		sodium = 140.0
	}
	potassium := in.PotassiumTarget
	if potassium == 0 {
		potassium = 4.0
	}
	glucose := in.GlucoseTarget
	if glucose == 0 {
		glucose = 95.0
	}
	lactate := in.LactateTarget
	if lactate == 0 {
		lactate = 1.0
	}
	albumin := in.Albumin
	if albumin == 0 {
		albumin = referenceAlbumin
	}

	var anionGap float64
	switch {
	case in.TargetAnionGap > 0:
		anionGap = in.TargetAnionGap
	case in.ElevatedAnionGap:
		anionGap = anionGapForCause(in.AnionGapCause)
	default:
		anionGap = 10.0
	}

	var chloride float64
	if in.ChlorideTarget > 0 {
		chloride = in.ChlorideTarget
		anionGap = AnionGap(sodium, chloride, in.HCO3)
	} else {
		chloride = sodium - anionGap - in.HCO3
		chloride = math.Max(math.Min(chloride, 120), 85)
	}

	correctedAG := CorrectAnionGapForAlbumin(anionGap, albumin)
	deltaGap := DeltaGap(correctedAG)
	deltaRatio := DeltaRatio(correctedAG, in.HCO3)
	hiddenNonGap, hiddenMetAlk := AnalyzeDeltaRatio(deltaRatio)

	category := abg.AnionGapNormal
	switch {
	case correctedAG > 14:
		category = abg.AnionGapElevated
	case correctedAG < 6:
		category = abg.AnionGapLow
	}

	return ElectrolyteState{
		Sodium:                      sodium,
		Potassium:                   potassium,
		Chloride:                    chloride,
		Glucose:                     glucose,
		Lactate:                     lactate,
		Albumin:                     albumin,
		AnionGap:                    anionGap,
		CorrectedAnionGap:           correctedAG,
		DeltaGap:                    deltaGap,
		DeltaRatio:                  deltaRatio,
		AnionGapCategory:            category,
		HasHiddenNonGapAcidosis:     hiddenNonGap,
		HasHiddenMetabolicAlkalosis: hiddenMetAlk,
		CalculatedOsmolality:        CalculateOsmolality(sodium, glucose, normalBUN),
	}
}

// InterpretElectrolytes produces commentary on the electrolyte panel
// for the interpretation report.
func InterpretElectrolytes(state ElectrolyteState) []string {
	var points []string

	if state.AnionGapCategory == abg.AnionGapElevated {
		points = append(points, fmt.Sprintf(
			"Elevated anion gap (%.0f mEq/L) - suggests accumulation of unmeasured anions",
			state.CorrectedAnionGap))
		if state.Lactate > 4 {
			points = append(points, fmt.Sprintf(
				"Elevated lactate (%.1f mmol/L) - lactic acidosis contributing to AG",
				state.Lactate))
		}
	}

	if state.HasHiddenNonGapAcidosis {
		points = append(points,
			"Delta ratio < 1 suggests concurrent non-anion gap acidosis (hyperchloremic acidosis)")
	}
	if state.HasHiddenMetabolicAlkalosis {
		points = append(points,
			"Delta ratio > 2 suggests concurrent metabolic alkalosis or pre-existing elevated HCO3")
	}

	if state.Sodium < NormalSodium.Min {
		if state.Glucose > 200 {
			corrected := CorrectSodiumForGlucose(state.Sodium, state.Glucose)
			points = append(points, fmt.Sprintf(
				"Hyponatremia - corrected for hyperglycemia: %.0f mEq/L", corrected))
		} else {
			points = append(points, fmt.Sprintf("Hyponatremia (%.0f mEq/L)", state.Sodium))
		}
	} else if state.Sodium > NormalSodium.Max {
		points = append(points, fmt.Sprintf("Hypernatremia (%.0f mEq/L)", state.Sodium))
	}

	if state.Potassium < NormalPotassium.Min {
		points = append(points, fmt.Sprintf("Hypokalemia (%.1f mEq/L)", state.Potassium))
	} else if state.Potassium > NormalPotassium.Max {
		points = append(points, fmt.Sprintf("Hyperkalemia (%.1f mEq/L)", state.Potassium))
	}

	if state.Glucose > 250 {
		points = append(points, fmt.Sprintf("Significant hyperglycemia (%.0f mg/dL)", state.Glucose))
	}

	return points
}
