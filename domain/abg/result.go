package abg

import (
	"fmt"
	"math"
	"strings"

	"bloodgas/domain/core"
)

// GenerationParams records the inputs that produced a result, so a
// result can be reproduced from its metadata alone.
type GenerationParams struct {
	Mode string `json:"mode" db:"mode"`

	// Disorder mode.
	PrimaryDisorder       Disorder     `json:"primary_disorder,omitempty"`
	SecondaryDisorder     Disorder     `json:"secondary_disorder,omitempty"`
	SpecifiedCompensation Compensation `json:"specified_compensation,omitempty"`
	Duration              Duration     `json:"duration,omitempty"`
	DisorderSeverity      Severity     `json:"disorder_severity,omitempty"`

	// Scenario mode.
	Conditions          []ClinicalCondition            `json:"conditions,omitempty"`
	ConditionSeverities map[ClinicalCondition]Severity `json:"condition_severities,omitempty"`

	Patient PatientFactors `json:"patient"`

	FiO2           float64 `json:"fio2"`
	AltitudeMeters int     `json:"altitude_meters,omitempty"`

	Seed int64 `json:"seed,omitempty"`
}

const (
	ModeDisorder = "disorder"
	ModeScenario = "scenario"
)

// Validate checks that exactly one generation mode is requested and
// its inputs are coherent.
func (p GenerationParams) Validate() error {
	switch p.Mode {
	case ModeDisorder:
		if p.PrimaryDisorder == "" {
			return fmt.Errorf("disorder mode: %w", core.ErrInvalidDisorder)
		}
		if len(p.Conditions) > 0 {
			return core.ErrModeAmbiguous
		}
	case ModeScenario:
		if len(p.Conditions) == 0 {
			return core.ErrEmptyConditions
		}
		if p.PrimaryDisorder != "" {
			return core.ErrModeAmbiguous
		}
	default:
		return core.ErrModeUnspecified
	}
	if p.FiO2 < 0.21 || p.FiO2 > 1.0 {
		return core.NewDomainError("fio2", p.FiO2)
	}
	return nil
}

// ClinicalInterpretation is the classifier's reading of a panel. It is
// derived from the output values alone, never from generation inputs.
type ClinicalInterpretation struct {
	PrimaryDisorder            string `json:"primary_disorder"`
	PrimaryDisorderDescription string `json:"primary_disorder_description"`

	CompensationStatus      string `json:"compensation_status"`
	CompensationDescription string `json:"compensation_description"`

	SecondaryDisorder            string `json:"secondary_disorder,omitempty"`
	SecondaryDisorderDescription string `json:"secondary_disorder_description,omitempty"`

	OxygenationStatus      string `json:"oxygenation_status"`
	OxygenationDescription string `json:"oxygenation_description,omitempty"`

	AnionGapStatus      string `json:"anion_gap_status"`
	AnionGapDescription string `json:"anion_gap_description,omitempty"`
	DeltaDeltaAnalysis  string `json:"delta_delta_analysis,omitempty"`

	Severity InterpretationSeverity `json:"severity"`

	ClinicalImplications []string `json:"clinical_implications,omitempty"`
	TeachingPoints       []string `json:"teaching_points,omitempty"`
	GeneratingConditions []string `json:"generating_conditions,omitempty"`
}

// Text renders the interpretation as report-style plain text.
func (ci ClinicalInterpretation) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PRIMARY DISORDER: %s\n  %s\n", ci.PrimaryDisorder, ci.PrimaryDisorderDescription)
	fmt.Fprintf(&b, "\nCOMPENSATION: %s\n  %s\n", ci.CompensationStatus, ci.CompensationDescription)
	if ci.SecondaryDisorder != "" {
		fmt.Fprintf(&b, "\nSECONDARY DISORDER: %s\n  %s\n", ci.SecondaryDisorder, ci.SecondaryDisorderDescription)
	}
	if ci.OxygenationStatus != "normal" {
		fmt.Fprintf(&b, "\nOXYGENATION: %s\n  %s\n", ci.OxygenationStatus, ci.OxygenationDescription)
	}
	if ci.AnionGapStatus != "normal" {
		fmt.Fprintf(&b, "\nANION GAP: %s\n  %s\n", ci.AnionGapStatus, ci.AnionGapDescription)
		if ci.DeltaDeltaAnalysis != "" {
			fmt.Fprintf(&b, "  Delta-delta: %s\n", ci.DeltaDeltaAnalysis)
		}
	}
	if len(ci.ClinicalImplications) > 0 {
		b.WriteString("\nCLINICAL IMPLICATIONS:\n")
		for _, s := range ci.ClinicalImplications {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}
	if len(ci.TeachingPoints) > 0 {
		b.WriteString("\nTEACHING POINTS:\n")
		for _, s := range ci.TeachingPoints {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// BloodGasResult is a complete synthetic arterial blood gas panel.
type BloodGasResult struct {
	ID        core.ResultID  `json:"id,omitempty"`
	BatchID   core.BatchID   `json:"batch_id,omitempty"`
	CreatedAt core.Timestamp `json:"created_at,omitempty"`

	// Core ABG values.
	PH         float64 `json:"ph"`
	PCO2       float64 `json:"pco2"`
	PO2        float64 `json:"po2"`
	HCO3       float64 `json:"hco3"`
	BaseExcess float64 `json:"base_excess"`
	SaO2       float64 `json:"sao2"`

	// Oxygenation.
	FiO2               float64 `json:"fio2"`
	PFRatio            float64 `json:"pao2_fio2_ratio"`
	AAGradient         float64 `json:"aa_gradient"`
	ExpectedAAGradient float64 `json:"expected_aa_gradient"`

	// Electrolytes.
	Sodium    float64 `json:"sodium"`
	Potassium float64 `json:"potassium"`
	Chloride  float64 `json:"chloride"`
	Glucose   float64 `json:"glucose"`

	// Derived values.
	AnionGap          float64 `json:"anion_gap"`
	CorrectedAnionGap float64 `json:"corrected_anion_gap"`
	DeltaGap          float64 `json:"delta_gap"`
	Lactate           float64 `json:"lactate"`
	Hemoglobin        float64 `json:"hemoglobin"`
	Albumin           float64 `json:"albumin"`

	Interpretation ClinicalInterpretation `json:"interpretation"`
	Params         GenerationParams       `json:"generation_params"`
}

func round(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}

// Rounded returns a copy with display precision applied: pH to three
// decimals, gases and derived values to one, electrolytes and the P/F
// ratio to whole numbers, FiO2 to two decimals.
func (r BloodGasResult) Rounded() BloodGasResult {
	r.PH = round(r.PH, 3)
	r.PCO2 = round(r.PCO2, 1)
	r.PO2 = round(r.PO2, 1)
	r.HCO3 = round(r.HCO3, 1)
	r.BaseExcess = round(r.BaseExcess, 1)
	r.SaO2 = round(r.SaO2, 1)
	r.FiO2 = round(r.FiO2, 2)
	r.PFRatio = round(r.PFRatio, 0)
	r.AAGradient = round(r.AAGradient, 1)
	r.ExpectedAAGradient = round(r.ExpectedAAGradient, 1)
	r.Sodium = round(r.Sodium, 0)
	r.Potassium = round(r.Potassium, 1)
	r.Chloride = round(r.Chloride, 0)
	r.Glucose = round(r.Glucose, 0)
	r.AnionGap = round(r.AnionGap, 1)
	r.CorrectedAnionGap = round(r.CorrectedAnionGap, 1)
	r.DeltaGap = round(r.DeltaGap, 1)
	r.Lactate = round(r.Lactate, 1)
	r.Hemoglobin = round(r.Hemoglobin, 1)
	r.Albumin = round(r.Albumin, 1)
	return r
}

// Summary renders a compact fixed-width report of the panel.
func (r BloodGasResult) Summary() string {
	rule := strings.Repeat("=", 50)
	thin := strings.Repeat("-", 50)
	lines := []string{
		rule,
		"ARTERIAL BLOOD GAS RESULTS",
		rule,
		fmt.Sprintf("  pH:     %.2f     (7.35-7.45)", r.PH),
		fmt.Sprintf("  pCO2:   %.0f mmHg  (35-45)", r.PCO2),
		fmt.Sprintf("  pO2:    %.0f mmHg  (80-100)", r.PO2),
		fmt.Sprintf("  HCO3:   %.0f mEq/L (22-26)", r.HCO3),
		fmt.Sprintf("  BE:     %+.0f mEq/L (-2 to +2)", r.BaseExcess),
		fmt.Sprintf("  SaO2:   %.0f%%     (95-100%%)", r.SaO2),
		thin,
		fmt.Sprintf("  FiO2:   %.0f%%", r.FiO2*100),
		fmt.Sprintf("  P/F:    %.0f    (>400 normal)", r.PFRatio),
		fmt.Sprintf("  A-a:    %.0f mmHg (expected: %.0f)", r.AAGradient, r.ExpectedAAGradient),
		thin,
		fmt.Sprintf("  Na:     %.0f mEq/L", r.Sodium),
		fmt.Sprintf("  K:      %.1f mEq/L", r.Potassium),
		fmt.Sprintf("  Cl:     %.0f mEq/L", r.Chloride),
		fmt.Sprintf("  Glucose:%.0f mg/dL", r.Glucose),
		fmt.Sprintf("  Lactate:%.1f mmol/L", r.Lactate),
		thin,
		fmt.Sprintf("  AG:     %.0f mEq/L (8-12)", r.AnionGap),
		fmt.Sprintf("  AG(corr):%.0f mEq/L", r.CorrectedAnionGap),
		fmt.Sprintf("  Delta:  %.1f", r.DeltaGap),
		rule,
	}
	return strings.Join(lines, "\n")
}
