// Package interpret classifies a finished blood gas panel from its
// output values alone. It never reads generation inputs, so running it
// against a generated panel cross-checks the generator.
package interpret

import (
	"fmt"
	"strings"

	"bloodgas/domain/abg"
	"bloodgas/internal/catalog"
	"bloodgas/internal/physiology"
)

// Primary disorder labels.
const (
	LabelNormal               = "Normal"
	LabelMetabolicAcidosis    = "Metabolic Acidosis"
	LabelMetabolicAlkalosis   = "Metabolic Alkalosis"
	LabelRespiratoryAcidosis  = "Respiratory Acidosis"
	LabelRespiratoryAlkalosis = "Respiratory Alkalosis"
	LabelCompensatedMetAcid   = "Compensated Metabolic Acidosis"
	LabelCompensatedHigh      = "Compensated Respiratory Acidosis or Metabolic Alkalosis"
	LabelMixedAcidosis        = "Mixed Respiratory and Metabolic Acidosis"
	LabelMixedAlkalosis       = "Mixed Respiratory Alkalosis and Metabolic Alkalosis"
	LabelAcidemiaMixed        = "Acidemia - Mixed Disorder"
	LabelAlkalemiaMixed       = "Alkalemia - Mixed Disorder"
)

// Interpret produces the full clinical reading of a panel. Conditions,
// when known, only contribute teaching points and implications; the
// classification itself comes from the numbers.
func Interpret(result abg.BloodGasResult, conditions []abg.ClinicalCondition) abg.ClinicalInterpretation {
	primary := identifyPrimaryDisorder(result)
	primaryDesc := describePrimaryDisorder(result, primary)

	compStatus, compDesc, secondary := assessCompensation(result, primary)

	oxyStatus, oxyDesc := analyzeOxygenation(result)
	agStatus, agDesc, deltaDelta := analyzeAnionGap(result)
	severity := determineSeverity(result)

	interp := abg.ClinicalInterpretation{
		PrimaryDisorder:            primary,
		PrimaryDisorderDescription: primaryDesc,
		CompensationStatus:         compStatus,
		CompensationDescription:    compDesc,
		SecondaryDisorder:          secondary,
		OxygenationStatus:          oxyStatus,
		OxygenationDescription:     oxyDesc,
		AnionGapStatus:             agStatus,
		AnionGapDescription:        agDesc,
		DeltaDeltaAnalysis:         deltaDelta,
		Severity:                   severity,
		ClinicalImplications:       implications(result, primary, secondary, conditions),
		TeachingPoints:             teachingPoints(result, primary, conditions),
	}
	if secondary != "" {
		interp.SecondaryDisorderDescription = describeSecondary(secondary)
	}
	for _, c := range conditions {
		interp.GeneratingConditions = append(interp.GeneratingConditions, string(c))
	}
	return interp
}

func identifyPrimaryDisorder(r abg.BloodGasResult) string {
	ph, pco2, hco3 := r.PH, r.PCO2, r.HCO3

	if ph >= physiology.NormalPHMin && ph <= physiology.NormalPHMax {
		switch {
		case pco2 < physiology.NormalPCO2Min && hco3 < physiology.NormalHCO3Min:
			return LabelCompensatedMetAcid
		case pco2 > physiology.NormalPCO2Max && hco3 > physiology.NormalHCO3Max:
			return LabelCompensatedHigh
		default:
			return LabelNormal
		}
	}

	if ph < physiology.NormalPHMin {
		switch {
		case pco2 > physiology.NormalPCO2Max && hco3 <= physiology.NormalHCO3Max:
			return LabelRespiratoryAcidosis
		case hco3 < physiology.NormalHCO3Min && pco2 <= physiology.NormalPCO2Max:
			return LabelMetabolicAcidosis
		case pco2 > physiology.NormalPCO2Max && hco3 < physiology.NormalHCO3Min:
			return LabelMixedAcidosis
		default:
			return LabelAcidemiaMixed
		}
	}

	switch {
	case pco2 < physiology.NormalPCO2Min && hco3 >= physiology.NormalHCO3Min:
		return LabelRespiratoryAlkalosis
	case hco3 > physiology.NormalHCO3Max && pco2 >= physiology.NormalPCO2Min:
		return LabelMetabolicAlkalosis
	case pco2 < physiology.NormalPCO2Min && hco3 > physiology.NormalHCO3Max:
		return LabelMixedAlkalosis
	default:
		return LabelAlkalemiaMixed
	}
}

func describePrimaryDisorder(r abg.BloodGasResult, disorder string) string {
	ph := r.PH

	if strings.Contains(disorder, "Normal") {
		return fmt.Sprintf("pH %.2f is within normal range (7.35-7.45)", ph)
	}

	if strings.Contains(disorder, "Acidosis") || strings.Contains(disorder, "Acidemia") {
		word := "Mild"
		switch {
		case ph < 7.20:
			word = "Severe"
		case ph < 7.30:
			word = "Moderate"
		}
		switch {
		case strings.Contains(disorder, "Metabolic"):
			return fmt.Sprintf("%s metabolic acidosis with pH %.2f, HCO3 %.0f mEq/L", word, ph, r.HCO3)
		case strings.Contains(disorder, "Respiratory"):
			return fmt.Sprintf("%s respiratory acidosis with pH %.2f, pCO2 %.0f mmHg", word, ph, r.PCO2)
		default:
			return fmt.Sprintf("%s acidemia with pH %.2f", word, ph)
		}
	}

	word := "Mild"
	switch {
	case ph > 7.55:
		word = "Severe"
	case ph > 7.50:
		word = "Moderate"
	}
	switch {
	case strings.Contains(disorder, "Metabolic"):
		return fmt.Sprintf("%s metabolic alkalosis with pH %.2f, HCO3 %.0f mEq/L", word, ph, r.HCO3)
	case strings.Contains(disorder, "Respiratory"):
		return fmt.Sprintf("%s respiratory alkalosis with pH %.2f, pCO2 %.0f mmHg", word, ph, r.PCO2)
	default:
		return fmt.Sprintf("%s alkalemia with pH %.2f", word, ph)
	}
}

// assessCompensation checks the measured values against the expected
// window for the identified primary disorder. Chronicity is inferred
// from the bicarbonate: above 30 suggests chronic respiratory
// acidosis, below 18 chronic respiratory alkalosis.
func assessCompensation(r abg.BloodGasResult, primary string) (status, desc, secondary string) {
	pco2, hco3 := r.PCO2, r.HCO3

	if strings.Contains(primary, "Normal") {
		return "N/A", "No disorder to compensate", ""
	}

	switch {
	case strings.Contains(primary, LabelMetabolicAcidosis):
		window := physiology.ExpectedPCO2MetabolicAcidosis(hco3)
		switch {
		case pco2 < window.Min:
			return "Excessive",
				fmt.Sprintf("pCO2 %.0f is lower than expected (%.0f-%.0f), suggesting concurrent respiratory alkalosis",
					pco2, window.Min, window.Max),
				LabelRespiratoryAlkalosis
		case pco2 > window.Max:
			return "Inadequate",
				fmt.Sprintf("pCO2 %.0f is higher than expected (%.0f-%.0f), suggesting concurrent respiratory acidosis or impaired compensation",
					pco2, window.Min, window.Max),
				LabelRespiratoryAcidosis
		default:
			return "Appropriate",
				fmt.Sprintf("pCO2 %.0f is appropriate for the degree of acidosis (Winter's formula)", pco2),
				""
		}

	case strings.Contains(primary, LabelMetabolicAlkalosis):
		window := physiology.ExpectedPCO2MetabolicAlkalosis(hco3)
		switch {
		case pco2 > window.Max:
			return "Excessive",
				fmt.Sprintf("pCO2 %.0f is higher than expected, suggesting concurrent respiratory acidosis", pco2),
				LabelRespiratoryAcidosis
		case pco2 < window.Min:
			return "Inadequate",
				fmt.Sprintf("pCO2 %.0f is lower than expected, suggesting concurrent respiratory alkalosis", pco2),
				LabelRespiratoryAlkalosis
		default:
			return "Appropriate",
				fmt.Sprintf("pCO2 %.0f shows appropriate hypoventilatory compensation", pco2),
				""
		}

	case strings.Contains(primary, LabelRespiratoryAcidosis):
		window, duration := physiology.ExpectedHCO3RespAcidosisAcute(pco2), "acute"
		if hco3 > 30 {
			window, duration = physiology.ExpectedHCO3RespAcidosisChronic(pco2), "chronic"
		}
		switch {
		case hco3 > window.Max:
			return "Excessive",
				fmt.Sprintf("HCO3 %.0f is higher than expected for %s respiratory acidosis, suggesting concurrent metabolic alkalosis",
					hco3, duration),
				LabelMetabolicAlkalosis
		case hco3 < window.Min:
			return "Inadequate",
				fmt.Sprintf("HCO3 %.0f is lower than expected, suggesting concurrent metabolic acidosis", hco3),
				LabelMetabolicAcidosis
		default:
			return "Appropriate",
				fmt.Sprintf("HCO3 %.0f is appropriate for %s respiratory acidosis", hco3, duration),
				""
		}

	case strings.Contains(primary, LabelRespiratoryAlkalosis):
		window, duration := physiology.ExpectedHCO3RespAlkalosisAcute(pco2), "acute"
		if hco3 < 18 {
			window, duration = physiology.ExpectedHCO3RespAlkalosisChronic(pco2), "chronic"
		}
		switch {
		case hco3 < window.Min:
			return "Excessive",
				fmt.Sprintf("HCO3 %.0f is lower than expected, suggesting concurrent metabolic acidosis", hco3),
				LabelMetabolicAcidosis
		case hco3 > window.Max:
			return "Inadequate",
				fmt.Sprintf("HCO3 %.0f is higher than expected, suggesting concurrent metabolic alkalosis", hco3),
				LabelMetabolicAlkalosis
		default:
			return "Appropriate",
				fmt.Sprintf("HCO3 %.0f is appropriate for %s respiratory alkalosis", hco3, duration),
				""
		}
	}

	return "Mixed", "Mixed disorder - compensation assessment complex", ""
}

func describeSecondary(secondary string) string {
	switch secondary {
	case LabelRespiratoryAlkalosis:
		return "Additional hyperventilation beyond expected compensation"
	case LabelRespiratoryAcidosis:
		return "Inadequate respiratory response or additional CO2 retention"
	case LabelMetabolicAlkalosis:
		return "Additional bicarbonate elevation beyond compensation"
	case LabelMetabolicAcidosis:
		return "Additional acid accumulation or bicarbonate loss"
	default:
		return "Additional acid-base disturbance"
	}
}

func analyzeOxygenation(r abg.BloodGasResult) (string, string) {
	var status string
	if r.FiO2 == 0.21 {
		switch {
		case r.PO2 >= 80:
			status = "Normal"
		case r.PO2 >= 60:
			status = "Mild hypoxemia"
		case r.PO2 >= 40:
			status = "Moderate hypoxemia"
		default:
			status = "Severe hypoxemia"
		}
	} else {
		status = fmt.Sprintf("On %.0f%% O2", r.FiO2*100)
		switch {
		case r.PFRatio < 100:
			status = fmt.Sprintf("Severe hypoxemia (%s)", status)
		case r.PFRatio < 200:
			status = fmt.Sprintf("Moderate hypoxemia (%s)", status)
		case r.PFRatio < 300:
			status = fmt.Sprintf("Mild hypoxemia (%s)", status)
		}
	}

	parts := []string{fmt.Sprintf("PaO2 %.0f mmHg, SaO2 %.0f%%", r.PO2, r.SaO2)}

	switch {
	case r.AAGradient > r.ExpectedAAGradient+10:
		parts = append(parts, fmt.Sprintf(
			"A-a gradient elevated at %.0f mmHg (expected <%.0f for age) - suggests V/Q mismatch, shunt, or diffusion impairment",
			r.AAGradient, r.ExpectedAAGradient))
	case r.AAGradient > r.ExpectedAAGradient+5:
		parts = append(parts, fmt.Sprintf("A-a gradient mildly elevated at %.0f mmHg", r.AAGradient))
	default:
		parts = append(parts, fmt.Sprintf("A-a gradient normal at %.0f mmHg", r.AAGradient))
	}

	if r.FiO2 > 0.21 {
		parts = append(parts, fmt.Sprintf("P/F ratio %.0f (%s)", r.PFRatio, physiology.ClassifyARDS(r.PFRatio)))
	}

	return status, strings.Join(parts, "; ")
}

func analyzeAnionGap(r abg.BloodGasResult) (status, desc, deltaDelta string) {
	deltaHCO3 := 24 - r.HCO3
	var deltaRatio float64
	hasRatio := deltaHCO3 > 0 && r.DeltaGap > 0
	if hasRatio {
		deltaRatio = r.DeltaGap / deltaHCO3
	}

	switch {
	case r.CorrectedAnionGap > 14:
		status = "Elevated"
		desc = fmt.Sprintf(
			"Anion gap elevated at %.0f mEq/L (corrected: %.0f) - indicates accumulation of unmeasured anions",
			r.AnionGap, r.CorrectedAnionGap)
		if hasRatio {
			switch {
			case deltaRatio < 1:
				deltaDelta = fmt.Sprintf(
					"Delta ratio %.1f (<1) suggests concurrent non-anion gap metabolic acidosis", deltaRatio)
			case deltaRatio > 2:
				deltaDelta = fmt.Sprintf(
					"Delta ratio %.1f (>2) suggests concurrent metabolic alkalosis or pre-existing elevated HCO3", deltaRatio)
			default:
				deltaDelta = fmt.Sprintf("Delta ratio %.1f (1-2) consistent with pure HAGMA", deltaRatio)
			}
		}
	case r.CorrectedAnionGap < 6:
		status = "Low"
		desc = fmt.Sprintf("Anion gap low at %.0f mEq/L - consider hypoalbuminemia, paraproteinemia", r.AnionGap)
	default:
		status = "Normal"
		desc = fmt.Sprintf("Anion gap normal at %.0f mEq/L", r.AnionGap)
	}
	return status, desc, deltaDelta
}

func determineSeverity(r abg.BloodGasResult) abg.InterpretationSeverity {
	ph, po2 := r.PH, r.PO2

	if ph < 7.10 || ph > 7.60 {
		return abg.InterpretationCritical
	}
	if po2 < 40 && r.FiO2 == 0.21 {
		return abg.InterpretationCritical
	}
	if ph < 7.20 || ph > 7.55 || po2 < 50 {
		return abg.InterpretationSevere
	}
	if ph < 7.30 || ph > 7.50 || po2 < 60 {
		return abg.InterpretationModerate
	}
	if ph < 7.35 || ph > 7.45 || po2 < 80 {
		return abg.InterpretationMild
	}
	return abg.InterpretationNormal
}

func implications(r abg.BloodGasResult, primary, secondary string, conditions []abg.ClinicalCondition) []string {
	var out []string

	if r.PH < 7.20 {
		out = append(out, "Severe acidemia may cause cardiac dysfunction, vasodilation")
	} else if r.PH > 7.55 {
		out = append(out, "Severe alkalemia may cause arrhythmias, seizures")
	}

	if r.PO2 < 60 {
		out = append(out, "Significant hypoxemia - tissue oxygen delivery compromised")
	}
	if r.Lactate > 4 {
		out = append(out, "Elevated lactate suggests tissue hypoperfusion")
	}
	if r.CorrectedAnionGap > 20 {
		out = append(out, "High anion gap - investigate for ketoacidosis, lactic acidosis, toxins, renal failure")
	}

	if r.Potassium > 6.0 {
		out = append(out, "Hyperkalemia - cardiac monitoring required")
	} else if r.Potassium < 3.0 {
		out = append(out, "Severe hypokalemia - risk of arrhythmias")
	}

	out = append(out, electrolyteNarrative(r)...)

	if secondary != "" {
		out = append(out, fmt.Sprintf("Mixed disorder (%s + %s) - more complex management required", primary, secondary))
	}

	for _, c := range conditions {
		if effect, err := catalog.Effect(c); err == nil && effect.CompensationBlocked {
			out = append(out, "Respiratory compensation impaired - monitor for rapid pH deterioration")
			break
		}
	}

	return out
}

// electrolyteNarrative rebuilds the electrolyte state from panel values
// so the commentary stays independent of generation inputs.
func electrolyteNarrative(r abg.BloodGasResult) []string {
	state := physiology.ElectrolyteState{
		Sodium:            r.Sodium,
		Potassium:         r.Potassium,
		Chloride:          r.Chloride,
		Glucose:           r.Glucose,
		Lactate:           r.Lactate,
		Albumin:           r.Albumin,
		AnionGap:          r.AnionGap,
		CorrectedAnionGap: r.CorrectedAnionGap,
		DeltaGap:          r.DeltaGap,
	}
	switch {
	case r.CorrectedAnionGap > 14:
		state.AnionGapCategory = abg.AnionGapElevated
	case r.CorrectedAnionGap < 6:
		state.AnionGapCategory = abg.AnionGapLow
	default:
		state.AnionGapCategory = abg.AnionGapNormal
	}
	// The delta ratio only discriminates once the gap is elevated.
	if state.AnionGapCategory == abg.AnionGapElevated {
		state.DeltaRatio = physiology.DeltaRatio(r.CorrectedAnionGap, r.HCO3)
		state.HasHiddenNonGapAcidosis, state.HasHiddenMetabolicAlkalosis = physiology.AnalyzeDeltaRatio(state.DeltaRatio)
	}
	return physiology.InterpretElectrolytes(state)
}

func teachingPoints(r abg.BloodGasResult, primary string, conditions []abg.ClinicalCondition) []string {
	points := []string{
		"ABG interpretation approach: pH -> Primary disorder -> Compensation -> Anion gap",
	}

	for _, c := range conditions {
		if effect, err := catalog.Effect(c); err == nil {
			points = append(points, effect.TeachingPoints...)
		}
	}

	if strings.Contains(primary, LabelMetabolicAcidosis) {
		if r.CorrectedAnionGap > 14 {
			points = append(points,
				"High anion gap acidosis: think MUDPILES (Methanol, Uremia, DKA, Propylene glycol, INH, Lactic acidosis, Ethylene glycol, Salicylates)")
		} else {
			points = append(points, "Normal anion gap acidosis: think GI losses, RTA, or dilutional")
		}
	}

	if r.AAGradient > r.ExpectedAAGradient+10 {
		points = append(points,
			"Elevated A-a gradient indicates pulmonary pathology (V/Q mismatch, shunt, or diffusion impairment)")
	}

	if r.DeltaGap > 6 && 24-r.HCO3 > 0 {
		ratio := r.DeltaGap / (24 - r.HCO3)
		if ratio < 1 || ratio > 2 {
			points = append(points, "Delta-delta ratio identifies hidden disorders in high AG acidosis")
		}
	}

	return points
}
