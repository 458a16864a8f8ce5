// Package physiology implements the deterministic physiological
// models behind blood gas generation: the Henderson-Hasselbalch
// relation and compensation formulas, the alveolar gas and oxygen
// transport equations, and electrolyte derivations.
package physiology

import (
	"fmt"
	"math"

	"bloodgas/domain/abg"
	"bloodgas/domain/core"
)

// Normal reference bands.
const (
	NormalPHMin   = 7.35
	NormalPHMax   = 7.45
	NormalPCO2Min = 35.0
	NormalPCO2Max = 45.0
	NormalHCO3Min = 22.0
	NormalHCO3Max = 26.0
)

// Henderson-Hasselbalch constants.
const (
	carbonicAcidPK = 6.1
	co2Solubility  = 0.03 // mmol/L per mmHg
)

// AcidBaseState is the acid-base component of a panel before
// oxygenation and electrolytes are layered on.
type AcidBaseState struct {
	PH                 float64
	PCO2               float64
	HCO3               float64
	BaseExcess         float64
	PrimaryDisorder    abg.Disorder
	CompensationStatus abg.Compensation
	SecondaryDisorder  abg.Disorder
}

// CalculatePH computes pH = 6.1 + log10(HCO3 / (0.03 * pCO2)).
func CalculatePH(hco3, pco2 float64) (float64, error) {
	if pco2 <= 0 {
		return 0, fmt.Errorf("%w: %v", core.ErrNonPositivePCO2, pco2)
	}
	if hco3 <= 0 {
		return 0, fmt.Errorf("%w: %v", core.ErrNonPositiveHCO3, hco3)
	}
	return carbonicAcidPK + math.Log10(hco3/(co2Solubility*pco2)), nil
}

// CalculateHCO3 inverts Henderson-Hasselbalch for bicarbonate.
func CalculateHCO3(ph, pco2 float64) float64 {
	return co2Solubility * pco2 * math.Pow(10, ph-carbonicAcidPK)
}

// CalculatePCO2 inverts Henderson-Hasselbalch for pCO2.
func CalculatePCO2(ph, hco3 float64) float64 {
	return hco3 / (co2Solubility * math.Pow(10, ph-carbonicAcidPK))
}

// CalculateBaseExcess returns the standard base excess,
// BE = (HCO3 - 24.4) + (2.3*Hb + 7.7)*(pH - 7.4).
func CalculateBaseExcess(ph, hco3, hemoglobin float64) float64 {
	return (hco3 - 24.4) + (2.3*hemoglobin+7.7)*(ph-7.4)
}

// ExpectedPCO2MetabolicAcidosis is Winter's formula,
// 1.5*HCO3 + 8 with a +/- 2 window.
func ExpectedPCO2MetabolicAcidosis(hco3 float64) abg.Range {
	expected := 1.5*hco3 + 8
	return abg.Range{Min: expected - 2, Max: expected + 2}
}

// ExpectedPCO2MetabolicAlkalosis is 0.7*HCO3 + 21 with a +/- 2 window.
func ExpectedPCO2MetabolicAlkalosis(hco3 float64) abg.Range {
	expected := 0.7*hco3 + 21
	return abg.Range{Min: expected - 2, Max: expected + 2}
}

// ExpectedHCO3RespAcidosisAcute: HCO3 rises 1 mEq/L per 10 mmHg pCO2.
func ExpectedHCO3RespAcidosisAcute(pco2 float64) abg.Range {
	expected := 24 + (pco2-40)/10
	return abg.Range{Min: expected - 2, Max: expected + 2}
}

// ExpectedHCO3RespAcidosisChronic: 3.5 mEq/L per 10 mmHg pCO2.
func ExpectedHCO3RespAcidosisChronic(pco2 float64) abg.Range {
	expected := 24 + 3.5*(pco2-40)/10
	return abg.Range{Min: expected - 2, Max: expected + 2}
}

// ExpectedHCO3RespAlkalosisAcute: HCO3 falls 2 mEq/L per 10 mmHg,
// floored at 8.
func ExpectedHCO3RespAlkalosisAcute(pco2 float64) abg.Range {
	expected := 24 - 2*(40-pco2)/10
	return abg.Range{Min: math.Max(expected-2, 8), Max: expected + 2}
}

// ExpectedHCO3RespAlkalosisChronic: 5 mEq/L per 10 mmHg, floored at 12.
func ExpectedHCO3RespAlkalosisChronic(pco2 float64) abg.Range {
	expected := 24 - 5*(40-pco2)/10
	return abg.Range{Min: math.Max(expected-2, 12), Max: expected + 2}
}

// IdentifyPrimaryDisorder classifies the primary disorder from the
// measured triad alone.
func IdentifyPrimaryDisorder(ph, pco2, hco3 float64) abg.Disorder {
	if ph >= NormalPHMin && ph <= NormalPHMax {
		switch {
		case pco2 < NormalPCO2Min && hco3 < NormalHCO3Min:
			// Both low: fully compensated metabolic acidosis.
			return abg.DisorderMetabolicAcidosis
		case pco2 > NormalPCO2Max && hco3 > NormalHCO3Max:
			return abg.DisorderMetabolicAlkalosis
		default:
			return abg.DisorderNormal
		}
	}
	if ph < NormalPHMin {
		if pco2 > NormalPCO2Max {
			return abg.DisorderRespiratoryAcidosis
		}
		return abg.DisorderMetabolicAcidosis
	}
	if pco2 < NormalPCO2Min {
		return abg.DisorderRespiratoryAlkalosis
	}
	return abg.DisorderMetabolicAlkalosis
}

// AssessCompensation compares the measured values against the expected
// compensation window for the primary disorder and reports the
// compensation status plus any secondary disorder the deviation
// implies.
func AssessCompensation(primary abg.Disorder, ph, pco2, hco3 float64, duration abg.Duration) (abg.Compensation, abg.Disorder) {
	switch primary {
	case abg.DisorderMetabolicAcidosis:
		window := ExpectedPCO2MetabolicAcidosis(hco3)
		switch {
		case pco2 < window.Min:
			return abg.CompensationExcessive, abg.DisorderRespiratoryAlkalosis
		case pco2 > window.Max:
			return abg.CompensationPartial, abg.DisorderRespiratoryAcidosis
		default:
			return abg.CompensationAppropriate, ""
		}
	case abg.DisorderMetabolicAlkalosis:
		window := ExpectedPCO2MetabolicAlkalosis(hco3)
		switch {
		case pco2 > window.Max:
			return abg.CompensationExcessive, abg.DisorderRespiratoryAcidosis
		case pco2 < window.Min:
			return abg.CompensationPartial, abg.DisorderRespiratoryAlkalosis
		default:
			return abg.CompensationAppropriate, ""
		}
	case abg.DisorderRespiratoryAcidosis:
		window := ExpectedHCO3RespAcidosisAcute(pco2)
		if duration == abg.DurationChronic {
			window = ExpectedHCO3RespAcidosisChronic(pco2)
		}
		switch {
		case hco3 > window.Max:
			return abg.CompensationExcessive, abg.DisorderMetabolicAlkalosis
		case hco3 < window.Min:
			return abg.CompensationPartial, abg.DisorderMetabolicAcidosis
		default:
			return abg.CompensationAppropriate, ""
		}
	case abg.DisorderRespiratoryAlkalosis:
		window := ExpectedHCO3RespAlkalosisAcute(pco2)
		if duration == abg.DurationChronic {
			window = ExpectedHCO3RespAlkalosisChronic(pco2)
		}
		switch {
		case hco3 < window.Min:
			return abg.CompensationExcessive, abg.DisorderMetabolicAcidosis
		case hco3 > window.Max:
			return abg.CompensationPartial, abg.DisorderMetabolicAlkalosis
		default:
			return abg.CompensationAppropriate, ""
		}
	}
	return abg.CompensationNone, ""
}

// GenerateForDisorder produces the acid-base triad for a named
// disorder at the requested severity and compensation placement.
func GenerateForDisorder(
	disorder abg.Disorder,
	severity abg.Severity,
	compensation abg.Compensation,
	duration abg.Duration,
	baselinePCO2, baselineHCO3 float64,
) (AcidBaseState, error) {
	if disorder == abg.DisorderNormal {
		return AcidBaseState{
			PH:                 7.40,
			PCO2:               baselinePCO2,
			HCO3:               baselineHCO3,
			PrimaryDisorder:    abg.DisorderNormal,
			CompensationStatus: abg.CompensationNone,
		}, nil
	}

	var pco2, hco3 float64

	switch disorder {
	case abg.DisorderMetabolicAcidosis:
		switch severity {
		case abg.SeverityMild:
			hco3 = 18.0
		case abg.SeverityModerate:
			hco3 = 14.0
		default:
			hco3 = 8.0
		}
		window := ExpectedPCO2MetabolicAcidosis(hco3)
		switch compensation {
		case abg.CompensationNone:
			pco2 = baselinePCO2
		case abg.CompensationPartial:
			pco2 = (baselinePCO2 + window.Max) / 2
		case abg.CompensationExcessive:
			pco2 = window.Min - 4
		default:
			pco2 = (window.Min + window.Max) / 2
		}

	case abg.DisorderMetabolicAlkalosis:
		switch severity {
		case abg.SeverityMild:
			hco3 = 30.0
		case abg.SeverityModerate:
			hco3 = 36.0
		default:
			hco3 = 42.0
		}
		window := ExpectedPCO2MetabolicAlkalosis(hco3)
		switch compensation {
		case abg.CompensationNone:
			pco2 = baselinePCO2
		case abg.CompensationPartial:
			pco2 = (baselinePCO2 + window.Min) / 2
		case abg.CompensationExcessive:
			pco2 = window.Max + 4
		default:
			pco2 = (window.Min + window.Max) / 2
		}

	case abg.DisorderRespiratoryAcidosis:
		switch severity {
		case abg.SeverityMild:
			pco2 = 52.0
		case abg.SeverityModerate:
			pco2 = 65.0
		default:
			pco2 = 85.0
		}
		window := ExpectedHCO3RespAcidosisAcute(pco2)
		if duration == abg.DurationChronic {
			window = ExpectedHCO3RespAcidosisChronic(pco2)
		}
		switch compensation {
		case abg.CompensationNone:
			hco3 = baselineHCO3
		case abg.CompensationPartial:
			hco3 = (baselineHCO3 + window.Min) / 2
		case abg.CompensationExcessive:
			hco3 = window.Max + 4
		default:
			hco3 = (window.Min + window.Max) / 2
		}

	case abg.DisorderRespiratoryAlkalosis:
		switch severity {
		case abg.SeverityMild:
			pco2 = 30.0
		case abg.SeverityModerate:
			pco2 = 24.0
		default:
			pco2 = 18.0
		}
		window := ExpectedHCO3RespAlkalosisAcute(pco2)
		if duration == abg.DurationChronic {
			window = ExpectedHCO3RespAlkalosisChronic(pco2)
		}
		switch compensation {
		case abg.CompensationNone:
			hco3 = baselineHCO3
		case abg.CompensationPartial:
			hco3 = (baselineHCO3 + window.Max) / 2
		case abg.CompensationExcessive:
			hco3 = window.Min - 2
		default:
			hco3 = (window.Min + window.Max) / 2
		}

	default:
		return AcidBaseState{}, fmt.Errorf("%w: %q", core.ErrInvalidDisorder, disorder)
	}

	ph, err := CalculatePH(hco3, pco2)
	if err != nil {
		return AcidBaseState{}, err
	}

	status, secondary := AssessCompensation(disorder, ph, pco2, hco3, duration)
	return AcidBaseState{
		PH:                 ph,
		PCO2:               pco2,
		HCO3:               hco3,
		BaseExcess:         CalculateBaseExcess(ph, hco3, 15.0),
		PrimaryDisorder:    disorder,
		CompensationStatus: status,
		SecondaryDisorder:  secondary,
	}, nil
}

// ApplySecondaryDisorder layers a second disorder onto an existing
// state, producing a mixed picture. The severity scales the pCO2 or
// HCO3 displacement.
func ApplySecondaryDisorder(state AcidBaseState, secondary abg.Disorder, severity abg.Severity) (AcidBaseState, error) {
	magnitude := 1.0
	switch severity {
	case abg.SeverityMild:
		magnitude = 0.3
	case abg.SeverityModerate:
		magnitude = 0.6
	}

	pco2, hco3 := state.PCO2, state.HCO3
	switch secondary {
	case abg.DisorderRespiratoryAcidosis:
		pco2 += 20 * magnitude
	case abg.DisorderRespiratoryAlkalosis:
		pco2 = math.Max(pco2-15*magnitude, 15)
	case abg.DisorderMetabolicAcidosis:
		hco3 = math.Max(hco3-10*magnitude, 6)
	case abg.DisorderMetabolicAlkalosis:
		hco3 += 10 * magnitude
	default:
		return AcidBaseState{}, fmt.Errorf("%w: %q", core.ErrInvalidDisorder, secondary)
	}

	ph, err := CalculatePH(hco3, pco2)
	if err != nil {
		return AcidBaseState{}, err
	}
	return AcidBaseState{
		PH:                 ph,
		PCO2:               pco2,
		HCO3:               hco3,
		BaseExcess:         CalculateBaseExcess(ph, hco3, 15.0),
		PrimaryDisorder:    state.PrimaryDisorder,
		CompensationStatus: abg.CompensationNone,
		SecondaryDisorder:  secondary,
	}, nil
}
