package physiology

import (
	"fmt"
	"math"

	"bloodgas/domain/core"
)

// Atmospheric and gas exchange constants.
const (
	SeaLevelPressure    = 760.0 // mmHg
	WaterVaporPressure  = 47.0  // mmHg at 37C
	RespiratoryQuotient = 0.8
	hillCoefficient     = 2.7
	baseP50             = 27.0 // mmHg
	mixedVenousPO2      = 40.0
	minSurvivablePO2    = 30.0
)

// Berlin criteria P/F ratio cutoffs.
const (
	PFRatioNormal   = 300.0
	PFRatioMild     = 200.0
	PFRatioModerate = 100.0
)

// OxygenationState is the oxygenation component of a panel.
type OxygenationState struct {
	PaO2               float64
	SaO2               float64
	FiO2               float64
	PFRatio            float64
	AAGradient         float64
	ExpectedAAGradient float64
	PaO2Normal         bool
	AAGradientElevated bool
}

// AlveolarPO2 applies the alveolar gas equation,
// PAO2 = FiO2*(Patm - 47) - PaCO2/RQ.
func AlveolarPO2(fio2, paco2, atmosphericPressure float64) float64 {
	pio2 := fio2 * (atmosphericPressure - WaterVaporPressure)
	return pio2 - paco2/RespiratoryQuotient
}

// AAGradient is the alveolar minus arterial oxygen tension difference.
func AAGradient(arterialPO2, paco2, fio2, atmosphericPressure float64) float64 {
	return AlveolarPO2(fio2, paco2, atmosphericPressure) - arterialPO2
}

// ExpectedAAGradient is the age-adjusted normal gradient, age/4 + 4.
func ExpectedAAGradient(age int) float64 {
	return float64(age)/4 + 4
}

// IsAAGradientElevated allows about 5 mmHg above the age-expected
// gradient as normal variation.
func IsAAGradientElevated(gradient float64, age int) bool {
	return gradient > ExpectedAAGradient(age)+5
}

// PFRatio computes PaO2/FiO2 for ARDS grading.
func PFRatio(pao2, fio2 float64) (float64, error) {
	if fio2 <= 0 {
		return 0, fmt.Errorf("%w: %v", core.ErrNonPositiveFiO2, fio2)
	}
	return pao2 / fio2, nil
}

// ClassifyARDS grades hypoxemia by P/F ratio per the Berlin criteria.
// Assumes PEEP >= 5 cmH2O and bilateral infiltrates.
func ClassifyARDS(pfRatio float64) string {
	switch {
	case pfRatio >= PFRatioNormal:
		return "None/Normal"
	case pfRatio >= PFRatioMild:
		return "Mild ARDS"
	case pfRatio >= PFRatioModerate:
		return "Moderate ARDS"
	default:
		return "Severe ARDS"
	}
}

// CalculateP50 returns the PO2 at 50% saturation after Bohr,
// temperature, CO2 and 2,3-DPG shifts, clamped to [15, 40].
func CalculateP50(ph, temperature, pco2, dpg float64) float64 {
	p50 := baseP50 +
		(7.40-ph)*5.0 +
		(temperature-37.0)*1.5 +
		(pco2-40.0)*0.05 +
		(dpg-1.0)*5.0
	return math.Max(math.Min(p50, 40), 15)
}

// CalculateSaO2 maps PaO2 to saturation through the Hill equation
// with a shifted P50.
func CalculateSaO2(pao2, ph, temperature, pco2, dpg float64) float64 {
	if pao2 <= 0 {
		return 0
	}
	p50 := CalculateP50(ph, temperature, pco2, dpg)
	pn := math.Pow(pao2, hillCoefficient)
	sao2 := 100 * pn / (math.Pow(p50, hillCoefficient) + pn)
	return math.Min(math.Max(sao2, 0), 100)
}

// PaO2FromSaO2 inverts the Hill equation to estimate PaO2.
func PaO2FromSaO2(sao2, ph, temperature float64) float64 {
	if sao2 >= 100 {
		return 150.0
	}
	if sao2 <= 0 {
		return 0
	}
	p50 := CalculateP50(ph, temperature, 40.0, 1.0)
	return p50 * math.Pow(sao2/(100-sao2), 1/hillCoefficient)
}

// OxygenationInput collects the knobs for GenerateOxygenation.
type OxygenationInput struct {
	FiO2                float64
	PaCO2               float64
	Age                 int
	AAGradientElevated  bool
	TargetAAGradient    float64 // 0 means derive from the elevated flag
	ShuntFraction       float64
	PH                  float64
	Temperature         float64
	AtmosphericPressure float64
}

// GenerateOxygenation derives the full oxygenation state from an A-a
// gradient and shunt fraction. Shunted blood blends toward mixed
// venous PO2 and does not respond to supplemental oxygen.
func GenerateOxygenation(in OxygenationInput) (OxygenationState, error) {
	if in.FiO2 <= 0 {
		return OxygenationState{}, fmt.Errorf("%w: %v", core.ErrNonPositiveFiO2, in.FiO2)
	}
	if in.AtmosphericPressure == 0 {
		in.AtmosphericPressure = SeaLevelPressure
	}
	if in.PH == 0 {
		in.PH = 7.40
	}
	if in.Temperature == 0 {
		in.Temperature = 37.0
	}

	expectedAA := ExpectedAAGradient(in.Age)
	aaGradient := expectedAA
	switch {
	case in.TargetAAGradient > 0:
		aaGradient = in.TargetAAGradient
	case in.AAGradientElevated:
		aaGradient = expectedAA + 20
	}

	alveolar := AlveolarPO2(in.FiO2, in.PaCO2, in.AtmosphericPressure)
	pao2 := alveolar - aaGradient

	if in.ShuntFraction > 0 {
		pao2 = pao2*(1-in.ShuntFraction) + mixedVenousPO2*in.ShuntFraction
	}
	pao2 = math.Max(pao2, minSurvivablePO2)

	sao2 := CalculateSaO2(pao2, in.PH, in.Temperature, in.PaCO2, 1.0)
	pfRatio, err := PFRatio(pao2, in.FiO2)
	if err != nil {
		return OxygenationState{}, err
	}

	return OxygenationState{
		PaO2:               pao2,
		SaO2:               sao2,
		FiO2:               in.FiO2,
		PFRatio:            pfRatio,
		AAGradient:         aaGradient,
		ExpectedAAGradient: expectedAA,
		PaO2Normal:         pao2 >= 80.0*(in.FiO2/0.21),
		AAGradientElevated: aaGradient > expectedAA+5,
	}, nil
}

// DescribeHypoxemiaMechanism infers the likely mechanism from the A-a
// gradient, pCO2 and oxygen responsiveness.
func DescribeHypoxemiaMechanism(aaGradientElevated bool, paco2 float64, respondsToO2 bool) string {
	if !aaGradientElevated {
		if paco2 > 45 {
			return "Hypoventilation (normal A-a gradient, elevated pCO2)"
		}
		return "Low inspired oxygen or altitude (normal A-a gradient, normal pCO2)"
	}
	if respondsToO2 {
		return "V/Q mismatch or diffusion impairment (elevated A-a gradient, responds to O2)"
	}
	return "Shunt (elevated A-a gradient, does not respond to O2)"
}

// OxygenContent is CaO2 = Hb*1.34*SaO2/100 + 0.003*PaO2, in mL O2 per
// dL of blood.
func OxygenContent(pao2, sao2, hemoglobin float64) float64 {
	return hemoglobin*1.34*(sao2/100) + 0.003*pao2
}
