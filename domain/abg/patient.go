package abg

// PatientFactors captures the patient characteristics that shift
// baseline physiology and expected normal ranges.
type PatientFactors struct {
	Age int `json:"age"`

	ChronicConditions []ChronicCondition `json:"chronic_conditions,omitempty"`

	// Known baselines; zero means derive from age and comorbidities.
	BaselineHemoglobin float64 `json:"baseline_hemoglobin,omitempty"`
	BaselineAlbumin    float64 `json:"baseline_albumin,omitempty"`
	BaselineCreatinine float64 `json:"baseline_creatinine,omitempty"`

	AltitudeMeters int `json:"altitude_meters,omitempty"`

	TemperatureCelsius       float64 `json:"temperature_celsius,omitempty"`
	IsPregnant               bool    `json:"is_pregnant,omitempty"`
	IsMechanicallyVentilated bool    `json:"is_mechanically_ventilated,omitempty"`
}

// DefaultPatient returns the reference 40 year old patient at sea
// level with no comorbidities.
func DefaultPatient() PatientFactors {
	return PatientFactors{Age: 40, TemperatureCelsius: 37.0}
}

// Normalize fills zero-valued fields with reference defaults.
func (p PatientFactors) Normalize() PatientFactors {
	if p.Age == 0 {
		p.Age = 40
	}
	if p.TemperatureCelsius == 0 {
		p.TemperatureCelsius = 37.0
	}
	return p
}

func (p PatientFactors) hasChronic(c ChronicCondition) bool {
	for _, cc := range p.ChronicConditions {
		if cc == c {
			return true
		}
	}
	return false
}

// ExpectedAAGradient returns the age-adjusted expected alveolar to
// arterial gradient, age/4 + 4.
func (p PatientFactors) ExpectedAAGradient() float64 {
	return float64(p.Age)/4 + 4
}

// ExpectedPaO2 returns the age-adjusted expected room air PaO2,
// 109 - 0.43*age, reduced about 3 mmHg per 300 m of altitude and
// floored at 60.
func (p PatientFactors) ExpectedPaO2() float64 {
	expected := 109 - 0.43*float64(p.Age)
	expected -= float64(p.AltitudeMeters) / 300 * 3
	if expected < 60 {
		return 60
	}
	return expected
}

// BaselinePCO2 returns the resting pCO2 given chronic conditions.
// COPD retainers sit near 45, obesity hypoventilation near 48, and
// pregnancy near 32 from progesterone-driven hyperventilation.
func (p PatientFactors) BaselinePCO2() float64 {
	baseline := 40.0
	if p.hasChronic(ChronicCOPD) {
		baseline = 45.0
	}
	if p.hasChronic(ChronicObesityHypoventilation) {
		baseline = 48.0
	}
	if p.IsPregnant {
		baseline = 32.0
	}
	return baseline
}

// BaselineHCO3 returns the resting bicarbonate given chronic
// conditions.
func (p PatientFactors) BaselineHCO3() float64 {
	baseline := 24.0
	if p.hasChronic(ChronicKidneyDisease) {
		baseline = 20.0
	}
	if p.hasChronic(ChronicCOPD) {
		baseline = 28.0
	}
	if p.IsPregnant {
		baseline = 20.0
	}
	return baseline
}

// Hemoglobin returns the known baseline hemoglobin or a derived one.
func (p PatientFactors) Hemoglobin() float64 {
	if p.BaselineHemoglobin > 0 {
		return p.BaselineHemoglobin
	}
	baseline := 14.0
	if p.hasChronic(ChronicAnemia) {
		baseline = 9.0
	} else if p.hasChronic(ChronicKidneyDisease) {
		baseline = 10.5
	}
	if p.IsPregnant {
		baseline = 11.5
	}
	return baseline
}

// Albumin returns the known baseline albumin or a derived one.
func (p PatientFactors) Albumin() float64 {
	if p.BaselineAlbumin > 0 {
		return p.BaselineAlbumin
	}
	baseline := 4.0
	if p.hasChronic(ChronicCirrhosis) {
		baseline = 2.5
	} else if p.hasChronic(ChronicKidneyDisease) {
		baseline = 3.2
	}
	return baseline
}

// HasRespiratoryBaselineShift reports whether chronic conditions move
// the respiratory baseline away from pCO2 40.
func (p PatientFactors) HasRespiratoryBaselineShift() bool {
	return p.hasChronic(ChronicCOPD) || p.hasChronic(ChronicObesityHypoventilation) || p.IsPregnant
}

// HasMetabolicBaselineShift reports whether chronic conditions move
// the metabolic baseline away from HCO3 24.
func (p PatientFactors) HasMetabolicBaselineShift() bool {
	return p.hasChronic(ChronicKidneyDisease) || p.IsPregnant
}
