package abg

// Range is a closed numeric interval used for condition effect deltas
// and target bands.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Width returns the span of the range.
func (r Range) Width() float64 { return r.Max - r.Min }

// At linearly interpolates within the range; t is clamped to [0, 1].
func (r Range) At(t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return r.Min + t*r.Width()
}

// PHBand is the (min, typical, max) pH band a condition produces.
type PHBand struct {
	Min     float64 `json:"min"`
	Typical float64 `json:"typical"`
	Max     float64 `json:"max"`
}

// ConditionEffect defines the physiological footprint of a clinical
// condition. The scenario mapper scales these ranges by severity to
// produce concrete value deltas.
type ConditionEffect struct {
	Condition       ClinicalCondition `json:"condition"`
	PrimaryDisorder Disorder          `json:"primary_disorder"`

	PHRange PHBand `json:"ph_range"`

	// Deltas applied to the patient's baseline values.
	PCO2Effect Range `json:"pco2_effect"`
	HCO3Effect Range `json:"hco3_effect"`

	// Room air PO2 reference band; actual PO2 comes from the A-a
	// gradient and shunt fraction.
	PO2Effect          Range `json:"po2_effect"`
	AAGradientElevated bool  `json:"aa_gradient_elevated"`
	AAGradientRange    Range `json:"aa_gradient_range"`
	ShuntFractionRange Range `json:"shunt_fraction_range"`

	AnionGapElevated bool  `json:"anion_gap_elevated"`
	TypicalAnionGap  Range `json:"typical_anion_gap"`

	SodiumEffect    Range `json:"sodium_effect"`
	PotassiumEffect Range `json:"potassium_effect"`
	ChlorideEffect  Range `json:"chloride_effect"`
	GlucoseEffect   Range `json:"glucose_effect"`
	LactateEffect   Range `json:"lactate_effect"`

	ExpectedCompensation Compensation `json:"expected_compensation"`
	CompensationBlocked  bool         `json:"compensation_blocked"`

	AffectsRespiratoryDrive    bool    `json:"affects_respiratory_drive"`
	RespiratoryDriveMultiplier float64 `json:"respiratory_drive_multiplier"`

	Description    string   `json:"description"`
	TeachingPoints []string `json:"teaching_points"`
}
