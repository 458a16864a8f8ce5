// Package scenario translates clinical conditions into physiological
// deltas the generator applies on top of a patient's baseline,
// including severity scaling and multi-condition interactions.
package scenario

import (
	"math"

	"bloodgas/domain/abg"
	"bloodgas/internal/catalog"
)

// Deltas accumulates the physiological changes contributed by one or
// more conditions.
type Deltas struct {
	// Acid-base shifts from baseline.
	PCO2Delta float64
	HCO3Delta float64

	// Oxygenation pathology. PO2 targets are reference only; actual
	// PO2 follows from the A-a gradient and shunt.
	AAGradientElevated bool
	TargetAAGradient   float64
	ShuntFraction      float64
	PO2Target          float64

	// Electrolytes.
	SodiumDelta    float64
	PotassiumDelta float64
	ChlorideDelta  float64
	GlucoseTarget  float64
	LactateTarget  float64

	AnionGapElevated bool
	TargetAnionGap   float64

	RespiratoryDriveMultiplier float64
	CompensationBlocked        bool
}

// NewDeltas returns the neutral delta set for a healthy baseline.
func NewDeltas() Deltas {
	return Deltas{
		TargetAAGradient:           10.0,
		PO2Target:                  95.0,
		GlucoseTarget:              95.0,
		LactateTarget:              1.0,
		TargetAnionGap:             10.0,
		RespiratoryDriveMultiplier: 1.0,
	}
}

// MapSingleCondition scales a condition's effect ranges by severity
// and converts them to concrete deltas.
func MapSingleCondition(condition abg.ClinicalCondition, severity abg.Severity, patient abg.PatientFactors) (Deltas, error) {
	effect, err := catalog.Effect(condition)
	if err != nil {
		return Deltas{}, err
	}

	factor := severity.Factor()
	d := NewDeltas()

	// Acid-base.
	d.PCO2Delta = effect.PCO2Effect.At(factor)
	d.HCO3Delta = effect.HCO3Effect.At(factor)

	// Oxygenation: worse severity means a higher gradient and more
	// shunt; the room air PO2 reference runs the other way.
	d.AAGradientElevated = effect.AAGradientElevated
	d.TargetAAGradient = effect.AAGradientRange.At(factor)
	d.ShuntFraction = effect.ShuntFractionRange.At(factor)
	d.PO2Target = effect.PO2Effect.At(1 - factor)

	// Electrolytes.
	d.SodiumDelta = effect.SodiumEffect.At(factor)
	d.PotassiumDelta = effect.PotassiumEffect.At(factor)
	d.ChlorideDelta = effect.ChlorideEffect.At(factor)
	d.GlucoseTarget = effect.GlucoseEffect.At(factor)
	d.LactateTarget = effect.LactateEffect.At(factor)

	if effect.AnionGapElevated {
		d.AnionGapElevated = true
		d.TargetAnionGap = effect.TypicalAnionGap.At(factor)
	}

	if effect.AffectsRespiratoryDrive {
		d.RespiratoryDriveMultiplier = effect.RespiratoryDriveMultiplier
	}
	if effect.CompensationBlocked {
		d.CompensationBlocked = true
	}

	return d, nil
}

// MapMultipleConditions combines conditions into one delta set and
// resolves interaction rules. Severities default to moderate.
func MapMultipleConditions(
	conditions []abg.ClinicalCondition,
	severities map[abg.ClinicalCondition]abg.Severity,
	patient abg.PatientFactors,
) (Deltas, error) {
	if len(conditions) == 0 {
		return NewDeltas(), nil
	}

	severityFor := func(c abg.ClinicalCondition) abg.Severity {
		if s, ok := severities[c]; ok {
			return s
		}
		return abg.SeverityModerate
	}

	combined, err := MapSingleCondition(conditions[0], severityFor(conditions[0]), patient)
	if err != nil {
		return Deltas{}, err
	}
	if len(conditions) == 1 {
		return combined, nil
	}

	for _, condition := range conditions[1:] {
		additional, err := MapSingleCondition(condition, severityFor(condition), patient)
		if err != nil {
			return Deltas{}, err
		}
		combined = combine(combined, additional)
	}

	return applyInteractionRules(combined, conditions), nil
}

// combine folds two delta sets: acid-base and electrolyte deltas add,
// oxygenation takes the worse pathology, respiratory drive multiplies
// and compensation blocking is sticky.
func combine(primary, secondary Deltas) Deltas {
	combined := NewDeltas()

	combined.PCO2Delta = primary.PCO2Delta + secondary.PCO2Delta
	combined.HCO3Delta = primary.HCO3Delta + secondary.HCO3Delta

	combined.AAGradientElevated = primary.AAGradientElevated || secondary.AAGradientElevated
	combined.TargetAAGradient = math.Max(primary.TargetAAGradient, secondary.TargetAAGradient)
	// Shunts do not simply add: the worse one dominates with a partial
	// contribution from the lesser, capped at 0.5.
	combined.ShuntFraction = math.Min(0.5,
		math.Max(primary.ShuntFraction, secondary.ShuntFraction)+
			math.Min(primary.ShuntFraction, secondary.ShuntFraction)*0.5)
	combined.PO2Target = math.Min(primary.PO2Target, secondary.PO2Target)

	combined.SodiumDelta = primary.SodiumDelta + secondary.SodiumDelta
	combined.PotassiumDelta = primary.PotassiumDelta + secondary.PotassiumDelta
	combined.ChlorideDelta = primary.ChlorideDelta + secondary.ChlorideDelta

	combined.GlucoseTarget = math.Max(primary.GlucoseTarget, secondary.GlucoseTarget)
	combined.LactateTarget = math.Max(primary.LactateTarget, secondary.LactateTarget)

	if primary.AnionGapElevated || secondary.AnionGapElevated {
		combined.AnionGapElevated = true
		combined.TargetAnionGap = math.Max(primary.TargetAnionGap, secondary.TargetAnionGap)
	}

	combined.RespiratoryDriveMultiplier = primary.RespiratoryDriveMultiplier * secondary.RespiratoryDriveMultiplier
	combined.CompensationBlocked = primary.CompensationBlocked || secondary.CompensationBlocked

	return combined
}

func hasCondition(conditions []abg.ClinicalCondition, target abg.ClinicalCondition) bool {
	for _, c := range conditions {
		if c == target {
			return true
		}
	}
	return false
}

// applyInteractionRules handles combinations whose effects are not
// simply additive.
func applyInteractionRules(d Deltas, conditions []abg.ClinicalCondition) Deltas {
	// Opioids block the compensatory hyperventilation a metabolic
	// acidosis would otherwise drive: the pCO2 drop is damped by the
	// depressed respiratory drive.
	if hasCondition(conditions, abg.ConditionOpioidOverdose) {
		if d.HCO3Delta < -4 {
			if d.PCO2Delta < 0 {
				d.PCO2Delta *= d.RespiratoryDriveMultiplier
			}
			d.CompensationBlocked = true
		}
	}

	// Sepsis directly stimulates the respiratory center.
	if hasCondition(conditions, abg.ConditionLacticAcidosisSepsis) {
		d.RespiratoryDriveMultiplier = math.Max(d.RespiratoryDriveMultiplier, 1.3)
	}

	return d
}

// PrimaryDisorder reports the primary disorder for a condition list;
// the first condition drives the classification.
func PrimaryDisorder(conditions []abg.ClinicalCondition) (abg.Disorder, error) {
	if len(conditions) == 0 {
		return abg.DisorderNormal, nil
	}
	effect, err := catalog.Effect(conditions[0])
	if err != nil {
		return "", err
	}
	return effect.PrimaryDisorder, nil
}

// TeachingPoints gathers the teaching points for all conditions plus
// interaction commentary when more than one applies.
func TeachingPoints(conditions []abg.ClinicalCondition) ([]string, error) {
	var points []string
	var hasMetAcidosis, hasRespDepression bool

	for _, condition := range conditions {
		effect, err := catalog.Effect(condition)
		if err != nil {
			return nil, err
		}
		points = append(points, effect.TeachingPoints...)
		if effect.PrimaryDisorder == abg.DisorderMetabolicAcidosis {
			hasMetAcidosis = true
		}
		if effect.CompensationBlocked {
			hasRespDepression = true
		}
	}

	if len(conditions) > 1 {
		points = append(points,
			"Multiple simultaneous conditions create complex, interacting acid-base disturbances")
		if hasMetAcidosis && hasRespDepression {
			points = append(points,
				"Respiratory depression blocks compensatory hyperventilation, causing more severe acidemia")
		}
	}

	return points, nil
}
