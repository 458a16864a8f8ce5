package scenario

import (
	"math"
	"testing"

	"bloodgas/domain/abg"
)

const tolerance = 1e-9

// TestMapSingleConditionSeverityScaling interpolates effect ranges by
// the severity factor.
func TestMapSingleConditionSeverityScaling(t *testing.T) {
	patient := abg.DefaultPatient()

	moderate, err := MapSingleCondition(abg.ConditionDKA, abg.SeverityModerate, patient)
	if err != nil {
		t.Fatalf("MapSingleCondition failed: %v", err)
	}
	// DKA pCO2 effect spans -20 to -8; moderate sits at factor 0.66.
	if math.Abs(moderate.PCO2Delta-(-20+12*0.66)) > tolerance {
		t.Errorf("Moderate pCO2 delta is %v", moderate.PCO2Delta)
	}
	if math.Abs(moderate.HCO3Delta-(-18+8*0.66)) > tolerance {
		t.Errorf("Moderate HCO3 delta is %v", moderate.HCO3Delta)
	}
	if !moderate.AnionGapElevated {
		t.Error("DKA deltas should flag an elevated anion gap")
	}
	if math.Abs(moderate.TargetAnionGap-(20+15*0.66)) > tolerance {
		t.Errorf("Moderate anion gap target is %v", moderate.TargetAnionGap)
	}

	severe, err := MapSingleCondition(abg.ConditionDKA, abg.SeveritySevere, patient)
	if err != nil {
		t.Fatalf("MapSingleCondition failed: %v", err)
	}
	// Factor 1.0 lands on the top of each range.
	if severe.TargetAnionGap != 35 {
		t.Errorf("Severe anion gap target is %v, expected 35", severe.TargetAnionGap)
	}
	if severe.GlucoseTarget != 800 {
		t.Errorf("Severe glucose target is %v, expected 800", severe.GlucoseTarget)
	}
	if math.Abs(severe.RespiratoryDriveMultiplier-1.8) > tolerance {
		t.Errorf("DKA drive multiplier is %v, expected 1.8", severe.RespiratoryDriveMultiplier)
	}
}

// TestMapSingleConditionUnknown surfaces the catalog error
func TestMapSingleConditionUnknown(t *testing.T) {
	_, err := MapSingleCondition(abg.ClinicalCondition("bogus"), abg.SeverityModerate, abg.DefaultPatient())
	if err == nil {
		t.Fatal("Expected error for unknown condition")
	}
}

// TestMapMultipleConditionsEmpty returns the neutral deltas
func TestMapMultipleConditionsEmpty(t *testing.T) {
	d, err := MapMultipleConditions(nil, nil, abg.DefaultPatient())
	if err != nil {
		t.Fatalf("MapMultipleConditions failed: %v", err)
	}
	if d.PCO2Delta != 0 || d.HCO3Delta != 0 {
		t.Errorf("Neutral deltas shifted acid-base: %+v", d)
	}
	if d.RespiratoryDriveMultiplier != 1.0 {
		t.Errorf("Neutral drive multiplier is %v", d.RespiratoryDriveMultiplier)
	}
}

// TestCombineRules checks additive, worst-of and sticky folding
func TestCombineRules(t *testing.T) {
	patient := abg.DefaultPatient()
	conditions := []abg.ClinicalCondition{abg.ConditionDKA, abg.ConditionOpioidOverdose}

	combined, err := MapMultipleConditions(conditions, nil, patient)
	if err != nil {
		t.Fatalf("MapMultipleConditions failed: %v", err)
	}

	dka, _ := MapSingleCondition(abg.ConditionDKA, abg.SeverityModerate, patient)
	opioid, _ := MapSingleCondition(abg.ConditionOpioidOverdose, abg.SeverityModerate, patient)

	// Acid-base deltas add.
	if math.Abs(combined.HCO3Delta-(dka.HCO3Delta+opioid.HCO3Delta)) > tolerance {
		t.Errorf("HCO3 deltas did not add: %v", combined.HCO3Delta)
	}
	// Opioid hypoventilation overwhelms ketoacidotic hyperventilation.
	if combined.PCO2Delta <= 0 {
		t.Errorf("Combined pCO2 delta is %v, expected a net rise", combined.PCO2Delta)
	}
	// Drive multipliers multiply, 1.8 * 0.3.
	if math.Abs(combined.RespiratoryDriveMultiplier-0.54) > tolerance {
		t.Errorf("Combined drive multiplier is %v", combined.RespiratoryDriveMultiplier)
	}
	// Compensation blocking is sticky.
	if !combined.CompensationBlocked {
		t.Error("Opioid in the mix should block compensation")
	}
	// Targets take the worse of the pair.
	if combined.GlucoseTarget != math.Max(dka.GlucoseTarget, opioid.GlucoseTarget) {
		t.Errorf("Glucose target is %v", combined.GlucoseTarget)
	}
	if combined.TargetAnionGap != dka.TargetAnionGap {
		t.Errorf("Anion gap target is %v, expected DKA's %v", combined.TargetAnionGap, dka.TargetAnionGap)
	}
}

// TestSepsisStimulatesDrive keeps the drive floor at 1.3
func TestSepsisStimulatesDrive(t *testing.T) {
	conditions := []abg.ClinicalCondition{abg.ConditionLacticAcidosisSepsis, abg.ConditionHealthy}
	d, err := MapMultipleConditions(conditions, nil, abg.DefaultPatient())
	if err != nil {
		t.Fatalf("MapMultipleConditions failed: %v", err)
	}
	if d.RespiratoryDriveMultiplier < 1.3 {
		t.Errorf("Sepsis drive multiplier is %v, expected at least 1.3", d.RespiratoryDriveMultiplier)
	}
}

// TestShuntCombinationCapped caps the folded shunt at 0.5
func TestShuntCombinationCapped(t *testing.T) {
	severities := map[abg.ClinicalCondition]abg.Severity{
		abg.ConditionARDS:                abg.SeveritySevere,
		abg.ConditionLacticAcidosisShock: abg.SeveritySevere,
	}
	conditions := []abg.ClinicalCondition{abg.ConditionARDS, abg.ConditionLacticAcidosisShock}
	d, err := MapMultipleConditions(conditions, severities, abg.DefaultPatient())
	if err != nil {
		t.Fatalf("MapMultipleConditions failed: %v", err)
	}
	// ARDS 0.45 + shock 0.25 * 0.5 folds above the cap.
	if d.ShuntFraction > 0.5 {
		t.Errorf("Combined shunt %v exceeds the 0.5 cap", d.ShuntFraction)
	}
	if d.ShuntFraction < 0.45 {
		t.Errorf("Combined shunt %v below the dominant contribution", d.ShuntFraction)
	}
}

// TestPrimaryDisorder follows the first condition
func TestPrimaryDisorder(t *testing.T) {
	d, err := PrimaryDisorder(nil)
	if err != nil || d != abg.DisorderNormal {
		t.Errorf("Empty list gave %s, %v", d, err)
	}

	d, err = PrimaryDisorder([]abg.ClinicalCondition{abg.ConditionDKA, abg.ConditionOpioidOverdose})
	if err != nil {
		t.Fatalf("PrimaryDisorder failed: %v", err)
	}
	if d != abg.DisorderMetabolicAcidosis {
		t.Errorf("Primary disorder is %s", d)
	}

	if _, err = PrimaryDisorder([]abg.ClinicalCondition{"bogus"}); err == nil {
		t.Error("Expected error for unknown condition")
	}
}

// TestTeachingPointsInteractionCommentary adds the mixed-disorder notes
func TestTeachingPointsInteractionCommentary(t *testing.T) {
	points, err := TeachingPoints([]abg.ClinicalCondition{abg.ConditionDKA, abg.ConditionOpioidOverdose})
	if err != nil {
		t.Fatalf("TeachingPoints failed: %v", err)
	}

	var sawBlocked bool
	for _, p := range points {
		if p == "Respiratory depression blocks compensatory hyperventilation, causing more severe acidemia" {
			sawBlocked = true
		}
	}
	if !sawBlocked {
		t.Error("Missing blocked-compensation commentary for DKA plus opioid overdose")
	}
}
