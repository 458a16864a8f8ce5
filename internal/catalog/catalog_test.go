package catalog

import (
	"errors"
	"testing"

	"bloodgas/domain/abg"
	"bloodgas/domain/core"
)

// TestAllCoversEveryCondition checks the catalog is complete and in
// canonical order.
func TestAllCoversEveryCondition(t *testing.T) {
	entries := All()
	conditions := abg.AllConditions()

	if len(entries) != len(conditions) {
		t.Fatalf("Catalog has %d entries for %d conditions", len(entries), len(conditions))
	}
	for i, c := range conditions {
		if entries[i].Condition != c {
			t.Errorf("Entry %d is %q, expected %q", i, entries[i].Condition, c)
		}
	}
}

// TestEffectUnknownCondition returns the sentinel error
func TestEffectUnknownCondition(t *testing.T) {
	_, err := Effect(abg.ClinicalCondition("no_such_condition"))
	if err == nil {
		t.Fatal("Expected error for unknown condition")
	}
	if !errors.Is(err, core.ErrConditionNotFound) {
		t.Errorf("Expected ErrConditionNotFound, got %v", err)
	}
}

// TestEveryEntryHasFootprint checks each entry carries usable ranges
func TestEveryEntryHasFootprint(t *testing.T) {
	for _, e := range All() {
		if e.Description == "" {
			t.Errorf("%s has no description", e.Condition)
		}
		if e.PHRange.Typical < e.PHRange.Min || e.PHRange.Typical > e.PHRange.Max {
			t.Errorf("%s has typical pH %v outside [%v, %v]",
				e.Condition, e.PHRange.Typical, e.PHRange.Min, e.PHRange.Max)
		}
		if e.RespiratoryDriveMultiplier <= 0 {
			t.Errorf("%s has non-positive drive multiplier", e.Condition)
		}
		if e.AnionGapElevated && e.TypicalAnionGap.Max <= 12 {
			t.Errorf("%s flags an elevated gap but tops out at %v", e.Condition, e.TypicalAnionGap.Max)
		}
	}
}

// TestDKAFootprint spot-checks the DKA entry
func TestDKAFootprint(t *testing.T) {
	e, err := Effect(abg.ConditionDKA)
	if err != nil {
		t.Fatalf("Effect(dka) failed: %v", err)
	}
	if e.PrimaryDisorder != abg.DisorderMetabolicAcidosis {
		t.Errorf("DKA primary disorder is %s", e.PrimaryDisorder)
	}
	if !e.AnionGapElevated {
		t.Error("DKA should have an elevated anion gap")
	}
	if e.GlucoseEffect.Min < 250 {
		t.Errorf("DKA glucose floor is %v, expected at least 250", e.GlucoseEffect.Min)
	}
	if !e.AffectsRespiratoryDrive || e.RespiratoryDriveMultiplier <= 1.0 {
		t.Error("DKA should stimulate respiratory drive")
	}
}

// TestOpioidOverdoseBlocksCompensation spot-checks the drive damping
func TestOpioidOverdoseBlocksCompensation(t *testing.T) {
	e, err := Effect(abg.ConditionOpioidOverdose)
	if err != nil {
		t.Fatalf("Effect(opioid_overdose) failed: %v", err)
	}
	if !e.CompensationBlocked {
		t.Error("Opioid overdose should block respiratory compensation")
	}
	if !e.AffectsRespiratoryDrive || e.RespiratoryDriveMultiplier >= 1.0 {
		t.Errorf("Opioid overdose should depress drive, multiplier is %v",
			e.RespiratoryDriveMultiplier)
	}
	if e.AAGradientElevated {
		t.Error("Opioid overdose hypoxemia should carry a normal A-a gradient")
	}
}

// TestARDSShuntPhysiology checks the refractory-hypoxemia footprint
func TestARDSShuntPhysiology(t *testing.T) {
	e, err := Effect(abg.ConditionARDS)
	if err != nil {
		t.Fatalf("Effect(ards) failed: %v", err)
	}
	if !e.AAGradientElevated {
		t.Error("ARDS should elevate the A-a gradient")
	}
	if e.ShuntFractionRange.Min < 0.25 {
		t.Errorf("ARDS shunt floor is %v, expected at least 0.25", e.ShuntFractionRange.Min)
	}
}
