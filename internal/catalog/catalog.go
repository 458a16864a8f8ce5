// Package catalog defines the physiological footprint of every
// clinical condition the generator can simulate.
package catalog

import (
	"fmt"

	"bloodgas/domain/abg"
	"bloodgas/domain/core"
)

// defaults for fields most conditions leave at reference values.
func base(c abg.ClinicalCondition, primary abg.Disorder) abg.ConditionEffect {
	return abg.ConditionEffect{
		Condition:                  c,
		PrimaryDisorder:            primary,
		AAGradientRange:            abg.Range{Min: 10, Max: 15},
		TypicalAnionGap:            abg.Range{Min: 8, Max: 12},
		SodiumEffect:               abg.Range{Min: -2, Max: 2},
		PotassiumEffect:            abg.Range{Min: -0.3, Max: 0.3},
		ChlorideEffect:             abg.Range{Min: -2, Max: 2},
		GlucoseEffect:              abg.Range{Min: 70, Max: 110},
		LactateEffect:              abg.Range{Min: 0.5, Max: 2.0},
		ExpectedCompensation:       abg.CompensationAppropriate,
		RespiratoryDriveMultiplier: 1.0,
	}
}

var effects = buildEffects()

func buildEffects() map[abg.ClinicalCondition]abg.ConditionEffect {
	m := make(map[abg.ClinicalCondition]abg.ConditionEffect)
	add := func(e abg.ConditionEffect) { m[e.Condition] = e }

	// Respiratory conditions.

	e := base(abg.ConditionCOPDExacerbation, abg.DisorderRespiratoryAcidosis)
	e.PHRange = abg.PHBand{Min: 7.25, Typical: 7.35, Max: 7.42}
	e.PCO2Effect = abg.Range{Min: 5, Max: 20}
	e.HCO3Effect = abg.Range{Min: 4, Max: 12}
	e.PO2Effect = abg.Range{Min: 45, Max: 65}
	e.AAGradientElevated = true
	e.AAGradientRange = abg.Range{Min: 15, Max: 32}
	e.ShuntFractionRange = abg.Range{Min: 0.02, Max: 0.08}
	e.PotassiumEffect = abg.Range{Min: -0.3, Max: 0.3}
	e.LactateEffect = abg.Range{Min: 0.8, Max: 2.5}
	e.Description = "COPD exacerbation with acute-on-chronic respiratory acidosis"
	e.TeachingPoints = []string{
		"COPD patients often have chronic CO2 retention with compensatory elevated HCO3",
		"Acute exacerbation causes further pCO2 rise without immediate HCO3 compensation",
		"Look for baseline ABGs to distinguish acute vs chronic changes",
		"Hypoxemia due to V/Q mismatch - A-a gradient elevated but responds well to O2",
	}
	add(e)

	e = base(abg.ConditionAsthmaAttack, abg.DisorderRespiratoryAlkalosis)
	e.PHRange = abg.PHBand{Min: 7.35, Typical: 7.45, Max: 7.55}
	e.PCO2Effect = abg.Range{Min: -15, Max: -5}
	e.HCO3Effect = abg.Range{Min: -4, Max: 0}
	e.PO2Effect = abg.Range{Min: 60, Max: 85}
	e.AAGradientElevated = true
	e.AAGradientRange = abg.Range{Min: 15, Max: 35}
	e.ShuntFractionRange = abg.Range{Min: 0, Max: 0.05}
	e.LactateEffect = abg.Range{Min: 1.0, Max: 3.0}
	e.AffectsRespiratoryDrive = true
	e.RespiratoryDriveMultiplier = 1.5
	e.Description = "Acute asthma attack"
	e.TeachingPoints = []string{
		"Early/moderate asthma: hyperventilation causes respiratory alkalosis",
		"Normal or rising pCO2 in acute asthma is ominous - indicates fatigue/impending failure",
		"Severe attack can progress to respiratory acidosis if patient tires",
		"Lactate may rise due to increased work of breathing",
	}
	add(e)

	e = base(abg.ConditionPulmonaryEmbolism, abg.DisorderRespiratoryAlkalosis)
	e.PHRange = abg.PHBand{Min: 7.42, Typical: 7.48, Max: 7.55}
	e.PCO2Effect = abg.Range{Min: -12, Max: -5}
	e.HCO3Effect = abg.Range{Min: -3, Max: 0}
	e.PO2Effect = abg.Range{Min: 55, Max: 80}
	e.AAGradientElevated = true
	e.AAGradientRange = abg.Range{Min: 20, Max: 45}
	e.ShuntFractionRange = abg.Range{Min: 0.05, Max: 0.20}
	e.LactateEffect = abg.Range{Min: 1.0, Max: 4.0}
	e.Description = "Pulmonary embolism with hypoxemia"
	e.TeachingPoints = []string{
		"Classic triad: hypoxemia, respiratory alkalosis, elevated A-a gradient",
		"Hypoxemia that doesn't fully correct with oxygen suggests shunt (large PE)",
		"Normal ABG does not exclude PE",
		"Lactate elevation suggests hemodynamic compromise",
	}
	add(e)

	e = base(abg.ConditionARDS, abg.DisorderRespiratoryAcidosis)
	e.PHRange = abg.PHBand{Min: 7.20, Typical: 7.32, Max: 7.40}
	e.PCO2Effect = abg.Range{Min: 5, Max: 25}
	e.HCO3Effect = abg.Range{Min: -2, Max: 4}
	e.PO2Effect = abg.Range{Min: 40, Max: 70}
	e.AAGradientElevated = true
	e.AAGradientRange = abg.Range{Min: 30, Max: 55}
	e.ShuntFractionRange = abg.Range{Min: 0.28, Max: 0.45}
	e.LactateEffect = abg.Range{Min: 2.0, Max: 8.0}
	e.Description = "Acute respiratory distress syndrome"
	e.TeachingPoints = []string{
		"Defined by P/F ratio: Mild 200-300, Moderate 100-200, Severe <100",
		"Bilateral infiltrates on imaging required for diagnosis",
		"Hypoxemia refractory to oxygen due to shunt physiology (28-45% shunt)",
		"May require permissive hypercapnia in lung-protective ventilation",
	}
	add(e)

	e = base(abg.ConditionPneumonia, abg.DisorderRespiratoryAlkalosis)
	e.PHRange = abg.PHBand{Min: 7.38, Typical: 7.45, Max: 7.52}
	e.PCO2Effect = abg.Range{Min: -10, Max: 0}
	e.HCO3Effect = abg.Range{Min: -2, Max: 0}
	e.PO2Effect = abg.Range{Min: 55, Max: 80}
	e.AAGradientElevated = true
	e.AAGradientRange = abg.Range{Min: 20, Max: 40}
	e.ShuntFractionRange = abg.Range{Min: 0.03, Max: 0.12}
	e.LactateEffect = abg.Range{Min: 1.0, Max: 4.0}
	e.Description = "Community or hospital-acquired pneumonia"
	e.TeachingPoints = []string{
		"Typically causes respiratory alkalosis from hyperventilation",
		"A-a gradient elevated due to V/Q mismatch in affected lung",
		"Rising pCO2 may indicate respiratory failure/fatigue",
		"Can progress to ARDS or sepsis",
	}
	add(e)

	e = base(abg.ConditionOpioidOverdose, abg.DisorderRespiratoryAcidosis)
	e.PHRange = abg.PHBand{Min: 7.15, Typical: 7.25, Max: 7.35}
	e.PCO2Effect = abg.Range{Min: 15, Max: 40}
	e.HCO3Effect = abg.Range{Min: 0, Max: 3}
	e.PO2Effect = abg.Range{Min: 40, Max: 65}
	e.AAGradientRange = abg.Range{Min: 8, Max: 15}
	e.LactateEffect = abg.Range{Min: 1.5, Max: 5.0}
	e.CompensationBlocked = true
	e.AffectsRespiratoryDrive = true
	e.RespiratoryDriveMultiplier = 0.3
	e.Description = "Opioid-induced respiratory depression"
	e.TeachingPoints = []string{
		"Classic pure respiratory acidosis with NORMAL A-a gradient",
		"Hypoxemia corrects EXCELLENTLY with oxygen (no V/Q mismatch, no shunt)",
		"Blocks respiratory compensation for any metabolic acidosis present",
		"Calculate expected pO2: PAO2 - A-a gradient (should be normal A-a)",
	}
	add(e)

	e = base(abg.ConditionHyperventilationPanic, abg.DisorderRespiratoryAlkalosis)
	e.PHRange = abg.PHBand{Min: 7.50, Typical: 7.55, Max: 7.65}
	e.PCO2Effect = abg.Range{Min: -20, Max: -10}
	e.HCO3Effect = abg.Range{Min: -4, Max: -1}
	e.PO2Effect = abg.Range{Min: 100, Max: 115}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.LactateEffect = abg.Range{Min: 0.8, Max: 2.0}
	e.Description = "Hyperventilation syndrome / panic attack"
	e.TeachingPoints = []string{
		"Acute respiratory alkalosis with normal A-a gradient",
		"pO2 often normal or elevated (no lung pathology)",
		"Symptoms (tingling, spasm) from hypocalcemia due to alkalosis",
		"Diagnosis of exclusion - rule out PE, MI, etc. first",
	}
	add(e)

	e = base(abg.ConditionHyperventilationPain, abg.DisorderRespiratoryAlkalosis)
	e.PHRange = abg.PHBand{Min: 7.45, Typical: 7.50, Max: 7.55}
	e.PCO2Effect = abg.Range{Min: -12, Max: -5}
	e.HCO3Effect = abg.Range{Min: -2, Max: 0}
	e.PO2Effect = abg.Range{Min: 90, Max: 105}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.LactateEffect = abg.Range{Min: 1.0, Max: 2.5}
	e.Description = "Pain-induced hyperventilation"
	e.TeachingPoints = []string{
		"Pain causes tachypnea and respiratory alkalosis",
		"Important to consider underlying cause of pain",
		"May coexist with other acid-base disorders",
	}
	add(e)

	e = base(abg.ConditionNeuromuscularWeakness, abg.DisorderRespiratoryAcidosis)
	e.PHRange = abg.PHBand{Min: 7.28, Typical: 7.35, Max: 7.40}
	e.PCO2Effect = abg.Range{Min: 8, Max: 25}
	e.HCO3Effect = abg.Range{Min: 2, Max: 8}
	e.PO2Effect = abg.Range{Min: 60, Max: 80}
	e.AAGradientRange = abg.Range{Min: 8, Max: 15}
	e.Description = "Neuromuscular respiratory failure (GBS, MG, ALS)"
	e.TeachingPoints = []string{
		"Respiratory acidosis with normal A-a gradient (pump failure, not lung failure)",
		"Hypoxemia responds well to supplemental oxygen",
		"Rising pCO2 in GBS/MG crisis is indication for intubation",
		"May be chronic in ALS with compensatory elevated HCO3",
	}
	add(e)

	// High anion gap metabolic acidosis.

	e = base(abg.ConditionDKA, abg.DisorderMetabolicAcidosis)
	e.PHRange = abg.PHBand{Min: 7.00, Typical: 7.20, Max: 7.30}
	e.PCO2Effect = abg.Range{Min: -20, Max: -8}
	e.HCO3Effect = abg.Range{Min: -18, Max: -10}
	e.PO2Effect = abg.Range{Min: 90, Max: 110}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.AnionGapElevated = true
	e.TypicalAnionGap = abg.Range{Min: 20, Max: 35}
	e.SodiumEffect = abg.Range{Min: -8, Max: 0}
	e.PotassiumEffect = abg.Range{Min: -0.5, Max: 2.0}
	e.GlucoseEffect = abg.Range{Min: 250, Max: 800}
	e.LactateEffect = abg.Range{Min: 2.0, Max: 5.0}
	e.AffectsRespiratoryDrive = true
	e.RespiratoryDriveMultiplier = 1.8
	e.Description = "Diabetic ketoacidosis"
	e.TeachingPoints = []string{
		"High anion gap metabolic acidosis from ketone bodies",
		"Kussmaul breathing (deep, rapid) is respiratory compensation",
		"Potassium is often HIGH despite total body depletion - will drop with insulin",
		"Calculate corrected sodium: add 1.6 mEq/L per 100 mg/dL glucose above 100",
		"Delta-delta ratio helps identify concurrent disorders",
	}
	add(e)

	e = base(abg.ConditionHHS, abg.DisorderMetabolicAcidosis)
	e.PHRange = abg.PHBand{Min: 7.25, Typical: 7.35, Max: 7.42}
	e.PCO2Effect = abg.Range{Min: -8, Max: 0}
	e.HCO3Effect = abg.Range{Min: -8, Max: -2}
	e.PO2Effect = abg.Range{Min: 85, Max: 100}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.AnionGapElevated = true
	e.TypicalAnionGap = abg.Range{Min: 12, Max: 20}
	e.SodiumEffect = abg.Range{Min: 0, Max: 15}
	e.GlucoseEffect = abg.Range{Min: 600, Max: 1200}
	e.LactateEffect = abg.Range{Min: 1.5, Max: 4.0}
	e.Description = "Hyperosmolar hyperglycemic state"
	e.TeachingPoints = []string{
		"Less acidosis than DKA - insufficient insulin but enough to prevent ketosis",
		"Extreme hyperglycemia and dehydration",
		"Serum sodium needs correction for glucose",
		"High mortality especially in elderly",
	}
	add(e)

	e = base(abg.ConditionLacticAcidosisSepsis, abg.DisorderMetabolicAcidosis)
	e.PHRange = abg.PHBand{Min: 7.10, Typical: 7.25, Max: 7.35}
	e.PCO2Effect = abg.Range{Min: -15, Max: -5}
	e.HCO3Effect = abg.Range{Min: -14, Max: -6}
	e.PO2Effect = abg.Range{Min: 60, Max: 90}
	e.AAGradientElevated = true
	e.AAGradientRange = abg.Range{Min: 20, Max: 45}
	e.ShuntFractionRange = abg.Range{Min: 0.05, Max: 0.20}
	e.AnionGapElevated = true
	e.TypicalAnionGap = abg.Range{Min: 18, Max: 30}
	e.LactateEffect = abg.Range{Min: 4.0, Max: 15.0}
	e.PotassiumEffect = abg.Range{Min: 0, Max: 1.0}
	e.Description = "Lactic acidosis from sepsis"
	e.TeachingPoints = []string{
		"Lactate is key marker for tissue hypoperfusion in sepsis",
		"Type A lactic acidosis (hypoxic) from poor oxygen delivery",
		"Lactate clearance is prognostic marker",
		"May have concurrent respiratory alkalosis from sepsis-induced hyperventilation",
	}
	add(e)

	e = base(abg.ConditionLacticAcidosisShock, abg.DisorderMetabolicAcidosis)
	e.PHRange = abg.PHBand{Min: 7.00, Typical: 7.15, Max: 7.25}
	e.PCO2Effect = abg.Range{Min: -18, Max: -8}
	e.HCO3Effect = abg.Range{Min: -16, Max: -8}
	e.PO2Effect = abg.Range{Min: 50, Max: 80}
	e.AAGradientElevated = true
	e.AAGradientRange = abg.Range{Min: 25, Max: 50}
	e.ShuntFractionRange = abg.Range{Min: 0.10, Max: 0.25}
	e.AnionGapElevated = true
	e.TypicalAnionGap = abg.Range{Min: 22, Max: 35}
	e.LactateEffect = abg.Range{Min: 6.0, Max: 20.0}
	e.PotassiumEffect = abg.Range{Min: 0.5, Max: 2.0}
	e.Description = "Lactic acidosis from cardiogenic/hypovolemic shock"
	e.TeachingPoints = []string{
		"Severe tissue hypoxia leads to anaerobic metabolism",
		"Very high lactate (>10) associated with poor prognosis",
		"Treatment is restoring perfusion, not buffering",
		"Potassium often elevated from cellular release",
	}
	add(e)

	e = base(abg.ConditionLacticAcidosisSeizure, abg.DisorderMetabolicAcidosis)
	e.PHRange = abg.PHBand{Min: 7.15, Typical: 7.25, Max: 7.35}
	e.PCO2Effect = abg.Range{Min: -10, Max: 0}
	e.HCO3Effect = abg.Range{Min: -10, Max: -4}
	e.PO2Effect = abg.Range{Min: 70, Max: 95}
	e.AAGradientRange = abg.Range{Min: 8, Max: 15}
	e.AnionGapElevated = true
	e.TypicalAnionGap = abg.Range{Min: 16, Max: 24}
	e.LactateEffect = abg.Range{Min: 3.0, Max: 10.0}
	e.PotassiumEffect = abg.Range{Min: 0.3, Max: 1.5}
	e.Description = "Post-seizure lactic acidosis"
	e.TeachingPoints = []string{
		"Massive muscle activity generates lactate",
		"Usually resolves within 60-90 minutes",
		"May have concurrent respiratory acidosis if post-ictal",
		"Lactate normalizes quickly without specific treatment",
	}
	add(e)

	e = base(abg.ConditionRenalFailureAcute, abg.DisorderMetabolicAcidosis)
	e.PHRange = abg.PHBand{Min: 7.20, Typical: 7.30, Max: 7.38}
	e.PCO2Effect = abg.Range{Min: -10, Max: -3}
	e.HCO3Effect = abg.Range{Min: -10, Max: -4}
	e.PO2Effect = abg.Range{Min: 75, Max: 95}
	e.AAGradientRange = abg.Range{Min: 8, Max: 15}
	e.ShuntFractionRange = abg.Range{Min: 0, Max: 0.05}
	e.AnionGapElevated = true
	e.TypicalAnionGap = abg.Range{Min: 14, Max: 22}
	e.PotassiumEffect = abg.Range{Min: 0.5, Max: 2.5}
	e.LactateEffect = abg.Range{Min: 1.0, Max: 3.0}
	e.Description = "Acute kidney injury with metabolic acidosis"
	e.TeachingPoints = []string{
		"Failure to excrete daily acid load",
		"High anion gap from retained sulfates, phosphates, urate",
		"Hyperkalemia is common and dangerous",
		"May need emergent dialysis for severe acidosis/hyperkalemia",
	}
	add(e)

	e = base(abg.ConditionRenalFailureChronic, abg.DisorderMetabolicAcidosis)
	e.PHRange = abg.PHBand{Min: 7.28, Typical: 7.35, Max: 7.40}
	e.PCO2Effect = abg.Range{Min: -8, Max: 0}
	e.HCO3Effect = abg.Range{Min: -8, Max: -2}
	e.PO2Effect = abg.Range{Min: 80, Max: 100}
	e.AAGradientRange = abg.Range{Min: 8, Max: 15}
	e.AnionGapElevated = true
	e.TypicalAnionGap = abg.Range{Min: 12, Max: 18}
	e.PotassiumEffect = abg.Range{Min: 0, Max: 1.5}
	e.Description = "Chronic kidney disease with chronic metabolic acidosis"
	e.TeachingPoints = []string{
		"Compensated chronic metabolic acidosis",
		"Lower HCO3 becomes 'new normal' for patient",
		"Contributes to bone disease and muscle wasting",
		"Oral bicarbonate supplementation often used",
	}
	add(e)

	e = base(abg.ConditionMethanolIngestion, abg.DisorderMetabolicAcidosis)
	e.PHRange = abg.PHBand{Min: 6.90, Typical: 7.10, Max: 7.25}
	e.PCO2Effect = abg.Range{Min: -20, Max: -10}
	e.HCO3Effect = abg.Range{Min: -20, Max: -12}
	e.PO2Effect = abg.Range{Min: 90, Max: 105}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.AnionGapElevated = true
	e.TypicalAnionGap = abg.Range{Min: 25, Max: 40}
	e.LactateEffect = abg.Range{Min: 1.0, Max: 3.0}
	e.Description = "Methanol poisoning"
	e.TeachingPoints = []string{
		"Formic acid causes severe high AG acidosis + blindness",
		"ELEVATED OSMOLAR GAP early, then AG rises as metabolized",
		"Treatment: fomepizole, dialysis, folate",
		"Visual symptoms are pathognomonic",
	}
	add(e)

	e = base(abg.ConditionEthyleneGlycol, abg.DisorderMetabolicAcidosis)
	e.PHRange = abg.PHBand{Min: 6.90, Typical: 7.10, Max: 7.25}
	e.PCO2Effect = abg.Range{Min: -20, Max: -10}
	e.HCO3Effect = abg.Range{Min: -20, Max: -12}
	e.PO2Effect = abg.Range{Min: 90, Max: 105}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.AnionGapElevated = true
	e.TypicalAnionGap = abg.Range{Min: 25, Max: 40}
	e.LactateEffect = abg.Range{Min: 1.0, Max: 3.0}
	e.Description = "Ethylene glycol poisoning"
	e.TeachingPoints = []string{
		"Glycolic and oxalic acid cause AG acidosis + renal failure",
		"ELEVATED OSMOLAR GAP early, then AG rises",
		"Calcium oxalate crystals in urine",
		"Treatment: fomepizole, dialysis",
	}
	add(e)

	e = base(abg.ConditionSalicylateToxicity, abg.DisorderMetabolicAcidosis)
	e.PHRange = abg.PHBand{Min: 7.30, Typical: 7.45, Max: 7.55}
	e.PCO2Effect = abg.Range{Min: -15, Max: -5}
	e.HCO3Effect = abg.Range{Min: -12, Max: -4}
	e.PO2Effect = abg.Range{Min: 85, Max: 100}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.AnionGapElevated = true
	e.TypicalAnionGap = abg.Range{Min: 18, Max: 28}
	e.GlucoseEffect = abg.Range{Min: 60, Max: 100}
	e.LactateEffect = abg.Range{Min: 2.0, Max: 6.0}
	e.AffectsRespiratoryDrive = true
	e.RespiratoryDriveMultiplier = 1.6
	e.Description = "Salicylate toxicity"
	e.TeachingPoints = []string{
		"CLASSIC MIXED DISORDER: respiratory alkalosis + metabolic acidosis",
		"Direct CNS stimulation causes respiratory alkalosis",
		"Uncouples oxidative phosphorylation causing metabolic acidosis",
		"Adults often present alkalemic, children more acidemic",
		"Alkalinize urine to enhance excretion (ion trapping)",
	}
	add(e)

	e = base(abg.ConditionStarvationKetosis, abg.DisorderMetabolicAcidosis)
	e.PHRange = abg.PHBand{Min: 7.30, Typical: 7.36, Max: 7.40}
	e.PCO2Effect = abg.Range{Min: -5, Max: 0}
	e.HCO3Effect = abg.Range{Min: -6, Max: -2}
	e.PO2Effect = abg.Range{Min: 90, Max: 100}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.AnionGapElevated = true
	e.TypicalAnionGap = abg.Range{Min: 12, Max: 18}
	e.GlucoseEffect = abg.Range{Min: 50, Max: 80}
	e.LactateEffect = abg.Range{Min: 0.5, Max: 1.5}
	e.Description = "Starvation ketosis"
	e.TeachingPoints = []string{
		"Mild ketoacidosis from prolonged fasting",
		"Much milder than DKA",
		"Glucose is low (opposite of DKA)",
		"Resolves with feeding",
	}
	add(e)

	e = base(abg.ConditionAlcoholicKetoacidosis, abg.DisorderMetabolicAcidosis)
	e.PHRange = abg.PHBand{Min: 7.20, Typical: 7.32, Max: 7.42}
	e.PCO2Effect = abg.Range{Min: -12, Max: -3}
	e.HCO3Effect = abg.Range{Min: -12, Max: -4}
	e.PO2Effect = abg.Range{Min: 85, Max: 100}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.AnionGapElevated = true
	e.TypicalAnionGap = abg.Range{Min: 18, Max: 28}
	e.GlucoseEffect = abg.Range{Min: 40, Max: 150}
	e.LactateEffect = abg.Range{Min: 2.0, Max: 5.0}
	e.Description = "Alcoholic ketoacidosis"
	e.TeachingPoints = []string{
		"Occurs after binge drinking followed by starvation/vomiting",
		"Glucose often low or normal (not like DKA)",
		"May have concurrent metabolic alkalosis from vomiting",
		"Treats with glucose and volume - resolves quickly",
		"Nitroprusside test may be negative (beta-hydroxybutyrate predominates)",
	}
	add(e)

	// Normal anion gap (hyperchloremic) metabolic acidosis.

	e = base(abg.ConditionDiarrhea, abg.DisorderMetabolicAcidosis)
	e.PHRange = abg.PHBand{Min: 7.25, Typical: 7.32, Max: 7.38}
	e.PCO2Effect = abg.Range{Min: -10, Max: -3}
	e.HCO3Effect = abg.Range{Min: -10, Max: -4}
	e.PO2Effect = abg.Range{Min: 90, Max: 100}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.PotassiumEffect = abg.Range{Min: -1.5, Max: -0.3}
	e.ChlorideEffect = abg.Range{Min: 4, Max: 12}
	e.Description = "Diarrhea with bicarbonate loss"
	e.TeachingPoints = []string{
		"GI loss of bicarbonate causes normal AG (hyperchloremic) acidosis",
		"Chloride rises to maintain electroneutrality as HCO3 falls",
		"Hypokalemia common from GI losses",
		"Urine AG helps distinguish from RTA",
	}
	add(e)

	e = base(abg.ConditionRTAType1, abg.DisorderMetabolicAcidosis)
	e.PHRange = abg.PHBand{Min: 7.25, Typical: 7.32, Max: 7.38}
	e.PCO2Effect = abg.Range{Min: -8, Max: -2}
	e.HCO3Effect = abg.Range{Min: -14, Max: -6}
	e.PO2Effect = abg.Range{Min: 90, Max: 100}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.PotassiumEffect = abg.Range{Min: -1.5, Max: -0.3}
	e.Description = "Distal (Type 1) renal tubular acidosis"
	e.TeachingPoints = []string{
		"Failure to secrete H+ in distal tubule",
		"Urine pH inappropriately HIGH (>5.5) despite systemic acidosis",
		"Hypokalemia common",
		"Associated with nephrolithiasis and nephrocalcinosis",
	}
	add(e)

	e = base(abg.ConditionRTAType2, abg.DisorderMetabolicAcidosis)
	e.PHRange = abg.PHBand{Min: 7.30, Typical: 7.35, Max: 7.40}
	e.PCO2Effect = abg.Range{Min: -5, Max: 0}
	e.HCO3Effect = abg.Range{Min: -8, Max: -3}
	e.PO2Effect = abg.Range{Min: 90, Max: 100}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.PotassiumEffect = abg.Range{Min: -1.0, Max: 0}
	e.Description = "Proximal (Type 2) renal tubular acidosis"
	e.TeachingPoints = []string{
		"Failure to reabsorb bicarbonate in proximal tubule",
		"Sets new lower threshold for HCO3 reabsorption",
		"Once at new steady state, urine pH can be low",
		"May be part of Fanconi syndrome",
	}
	add(e)

	e = base(abg.ConditionRTAType4, abg.DisorderMetabolicAcidosis)
	e.PHRange = abg.PHBand{Min: 7.30, Typical: 7.35, Max: 7.40}
	e.PCO2Effect = abg.Range{Min: -5, Max: 0}
	e.HCO3Effect = abg.Range{Min: -6, Max: -2}
	e.PO2Effect = abg.Range{Min: 90, Max: 100}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.PotassiumEffect = abg.Range{Min: 0.5, Max: 2.0}
	e.Description = "Type 4 RTA (hypoaldosteronism)"
	e.TeachingPoints = []string{
		"Aldosterone deficiency or resistance",
		"HYPERKALEMIA is the hallmark (opposite of Type 1 and 2)",
		"Common in diabetics (hyporeninemic hypoaldosteronism)",
		"Mild acidosis compared to other RTAs",
	}
	add(e)

	e = base(abg.ConditionSalineInfusion, abg.DisorderMetabolicAcidosis)
	e.PHRange = abg.PHBand{Min: 7.32, Typical: 7.36, Max: 7.40}
	e.PCO2Effect = abg.Range{Min: -3, Max: 0}
	e.HCO3Effect = abg.Range{Min: -4, Max: -1}
	e.PO2Effect = abg.Range{Min: 90, Max: 100}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.ChlorideEffect = abg.Range{Min: 4, Max: 10}
	e.Description = "Dilutional acidosis from normal saline"
	e.TeachingPoints = []string{
		"Large volume NS (Cl- 154 mEq/L) causes hyperchloremic acidosis",
		"Chloride excess relative to sodium",
		"Usually mild and clinically insignificant",
		"Balanced crystalloids (LR, Plasmalyte) avoid this",
	}
	add(e)

	// Metabolic alkalosis.

	e = base(abg.ConditionVomiting, abg.DisorderMetabolicAlkalosis)
	e.PHRange = abg.PHBand{Min: 7.45, Typical: 7.52, Max: 7.60}
	e.PCO2Effect = abg.Range{Min: 2, Max: 10}
	e.HCO3Effect = abg.Range{Min: 4, Max: 14}
	e.PO2Effect = abg.Range{Min: 75, Max: 90}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.PotassiumEffect = abg.Range{Min: -1.5, Max: -0.5}
	e.ChlorideEffect = abg.Range{Min: -15, Max: -5}
	e.Description = "Metabolic alkalosis from vomiting"
	e.TeachingPoints = []string{
		"Loss of HCl from stomach causes alkalosis",
		"HYPOCHLOREMIA and HYPOKALEMIA are hallmarks",
		"Volume depletion maintains alkalosis (avid Na/HCO3 reabsorption)",
		"Saline-responsive - give NS to correct",
		"Chloride-responsive alkalosis (urine Cl < 20)",
	}
	add(e)

	e = base(abg.ConditionNGSuction, abg.DisorderMetabolicAlkalosis)
	e.PHRange = abg.PHBand{Min: 7.45, Typical: 7.52, Max: 7.58}
	e.PCO2Effect = abg.Range{Min: 3, Max: 10}
	e.HCO3Effect = abg.Range{Min: 4, Max: 12}
	e.PO2Effect = abg.Range{Min: 75, Max: 90}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.PotassiumEffect = abg.Range{Min: -1.2, Max: -0.3}
	e.ChlorideEffect = abg.Range{Min: -12, Max: -4}
	e.Description = "Metabolic alkalosis from NG suction"
	e.TeachingPoints = []string{
		"Same mechanism as vomiting - gastric HCl loss",
		"Common in post-surgical patients",
		"Replace losses with appropriate fluids",
	}
	add(e)

	e = base(abg.ConditionDiureticUse, abg.DisorderMetabolicAlkalosis)
	e.PHRange = abg.PHBand{Min: 7.44, Typical: 7.48, Max: 7.55}
	e.PCO2Effect = abg.Range{Min: 2, Max: 8}
	e.HCO3Effect = abg.Range{Min: 3, Max: 10}
	e.PO2Effect = abg.Range{Min: 80, Max: 95}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.PotassiumEffect = abg.Range{Min: -1.0, Max: -0.3}
	e.ChlorideEffect = abg.Range{Min: -8, Max: -2}
	e.Description = "Diuretic-induced metabolic alkalosis"
	e.TeachingPoints = []string{
		"Loop and thiazide diuretics cause Cl/K losses",
		"Volume contraction maintains the alkalosis",
		"Saline-responsive (urine Cl < 20)",
		"Hypokalemia perpetuates H+ secretion",
	}
	add(e)

	e = base(abg.ConditionHypokalemia, abg.DisorderMetabolicAlkalosis)
	e.PHRange = abg.PHBand{Min: 7.44, Typical: 7.48, Max: 7.52}
	e.PCO2Effect = abg.Range{Min: 2, Max: 6}
	e.HCO3Effect = abg.Range{Min: 2, Max: 8}
	e.PO2Effect = abg.Range{Min: 85, Max: 100}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.PotassiumEffect = abg.Range{Min: -1.5, Max: -0.8}
	e.Description = "Metabolic alkalosis from severe hypokalemia"
	e.TeachingPoints = []string{
		"K+ depletion causes intracellular H+ shift",
		"Also increases renal H+ secretion",
		"Must correct K+ to correct the alkalosis",
	}
	add(e)

	e = base(abg.ConditionHyperaldosteronism, abg.DisorderMetabolicAlkalosis)
	e.PHRange = abg.PHBand{Min: 7.44, Typical: 7.50, Max: 7.55}
	e.PCO2Effect = abg.Range{Min: 2, Max: 8}
	e.HCO3Effect = abg.Range{Min: 4, Max: 12}
	e.PO2Effect = abg.Range{Min: 85, Max: 100}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.SodiumEffect = abg.Range{Min: 2, Max: 8}
	e.PotassiumEffect = abg.Range{Min: -1.2, Max: -0.5}
	e.Description = "Primary hyperaldosteronism (Conn's syndrome)"
	e.TeachingPoints = []string{
		"Saline-RESISTANT alkalosis (urine Cl > 20)",
		"Autonomous aldosterone secretion",
		"Hypertension + hypokalemia + alkalosis is classic triad",
		"Look for adrenal adenoma or hyperplasia",
	}
	add(e)

	e = base(abg.ConditionMilkAlkali, abg.DisorderMetabolicAlkalosis)
	e.PHRange = abg.PHBand{Min: 7.48, Typical: 7.55, Max: 7.62}
	e.PCO2Effect = abg.Range{Min: 4, Max: 12}
	e.HCO3Effect = abg.Range{Min: 6, Max: 16}
	e.PO2Effect = abg.Range{Min: 80, Max: 95}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.Description = "Milk-alkali syndrome from calcium/antacid ingestion"
	e.TeachingPoints = []string{
		"Triad: hypercalcemia, alkalosis, renal insufficiency",
		"From excessive calcium carbonate (antacid) intake",
		"More common than previously thought",
	}
	add(e)

	e = base(abg.ConditionPostHypercapnia, abg.DisorderMetabolicAlkalosis)
	e.PHRange = abg.PHBand{Min: 7.45, Typical: 7.50, Max: 7.55}
	e.PCO2Effect = abg.Range{Min: -5, Max: 5}
	e.HCO3Effect = abg.Range{Min: 4, Max: 12}
	e.PO2Effect = abg.Range{Min: 80, Max: 95}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.Description = "Post-hypercapnic metabolic alkalosis"
	e.TeachingPoints = []string{
		"After correcting chronic respiratory acidosis",
		"Elevated HCO3 (from compensation) persists while pCO2 normalizes",
		"Common when COPD patients are over-ventilated",
		"Takes days for kidneys to excrete excess bicarbonate",
	}
	add(e)

	// Normal and physiological variants.

	e = base(abg.ConditionHealthy, abg.DisorderNormal)
	e.PHRange = abg.PHBand{Min: 7.38, Typical: 7.40, Max: 7.42}
	e.PCO2Effect = abg.Range{Min: -2, Max: 2}
	e.HCO3Effect = abg.Range{Min: -1, Max: 1}
	e.PO2Effect = abg.Range{Min: 90, Max: 100}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.LactateEffect = abg.Range{Min: 0.5, Max: 1.5}
	e.Description = "Healthy individual with normal blood gas"
	e.TeachingPoints = []string{
		"Normal ABG values for reference",
		"Small day-to-day variation is normal",
	}
	add(e)

	e = base(abg.ConditionPregnancy, abg.DisorderRespiratoryAlkalosis)
	e.PHRange = abg.PHBand{Min: 7.40, Typical: 7.44, Max: 7.46}
	e.PCO2Effect = abg.Range{Min: -10, Max: -6}
	e.HCO3Effect = abg.Range{Min: -4, Max: -2}
	e.PO2Effect = abg.Range{Min: 100, Max: 110}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.Description = "Normal pregnancy (chronic respiratory alkalosis)"
	e.TeachingPoints = []string{
		"Progesterone stimulates respiratory center",
		"Chronic compensated respiratory alkalosis is normal",
		"Lower pCO2 baseline (28-32) and HCO3 (18-22)",
		"Important when interpreting ABGs in pregnant patients",
	}
	add(e)

	e = base(abg.ConditionHighAltitude, abg.DisorderRespiratoryAlkalosis)
	e.PHRange = abg.PHBand{Min: 7.42, Typical: 7.46, Max: 7.50}
	e.PCO2Effect = abg.Range{Min: -12, Max: -5}
	e.HCO3Effect = abg.Range{Min: -4, Max: -1}
	e.PO2Effect = abg.Range{Min: 55, Max: 75}
	e.AAGradientRange = abg.Range{Min: 5, Max: 12}
	e.Description = "High altitude acclimatization"
	e.TeachingPoints = []string{
		"Hypoxic drive causes hyperventilation",
		"Respiratory alkalosis develops",
		"Over days, renal compensation occurs",
		"Expected pO2 decreases with altitude",
	}
	add(e)

	return m
}

// Effect looks up the footprint for a condition.
func Effect(condition abg.ClinicalCondition) (abg.ConditionEffect, error) {
	e, ok := effects[condition]
	if !ok {
		return abg.ConditionEffect{}, fmt.Errorf("%w: %q", core.ErrConditionNotFound, condition)
	}
	return e, nil
}

// All returns every catalog entry in the canonical condition order.
func All() []abg.ConditionEffect {
	out := make([]abg.ConditionEffect, 0, len(effects))
	for _, c := range abg.AllConditions() {
		if e, ok := effects[c]; ok {
			out = append(out, e)
		}
	}
	return out
}
