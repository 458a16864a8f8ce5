package abg

import "fmt"

// ClinicalCondition is a clinical scenario that drives blood gas
// abnormalities.
type ClinicalCondition string

const (
	// Respiratory conditions.
	ConditionCOPDExacerbation      ClinicalCondition = "copd_exacerbation"
	ConditionAsthmaAttack          ClinicalCondition = "asthma_attack"
	ConditionPulmonaryEmbolism     ClinicalCondition = "pulmonary_embolism"
	ConditionARDS                  ClinicalCondition = "ards"
	ConditionPneumonia             ClinicalCondition = "pneumonia"
	ConditionOpioidOverdose        ClinicalCondition = "opioid_overdose"
	ConditionHyperventilationPanic ClinicalCondition = "hyperventilation_anxiety"
	ConditionHyperventilationPain  ClinicalCondition = "hyperventilation_pain"
	ConditionNeuromuscularWeakness ClinicalCondition = "neuromuscular_weakness"

	// High anion gap metabolic acidosis.
	ConditionDKA                   ClinicalCondition = "dka"
	ConditionHHS                   ClinicalCondition = "hhs"
	ConditionLacticAcidosisSepsis  ClinicalCondition = "lactic_acidosis_sepsis"
	ConditionLacticAcidosisShock   ClinicalCondition = "lactic_acidosis_shock"
	ConditionLacticAcidosisSeizure ClinicalCondition = "lactic_acidosis_seizure"
	ConditionRenalFailureAcute     ClinicalCondition = "renal_failure_acute"
	ConditionRenalFailureChronic   ClinicalCondition = "renal_failure_chronic"
	ConditionMethanolIngestion     ClinicalCondition = "toxic_ingestion_methanol"
	ConditionEthyleneGlycol        ClinicalCondition = "toxic_ingestion_ethylene_glycol"
	ConditionSalicylateToxicity    ClinicalCondition = "toxic_ingestion_salicylate"
	ConditionStarvationKetosis     ClinicalCondition = "starvation_ketosis"
	ConditionAlcoholicKetoacidosis ClinicalCondition = "alcoholic_ketoacidosis"

	// Normal anion gap (hyperchloremic) metabolic acidosis.
	ConditionDiarrhea       ClinicalCondition = "diarrhea"
	ConditionRTAType1       ClinicalCondition = "rta_type1"
	ConditionRTAType2       ClinicalCondition = "rta_type2"
	ConditionRTAType4       ClinicalCondition = "rta_type4"
	ConditionSalineInfusion ClinicalCondition = "saline_infusion"

	// Metabolic alkalosis.
	ConditionVomiting           ClinicalCondition = "vomiting"
	ConditionNGSuction          ClinicalCondition = "ng_suction"
	ConditionDiureticUse        ClinicalCondition = "diuretic_use"
	ConditionHypokalemia        ClinicalCondition = "hypokalemia"
	ConditionHyperaldosteronism ClinicalCondition = "hyperaldosteronism"
	ConditionMilkAlkali         ClinicalCondition = "milk_alkali_syndrome"
	ConditionPostHypercapnia    ClinicalCondition = "post_hypercapnia"

	// Normal and physiological variants.
	ConditionHealthy      ClinicalCondition = "healthy"
	ConditionPregnancy    ClinicalCondition = "pregnancy"
	ConditionHighAltitude ClinicalCondition = "high_altitude"
)

// AllConditions lists every known clinical condition in catalog order.
func AllConditions() []ClinicalCondition {
	return []ClinicalCondition{
		ConditionCOPDExacerbation, ConditionAsthmaAttack, ConditionPulmonaryEmbolism,
		ConditionARDS, ConditionPneumonia, ConditionOpioidOverdose,
		ConditionHyperventilationPanic, ConditionHyperventilationPain, ConditionNeuromuscularWeakness,
		ConditionDKA, ConditionHHS, ConditionLacticAcidosisSepsis,
		ConditionLacticAcidosisShock, ConditionLacticAcidosisSeizure,
		ConditionRenalFailureAcute, ConditionRenalFailureChronic,
		ConditionMethanolIngestion, ConditionEthyleneGlycol, ConditionSalicylateToxicity,
		ConditionStarvationKetosis, ConditionAlcoholicKetoacidosis,
		ConditionDiarrhea, ConditionRTAType1, ConditionRTAType2, ConditionRTAType4,
		ConditionSalineInfusion,
		ConditionVomiting, ConditionNGSuction, ConditionDiureticUse,
		ConditionHypokalemia, ConditionHyperaldosteronism, ConditionMilkAlkali,
		ConditionPostHypercapnia,
		ConditionHealthy, ConditionPregnancy, ConditionHighAltitude,
	}
}

// ParseClinicalCondition validates a condition name against the known set.
func ParseClinicalCondition(s string) (ClinicalCondition, error) {
	c := ClinicalCondition(s)
	for _, known := range AllConditions() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown clinical condition %q", s)
}

// ChronicCondition is a long-standing comorbidity that shifts a
// patient's baseline physiology rather than causing an acute disorder.
type ChronicCondition string

const (
	ChronicType1Diabetes          ChronicCondition = "type1_diabetes"
	ChronicType2Diabetes          ChronicCondition = "type2_diabetes"
	ChronicCOPD                   ChronicCondition = "copd"
	ChronicKidneyDisease          ChronicCondition = "chronic_kidney_disease"
	ChronicHeartFailure           ChronicCondition = "heart_failure"
	ChronicCirrhosis              ChronicCondition = "cirrhosis"
	ChronicObesityHypoventilation ChronicCondition = "obesity_hypoventilation"
	ChronicAnemia                 ChronicCondition = "anemia_chronic"
)
