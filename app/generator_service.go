package app

import (
	"context"
	"math"

	"bloodgas/domain/abg"
	"bloodgas/domain/core"
	"bloodgas/internal/catalog"
	"bloodgas/internal/interpret"
	"bloodgas/internal/physiology"
	"bloodgas/internal/scenario"
	"bloodgas/internal/variability"
	"bloodgas/ports"
)

// GeneratorService orchestrates the physiology engines into complete
// blood gas panels. It supports two modes: disorder-based, where the
// caller names the acid-base disorder directly, and scenario-based,
// where clinical conditions drive the physiology.
type GeneratorService struct {
	results ports.ResultRepository // nil disables persistence
}

// NewGeneratorService creates a generator service. The repository may
// be nil for callers that do not persist results.
func NewGeneratorService(results ports.ResultRepository) *GeneratorService {
	return &GeneratorService{results: results}
}

// GenerateRequest defines inputs for one panel.
type GenerateRequest struct {
	Params abg.GenerationParams

	// Noise controls.
	AddVariability bool
	LowNoise       bool
}

// NewDisorderRequest builds a disorder-mode request with defaults.
func NewDisorderRequest(disorder abg.Disorder, severity abg.Severity) GenerateRequest {
	return GenerateRequest{
		Params: abg.GenerationParams{
			Mode:                  abg.ModeDisorder,
			PrimaryDisorder:       disorder,
			DisorderSeverity:      severity,
			SpecifiedCompensation: abg.CompensationAppropriate,
			Duration:              abg.DurationAcute,
			Patient:               abg.DefaultPatient(),
			FiO2:                  0.21,
		},
		AddVariability: true,
	}
}

// NewScenarioRequest builds a scenario-mode request with defaults.
func NewScenarioRequest(conditions ...abg.ClinicalCondition) GenerateRequest {
	return GenerateRequest{
		Params: abg.GenerationParams{
			Mode:       abg.ModeScenario,
			Conditions: conditions,
			Patient:    abg.DefaultPatient(),
			FiO2:       0.21,
		},
		AddVariability: true,
	}
}

// Generate produces a complete panel for the request, interprets it
// from the output values, and persists it when a repository is wired.
func (s *GeneratorService) Generate(ctx context.Context, req GenerateRequest) (*abg.BloodGasResult, error) {
	if err := req.Params.Validate(); err != nil {
		return nil, err
	}

	patient := req.Params.Patient.Normalize()
	noise := variability.NewEngine(req.AddVariability, req.Params.Seed, req.LowNoise)

	var (
		result *abg.BloodGasResult
		err    error
	)
	switch req.Params.Mode {
	case abg.ModeScenario:
		result, err = s.generateFromScenario(req.Params, patient, noise)
	default:
		result, err = s.generateFromDisorder(req.Params, patient, noise)
	}
	if err != nil {
		return nil, err
	}

	result.ID = core.NewResultID()
	result.CreatedAt = core.Now()
	result.Params = req.Params
	result.Params.Patient = patient
	result.Interpretation = interpret.Interpret(*result, req.Params.Conditions)

	if s.results != nil {
		if err := s.results.Save(ctx, *result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *GeneratorService) generateFromDisorder(
	params abg.GenerationParams,
	patient abg.PatientFactors,
	noise *variability.Engine,
) (*abg.BloodGasResult, error) {
	severity := params.DisorderSeverity
	if severity == "" {
		severity = abg.SeverityModerate
	}
	compensation := params.SpecifiedCompensation
	if compensation == "" {
		compensation = abg.CompensationAppropriate
	}
	duration := params.Duration
	if duration == "" {
		duration = abg.DurationAcute
	}

	abState, err := physiology.GenerateForDisorder(
		params.PrimaryDisorder, severity, compensation, duration,
		patient.BaselinePCO2(), patient.BaselineHCO3(),
	)
	if err != nil {
		return nil, err
	}

	if params.SecondaryDisorder != "" && params.SecondaryDisorder != abg.DisorderNormal {
		abState, err = physiology.ApplySecondaryDisorder(abState, params.SecondaryDisorder, abg.SeverityModerate)
		if err != nil {
			return nil, err
		}
	}

	// Pure acid-base disorders get plausible lung pathology: a
	// respiratory acidosis implies V/Q mismatch with a small shunt.
	oxyInput := physiology.OxygenationInput{
		FiO2:        params.FiO2,
		PaCO2:       abState.PCO2,
		Age:         patient.Age,
		PH:          abState.PH,
		Temperature: patient.TemperatureCelsius,
	}
	if params.PrimaryDisorder == abg.DisorderRespiratoryAcidosis {
		oxyInput.AAGradientElevated = true
		oxyInput.TargetAAGradient = 30.0
		oxyInput.ShuntFraction = 0.10
	}
	oxyState, err := physiology.GenerateOxygenation(oxyInput)
	if err != nil {
		return nil, err
	}

	// Metabolic acidosis in disorder mode defaults to a high anion
	// gap picture.
	lyteState := physiology.GenerateElectrolytes(physiology.ElectrolyteInput{
		HCO3:             abState.HCO3,
		PH:               abState.PH,
		ElevatedAnionGap: params.PrimaryDisorder == abg.DisorderMetabolicAcidosis,
		Albumin:          patient.Albumin(),
	})

	return s.assemble(params, patient, noise, abState, oxyState, lyteState), nil
}

func (s *GeneratorService) generateFromScenario(
	params abg.GenerationParams,
	patient abg.PatientFactors,
	noise *variability.Engine,
) (*abg.BloodGasResult, error) {
	deltas, err := scenario.MapMultipleConditions(params.Conditions, params.ConditionSeverities, patient)
	if err != nil {
		return nil, err
	}

	targetPCO2 := clamp(patient.BaselinePCO2()+deltas.PCO2Delta, 12, 120)
	targetHCO3 := clamp(patient.BaselineHCO3()+deltas.HCO3Delta, 4, 50)

	ph, err := physiology.CalculatePH(targetHCO3, targetPCO2)
	if err != nil {
		return nil, err
	}
	ph = clamp(ph, 6.80, 7.80)

	oxyState, err := physiology.GenerateOxygenation(physiology.OxygenationInput{
		FiO2:               params.FiO2,
		PaCO2:              targetPCO2,
		Age:                patient.Age,
		AAGradientElevated: deltas.AAGradientElevated,
		TargetAAGradient:   deltas.TargetAAGradient,
		ShuntFraction:      deltas.ShuntFraction,
		PH:                 ph,
		Temperature:        patient.TemperatureCelsius,
	})
	if err != nil {
		return nil, err
	}

	lyteInput := physiology.ElectrolyteInput{
		HCO3:             targetHCO3,
		PH:               ph,
		ElevatedAnionGap: deltas.AnionGapElevated,
		SodiumTarget:     140 + deltas.SodiumDelta,
		PotassiumTarget:  4.0 + deltas.PotassiumDelta,
		GlucoseTarget:    deltas.GlucoseTarget,
		LactateTarget:    deltas.LactateTarget,
		Albumin:          patient.Albumin(),
	}
	if deltas.AnionGapElevated {
		lyteInput.TargetAnionGap = deltas.TargetAnionGap
	}
	lyteState := physiology.GenerateElectrolytes(lyteInput)

	abState := physiology.AcidBaseState{PH: ph, PCO2: targetPCO2, HCO3: targetHCO3}
	return s.assemble(params, patient, noise, abState, oxyState, lyteState), nil
}

// assemble applies noise to the primary analytes and then recomputes
// every derived value from the noisy primaries, so the panel stays
// internally consistent.
func (s *GeneratorService) assemble(
	params abg.GenerationParams,
	patient abg.PatientFactors,
	noise *variability.Engine,
	abState physiology.AcidBaseState,
	oxyState physiology.OxygenationState,
	lyteState physiology.ElectrolyteState,
) *abg.BloodGasResult {
	ph := noise.VaryPH(abState.PH)
	pco2 := noise.VaryPCO2(abState.PCO2)
	po2 := noise.VaryPO2(oxyState.PaO2)
	hco3 := noise.VaryHCO3(abState.HCO3)

	sodium := noise.VarySodium(lyteState.Sodium)
	potassium := noise.VaryPotassium(lyteState.Potassium)
	chloride := noise.VaryChloride(lyteState.Chloride)
	glucose := noise.VaryGlucose(lyteState.Glucose)
	lactate := noise.VaryLactate(lyteState.Lactate)
	hemoglobin := noise.VaryHemoglobin(patient.Hemoglobin())

	sao2 := noise.VarySaO2(physiology.CalculateSaO2(po2, ph, patient.TemperatureCelsius, pco2, 1.0))

	pfRatio := po2 / params.FiO2
	anionGap := physiology.AnionGap(sodium, chloride, hco3)
	correctedAG := physiology.CorrectAnionGapForAlbumin(anionGap, lyteState.Albumin)

	return &abg.BloodGasResult{
		PH:                 ph,
		PCO2:               pco2,
		PO2:                po2,
		HCO3:               hco3,
		BaseExcess:         physiology.CalculateBaseExcess(ph, hco3, hemoglobin),
		SaO2:               sao2,
		FiO2:               params.FiO2,
		PFRatio:            pfRatio,
		AAGradient:         physiology.AAGradient(po2, pco2, params.FiO2, physiology.SeaLevelPressure),
		ExpectedAAGradient: physiology.ExpectedAAGradient(patient.Age),
		Sodium:             sodium,
		Potassium:          potassium,
		Chloride:           chloride,
		Glucose:            glucose,
		AnionGap:           anionGap,
		CorrectedAnionGap:  correctedAG,
		DeltaGap:           physiology.DeltaGap(correctedAG),
		Lactate:            lactate,
		Hemoglobin:         hemoglobin,
		Albumin:            lyteState.Albumin,
	}
}

// ListConditions returns the catalog entries for browsing.
func (s *GeneratorService) ListConditions(ctx context.Context) []abg.ConditionEffect {
	return catalog.All()
}

// GetResult loads a persisted panel.
func (s *GeneratorService) GetResult(ctx context.Context, id core.ResultID) (*abg.BloodGasResult, error) {
	if s.results == nil {
		return nil, core.ErrResultNotFound
	}
	return s.results.Get(ctx, id)
}

// ListRecentResults loads the most recent persisted panels.
func (s *GeneratorService) ListRecentResults(ctx context.Context, limit int) ([]abg.BloodGasResult, error) {
	if s.results == nil {
		return nil, nil
	}
	return s.results.ListRecent(ctx, limit)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
