package app

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodgas/domain/abg"
	"bloodgas/domain/core"
	"bloodgas/internal/physiology"
)

// memoryRepo captures saved panels for assertions. Batch generation
// saves from several goroutines, so access is locked.
type memoryRepo struct {
	mu    sync.Mutex
	saved []abg.BloodGasResult
}

func (m *memoryRepo) Save(ctx context.Context, r abg.BloodGasResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, r)
	return nil
}

func (m *memoryRepo) Get(ctx context.Context, id core.ResultID) (*abg.BloodGasResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.saved {
		if m.saved[i].ID == id {
			return &m.saved[i], nil
		}
	}
	return nil, core.ErrResultNotFound
}

func (m *memoryRepo) ListRecent(ctx context.Context, limit int) ([]abg.BloodGasResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved, nil
}

func (m *memoryRepo) ListByBatch(ctx context.Context, id core.BatchID) ([]abg.BloodGasResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []abg.BloodGasResult
	for _, r := range m.saved {
		if r.BatchID == id {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryRepo) Delete(ctx context.Context, id core.ResultID) error { return nil }

func TestGenerateValidatesParams(t *testing.T) {
	svc := NewGeneratorService(nil)

	_, err := svc.Generate(context.Background(), GenerateRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrModeUnspecified)

	req := NewDisorderRequest(abg.DisorderMetabolicAcidosis, abg.SeverityModerate)
	req.Params.Conditions = []abg.ClinicalCondition{abg.ConditionDKA}
	_, err = svc.Generate(context.Background(), req)
	assert.ErrorIs(t, err, core.ErrModeAmbiguous)

	req = NewDisorderRequest(abg.DisorderMetabolicAcidosis, abg.SeverityModerate)
	req.Params.FiO2 = 0.10
	_, err = svc.Generate(context.Background(), req)
	assert.True(t, core.IsDomainError(err))
}

func TestGenerateDisorderModeConsistency(t *testing.T) {
	svc := NewGeneratorService(nil)
	req := NewDisorderRequest(abg.DisorderMetabolicAcidosis, abg.SeverityModerate)
	req.AddVariability = false

	result, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	// The moderate anchor with appropriate compensation lands on
	// Winter's midpoint: HCO3 14, pCO2 29.
	assert.InDelta(t, 14.0, result.HCO3, 1e-9)
	assert.InDelta(t, 29.0, result.PCO2, 1e-9)

	expectedPH, err := physiology.CalculatePH(result.HCO3, result.PCO2)
	require.NoError(t, err)
	assert.InDelta(t, expectedPH, result.PH, 1e-9)

	// The classifier, reading outputs only, agrees with the input.
	assert.Contains(t, result.Interpretation.PrimaryDisorder, "Metabolic Acidosis")
	assert.Equal(t, "Appropriate", result.Interpretation.CompensationStatus)

	// Disorder-mode metabolic acidosis carries a high anion gap.
	assert.Greater(t, result.CorrectedAnionGap, 14.0)

	assert.NotEmpty(t, result.ID)
	assert.False(t, result.CreatedAt.IsZero())
}

func TestGenerateSeededReproducibility(t *testing.T) {
	svc := NewGeneratorService(nil)

	run := func(seed int64) *abg.BloodGasResult {
		req := NewDisorderRequest(abg.DisorderRespiratoryAcidosis, abg.SeveritySevere)
		req.Params.Seed = seed
		result, err := svc.Generate(context.Background(), req)
		require.NoError(t, err)
		return result
	}

	first, second := run(42), run(42)
	assert.Equal(t, first.PH, second.PH)
	assert.Equal(t, first.PCO2, second.PCO2)
	assert.Equal(t, first.Glucose, second.Glucose)

	other := run(43)
	assert.NotEqual(t, first.PH, other.PH)
}

func TestGenerateScenarioDKA(t *testing.T) {
	svc := NewGeneratorService(nil)
	req := NewScenarioRequest(abg.ConditionDKA)
	req.AddVariability = false

	result, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Less(t, result.PH, 7.35)
	assert.Less(t, result.PCO2, 35.0, "ketoacidosis drives compensatory hyperventilation")
	assert.Greater(t, result.Glucose, 250.0)
	assert.Greater(t, result.CorrectedAnionGap, 20.0)
	assert.Contains(t, result.Interpretation.PrimaryDisorder, "Metabolic Acidosis")
	assert.Equal(t, []string{"dka"}, result.Interpretation.GeneratingConditions)
}

func TestGenerateScenarioOpioidBluntsCompensation(t *testing.T) {
	svc := NewGeneratorService(nil)

	generate := func(conditions ...abg.ClinicalCondition) *abg.BloodGasResult {
		req := NewScenarioRequest(conditions...)
		req.AddVariability = false
		result, err := svc.Generate(context.Background(), req)
		require.NoError(t, err)
		return result
	}

	dka := generate(abg.ConditionDKA)
	mixed := generate(abg.ConditionDKA, abg.ConditionOpioidOverdose)

	// Opioid hypoventilation replaces the Kussmaul response, so the
	// mixed panel retains CO2 and is more acidemic.
	assert.Greater(t, mixed.PCO2, dka.PCO2)
	assert.Less(t, mixed.PH, dka.PH)
}

func TestGenerateScenarioUnknownCondition(t *testing.T) {
	svc := NewGeneratorService(nil)
	req := NewScenarioRequest(abg.ClinicalCondition("bogus"))

	_, err := svc.Generate(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrConditionNotFound))
}

func TestGeneratePersistsWhenRepositoryWired(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewGeneratorService(repo)

	result, err := svc.Generate(context.Background(), NewDisorderRequest(abg.DisorderNormal, abg.SeverityMild))
	require.NoError(t, err)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, result.ID, repo.saved[0].ID)

	loaded, err := svc.GetResult(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.ID, loaded.ID)
}

func TestGetResultWithoutRepository(t *testing.T) {
	svc := NewGeneratorService(nil)
	_, err := svc.GetResult(context.Background(), core.ResultID("missing"))
	assert.ErrorIs(t, err, core.ErrResultNotFound)
}

func TestAssembleKeepsPanelInternallyConsistent(t *testing.T) {
	svc := NewGeneratorService(nil)
	req := NewScenarioRequest(abg.ConditionLacticAcidosisSepsis)
	req.Params.Seed = 7

	result, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	// Derived values are recomputed from the noisy primaries.
	gap := result.Sodium - result.Chloride - result.HCO3
	assert.InDelta(t, gap, result.AnionGap, 1e-9)
	assert.InDelta(t, result.PO2/result.FiO2, result.PFRatio, 1e-9)
	assert.True(t, math.Abs(result.CorrectedAnionGap-result.AnionGap-2.5*(4-result.Albumin)) < 1e-9)
}
