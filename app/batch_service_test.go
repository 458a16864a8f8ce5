package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodgas/adapters/rng"
	"bloodgas/domain/abg"
)

func TestGenerateBatchRejectsBadCount(t *testing.T) {
	svc := NewBatchService(NewGeneratorService(nil), rng.New())

	_, err := svc.GenerateBatch(context.Background(), BatchRequest{Count: 0})
	require.Error(t, err)

	_, err = svc.GenerateBatch(context.Background(), BatchRequest{
		Template: GenerateRequest{},
		Count:    3,
	})
	require.Error(t, err, "template params must validate")
}

func TestGenerateBatchCountAndOrder(t *testing.T) {
	svc := NewBatchService(NewGeneratorService(nil), rng.New())

	batch, err := svc.GenerateBatch(context.Background(), BatchRequest{
		Template: NewDisorderRequest(abg.DisorderMetabolicAcidosis, abg.SeverityModerate),
		Count:    12,
		Seed:     42,
	})
	require.NoError(t, err)
	require.Len(t, batch.Results, 12)
	assert.NotEmpty(t, batch.BatchID)

	ids := map[string]bool{}
	for _, r := range batch.Results {
		assert.Equal(t, batch.BatchID, r.BatchID)
		assert.NotEmpty(t, r.ID)
		ids[string(r.ID)] = true
	}
	assert.Len(t, ids, 12, "each case gets its own result ID")
}

func TestGenerateBatchReproducibility(t *testing.T) {
	svc := NewBatchService(NewGeneratorService(nil), rng.New())

	run := func() *BatchResult {
		batch, err := svc.GenerateBatch(context.Background(), BatchRequest{
			Template:       NewScenarioRequest(abg.ConditionDKA),
			Count:          6,
			Seed:           99,
			MaxConcurrency: 2,
		})
		require.NoError(t, err)
		return batch
	}

	first, second := run(), run()
	for i := range first.Results {
		assert.Equal(t, first.Results[i].PH, second.Results[i].PH, "case %d", i)
		assert.Equal(t, first.Results[i].Glucose, second.Results[i].Glucose, "case %d", i)
	}

	// Noise is per case: a cohort is not one panel repeated.
	distinct := map[float64]bool{}
	for _, r := range first.Results {
		distinct[r.PH] = true
	}
	assert.Greater(t, len(distinct), 1)
}

func TestBatchSummary(t *testing.T) {
	svc := NewBatchService(NewGeneratorService(nil), rng.New())

	batch, err := svc.GenerateBatch(context.Background(), BatchRequest{
		Template: NewScenarioRequest(abg.ConditionVomiting),
		Count:    10,
		Seed:     7,
	})
	require.NoError(t, err)

	summary := batch.Summary
	assert.Equal(t, 10, summary.Count)

	for _, analyte := range []string{"ph", "pco2", "po2", "hco3", "sodium", "potassium", "chloride", "glucose", "lactate", "anion_gap"} {
		s, ok := summary.Analytes[analyte]
		require.True(t, ok, "missing %s summary", analyte)
		assert.GreaterOrEqual(t, s.Max, s.Min)
		assert.GreaterOrEqual(t, s.Mean, s.Min)
		assert.LessOrEqual(t, s.Mean, s.Max)
	}

	// Alkalemic cohort: the mean pH sits above the neutral band.
	assert.Greater(t, summary.Analytes["ph"].Mean, 7.40)

	var disorderTotal int
	for _, n := range summary.Disorders {
		disorderTotal += n
	}
	assert.Equal(t, 10, disorderTotal)

	var severityTotal int
	for _, n := range summary.Severity {
		severityTotal += n
	}
	assert.Equal(t, 10, severityTotal)
}

func TestGenerateBatchPersistsCases(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewBatchService(NewGeneratorService(repo), rng.New())

	batch, err := svc.GenerateBatch(context.Background(), BatchRequest{
		Template: NewDisorderRequest(abg.DisorderRespiratoryAlkalosis, abg.SeverityMild),
		Count:    4,
		Seed:     1,
	})
	require.NoError(t, err)
	assert.Len(t, batch.Results, 4)
	assert.Len(t, repo.saved, 4)
}
