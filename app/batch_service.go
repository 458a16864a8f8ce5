package app

import (
	"context"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/semaphore"

	"bloodgas/domain/abg"
	"bloodgas/domain/core"
	"bloodgas/ports"
)

const defaultBatchConcurrency = 8

// BatchService generates cohorts of panels concurrently. Each case gets
// its own derived seed, so the whole batch is reproducible from the
// batch seed and any single case can be regenerated in isolation.
type BatchService struct {
	generator *GeneratorService
	rng       ports.RNGPort
}

func NewBatchService(generator *GeneratorService, rng ports.RNGPort) *BatchService {
	return &BatchService{generator: generator, rng: rng}
}

// BatchRequest defines a cohort: one request template repeated Count
// times under per-case seeds derived from Seed.
type BatchRequest struct {
	Template GenerateRequest
	Count    int
	Seed     int64

	// MaxConcurrency bounds the worker pool; zero uses the default.
	MaxConcurrency int
}

// AnalyteSummary holds descriptive statistics for one analyte across a
// batch.
type AnalyteSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// BatchSummary describes a generated cohort.
type BatchSummary struct {
	Count     int                                `json:"count"`
	Analytes  map[string]AnalyteSummary          `json:"analytes"`
	Disorders map[string]int                     `json:"disorders"`
	Severity  map[abg.InterpretationSeverity]int `json:"severity"`
}

// BatchResult is a generated cohort with its summary.
type BatchResult struct {
	BatchID   core.BatchID         `json:"batch_id"`
	Results   []abg.BloodGasResult `json:"results"`
	Summary   BatchSummary         `json:"summary"`
	RuntimeMS int64                `json:"runtime_ms"`
}

// GenerateBatch produces Count panels from the template. Case order in
// the result matches case index regardless of completion order.
func (s *BatchService) GenerateBatch(ctx context.Context, req BatchRequest) (*BatchResult, error) {
	if req.Count <= 0 {
		return nil, core.NewDomainError("batch count", float64(req.Count))
	}
	if err := req.Template.Params.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()
	batchID := core.NewBatchID()

	concurrency := req.MaxConcurrency
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}
	sem := semaphore.NewWeighted(int64(concurrency))

	results := make([]abg.BloodGasResult, req.Count)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i := 0; i < req.Count; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			defer sem.Release(1)

			caseReq := req.Template
			caseReq.Params.Seed = s.rng.CaseSeed(ctx, req.Seed, index)

			result, err := s.generator.Generate(ctx, caseReq)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			result.BatchID = batchID
			results[index] = *result
		}(i)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	return &BatchResult{
		BatchID:   batchID,
		Results:   results,
		Summary:   summarize(results),
		RuntimeMS: time.Since(started).Milliseconds(),
	}, nil
}

func summarize(results []abg.BloodGasResult) BatchSummary {
	series := map[string][]float64{}
	collect := func(name string, v float64) {
		series[name] = append(series[name], v)
	}

	disorders := map[string]int{}
	severity := map[abg.InterpretationSeverity]int{}
	for _, r := range results {
		collect("ph", r.PH)
		collect("pco2", r.PCO2)
		collect("po2", r.PO2)
		collect("hco3", r.HCO3)
		collect("base_excess", r.BaseExcess)
		collect("sodium", r.Sodium)
		collect("potassium", r.Potassium)
		collect("chloride", r.Chloride)
		collect("glucose", r.Glucose)
		collect("lactate", r.Lactate)
		collect("anion_gap", r.AnionGap)
		collect("aa_gradient", r.AAGradient)

		disorders[r.Interpretation.PrimaryDisorder]++
		severity[r.Interpretation.Severity]++
	}

	analytes := make(map[string]AnalyteSummary, len(series))
	for name, data := range series {
		mean, _ := stats.Mean(data)
		stdDev, _ := stats.StandardDeviation(data)
		min, _ := stats.Min(data)
		max, _ := stats.Max(data)
		median, _ := stats.Median(data)
		analytes[name] = AnalyteSummary{
			Mean:   mean,
			StdDev: stdDev,
			Min:    min,
			Max:    max,
			Median: median,
		}
	}

	return BatchSummary{
		Count:     len(results),
		Analytes:  analytes,
		Disorders: disorders,
		Severity:  severity,
	}
}
