// Package variability adds physiological and analytical noise to
// generated blood gas values so panels read like real measurements
// rather than textbook numbers.
package variability

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"bloodgas/domain/abg"
)

// Config sets per-analyte coefficients of variation. CVs are fractions
// of the mean; pH is tightly controlled while lactate swings the most.
type Config struct {
	Enabled bool
	Seed    int64

	PHCV   float64
	PCO2CV float64
	PO2CV  float64
	HCO3CV float64

	SodiumCV    float64
	PotassiumCV float64
	ChlorideCV  float64
	GlucoseCV   float64
	LactateCV   float64

	MeasurementError          bool
	MeasurementErrorMagnitude float64
}

// DefaultConfig returns the reference noise profile.
func DefaultConfig() Config {
	return Config{
		Enabled:                   true,
		PHCV:                      0.005,
		PCO2CV:                    0.03,
		PO2CV:                     0.05,
		HCO3CV:                    0.03,
		SodiumCV:                  0.015,
		PotassiumCV:               0.05,
		ChlorideCV:                0.02,
		GlucoseCV:                 0.08,
		LactateCV:                 0.10,
		MeasurementError:          true,
		MeasurementErrorMagnitude: 0.5,
	}
}

// Engine applies noise draws from a seeded stream. The same seed
// yields the same sequence of draws.
type Engine struct {
	cfg Config
	src rand.Source
}

// New builds an engine around the given config. A zero seed still
// produces a deterministic stream; callers wanting fresh noise per
// panel supply their own seed.
func New(cfg Config) *Engine {
	return &Engine{
		cfg: cfg,
		src: rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)+1),
	}
}

// NewEngine is a convenience factory mirroring common call sites:
// enabled noise with an optional 50% reduction for low-noise runs.
func NewEngine(enabled bool, seed int64, lowNoise bool) *Engine {
	cfg := DefaultConfig()
	cfg.Enabled = enabled
	cfg.Seed = seed
	if lowNoise {
		cfg.PHCV *= 0.5
		cfg.PCO2CV *= 0.5
		cfg.PO2CV *= 0.5
		cfg.HCO3CV *= 0.5
		cfg.SodiumCV *= 0.5
		cfg.PotassiumCV *= 0.5
		cfg.ChlorideCV *= 0.5
		cfg.GlucoseCV *= 0.5
		cfg.LactateCV *= 0.5
	}
	return New(cfg)
}

func (e *Engine) normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: e.src}.Rand()
}

// apply perturbs a value by its CV, optionally through a lognormal
// draw for strictly positive analytes, then layers measurement error
// and clamps to the physiological window.
func (e *Engine) apply(value, cv, minValue, maxValue float64, logNormal bool) float64 {
	if !e.cfg.Enabled || cv <= 0 {
		return clamp(value, minValue, maxValue)
	}

	sd := abs(value) * cv
	var varied float64
	if logNormal && value > 0 {
		ln := distuv.LogNormal{Mu: logMean(value, cv), Sigma: cv, Src: e.src}
		varied = ln.Rand()
	} else {
		varied = e.normal(value, sd)
	}

	if e.cfg.MeasurementError {
		measurementSD := sd * e.cfg.MeasurementErrorMagnitude * 0.5
		if measurementSD > 0 {
			varied += e.normal(0, measurementSD)
		}
	}
	return clamp(varied, minValue, maxValue)
}

// VaryPH perturbs pH within survivable limits.
func (e *Engine) VaryPH(ph float64) float64 {
	return e.apply(ph, e.cfg.PHCV, 6.80, 7.80, false)
}

// VaryPCO2 perturbs pCO2.
func (e *Engine) VaryPCO2(pco2 float64) float64 {
	return e.apply(pco2, e.cfg.PCO2CV, 10.0, 150.0, false)
}

// VaryPO2 perturbs pO2 lognormally; it can run high on 100% oxygen.
func (e *Engine) VaryPO2(po2 float64) float64 {
	return e.apply(po2, e.cfg.PO2CV, 20.0, 600.0, true)
}

// VaryHCO3 perturbs bicarbonate.
func (e *Engine) VaryHCO3(hco3 float64) float64 {
	return e.apply(hco3, e.cfg.HCO3CV, 4.0, 50.0, false)
}

// VarySodium perturbs sodium.
func (e *Engine) VarySodium(sodium float64) float64 {
	return e.apply(sodium, e.cfg.SodiumCV, 110.0, 180.0, false)
}

// VaryPotassium perturbs potassium; hemolysis makes it jumpy.
func (e *Engine) VaryPotassium(potassium float64) float64 {
	return e.apply(potassium, e.cfg.PotassiumCV, 2.0, 9.0, false)
}

// VaryChloride perturbs chloride.
func (e *Engine) VaryChloride(chloride float64) float64 {
	return e.apply(chloride, e.cfg.ChlorideCV, 80.0, 130.0, false)
}

// VaryGlucose perturbs glucose lognormally.
func (e *Engine) VaryGlucose(glucose float64) float64 {
	return e.apply(glucose, e.cfg.GlucoseCV, 20.0, 1200.0, true)
}

// VaryLactate perturbs lactate lognormally.
func (e *Engine) VaryLactate(lactate float64) float64 {
	return e.apply(lactate, e.cfg.LactateCV, 0.3, 25.0, true)
}

// VaryHemoglobin perturbs hemoglobin with a fixed 2% CV.
func (e *Engine) VaryHemoglobin(hemoglobin float64) float64 {
	return e.apply(hemoglobin, 0.02, 3.0, 22.0, false)
}

// VarySaO2 adds small measurement variation to the saturation.
func (e *Engine) VarySaO2(sao2 float64) float64 {
	return e.apply(sao2, 0.01, 0.0, 100.0, false)
}

// InRange draws a value from [low, high]. Center bias in (0, 1]
// peaks the draw toward the middle of the range through a symmetric
// beta distribution.
func (e *Engine) InRange(low, high, centerBias float64) float64 {
	var fraction float64
	if centerBias > 0 {
		shape := 1 + centerBias*10
		fraction = distuv.Beta{Alpha: shape, Beta: shape, Src: e.src}.Rand()
	} else {
		fraction = rand.New(e.src).Float64()
	}
	return low + (high-low)*fraction
}

// SeverityValue draws from the band matching the severity. Mild and
// severe bands use a looser center bias than moderate.
func (e *Engine) SeverityValue(mild, moderate, severe abg.Range, severity abg.Severity) float64 {
	switch severity {
	case abg.SeverityMild:
		return e.InRange(mild.Min, mild.Max, 0.3)
	case abg.SeveritySevere:
		return e.InRange(severe.Min, severe.Max, 0.3)
	default:
		return e.InRange(moderate.Min, moderate.Max, 0.5)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// logMean converts a linear-space mean and CV to the lognormal mu so
// the draw's expectation matches the input value.
func logMean(value, cv float64) float64 {
	return math.Log(value) - cv*cv/2
}
