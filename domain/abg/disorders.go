package abg

import (
	"fmt"
	"strings"
)

// Disorder is a primary acid-base disorder category.
type Disorder string

const (
	DisorderNormal               Disorder = "normal"
	DisorderMetabolicAcidosis    Disorder = "metabolic_acidosis"
	DisorderMetabolicAlkalosis   Disorder = "metabolic_alkalosis"
	DisorderRespiratoryAcidosis  Disorder = "respiratory_acidosis"
	DisorderRespiratoryAlkalosis Disorder = "respiratory_alkalosis"
)

// IsAcidosis reports whether the disorder lowers pH.
func (d Disorder) IsAcidosis() bool {
	return d == DisorderMetabolicAcidosis || d == DisorderRespiratoryAcidosis
}

// IsMetabolic reports whether the disorder is metabolic in origin.
func (d Disorder) IsMetabolic() bool {
	return d == DisorderMetabolicAcidosis || d == DisorderMetabolicAlkalosis
}

// ParseDisorder parses a disorder name, case-insensitively.
func ParseDisorder(s string) (Disorder, error) {
	switch Disorder(strings.ToLower(strings.TrimSpace(s))) {
	case DisorderNormal:
		return DisorderNormal, nil
	case DisorderMetabolicAcidosis:
		return DisorderMetabolicAcidosis, nil
	case DisorderMetabolicAlkalosis:
		return DisorderMetabolicAlkalosis, nil
	case DisorderRespiratoryAcidosis:
		return DisorderRespiratoryAcidosis, nil
	case DisorderRespiratoryAlkalosis:
		return DisorderRespiratoryAlkalosis, nil
	}
	return "", fmt.Errorf("unknown disorder %q", s)
}

// Severity grades a disorder or condition.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Factor returns the linear interpolation factor used when scaling
// condition effect ranges.
func (s Severity) Factor() float64 {
	switch s {
	case SeverityMild:
		return 0.33
	case SeveritySevere:
		return 1.0
	default:
		return 0.66
	}
}

// ParseSeverity parses a severity name, case-insensitively.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityMild:
		return SeverityMild, nil
	case SeverityModerate:
		return SeverityModerate, nil
	case SeveritySevere:
		return SeveritySevere, nil
	}
	return "", fmt.Errorf("unknown severity %q", s)
}

// Compensation is the compensation status of an acid-base disorder.
type Compensation string

const (
	CompensationNone        Compensation = "none"
	CompensationPartial     Compensation = "partial"
	CompensationAppropriate Compensation = "appropriate"
	CompensationExcessive   Compensation = "excessive"
)

// ParseCompensation parses a compensation status, case-insensitively.
func ParseCompensation(s string) (Compensation, error) {
	switch Compensation(strings.ToLower(strings.TrimSpace(s))) {
	case CompensationNone:
		return CompensationNone, nil
	case CompensationPartial:
		return CompensationPartial, nil
	case CompensationAppropriate:
		return CompensationAppropriate, nil
	case CompensationExcessive:
		return CompensationExcessive, nil
	}
	return "", fmt.Errorf("unknown compensation %q", s)
}

// Duration of a disorder; affects renal compensation formulas.
type Duration string

const (
	DurationAcute    Duration = "acute"
	DurationSubacute Duration = "subacute"
	DurationChronic  Duration = "chronic"
)

// ParseDuration parses a disorder duration, case-insensitively.
func ParseDuration(s string) (Duration, error) {
	switch Duration(strings.ToLower(strings.TrimSpace(s))) {
	case DurationAcute:
		return DurationAcute, nil
	case DurationSubacute:
		return DurationSubacute, nil
	case DurationChronic:
		return DurationChronic, nil
	}
	return "", fmt.Errorf("unknown duration %q", s)
}

// AnionGapCategory categorizes the (albumin-corrected) anion gap.
type AnionGapCategory string

const (
	AnionGapNormal   AnionGapCategory = "normal"
	AnionGapElevated AnionGapCategory = "elevated"
	AnionGapLow      AnionGapCategory = "low"
)

// InterpretationSeverity is the overall severity tier assigned by the
// interpretation engine.
type InterpretationSeverity string

const (
	InterpretationNormal   InterpretationSeverity = "normal"
	InterpretationMild     InterpretationSeverity = "mild"
	InterpretationModerate InterpretationSeverity = "moderate"
	InterpretationSevere   InterpretationSeverity = "severe"
	InterpretationCritical InterpretationSeverity = "critical"
)
