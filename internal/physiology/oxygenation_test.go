package physiology

import (
	"math"
	"testing"
)

// TestAlveolarPO2RoomAir checks the textbook room air value,
// 0.21*713 - 40/0.8 = 99.73.
func TestAlveolarPO2RoomAir(t *testing.T) {
	pao2 := AlveolarPO2(0.21, 40, SeaLevelPressure)
	if math.Abs(pao2-99.73) > 0.01 {
		t.Errorf("Expected alveolar PO2 of 99.73, got %v", pao2)
	}
}

// TestAAGradientComputation verifies the gradient is alveolar minus arterial
func TestAAGradientComputation(t *testing.T) {
	gradient := AAGradient(90, 40, 0.21, SeaLevelPressure)
	if math.Abs(gradient-9.73) > 0.01 {
		t.Errorf("Expected A-a gradient of 9.73, got %v", gradient)
	}
}

// TestExpectedAAGradientWithAge verifies the age/4 + 4 rule
func TestExpectedAAGradientWithAge(t *testing.T) {
	if got := ExpectedAAGradient(40); got != 14 {
		t.Errorf("Expected 14 for age 40, got %v", got)
	}
	if got := ExpectedAAGradient(80); got != 24 {
		t.Errorf("Expected 24 for age 80, got %v", got)
	}
	if IsAAGradientElevated(18, 40) {
		t.Error("18 mmHg should be within normal variation for age 40")
	}
	if !IsAAGradientElevated(20, 40) {
		t.Error("20 mmHg should be elevated for age 40")
	}
}

// TestPFRatioRejectsNonPositiveFiO2 verifies the domain guard
func TestPFRatioRejectsNonPositiveFiO2(t *testing.T) {
	if _, err := PFRatio(80, 0); err == nil {
		t.Error("Expected error for FiO2 of 0")
	}
	ratio, err := PFRatio(80, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	if ratio != 200 {
		t.Errorf("Expected P/F of 200, got %v", ratio)
	}
}

// TestClassifyARDSTiers verifies the Berlin criteria cutoffs
func TestClassifyARDSTiers(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected string
	}{
		{350, "None/Normal"},
		{300, "None/Normal"},
		{250, "Mild ARDS"},
		{150, "Moderate ARDS"},
		{80, "Severe ARDS"},
	}
	for _, test := range tests {
		if got := ClassifyARDS(test.ratio); got != test.expected {
			t.Errorf("P/F %v: got %s, want %s", test.ratio, got, test.expected)
		}
	}
}

// TestP50Shifts verifies the Bohr effect directions
func TestP50Shifts(t *testing.T) {
	normal := CalculateP50(7.40, 37, 40, 1.0)
	if math.Abs(normal-27) > tolerance {
		t.Errorf("Expected base P50 of 27, got %v", normal)
	}

	// Acidosis, fever and hypercapnia shift the curve right.
	if p50 := CalculateP50(7.20, 37, 40, 1.0); p50 <= normal {
		t.Errorf("Acidosis should raise P50: %v vs %v", p50, normal)
	}
	if p50 := CalculateP50(7.40, 40, 40, 1.0); p50 <= normal {
		t.Errorf("Fever should raise P50: %v", p50)
	}

	// Alkalosis shifts left.
	if p50 := CalculateP50(7.60, 37, 40, 1.0); p50 >= normal {
		t.Errorf("Alkalosis should lower P50: %v", p50)
	}

	// Extremes are clamped to [15, 40].
	if p50 := CalculateP50(6.0, 45, 100, 3.0); p50 > 40 {
		t.Errorf("P50 should clamp at 40, got %v", p50)
	}
	if p50 := CalculateP50(8.0, 30, 10, 0.0); p50 < 15 {
		t.Errorf("P50 should clamp at 15, got %v", p50)
	}
}

// TestCalculateSaO2 verifies the Hill equation behavior
func TestCalculateSaO2(t *testing.T) {
	// At PaO2 equal to P50, saturation is 50%.
	sat := CalculateSaO2(27, 7.40, 37, 40, 1.0)
	if math.Abs(sat-50) > 0.01 {
		t.Errorf("Expected 50%% at P50, got %v", sat)
	}

	// Normal arterial PO2 saturates well above 95%.
	sat = CalculateSaO2(95, 7.40, 37, 40, 1.0)
	if sat < 95 {
		t.Errorf("Expected SaO2 > 95%% at PaO2 95, got %v", sat)
	}

	// Monotonic in PaO2.
	if CalculateSaO2(60, 7.40, 37, 40, 1.0) >= CalculateSaO2(90, 7.40, 37, 40, 1.0) {
		t.Error("SaO2 should increase with PaO2")
	}

	if CalculateSaO2(0, 7.40, 37, 40, 1.0) != 0 {
		t.Error("SaO2 should be 0 at PaO2 of 0")
	}
}

// TestGenerateOxygenationNormal produces a normal picture for a healthy adult
func TestGenerateOxygenationNormal(t *testing.T) {
	state, err := GenerateOxygenation(OxygenationInput{FiO2: 0.21, PaCO2: 40, Age: 40})
	if err != nil {
		t.Fatal(err)
	}
	// Alveolar 99.73 minus expected gradient 14.
	if math.Abs(state.PaO2-85.73) > 0.01 {
		t.Errorf("Expected PaO2 near 85.73, got %v", state.PaO2)
	}
	if !state.PaO2Normal {
		t.Error("Room air PaO2 of 85.7 should be flagged normal")
	}
	if state.AAGradientElevated {
		t.Error("Expected gradient should not be flagged elevated")
	}
	if state.SaO2 < 94 {
		t.Errorf("Expected SaO2 above 94%%, got %v", state.SaO2)
	}
}

// TestGenerateOxygenationElevatedGradient adds 20 mmHg to the expected gradient
func TestGenerateOxygenationElevatedGradient(t *testing.T) {
	state, err := GenerateOxygenation(OxygenationInput{
		FiO2: 0.21, PaCO2: 40, Age: 40, AAGradientElevated: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(state.AAGradient-34) > tolerance {
		t.Errorf("Expected gradient of 34, got %v", state.AAGradient)
	}
	if !state.AAGradientElevated {
		t.Error("State should be flagged elevated")
	}
	if state.PaO2Normal {
		t.Errorf("PaO2 %v should not be flagged normal", state.PaO2)
	}
}

// TestGenerateOxygenationShunt blends toward mixed venous blood and
// caps the benefit of supplemental oxygen.
func TestGenerateOxygenationShunt(t *testing.T) {
	noShunt, err := GenerateOxygenation(OxygenationInput{FiO2: 1.0, PaCO2: 40, Age: 40, TargetAAGradient: 30})
	if err != nil {
		t.Fatal(err)
	}
	shunted, err := GenerateOxygenation(OxygenationInput{FiO2: 1.0, PaCO2: 40, Age: 40, TargetAAGradient: 30, ShuntFraction: 0.3})
	if err != nil {
		t.Fatal(err)
	}
	if shunted.PaO2 >= noShunt.PaO2 {
		t.Errorf("Shunt should lower PaO2 on 100%% O2: %v vs %v", shunted.PaO2, noShunt.PaO2)
	}
}

// TestGenerateOxygenationFloor enforces the survivable PaO2 floor
func TestGenerateOxygenationFloor(t *testing.T) {
	state, err := GenerateOxygenation(OxygenationInput{
		FiO2: 0.21, PaCO2: 40, Age: 40, TargetAAGradient: 90,
	})
	if err != nil {
		t.Fatal(err)
	}
	if state.PaO2 != 30 {
		t.Errorf("Expected PaO2 floored at 30, got %v", state.PaO2)
	}
}

// TestGenerateOxygenationRejectsBadFiO2 verifies the input guard
func TestGenerateOxygenationRejectsBadFiO2(t *testing.T) {
	if _, err := GenerateOxygenation(OxygenationInput{FiO2: 0, PaCO2: 40}); err == nil {
		t.Error("Expected error for FiO2 of 0")
	}
}

// TestDescribeHypoxemiaMechanism covers the four-way split
func TestDescribeHypoxemiaMechanism(t *testing.T) {
	if got := DescribeHypoxemiaMechanism(false, 60, true); got != "Hypoventilation (normal A-a gradient, elevated pCO2)" {
		t.Errorf("Unexpected mechanism: %s", got)
	}
	if got := DescribeHypoxemiaMechanism(true, 40, false); got != "Shunt (elevated A-a gradient, does not respond to O2)" {
		t.Errorf("Unexpected mechanism: %s", got)
	}
}

// TestOxygenContent verifies the CaO2 formula
func TestOxygenContent(t *testing.T) {
	// 15 g/dL at 98%: 15*1.34*0.98 + 0.003*95 = 19.983.
	content := OxygenContent(95, 98, 15)
	if math.Abs(content-19.983) > 0.001 {
		t.Errorf("Expected CaO2 of 19.983, got %v", content)
	}
}
