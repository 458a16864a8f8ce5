package ui

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"bloodgas/domain/abg"
)

// TeachingCaseMarkdown renders a panel as a markdown teaching case:
// the values first, then the stepwise interpretation, so the page can
// be used as a worked example.
func TeachingCaseMarkdown(r abg.BloodGasResult) string {
	var b strings.Builder

	b.WriteString("# Arterial Blood Gas Teaching Case\n\n")
	if r.ID != "" {
		fmt.Fprintf(&b, "Case `%s`\n\n", r.ID)
	}

	b.WriteString("## Blood Gas\n\n")
	b.WriteString("| Analyte | Value | Reference |\n")
	b.WriteString("|---------|-------|----------|\n")
	fmt.Fprintf(&b, "| pH | %.2f | 7.35-7.45 |\n", r.PH)
	fmt.Fprintf(&b, "| pCO2 | %.0f mmHg | 35-45 |\n", r.PCO2)
	fmt.Fprintf(&b, "| pO2 | %.0f mmHg | 80-100 |\n", r.PO2)
	fmt.Fprintf(&b, "| HCO3 | %.0f mEq/L | 22-26 |\n", r.HCO3)
	fmt.Fprintf(&b, "| Base excess | %+.0f mEq/L | -2 to +2 |\n", r.BaseExcess)
	fmt.Fprintf(&b, "| SaO2 | %.0f%%| 95-100%% |\n", r.SaO2)
	fmt.Fprintf(&b, "| FiO2 | %.0f%%| |\n", r.FiO2*100)

	b.WriteString("\n## Chemistry\n\n")
	b.WriteString("| Analyte | Value |\n")
	b.WriteString("|---------|-------|\n")
	fmt.Fprintf(&b, "| Sodium | %.0f mEq/L |\n", r.Sodium)
	fmt.Fprintf(&b, "| Potassium | %.1f mEq/L |\n", r.Potassium)
	fmt.Fprintf(&b, "| Chloride | %.0f mEq/L |\n", r.Chloride)
	fmt.Fprintf(&b, "| Glucose | %.0f mg/dL |\n", r.Glucose)
	fmt.Fprintf(&b, "| Lactate | %.1f mmol/L |\n", r.Lactate)
	fmt.Fprintf(&b, "| Anion gap | %.0f mEq/L |\n", r.AnionGap)
	fmt.Fprintf(&b, "| Corrected anion gap | %.0f mEq/L |\n", r.CorrectedAnionGap)

	b.WriteString("\n## Oxygenation\n\n")
	fmt.Fprintf(&b, "- A-a gradient: %.0f mmHg (expected %.0f)\n", r.AAGradient, r.ExpectedAAGradient)
	fmt.Fprintf(&b, "- PaO2/FiO2 ratio: %.0f\n", r.PFRatio)

	ci := r.Interpretation
	b.WriteString("\n## Interpretation\n\n")
	fmt.Fprintf(&b, "**Primary disorder:** %s\n\n%s\n\n", ci.PrimaryDisorder, ci.PrimaryDisorderDescription)
	fmt.Fprintf(&b, "**Compensation:** %s\n\n%s\n\n", ci.CompensationStatus, ci.CompensationDescription)
	if ci.SecondaryDisorder != "" {
		fmt.Fprintf(&b, "**Secondary disorder:** %s\n\n%s\n\n", ci.SecondaryDisorder, ci.SecondaryDisorderDescription)
	}
	if ci.OxygenationDescription != "" {
		fmt.Fprintf(&b, "**Oxygenation:** %s\n\n", ci.OxygenationDescription)
	}
	if ci.AnionGapDescription != "" {
		fmt.Fprintf(&b, "**Anion gap:** %s\n\n", ci.AnionGapDescription)
		if ci.DeltaDeltaAnalysis != "" {
			fmt.Fprintf(&b, "Delta-delta: %s\n\n", ci.DeltaDeltaAnalysis)
		}
	}
	fmt.Fprintf(&b, "**Overall severity:** %s\n", ci.Severity)

	if len(ci.ClinicalImplications) > 0 {
		b.WriteString("\n## Clinical Implications\n\n")
		for _, s := range ci.ClinicalImplications {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}
	if len(ci.TeachingPoints) > 0 {
		b.WriteString("\n## Teaching Points\n\n")
		for _, s := range ci.TeachingPoints {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	return b.String()
}

// RenderHTML converts markdown to an HTML fragment
func RenderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(md))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}
