package service

import (
	"bytes"
	"strings"

	"github.com/phpdave11/gofpdf"
)

func planFileBase(destination string) string {
	return "AI_Travel_Planner_" + strings.ReplaceAll(destination, " ", "_")
}

// PlanFileName returns the attachment name for a plan text download.
func PlanFileName(destination string) string {
	return planFileBase(destination) + ".txt"
}

// RenderPlanPDF lays out a generated plan as a one-column A4 document and
// returns the bytes together with the attachment name.
func RenderPlanPDF(destination, plan string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("AI Travel Planner", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "AI Travel Planner")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Destination: "+pdfText(destination))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range strings.Split(plan, "\n") {
		text := pdfText(line)
		if text == "" {
			pdf.Ln(4)
			continue
		}
		pdf.MultiCell(0, 6, text, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), planFileBase(destination) + ".pdf", nil
}

// pdfText rewrites a plan line for the core PDF fonts, which only cover
// latin-1. Currency symbols become their code, emoji and other runes
// outside ASCII are dropped.
func pdfText(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '₹':
			b.WriteString("INR ")
		case r == '€':
			b.WriteString("EUR ")
		case r >= 32 && r < 127:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
