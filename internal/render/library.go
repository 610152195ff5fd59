package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"codeberg.org/go-pdf/fpdf"
)

// renderWithLibrary builds a paginated document in memory. It runs its own
// rich-text cleanup over the raw markdown instead of reusing the LaTeX
// translation, since the target syntax differs. A deferred recover keeps
// any library panic inside the tier so the orchestrator can fall through.
func renderWithLibrary(text string, theme Theme, meta Metadata, now time.Time) (out []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("library renderer panicked: %v", rec)
		}
	}()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 25, 25)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pr, pg, pb := theme.Primary.Bytes()
	sr, sg, sb := theme.Secondary.Bytes()

	// Title block
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(pr, pg, pb)
	pdf.MultiCell(0, 12, "Travel Itinerary", "", "C", false)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(sr, sg, sb)
	pdf.MultiCell(0, 8, meta.Destination+" Adventure", "", "C", false)
	pdf.Ln(6)

	// Metadata lines
	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Helvetica", "", 11)
	metaHTML := pdf.HTMLBasicNew()
	metaHTML.Write(5.5, "<b>Template:</b> "+theme.Name)
	pdf.Ln(6)
	metaHTML.Write(5.5, "<b>Generated:</b> "+now.Format(timestampLayout))
	pdf.Ln(10)

	// Content: one block per paragraph, headings in the secondary color.
	cleaned := CleanForRichText(text)
	for _, para := range strings.Split(cleaned, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if strings.HasPrefix(para, "#") {
			heading := strings.TrimSpace(strings.TrimLeft(para, "#"))
			pdf.SetFont("Helvetica", "B", 14)
			pdf.SetTextColor(sr, sg, sb)
			pdf.MultiCell(0, 8, heading, "", "L", false)
		} else {
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetTextColor(33, 33, 33)
			body := pdf.HTMLBasicNew()
			body.Write(5.5, para)
			pdf.Ln(6)
		}
		pdf.Ln(2)
	}

	// Footer block
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(128, 128, 128)
	pdf.MultiCell(0, 5, generatedByLine, "", "C", false)
	pdf.MultiCell(0, 5, "Have a wonderful journey!", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("building document: %w", err)
	}
	return buf.Bytes(), nil
}
