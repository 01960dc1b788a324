package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// DossierSection is one labelled block of the student dossier.
type DossierSection struct {
	Title string
	Rows  [][2]string
}

// Dossier is the printable student record handed to the renderer.
type Dossier struct {
	Title    string
	Sections []DossierSection
}

// PDFExporter renders a student dossier into a PDF document.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates the dossier PDF.
func (e *PDFExporter) Render(dossier Dossier) ([]byte, error) {
	if len(dossier.Sections) == 0 {
		return nil, fmt.Errorf("dossier requires at least one section")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	if dossier.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, strings.ToUpper(dossier.Title), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}

	for _, section := range dossier.Sections {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, section.Title, "B", 1, "", false, 0, "")
		pdf.Ln(1)

		pdf.SetFont("Arial", "", 9)
		for _, row := range section.Rows {
			pdf.CellFormat(60, 7, row[0], "", 0, "", false, 0, "")
			pdf.MultiCell(130, 7, row[1], "", "", false)
		}
		pdf.Ln(4)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
