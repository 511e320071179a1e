package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"textvault/internal/model"
)

// Candidate TTF paths for a Unicode-capable font. Vietnamese extracted text
// needs more than the cp1252 core fonts.
var unicodeFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
}

type pdfRenderer struct{}

func (pdfRenderer) Render(doc *model.Document) (*Result, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 15)

	font := "Helvetica"
	for _, path := range unicodeFontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		pdf.AddUTF8FontFromBytes("unicode", "", data)
		font = "unicode"
		break
	}

	pdf.AddPage()

	pdf.SetFont(font, "", 16)
	pdf.MultiCell(0, 9, fmt.Sprintf("OCR Document: %s", doc.Filename), "", "C", false)
	pdf.Ln(4)

	pdf.SetFont(font, "", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Document ID: %d", doc.ID), "", "L", false)
	pdf.MultiCell(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont(font, "", 12)
	pdf.MultiCell(0, 7, "Extracted Text:", "", "L", false)
	pdf.Ln(2)

	pdf.SetFont(font, "", 10)
	for _, line := range strings.Split(textContent(doc), "\n") {
		if strings.TrimSpace(line) == "" {
			pdf.Ln(3)
			continue
		}
		pdf.MultiCell(0, 6, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return &Result{
		Filename:    baseFilename(doc) + ".pdf",
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}
