package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"textvault/internal/model"
)

type csvRenderer struct{}

// Render writes a single-record CSV. The UTF-8 BOM keeps spreadsheet tools
// from mangling non-ASCII extracted text.
func (csvRenderer) Render(doc *model.Document) (*Result, error) {
	var buf bytes.Buffer
	buf.WriteString("\ufeff")

	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Document ID", "Filename", "Text Content"}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{strconv.FormatInt(doc.ID, 10), doc.Filename, textContent(doc)}); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &Result{
		Filename:    baseFilename(doc) + ".csv",
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}
