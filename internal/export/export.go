package export

import (
	"fmt"
	"regexp"
	"strings"

	"textvault/internal/apperr"
	"textvault/internal/model"
)

// Result is a rendered download: the bytes, their media type and the
// filename to suggest to the client.
type Result struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Renderer renders a document into one download format. Implementations only
// consume the document's filename/text fields.
type Renderer interface {
	Render(doc *model.Document) (*Result, error)
}

// Registry maps format tags to renderers.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry wires the default txt/csv/pdf renderers.
func NewRegistry() *Registry {
	return &Registry{
		renderers: map[string]Renderer{
			"txt": &textRenderer{},
			"csv": &csvRenderer{},
			"pdf": &pdfRenderer{},
		},
	}
}

// Render renders doc in the requested format. Unknown formats yield
// ErrInvalidInput; renderer failures are wrapped as ErrUpstream.
func (r *Registry) Render(doc *model.Document, format string) (*Result, error) {
	renderer, ok := r.renderers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("format %q (supported: txt, csv, pdf): %w", format, apperr.ErrInvalidInput)
	}
	res, err := renderer.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("render %s: %v: %w", format, err, apperr.ErrUpstream)
	}
	return res, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// baseFilename strips the extension and replaces characters that are unsafe
// in a Content-Disposition filename.
func baseFilename(doc *model.Document) string {
	name := doc.Filename
	if name == "" {
		name = fmt.Sprintf("document_%d", doc.ID)
	}
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name
}

// textContent falls back to a placeholder for documents whose OCR pass
// produced nothing.
func textContent(doc *model.Document) string {
	if doc.Text == "" {
		return "No text content available"
	}
	return doc.Text
}
