package export

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textvault/internal/apperr"
	"textvault/internal/model"
)

func TestRegistryRender(t *testing.T) {
	reg := NewRegistry()
	doc := &model.Document{ID: 7, Filename: "invoice_2023.png", Text: "Hóa đơn tháng 3"}

	t.Run("txt", func(t *testing.T) {
		res, err := reg.Render(doc, "txt")
		require.NoError(t, err)
		assert.Equal(t, "invoice_2023.txt", res.Filename)
		assert.Equal(t, "text/plain; charset=utf-8", res.ContentType)
		assert.Equal(t, "Hóa đơn tháng 3", string(res.Data))
	})

	t.Run("csv has BOM and record", func(t *testing.T) {
		res, err := reg.Render(doc, "csv")
		require.NoError(t, err)
		assert.Equal(t, "invoice_2023.csv", res.Filename)
		assert.True(t, strings.HasPrefix(string(res.Data), "\ufeff"))
		assert.Contains(t, string(res.Data), "Hóa đơn tháng 3")
		assert.Contains(t, string(res.Data), "Document ID")
	})

	t.Run("pdf", func(t *testing.T) {
		res, err := reg.Render(doc, "pdf")
		require.NoError(t, err)
		assert.Equal(t, "invoice_2023.pdf", res.Filename)
		assert.Equal(t, "application/pdf", res.ContentType)
		assert.True(t, strings.HasPrefix(string(res.Data), "%PDF"))
	})

	t.Run("format is case-insensitive", func(t *testing.T) {
		res, err := reg.Render(doc, "TXT")
		require.NoError(t, err)
		assert.Equal(t, "invoice_2023.txt", res.Filename)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := reg.Render(doc, "docx")
		assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
	})
}

func TestBaseFilename(t *testing.T) {
	tests := []struct {
		name string
		doc  model.Document
		want string
	}{
		{"strips extension", model.Document{Filename: "scan.png"}, "scan"},
		{"replaces unsafe chars", model.Document{Filename: `a<b>:c".png`}, "a_b__c_"},
		{"empty filename falls back to id", model.Document{ID: 42}, "document_42"},
		{"dotfile keeps name", model.Document{Filename: ".env"}, ".env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, baseFilename(&tt.doc))
		})
	}
}

func TestTextContentFallback(t *testing.T) {
	assert.Equal(t, "No text content available", textContent(&model.Document{}))
	assert.Equal(t, "x", textContent(&model.Document{Text: "x"}))
}
