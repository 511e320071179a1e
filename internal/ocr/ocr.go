package ocr

import (
	"context"
	"errors"
)

// Engine extracts text from image bytes. The core treats it as an opaque
// collaborator and stores whatever string it returns, including empty.
type Engine interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

var (
	// ErrUnsupportedFormat marks image bytes the engine cannot decode.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrProcessing marks a failure inside the OCR engine itself.
	ErrProcessing = errors.New("ocr processing failed")
)
