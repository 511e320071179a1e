package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Inputs larger than this on either axis are downscaled before recognition.
const maxOCRDimension = 2400

// Tesseract is an Engine backed by the system Tesseract installation via
// gosseract. Languages is a '+'-separated Tesseract language string.
type Tesseract struct {
	languages []string
}

// NewTesseract creates a Tesseract engine, e.g. NewTesseract("vie+eng").
func NewTesseract(languages string) *Tesseract {
	langs := strings.Split(languages, "+")
	if len(langs) == 0 || languages == "" {
		langs = []string{"eng"}
	}
	return &Tesseract{languages: langs}
}

var _ Engine = (*Tesseract)(nil)

// ExtractText decodes and lightly preprocesses the image, then runs
// recognition. A decode failure maps to ErrUnsupportedFormat, everything
// else to ErrProcessing.
func (t *Tesseract) ExtractText(ctx context.Context, imageBytes []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	prepared, err := preprocess(imageBytes)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.languages...); err != nil {
		return "", fmt.Errorf("%w: set language: %v", ErrProcessing, err)
	}
	if err := client.SetImageFromBytes(prepared); err != nil {
		return "", fmt.Errorf("%w: set image: %v", ErrProcessing, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProcessing, err)
	}
	return text, nil
}

// preprocess grayscales the image and caps its dimensions, re-encoding as
// PNG for Tesseract.
func preprocess(imageBytes []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(imageBytes), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	img = imaging.Grayscale(img)

	bounds := img.Bounds()
	if bounds.Dx() > maxOCRDimension || bounds.Dy() > maxOCRDimension {
		img = imaging.Fit(img, maxOCRDimension, maxOCRDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodedBounds is kept for tests that validate preprocessing output.
func decodedBounds(imageBytes []byte) (image.Rectangle, error) {
	img, err := imaging.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return image.Rectangle{}, err
	}
	return img.Bounds(), nil
}
