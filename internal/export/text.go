package export

import "textvault/internal/model"

type textRenderer struct{}

func (textRenderer) Render(doc *model.Document) (*Result, error) {
	return &Result{
		Filename:    baseFilename(doc) + ".txt",
		ContentType: "text/plain; charset=utf-8",
		Data:        []byte(textContent(doc)),
	}, nil
}
