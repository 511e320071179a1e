package model

import "time"

// Document represents an OCR-ingested document: the filename of the original
// upload plus the extracted text. This is a pure domain model with no
// database-specific dependencies or tags.
type Document struct {
	ID        int64       `json:"id"`
	OwnerID   int64       `json:"-"`
	Filename  string      `json:"filename"`
	Text      string      `json:"text"`
	Format    string      `json:"format"`
	ImagePath string      `json:"-"`
	ImageSize int64       `json:"-"`
	CreatedAt time.Time   `json:"created_at"`
	Folders   []FolderRef `json:"folders"`
}

// FolderRef is the membership view of a folder carried on a document.
type FolderRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
