package model

import "time"

// Folder groups documents for one owner. Names are unique per owner
// (case-sensitive); membership is many-to-many via the association table.
type Folder struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
