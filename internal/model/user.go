package model

import "time"

// User is the owner of documents and folders. Every query predicate in the
// repositories includes the owner id.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
