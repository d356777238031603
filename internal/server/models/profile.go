// Package models holds the server-side rows of the archive database.
package models

import "time"

type Profile struct {
	ID           string
	Name         string
	Email        string
	PhotoURL     string
	PasswordHash string
	CreatedAt    time.Time
}
