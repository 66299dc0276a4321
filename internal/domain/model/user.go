package model

import "time"

// User represents a registered member of the coworking space.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}
