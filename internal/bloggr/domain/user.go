package domain

import "time"

type User struct {
	ID           string
	Login        string
	Email        string
	PasswordHash string // argon2 encoded
	IsConfirmed  bool
	CreatedAt    time.Time
}
