package model

import "time"

// User represents a registered customer of the shop.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
