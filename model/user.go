package model

import "time"

// User is a bank customer. The ID is assigned by the database on creation.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Birthdate time.Time `json:"birthdate" validate:"required"`
	Address   string    `json:"address" validate:"required"`
}
