package model

import "time"

// Card is a payment card bound to an account by its number.
type Card struct {
	Number         int64     `json:"number"`
	AccountNumber  int64     `json:"account" validate:"required"`
	ExpirationDate time.Time `json:"expirationDate" validate:"required"`
	CVV            int       `json:"cvv" validate:"required"`
}
