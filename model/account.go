package model

// Account is a bank account. The number is supplied by the caller and acts
// as the primary key; UserID references the owning user.
type Account struct {
	Number   int64   `json:"number"`
	UserID   int64   `json:"user" validate:"required"`
	Currency string  `json:"currency" validate:"required"`
	Balance  float64 `json:"balance"`
}
