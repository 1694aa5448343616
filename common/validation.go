package common

import (
	"bank-admin-api/model"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// cardNumberLengths are the accepted digit counts for card numbers.
var cardNumberLengths = map[int]bool{13: true, 15: true, 16: true, 18: true, 19: true}

const minAccountNumberDigits = 15

// ValidateUser checks that a user carries a name, a birthdate and an address.
func ValidateUser(user *model.User) error {
	if user == nil {
		return NewBadArgument("user data must not be empty")
	}
	return structReason("user", validate.Struct(user))
}

// ValidateAccount checks that an account carries an owner and a currency.
// The balance is deliberately unchecked: negative balances are allowed.
func ValidateAccount(account *model.Account) error {
	if account == nil {
		return NewBadArgument("account data must not be empty")
	}
	return structReason("account", validate.Struct(account))
}

// ValidateCard checks that a card carries an account reference, an
// expiration date and a CVV code.
func ValidateCard(card *model.Card) error {
	if card == nil {
		return NewBadArgument("card data must not be empty")
	}
	return structReason("card", validate.Struct(card))
}

// ValidateAccountNumber requires at least 15 decimal digits. There is no
// upper bound.
func ValidateAccountNumber(number int64) error {
	if digitCount(number) < minAccountNumberDigits {
		return NewBadArgument("invalid account number: %d", number)
	}
	return nil
}

// ValidateCardNumber accepts card numbers of 13, 15, 16, 18 or 19 digits.
func ValidateCardNumber(number int64) error {
	if !cardNumberLengths[digitCount(number)] {
		return NewBadArgument("invalid card number: %d", number)
	}
	return nil
}

// ValidateUserID rejects negative identifiers.
func ValidateUserID(id int64) error {
	if id < 0 {
		return NewBadArgument("invalid user id: %d", id)
	}
	return nil
}

func digitCount(number int64) int {
	s := strconv.FormatInt(number, 10)
	return len(strings.TrimPrefix(s, "-"))
}

// structReason folds validator.ValidationErrors into a single
// BadArgumentError with a readable reason per failed field.
func structReason(entity string, err error) error {
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewBadArgument("invalid %s data", entity)
	}

	var reasons []string
	for _, fieldErr := range validationErrors {
		switch fieldErr.ActualTag() {
		case "required":
			reasons = append(reasons, fmt.Sprintf("field %s is required", fieldErr.Field()))
		default:
			reasons = append(reasons, fmt.Sprintf("field %s is not valid", fieldErr.Field()))
		}
	}
	return NewBadArgument("invalid %s data: %s", entity, strings.Join(reasons, ", "))
}
