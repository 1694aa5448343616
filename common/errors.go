package common

import (
	"bank-admin-api/logger"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// BadArgumentError signals that caller-supplied data failed a validation
// predicate. Always recoverable by correcting the input.
type BadArgumentError struct {
	Reason string
}

func (e *BadArgumentError) Error() string {
	return e.Reason
}

func NewBadArgument(format string, args ...interface{}) *BadArgumentError {
	return &BadArgumentError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError signals that no entity exists under the given key.
type NotFoundError struct {
	Resource string
	Key      int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s with key %d", e.Resource, e.Key)
}

func NewNotFound(resource string, key int64) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ToAppError classifies a service error into an HTTP error response.
// BadArgumentError maps to 400, NotFoundError to 404; everything else is a
// storage-level failure and surfaces as 500 without leaking detail.
func ToAppError(err error) *AppError {
	var badArg *BadArgumentError
	if errors.As(err, &badArg) {
		return NewAppError(http.StatusBadRequest, badArg.Reason, nil)
	}

	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return NewAppError(http.StatusNotFound, notFound.Error(), nil)
	}

	return NewAppError(http.StatusInternalServerError, "Internal server error", err)
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}
