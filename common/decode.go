package common

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON reads a request body into payload. A malformed body is a
// client error, reported in the same envelope as validation failures.
func DecodeJSON(r *http.Request, payload interface{}) *AppError {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return NewAppError(http.StatusBadRequest, "Invalid request body", nil)
	}
	return nil
}
