package handler

import (
	"bank-admin-api/common"
	"encoding/json"
	"net/http"
	"strconv"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// parseKey reads a numeric path value. A non-numeric key is a client error.
func parseKey(r *http.Request, name string) (int64, *common.AppError) {
	value, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, common.NewAppError(http.StatusBadRequest, "Invalid "+name+" in path", nil)
	}
	return value, nil
}
