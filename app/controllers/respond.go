package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"csvvault/app/dto"
	"csvvault/app/services"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Error: msg})
}

// serviceError maps service sentinels to transport status codes.
func serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, "not authorized")
	case errors.Is(err, services.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "username already taken")
	case errors.Is(err, services.ErrInvalidFile):
		writeError(w, http.StatusBadRequest, "invalid file format")
	case errors.Is(err, services.ErrFileTooLarge):
		writeError(w, http.StatusBadRequest, "file size too large")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
