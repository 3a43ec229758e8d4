package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/zatekoja/clinicsite/internal/api/middleware"
	"github.com/zatekoja/clinicsite/internal/application/services"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 1 << 20

var validate = middleware.NewValidator()

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{"error": message})
}

// decodeJSON decodes the request body into dst and writes a 400 response
// when it cannot.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return false
	}
	return true
}

// decodeAndValidate decodes the body and runs struct tag validation
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if !decodeJSON(w, r, dst) {
		return false
	}
	if err := validate.Validate(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// checkSlug writes a 400 response when a submitted slug has no letters or
// digits left after slugifying.
func checkSlug(w http.ResponseWriter, slug *string) bool {
	if slug != nil && services.Slugify(*slug) == "" {
		respondWithError(w, http.StatusBadRequest, "slug must contain at least one letter or digit")
		return false
	}
	return true
}

func queryBool(r *http.Request, key string) (bool, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
