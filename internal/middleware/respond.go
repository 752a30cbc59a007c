package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/confiance888/BlogMagment/internal/apperrors"
)

// respondError writes the uniform error envelope for err
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	resp := apperrors.NewResponse(err, r.URL.Path)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	json.NewEncoder(w).Encode(resp)
}
