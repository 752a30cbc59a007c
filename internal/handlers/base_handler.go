// Package handlers contains the HTTP surface: thin chi handlers that decode
// requests, call services and translate every error into the uniform envelope.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/confiance888/BlogMagment/internal/apperrors"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError translates any error into the uniform envelope. Internal
// errors are logged and surfaced with a suppressed message.
func (h *BaseHandler) RespondError(w http.ResponseWriter, r *http.Request, err error) {
	if apperrors.KindOf(err) == apperrors.KindInternal {
		h.Logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	resp := apperrors.NewResponse(err, r.URL.Path)
	h.RespondJSON(w, resp.Status, resp)
}

// DecodeJSON decodes the request body into dst, failing with BadRequest on
// malformed input
func (h *BaseHandler) DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.BadRequest("invalid request body")
	}
	return nil
}

// PageParams extracts page and size query parameters with defaults
func (h *BaseHandler) PageParams(r *http.Request) (page, size int, err error) {
	page, err = queryInt(r, "page", 0)
	if err != nil {
		return 0, 0, apperrors.BadRequest("invalid page parameter")
	}
	size, err = queryInt(r, "size", 10)
	if err != nil {
		return 0, 0, apperrors.BadRequest("invalid size parameter")
	}
	return page, size, nil
}

// queryInt parses an integer query parameter with a default value
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
