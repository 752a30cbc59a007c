package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{name: "not found", err: NotFound("user not found"), expected: KindNotFound},
		{name: "already exists", err: AlreadyExists("taken"), expected: KindAlreadyExists},
		{name: "bad request", err: BadRequest("nope"), expected: KindBadRequest},
		{name: "forbidden", err: Forbidden("no"), expected: KindForbidden},
		{name: "unauthenticated", err: Unauthenticated("who"), expected: KindUnauthenticated},
		{name: "wrapped", err: fmt.Errorf("context: %w", NotFound("gone")), expected: KindNotFound},
		{name: "plain error", err: errors.New("boom"), expected: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(KindNotFound))
	assert.Equal(t, http.StatusConflict, HTTPStatus(KindAlreadyExists))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindBadRequest))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(KindForbidden))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(KindUnauthenticated))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindInternal))
}

func TestNewResponse(t *testing.T) {
	resp := NewResponse(NotFound("post not found"), "/api/posts/abc")

	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "Not Found", resp.Error)
	assert.Equal(t, "post not found", resp.Message)
	assert.Equal(t, "/api/posts/abc", resp.Path)
	assert.False(t, resp.Timestamp.IsZero())
	assert.Nil(t, resp.Errors)
}

func TestNewResponse_InternalMessageSuppressed(t *testing.T) {
	resp := NewResponse(errors.New("dsn user:password@tcp refused"), "/api/posts")

	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	assert.Equal(t, "an unexpected error occurred", resp.Message)
}

func TestNewResponse_ValidationFields(t *testing.T) {
	err := Validation("validation failed", map[string]string{"email": "must be a valid email address"})

	resp := NewResponse(err, "/api/users/register")

	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "must be a valid email address", resp.Errors["email"])
}
