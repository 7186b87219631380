package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeBadRequest, http.StatusBadRequest},
		{CodeInternal, http.StatusInternalServerError},
		{Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestIs_MatchesOnCode(t *testing.T) {
	assert.True(t, Is(ErrMissingText, ErrBadRequest))
	assert.True(t, Is(NotFound("no such place"), ErrNotFound))
	assert.False(t, Is(ErrNotJSON, ErrNotFound))

	wrapped := fmt.Errorf("reviews: %w", ErrMissingUserID)
	assert.True(t, Is(wrapped, ErrBadRequest))

	var e *Error
	assert.True(t, As(wrapped, &e))
	assert.Equal(t, MsgMissingUserID, e.Message)
}

func TestNotFound_DefaultMessage(t *testing.T) {
	assert.Equal(t, MsgNotFound, NotFound("").Message)
	assert.Equal(t, "gone", NotFound("gone").Message)
}

func TestInternal_KeepsCause(t *testing.T) {
	cause := New("connection reset")
	err := Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}
