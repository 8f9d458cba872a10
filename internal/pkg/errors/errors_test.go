package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_IsMatchesByCode(t *testing.T) {
	err := NewNotFound("Area not found")

	assert.True(t, stderrors.Is(err, ErrNotFound))
	assert.False(t, stderrors.Is(err, ErrConflict))
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "Area not found", err.Message)
}

func TestAppError_WrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("create incident: %w", NewConflict("Incident already exists"))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	assert.True(t, stderrors.Is(wrapped, ErrConflict))
}

func TestAppError_CopiesDoNotMutateSentinels(t *testing.T) {
	v := NewValidation("bad").WithDetails(map[string]interface{}{"email": "email"})

	assert.Equal(t, "Request validation failed", ErrValidation.Message)
	assert.Nil(t, ErrValidation.Details)
	assert.Equal(t, "email", v.Details["email"])
	assert.Equal(t, http.StatusUnprocessableEntity, v.StatusCode)
}

func TestAs_PlainError(t *testing.T) {
	_, ok := As(stderrors.New("boom"))
	assert.False(t, ok)
}
