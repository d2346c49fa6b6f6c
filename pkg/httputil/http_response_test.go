package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/fitrank/internal/error_values"
	"github.com/limbo/fitrank/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		Err      error
		Expected int
	}{
		{Err: errorvalues.ErrInvalidToken, Expected: http.StatusUnauthorized},
		{Err: errorvalues.ErrWrongCredentials, Expected: http.StatusUnauthorized},
		{Err: errorvalues.ErrChallengeNotFound, Expected: http.StatusNotFound},
		{Err: errorvalues.ErrWrongOwner, Expected: http.StatusNotFound},
		{Err: errorvalues.ErrAlreadyParticipating, Expected: http.StatusConflict},
		{Err: errorvalues.ErrConcurrentUpdate, Expected: http.StatusConflict},
		{Err: errors.Join(errorvalues.ErrValidation, errors.New("limit")), Expected: http.StatusBadRequest},
		{Err: errorvalues.ErrUnknownMetric, Expected: http.StatusBadRequest},
		{Err: errors.New("workouts repository error: timeout"), Expected: http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.Err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.Expected, httputil.StatusFor(tc.Err))
		})
	}
}

func TestWriteServiceError(t *testing.T) {
	t.Run("client error carries details", func(t *testing.T) {
		rr := httptest.NewRecorder()
		code := httputil.WriteServiceError(rr, errorvalues.ErrNotParticipating, "couldn't update progress")
		assert.Equal(t, http.StatusConflict, code)
		var resp httputil.ErrorResponse
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusConflict, resp.Code)
		assert.Equal(t, "couldn't update progress", resp.Message)
		assert.Equal(t, errorvalues.ErrNotParticipating.Error(), resp.Details)
	})
	t.Run("internal error is hidden", func(t *testing.T) {
		rr := httptest.NewRecorder()
		httputil.WriteServiceError(rr, errors.New("pool exhausted"), "internal error")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "pool exhausted")
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	})
}
