package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelaney/ratemyclass/internal/app/models/dto"
	"github.com/jdelaney/ratemyclass/internal/pkg/apperrors"
)

func recordError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"school not found", apperrors.ErrSchoolNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrCourseNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"duplicate course", apperrors.ErrCourseExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"rating out of range", apperrors.ErrRatingOutOfRange, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed},
		{"invalid delivery mode", apperrors.ErrInvalidDeliveryMode, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := recordError(t, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Detail)
		})
	}
}

func TestHandleAPIError_UnknownErrorHidesDetails(t *testing.T) {
	_, body := recordError(t, errors.New("pq: connection reset"))
	assert.Equal(t, "Internal server error", body.Detail)
	assert.NotContains(t, body.Detail, "connection reset")
}

func TestHandleAPIError_CustomErrorMessage(t *testing.T) {
	err := apperrors.NewResourceNotFoundError("Course with ID 42 not found")
	w, body := recordError(t, err)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Course with ID 42 not found", body.Detail)
}
