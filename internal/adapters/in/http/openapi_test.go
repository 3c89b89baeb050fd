package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runValidator(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	validate, err := newRequestValidator()
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	nextCalled := false
	handler := validate(func(ctx echo.Context) error {
		nextCalled = true
		return ctx.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(ctx))
	return rec, nextCalled
}

func TestRequestValidator_ValidBody_PassesThrough(t *testing.T) {
	body := `{
		"userId": "0b4f1d6a-8c7e-4f7a-b1d4-2f6a9c8e7d5b",
		"licenseNumber": "DL-12345",
		"licenseClass": "CE",
		"licenseExpiry": "2028-06-30"
	}`

	rec, nextCalled := runValidator(t, http.MethodPost, "/api/v1/drivers", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
}

func TestRequestValidator_MissingRequiredField_ReturnsBadRequest(t *testing.T) {
	body := `{"licenseNumber": "DL-12345"}`

	rec, nextCalled := runValidator(t, http.MethodPost, "/api/v1/drivers", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, nextCalled)
}

func TestRequestValidator_UnknownEnumValue_ReturnsBadRequest(t *testing.T) {
	body := `{"vehicleNumber": "KBT-100", "vehicleType": "HOVERCRAFT", "capacityKg": 1200}`

	rec, nextCalled := runValidator(t, http.MethodPost, "/api/v1/vehicles", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, nextCalled)
}

func TestRequestValidator_NonPositiveCapacity_ReturnsBadRequest(t *testing.T) {
	body := `{"vehicleNumber": "KBT-100", "vehicleType": "VAN", "capacityKg": 0}`

	rec, nextCalled := runValidator(t, http.MethodPost, "/api/v1/vehicles", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, nextCalled)
}

func TestRequestValidator_PathOutsideContract_PassesThrough(t *testing.T) {
	rec, nextCalled := runValidator(t, http.MethodGet, "/api/v1/drivers", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
}
