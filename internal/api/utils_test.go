package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONBody(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "Jaipur"}`))
	err := DecodeJSONBody(httptest.NewRecorder(), req, &dst)

	require.NoError(t, err)
	assert.Equal(t, "Jaipur", dst.Name)
}

func TestDecodeJSONBody_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"empty body", "", "body must not be empty"},
		{"malformed", "{broken", "badly-formed JSON"},
		{"wrong type", `{"name": 42}`, "incorrect JSON type"},
		{"trailing value", `{"name": "a"}{"name": "b"}`, "single JSON value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst struct {
				Name string `json:"name"`
			}
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			err := DecodeJSONBody(httptest.NewRecorder(), req, &dst)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDecodeJSONBody_IgnoresUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "Goa", "extra": true}`))
	err := DecodeJSONBody(httptest.NewRecorder(), req, &dst)
	assert.NoError(t, err)
}

func TestWriteDownloadResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteDownloadResponse(rec, req, []byte("%PDF-stub"), "itinerary_modern.pdf", "application/pdf")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="itinerary_modern.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-stub", rec.Body.String())
}

func TestErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	ErrorResponse(rec, req, http.StatusBadRequest, "Itinerary text is required")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "Itinerary text is required")
}
