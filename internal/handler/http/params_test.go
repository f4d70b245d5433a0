package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithParam(name, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPathUUID_Valid(t *testing.T) {
	w := httptest.NewRecorder()

	id, ok := pathUUID(w, requestWithParam("id", "0194e000-0000-7000-8000-000000000001"), "id")
	require.True(t, ok)
	assert.Equal(t, "0194e000-0000-7000-8000-000000000001", id)
}

func TestPathUUID_MalformedRejectedWith400(t *testing.T) {
	for _, bad := range []string{"", "not-a-uuid", "123", "0194e000-0000-4000-8000-000000000001"} {
		w := httptest.NewRecorder()

		_, ok := pathUUID(w, requestWithParam("id", bad), "id")
		require.False(t, ok, "value %q should be rejected", bad)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}
