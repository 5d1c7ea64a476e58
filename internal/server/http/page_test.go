package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekisa-team/voxlingo/internal/blob"
	"github.com/ekisa-team/voxlingo/internal/service"
)

func newMux(t *testing.T, h *harness) *http.ServeMux {
	t.Helper()

	mux := http.NewServeMux()
	api := NewAPI(mux, "test")
	Register(api, h.services)
	MountPages(mux, h.services, h.publicDir, "/storage")
	return mux
}

func serve(mux http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestLandingPage(t *testing.T) {
	h := newHarness(t, harnessOptions{})
	_, err := h.services.Translations.Translate(context.Background(), service.TranslateRequest{
		Text:           "Good <morning>",
		TargetLanguage: "es",
	})
	require.NoError(t, err)

	rec := serve(newMux(t, h), http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	page := rec.Body.String()
	assert.Contains(t, page, "Good &lt;morning&gt;")
	assert.Contains(t, page, "English &rarr; Spanish")
	assert.Contains(t, page, `<option value="zh">Chinese (Simplified)</option>`)
	assert.NotContains(t, page, "No translations yet.")
}

func TestLandingPage_DatabaseOutage(t *testing.T) {
	h := newHarness(t, harnessOptions{databaseDown: true})

	rec := serve(newMux(t, h), http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No translations yet.")
}

func TestMux_RoutesAndStorage(t *testing.T) {
	h := newHarness(t, harnessOptions{})
	mux := newMux(t, h)

	_, err := h.blobs.Put(blob.AudioKey("sample.wav"), []byte("RIFF"))
	require.NoError(t, err)

	rec := serve(mux, http.MethodGet, "/storage/audio/sample.wav")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "RIFF", rec.Body.String())

	assert.Equal(t, http.StatusNotFound, serve(mux, http.MethodGet, "/unknown").Code)
	assert.Equal(t, http.StatusOK, serve(mux, http.MethodGet, "/health").Code)
	assert.Equal(t, http.StatusOK, serve(mux, http.MethodGet, "/openapi.json").Code)
}
