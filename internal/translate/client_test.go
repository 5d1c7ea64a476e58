package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, body string, status int) (*httptest.Server, *url.URL) {
	t.Helper()

	last := &url.URL{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*last = *r.URL
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, last
}

func TestTranslate_AutoDetect(t *testing.T) {
	srv, u := newTestServer(t, `[[["Hola ","Hello ",null,null,10],["mundo","world",null,null,10]],null,"en",null,null,null,1]`, http.StatusOK)

	res, err := New(Options{BaseURL: srv.URL}).Translate(context.Background(), "Hello world", "es", "auto")
	require.NoError(t, err)

	assert.Equal(t, "Hola mundo", res.TranslatedText)
	assert.Equal(t, "Hello world", res.OriginalText)
	assert.Equal(t, "en", res.SourceLanguage)
	assert.Equal(t, "es", res.TargetLanguage)

	assert.Equal(t, "/translate_a/single", u.Path)
	q := u.Query()
	assert.Equal(t, "gtx", q.Get("client"))
	assert.Equal(t, "auto", q.Get("sl"))
	assert.Equal(t, "es", q.Get("tl"))
	assert.Equal(t, "Hello world", q.Get("q"))
}

func TestTranslate_ExplicitSource(t *testing.T) {
	srv, _ := newTestServer(t, `[[["Bonjour","Hallo",null,null,10]],null,"de"]`, http.StatusOK)

	res, err := New(Options{BaseURL: srv.URL}).Translate(context.Background(), "Hallo", "fr", "nl")
	require.NoError(t, err)
	assert.Equal(t, "nl", res.SourceLanguage)
}

func TestTranslate_DetectedRegionalTag(t *testing.T) {
	srv, _ := newTestServer(t, `[[["Hello","你好",null,null,10]],null,"zh-CN"]`, http.StatusOK)

	res, err := New(Options{BaseURL: srv.URL}).Translate(context.Background(), "你好", "en", "")
	require.NoError(t, err)
	assert.Equal(t, "zh", res.SourceLanguage)
}

func TestTranslate_Errors(t *testing.T) {
	ctx := context.Background()

	srv, _ := newTestServer(t, `oops`, http.StatusTooManyRequests)
	_, err := New(Options{BaseURL: srv.URL}).Translate(ctx, "Hello", "es", "auto")
	assert.ErrorContains(t, err, "429")

	srv, _ = newTestServer(t, `[[],null,"en"]`, http.StatusOK)
	_, err = New(Options{BaseURL: srv.URL}).Translate(ctx, "Hello", "es", "auto")
	assert.ErrorIs(t, err, ErrEmptyTranslation)

	srv, _ = newTestServer(t, `{"not":"an array"}`, http.StatusOK)
	_, err = New(Options{BaseURL: srv.URL}).Translate(ctx, "Hello", "es", "auto")
	assert.ErrorContains(t, err, "invalid response")

	_, err = New(Options{BaseURL: srv.URL}).Translate(ctx, "   ", "es", "auto")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestDetectLanguage(t *testing.T) {
	srv, _ := newTestServer(t, `[[["Hello","Hola",null,null,10]],null,"es"]`, http.StatusOK)
	assert.Equal(t, "es", New(Options{BaseURL: srv.URL}).DetectLanguage(context.Background(), "Hola"))

	failing, _ := newTestServer(t, `boom`, http.StatusInternalServerError)
	assert.Equal(t, "en", New(Options{BaseURL: failing.URL}).DetectLanguage(context.Background(), "Hola"))
}

func TestTranslateBatch(t *testing.T) {
	srv, _ := newTestServer(t, `[[["Hola","Hello",null,null,10]],null,"en"]`, http.StatusOK)

	items := New(Options{BaseURL: srv.URL}).TranslateBatch(context.Background(), []string{"Hello", ""}, "es", "auto")
	require.Len(t, items, 2)
	assert.NoError(t, items[0].Err)
	assert.Equal(t, "Hola", items[0].Result.TranslatedText)
	assert.ErrorIs(t, items[1].Err, ErrEmptyText)
}
