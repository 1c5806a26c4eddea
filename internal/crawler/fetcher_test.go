package crawler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang-broker-scryper/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return log
}

func TestFetcherSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><body><div id="hello">hi</div></body></html>`))
	}))
	defer srv.Close()

	f := NewFetcher(newTestLogger(t), 0)
	doc, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "hi", doc.Find("#hello").Text())
}

func TestFetcherNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewFetcher(newTestLogger(t), 0)
	doc, err := f.Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
	assert.Nil(t, doc)
}

func TestFetcherTransportError(t *testing.T) {
	f := NewFetcher(newTestLogger(t), 0)
	doc, err := f.Fetch(context.Background(), "http://127.0.0.1:1/never")
	assert.Error(t, err)
	assert.Nil(t, doc)
}

func TestFetcherReinterpretsBig5(t *testing.T) {
	// Encode a CJK page as Big5 and serve it without a charset, the way the
	// source does.
	encoded, err := io.ReadAll(transform.NewReader(
		strings.NewReader(`<html><body><div class="t11">資料日期：2024-01-10</div></body></html>`),
		traditionalchinese.Big5.NewEncoder()))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write(encoded)
	}))
	defer srv.Close()

	f := NewFetcher(newTestLogger(t), 0)
	doc, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, doc.Find("div.t11").Text(), "資料日期：2024-01-10")
}

func TestReinterpretLegacyEncodingKeepsDeclaredUTF8(t *testing.T) {
	body := []byte("台積電")
	assert.Equal(t, body, reinterpretLegacyEncoding(body, "text/html; charset=utf-8"))
}

func TestReinterpretLegacyEncodingKeepsValidUTF8WithoutCharset(t *testing.T) {
	body := []byte("台積電")
	assert.Equal(t, body, reinterpretLegacyEncoding(body, "text/html"))
}
