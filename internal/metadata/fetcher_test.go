package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveHTML(t *testing.T, html string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "LinkVault/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(html))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetcher_Fetch_TitleAndIcon(t *testing.T) {
	server := serveHTML(t, `<html><head>
		<title> Go Blog </title>
		<link rel="icon" href="/static/icon.png">
	</head><body></body></html>`)

	meta, err := NewFetcher().Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "Go Blog", meta.Title)
	assert.Equal(t, server.URL+"/static/icon.png", meta.FaviconURL)
}

func TestFetcher_Fetch_IconAttributeOrderReversed(t *testing.T) {
	server := serveHTML(t, `<html><head>
		<link href="/fav.ico" rel="shortcut icon">
	</head></html>`)

	meta, err := NewFetcher().Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, server.URL+"/fav.ico", meta.FaviconURL)
}

func TestFetcher_Fetch_AbsoluteIconURL(t *testing.T) {
	server := serveHTML(t, `<html><head>
		<link rel="icon" href="https://cdn.example.com/icon.svg">
	</head></html>`)

	meta, err := NewFetcher().Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/icon.svg", meta.FaviconURL)
}

func TestFetcher_Fetch_FaviconFallback(t *testing.T) {
	server := serveHTML(t, `<html><head><title>No icon here</title></head></html>`)

	meta, err := NewFetcher().Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, server.URL+"/favicon.ico", meta.FaviconURL)
}

func TestFetcher_Fetch_NoTitle(t *testing.T) {
	server := serveHTML(t, `<html><head></head><body>plain</body></html>`)

	meta, err := NewFetcher().Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Empty(t, meta.Title)
}

func TestFetcher_Fetch_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewFetcher().Fetch(context.Background(), server.URL)

	assert.Error(t, err)
}

func TestFetcher_Fetch_UnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewFetcher().Fetch(context.Background(), server.URL)

	assert.Error(t, err)
}

func TestExtractFaviconURL_BadPageURL(t *testing.T) {
	assert.Empty(t, extractFaviconURL("<html></html>", "::not-a-url"))
}
