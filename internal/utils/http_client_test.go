package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	c1 := NewHTTPClient()
	c2 := NewHTTPClient()

	c1.SetBaseURL("http://one.example")
	assert.NotSame(t, c1.Client, c2.Client)
	assert.Empty(t, c2.BaseURL)
}

func TestHTTPClient_SendsJSONHeaders(t *testing.T) {
	var gotAccept, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient()
	client.SetBaseURL(srv.URL)

	resp, err := client.R().SetBody(map[string]string{"m": "phone"}).Post("/user/last_sync_at")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "application/json", gotAccept)
	assert.Contains(t, gotContentType, "application/json")
}
