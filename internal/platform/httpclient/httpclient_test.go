package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresValidBaseURL(t *testing.T) {
	_, err := New("", 0)
	require.Error(t, err)

	_, err = New("not a url", 0)
	require.Error(t, err)

	c, err := New("http://example.test/", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test", c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)
}

func TestGetJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/resolve", r.URL.Path)
		assert.Equal(t, "2000-01-01", r.URL.Query().Get("date"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL, 0)
	require.NoError(t, err)

	var out struct {
		OK bool `json:"ok"`
	}
	err = c.GetJSON(context.Background(), "v1/resolve", url.Values{"date": {"2000-01-01"}}, map[string]string{"X-Api-Key": "secret"}, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
}

func TestGetJSON_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no such date", http.StatusNotFound)
	}))
	defer ts.Close()

	c, err := New(ts.URL, 0)
	require.NoError(t, err)

	err = c.GetJSON(context.Background(), "/v1/resolve", nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
	assert.Contains(t, err.Error(), "no such date")
}

func TestGetJSON_EmptyBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c, err := New(ts.URL, 0)
	require.NoError(t, err)

	var out map[string]any
	err = c.GetJSON(context.Background(), "/v1/resolve", nil, nil, &out)
	require.ErrorIs(t, err, ErrEmptyBody)

	// Sin destino no hay nada que decodificar.
	require.NoError(t, c.GetJSON(context.Background(), "/v1/resolve", nil, nil, nil))
}
