package providers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRequestSendsJSONAndAuth(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := &BaseProvider{Name: "test", BaseURL: srv.URL, APIKey: "key-123", Client: srv.Client()}

	resp, err := p.MakeRequest(context.Background(), http.MethodPost, srv.URL+"/charges", map[string]string{"reference": "r-1"}, nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bearer key-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, "r-1", decoded["reference"])
}

func TestMakeRequestInvalidMethodWithBody(t *testing.T) {
	p := &BaseProvider{Name: "test", APIKey: "key", Client: http.DefaultClient}

	// Request construction failure surfaces as an error even when a body is
	// attached.
	resp, err := p.MakeRequest(context.Background(), "BAD METHOD", "http://localhost", map[string]string{"reference": "r-1"}, nil)
	assert.Error(t, err)
	assert.Nil(t, resp)
}
