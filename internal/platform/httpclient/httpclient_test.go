package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithBaseURL(t *testing.T) {
	c, err := NewWithBaseURL("http://localhost:8080/", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)

	_, err = NewWithBaseURL("not a url", time.Second)
	assert.Error(t, err)
}

func TestClient_PostDecodesResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/people/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, _ := io.ReadAll(r.Body)
		var in map[string]any
		require.NoError(t, json.Unmarshal(raw, &in))

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"id":1,"first_name":%q}`, in["first_name"])
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)

	var out struct {
		ID        int64  `json:"id"`
		FirstName string `json:"first_name"`
	}
	require.NoError(t, c.Post(context.Background(), "people/", map[string]any{"first_name": "Jesse"}, &out))
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "Jesse", out.FirstName)
}

func TestClient_ErrorBodyIsParsed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"validation failed","fields":[{"field":"owner","message":"this field is required"}]}`))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)

	err = c.Put(context.Background(), "/pets/1/", map[string]any{}, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))

	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "validation failed", he.Message)
	assert.Equal(t, []FieldError{{Field: "owner", Message: "this field is required"}}, he.Fields)
	assert.Contains(t, err.Error(), "[owner: this field is required]")
}

func TestClient_PlainErrorBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer ts.Close()

	err := New(time.Second).Get(context.Background(), ts.URL+"/health", nil)
	require.Error(t, err)
	assert.Equal(t, "http error: status=502 body=boom", err.Error())
}

func TestClient_RelativePathNeedsBaseURL(t *testing.T) {
	err := New(time.Second).Get(context.Background(), "/people/", nil)
	assert.ErrorContains(t, err, "relative path requires BaseURL")
	assert.Equal(t, 0, StatusCode(err))
}
