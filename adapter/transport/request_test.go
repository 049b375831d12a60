package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RichardKnop/gptzero"
)

func TestDo_TextBody(t *testing.T) {
	t.Parallel()

	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"document": "hello world"}, body)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"documents":[{"average_generated_prob":0.25}]}`))
	}))
	defer svr.Close()

	adapter := New()

	var resp gptzero.Response
	err := adapter.Do(context.Background(), gptzero.Request{
		URL:     svr.URL,
		Method:  gptzero.MethodPost,
		Headers: gptzero.Headers{APIKey: "secret"},
		Text:    &gptzero.TextBody{Document: "hello world"},
	}, &resp)
	require.NoError(t, err)

	require.Len(t, resp.Documents, 1)
	assert.Equal(t, 0.25, resp.Documents[0].AverageGeneratedProb)
}

func TestDo_FileBody(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := make([]string, 0, 3)
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("contents of "+name), 0o600))
		paths = append(paths, path)
	}

	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))

		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		headers := r.MultipartForm.File["files"]
		if !assert.Len(t, headers, 3) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for i, name := range []string{"a.txt", "b.txt", "c.txt"} {
			assert.Equal(t, name, headers[i].Filename)
			f, err := headers[i].Open()
			assert.NoError(t, err)
			data, _ := io.ReadAll(f)
			f.Close()
			assert.Equal(t, "contents of "+name, string(data))
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"documents":[{},{},{}]}`))
	}))
	defer svr.Close()

	adapter := New()

	var resp gptzero.Response
	err := adapter.Do(context.Background(), gptzero.Request{
		URL:     svr.URL,
		Method:  gptzero.MethodPost,
		Headers: gptzero.Headers{APIKey: "secret", ContentType: gptzero.ContentTypeMultipart},
		Files:   &gptzero.FileBody{Files: paths},
	}, &resp)
	require.NoError(t, err)

	assert.Len(t, resp.Documents, 3)
}

func TestDo_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		expectedErr error
	}{
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"error":"invalid api key"}`,
			expectedErr: gptzero.ErrRequestFailed,
		},
		{
			name:        "server error without body",
			status:      http.StatusInternalServerError,
			expectedErr: gptzero.ErrRequestFailed,
		},
		{
			name:        "malformed json",
			status:      http.StatusOK,
			body:        `{"documents": [`,
			expectedErr: gptzero.ErrMalformedResponse,
		},
		{
			name:        "empty body",
			status:      http.StatusOK,
			body:        "  \n",
			expectedErr: gptzero.ErrEmptyResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer svr.Close()

			var resp gptzero.Response
			err := New().Do(context.Background(), gptzero.Request{
				URL:    svr.URL,
				Method: gptzero.MethodPost,
				Text:   &gptzero.TextBody{Document: "x"},
			}, &resp)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestDo_StatusErrorCarriesStatusText(t *testing.T) {
	t.Parallel()

	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer svr.Close()

	var resp gptzero.Response
	err := New().Do(context.Background(), gptzero.Request{URL: svr.URL, Method: gptzero.MethodGet}, &resp)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Equal(t, "429 Too Many Requests", statusErr.Status)
	assert.Contains(t, err.Error(), "Too Many Requests")
	assert.Empty(t, resp.Documents)
}

func TestDo_NetworkFailure(t *testing.T) {
	t.Parallel()

	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := svr.URL
	svr.Close()

	var resp gptzero.Response
	err := New().Do(context.Background(), gptzero.Request{
		URL:    url,
		Method: gptzero.MethodPost,
		Text:   &gptzero.TextBody{Document: "x"},
	}, &resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, gptzero.ErrTransport)
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestDo_InjectedHttpClient(t *testing.T) {
	t.Parallel()

	var called bool
	adapter := New(WithHttpClient(doerFunc(func(req *http.Request) (*http.Response, error) {
		called = true
		assert.Equal(t, "https://api.example.com/v2/predict/text", req.URL.String())
		return nil, errors.New("connection refused")
	})))

	var resp gptzero.Response
	err := adapter.Do(context.Background(), gptzero.Request{
		URL:    "https://api.example.com/v2/predict/text",
		Method: gptzero.MethodPost,
		Text:   &gptzero.TextBody{Document: "x"},
	}, &resp)
	require.Error(t, err)
	assert.True(t, called)
	assert.ErrorIs(t, err, gptzero.ErrTransport)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestDo_InvalidBodies(t *testing.T) {
	t.Parallel()

	adapter := New(WithHttpClient(doerFunc(func(req *http.Request) (*http.Response, error) {
		t.Fatal("no request expected")
		return nil, nil
	})))

	t.Run("Missing file", func(t *testing.T) {
		var resp gptzero.Response
		err := adapter.Do(context.Background(), gptzero.Request{
			URL:    "http://localhost",
			Method: gptzero.MethodPost,
			Files:  &gptzero.FileBody{Files: []string{filepath.Join(t.TempDir(), "missing.txt")}},
		}, &resp)
		require.Error(t, err)
		assert.ErrorIs(t, err, gptzero.ErrInvalidInput)
	})

	t.Run("Both bodies", func(t *testing.T) {
		var resp gptzero.Response
		err := adapter.Do(context.Background(), gptzero.Request{
			URL:    "http://localhost",
			Method: gptzero.MethodPost,
			Text:   &gptzero.TextBody{Document: "x"},
			Files:  &gptzero.FileBody{},
		}, &resp)
		require.Error(t, err)
		assert.ErrorIs(t, err, gptzero.ErrInvalidInput)
	})
}

func TestDo_UserAgent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		options  []Option
		expected string
	}{
		{
			name:     "default",
			expected: defaultUserAgent,
		},
		{
			name:     "custom",
			options:  []Option{WithUserAgent("gptzero/1.2.3")},
			expected: "gptzero/1.2.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.expected, r.Header.Get("User-Agent"))
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"documents":[]}`))
			}))
			defer svr.Close()

			var resp gptzero.Response
			err := New(tt.options...).Do(context.Background(), gptzero.Request{
				URL:  svr.URL,
				Text: &gptzero.TextBody{Document: "hello"},
			}, &resp)
			require.NoError(t, err)
		})
	}
}
