package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightshift/casefile/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 0, testLogger())
}

func TestDo_DecodesJSONResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hello":"world"}`))
	})

	var out map[string]string
	err := c.Do(context.Background(), Request{Path: "/ping"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "world", out["hello"])
}

func TestDo_TextResponseIntoString(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("pong"))
	})

	var out string
	err := c.Do(context.Background(), Request{Path: "/ping"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "pong", out)
}

func TestDo_AttachesBearerTokenAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.Do(context.Background(), Request{Path: "/x", Token: "abc"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestDo_EncodesFormValues(t *testing.T) {
	var gotContentType, gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	})

	form := url.Values{}
	form.Set("username", "analyst")
	form.Set("password", "secret")

	err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/login", Body: form}, nil)
	require.NoError(t, err)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "password=secret&username=analyst", gotBody)
}

func TestDo_EncodesStructAsJSON(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	})

	payload := struct {
		Email string `json:"email"`
	}{Email: "a@b.c"}

	err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/register", Body: payload}, nil)
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "a@b.c", gotBody["email"])
}

func TestDo_PassesThroughRawString(t *testing.T) {
	var gotContentType, gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	})

	err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "/raw", Body: "raw-bytes"}, nil)
	require.NoError(t, err)
	assert.Empty(t, gotContentType)
	assert.Equal(t, "raw-bytes", gotBody)
}

func TestDo_ErrorPrefersDetailField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"LOGIN_BAD_CREDENTIALS"}`))
	})

	err := c.Do(context.Background(), Request{Path: "/x"}, nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "LOGIN_BAD_CREDENTIALS", apiErr.Message)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	details, ok := apiErr.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "LOGIN_BAD_CREDENTIALS", details["detail"])
}

func TestDo_ErrorFallsBackToStatusText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":42}`))
	})

	err := c.Do(context.Background(), Request{Path: "/x"}, nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Bad Request", apiErr.Message)
}

func TestDo_ErrorTextBodyKeptAsDetails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	err := c.Do(context.Background(), Request{Path: "/x"}, nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
	assert.Equal(t, "upstream exploded", apiErr.Details)
}

func TestDo_ErrorUnknownStatusUsesFallbackMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(599)
	})

	err := c.Do(context.Background(), Request{Path: "/x"}, nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fallbackMessage, apiErr.Message)
	assert.Equal(t, 599, apiErr.Status)
}

func TestDo_ContextCancellation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Do(ctx, Request{Path: "/slow"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
