package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func TestPostSendsJSON(t *testing.T) {
	var (
		got         payload
		contentType string
		submission  string
		method      string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		submission = r.Header.Get(SubmissionHeader)
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Post(context.Background(), payload{Name: "Ada", Email: "ada@example.com", Message: "hi"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "application/json", contentType)
	assert.NotEmpty(t, submission)
	assert.Equal(t, payload{Name: "Ada", Email: "ada@example.com", Message: "hi"}, got)
}

func TestOpaqueIgnoresStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	assert.Equal(t, ModeOpaque, c.Mode())
	assert.NoError(t, c.Post(context.Background(), payload{}))
}

func TestStrictReportsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, WithMode(ModeStrict))
	err := c.Post(context.Background(), payload{})
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.Code)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := New(url).Post(context.Background(), payload{})
	assert.Error(t, err)
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	err := New(srv.URL, WithTimeout(50*time.Millisecond)).Post(context.Background(), payload{})
	assert.Error(t, err)
}

func TestCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := New(srv.URL).Post(ctx, payload{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNoEndpoint(t *testing.T) {
	assert.ErrorIs(t, New("").Post(context.Background(), payload{}), ErrNoEndpoint)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeOpaque, m)

	m, err = ParseMode("strict")
	require.NoError(t, err)
	assert.Equal(t, ModeStrict, m)

	_, err = ParseMode("cors")
	assert.Error(t, err)
}

func TestTimeoutAppliesRegardlessOfOptionOrder(t *testing.T) {
	shared := &http.Client{}

	before := New("http://example.test", WithTimeout(time.Second), WithHTTPClient(shared))
	after := New("http://example.test", WithHTTPClient(shared), WithTimeout(time.Second))

	assert.Equal(t, time.Second, before.http.Timeout)
	assert.Equal(t, time.Second, after.http.Timeout)
	assert.Zero(t, shared.Timeout, "caller's client must not be modified")
}

func TestTimeoutWithCustomClient(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := New(srv.URL, WithTimeout(50*time.Millisecond), WithHTTPClient(srv.Client()))
	assert.Error(t, c.Post(context.Background(), payload{}))
}
