package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	calls  int
	status int
	err    error
}

func (o *recordingObserver) ObserveUpstream(statusCode int, err error, _ time.Duration) {
	o.calls++
	o.status = statusCode
	o.err = err
}

func TestGet_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"success":true,"data":{"total":1}}`))
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	c := NewClient(nil, time.Second, 0).WithObserver(obs)

	resp := c.Get(context.Background(), srv.URL, map[string]string{"Content-Type": "application/json"})
	require.NoError(t, resp.Err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, resp.JSON().Get("success").Bool())
	assert.Equal(t, int64(1), resp.JSON().Get("data.total").Int())
	assert.Equal(t, 1, obs.calls)
	assert.Equal(t, http.StatusOK, obs.status)
}

func TestGet_NoRetryOnFailureStatus(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	resp := NewClient(nil, time.Second, 0).Get(context.Background(), srv.URL, nil)
	require.NoError(t, resp.Err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.False(t, resp.JSON().Exists())
}

func TestGet_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	obs := &recordingObserver{}
	resp := NewClient(nil, time.Second, 0).WithObserver(obs).Get(context.Background(), url, nil)
	assert.Error(t, resp.Err)
	assert.Equal(t, 0, resp.StatusCode)
	assert.Error(t, obs.err)
}

func TestGet_InvalidJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	resp := NewClient(nil, time.Second, 0).Get(context.Background(), srv.URL, nil)
	require.NoError(t, resp.Err)
	assert.False(t, resp.JSON().Exists())

	var v map[string]any
	assert.Error(t, resp.Decode(&v))
}

func TestGet_RequestSpacing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	interval := 50 * time.Millisecond
	c := NewClient(nil, time.Second, interval)

	start := time.Now()
	c.Get(context.Background(), srv.URL, nil)
	c.Get(context.Background(), srv.URL, nil)

	assert.GreaterOrEqual(t, time.Since(start), interval)
}

func TestGet_CancelledWhileWaiting(t *testing.T) {
	c := NewClient(nil, time.Second, time.Hour)
	c.lastRequest = time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := c.Get(ctx, "http://127.0.0.1:1", nil)
	assert.ErrorIs(t, resp.Err, context.Canceled)
}
