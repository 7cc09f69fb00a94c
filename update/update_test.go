package update

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitSettled(t *testing.T, c *Checker) (State, string) {
	t.Helper()
	var state State
	var version string
	require.Eventually(t, func() bool {
		state, version = c.Status()
		return state != Pending
	}, 5*time.Second, 10*time.Millisecond)
	return state, version
}

func TestCheckerReady(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, "\n  xseedc-0.9.4 \nignored\n")
	}))
	defer srv.Close()

	c := NewChecker(srv.URL, srv.Client())
	state, _ := c.Status()
	assert.Equal(t, Pending, state)

	c.Start(context.Background())
	c.Start(context.Background())

	state, version := waitSettled(t, c)
	assert.Equal(t, Ready, state)
	assert.Equal(t, "xseedc-0.9.4", version)
	assert.Equal(t, int32(1), hits.Load())
}

func TestCheckerFailed(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"not found", func(w http.ResponseWriter, r *http.Request) { http.NotFound(w, r) }},
		{"empty body", func(w http.ResponseWriter, r *http.Request) { fmt.Fprint(w, "\n\n") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewChecker(srv.URL, srv.Client())
			c.Start(context.Background())

			state, version := waitSettled(t, c)
			assert.Equal(t, Failed, state)
			assert.Empty(t, version)
		})
	}
}

func TestCheckerSettlesOnce(t *testing.T) {
	c := NewChecker("http://127.0.0.1:0", nil)
	c.settle(Ready, "1")
	c.settle(Failed, "")
	c.settle(Ready, "2")

	state, version := c.Status()
	assert.Equal(t, Ready, state)
	assert.Equal(t, "1", version)
}
