package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPTransportAddress(t *testing.T) {
	testCases := []struct {
		remote string
		want   string
	}{
		{"", DefaultAddress},
		{"localhost:7076", "http://localhost:7076"},
		{"http://127.0.0.1:7076/", "http://127.0.0.1:7076"},
		{"https://node.example.com/rpc", "https://node.example.com/rpc"},
	}
	for _, tc := range testCases {
		tr, err := NewHTTPTransport(tc.remote)
		require.NoError(t, err, tc.remote)
		assert.Equal(t, tc.want, tr.Address(), tc.remote)
	}
}

func TestNewHTTPTransportInvalidAddress(t *testing.T) {
	for _, remote := range []string{"tcp://localhost:7076", "http://", "http://[::1"} {
		_, err := NewHTTPTransport(remote)
		assert.ErrorAs(t, err, &ErrInvalidAddress{}, remote)
	}
}

func TestHTTPTransportPost(t *testing.T) {
	defer leaktest.Check(t)()

	var (
		gotMethod, gotType string
		gotBody            []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"balance":"10000","pending":"10001"}`))
	}))
	defer srv.Close()

	tr, err := NewHTTPTransport(srv.URL)
	require.NoError(t, err)
	defer tr.client.CloseIdleConnections()

	reply, err := tr.Post(context.Background(), []byte(`{"action":"account_balance"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"balance":"10000","pending":"10001"}`, string(reply))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, `{"action":"account_balance"}`, string(gotBody))
}

func TestHTTPTransportStatus(t *testing.T) {
	defer leaktest.Check(t)()

	testCases := []struct {
		status  int
		body    string
		wantErr bool
	}{
		{http.StatusOK, `{"error":"Bad account number"}`, false},
		{http.StatusInternalServerError, `{"error":"Internal server error in RPC"}`, false},
		{http.StatusBadGateway, `<html>bad gateway</html>`, true},
	}

	for _, tc := range testCases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(tc.body))
		}))

		tr, err := NewHTTPTransport(srv.URL)
		require.NoError(t, err)

		reply, err := tr.Post(context.Background(), []byte(`{}`))
		if tc.wantErr {
			var statusErr ErrUnexpectedStatus
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tc.status, statusErr.StatusCode)
			assert.Nil(t, reply)
		} else {
			require.NoError(t, err)
			assert.Equal(t, tc.body, string(reply))
		}

		tr.client.CloseIdleConnections()
		srv.Close()
	}
}

func TestHTTPTransportUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	tr, err := NewHTTPTransport(addr)
	require.NoError(t, err)

	_, err = tr.Post(context.Background(), []byte(`{}`))
	assert.ErrorAs(t, err, &ErrFailedRequest{})
}

func TestHTTPTransportTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	tr, err := NewHTTPTransport(srv.URL, WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	_, err = tr.Post(context.Background(), []byte(`{}`))
	assert.ErrorAs(t, err, &ErrFailedRequest{})
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{}
	tr, err := NewHTTPTransport("", WithHTTPClient(hc))
	require.NoError(t, err)
	assert.Same(t, hc, tr.client)
}
