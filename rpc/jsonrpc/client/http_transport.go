package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	protoHTTP  = "http"
	protoHTTPS = "https"

	// DefaultAddress is the node's default RPC listen address.
	DefaultAddress = "http://localhost:7076"
	// DefaultTimeout bounds a single round trip.
	DefaultTimeout = 10 * time.Second

	maxStatusBody = 256
)

// parsedURL is a wrapper around url.URL that knows the default scheme.
type parsedURL struct {
	url.URL
}

func newParsedURL(remoteAddr string) (*parsedURL, error) {
	if !strings.Contains(remoteAddr, "://") {
		remoteAddr = protoHTTP + "://" + remoteAddr
	}
	u, err := url.Parse(remoteAddr)
	if err != nil {
		return nil, err
	}
	if u.Host == "" {
		return nil, errors.New("missing host")
	}
	if u.Scheme != protoHTTP && u.Scheme != protoHTTPS {
		return nil, errors.New("unsupported scheme " + u.Scheme)
	}
	return &parsedURL{*u}, nil
}

// GetTrimmedURL returns the URL without a trailing slash.
func (u parsedURL) GetTrimmedURL() string {
	return strings.TrimSuffix(u.String(), "/")
}

// HTTPTransport posts requests as JSON to a single node endpoint.
//
// HTTPTransport is safe for concurrent use by multiple goroutines.
type HTTPTransport struct {
	address string
	client  *http.Client
}

var _ Transport = (*HTTPTransport)(nil)

// HTTPTransportOption sets an optional parameter on the HTTPTransport.
type HTTPTransportOption func(*HTTPTransport)

// WithTimeout sets the round-trip timeout. Zero disables it.
func WithTimeout(d time.Duration) HTTPTransportOption {
	return func(t *HTTPTransport) { t.client.Timeout = d }
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(c *http.Client) HTTPTransportOption {
	return func(t *HTTPTransport) { t.client = c }
}

// NewHTTPTransport returns a transport for remote. An empty remote means
// DefaultAddress; a missing scheme means http. An error is returned on an
// invalid remote.
func NewHTTPTransport(remote string, opts ...HTTPTransportOption) (*HTTPTransport, error) {
	if remote == "" {
		remote = DefaultAddress
	}
	parsedURL, err := newParsedURL(remote)
	if err != nil {
		return nil, ErrInvalidAddress{Addr: remote, Source: err}
	}

	t := &HTTPTransport{
		address: parsedURL.GetTrimmedURL(),
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Address returns the endpoint requests are posted to.
func (t *HTTPTransport) Address() string {
	return t.address
}

// Post issues a POST request with a JSON body.
func (t *HTTPTransport) Post(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.address, bytes.NewReader(body))
	if err != nil {
		return nil, ErrCreateRequest{Source: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, ErrFailedRequest{Source: err}
	}
	defer resp.Body.Close()

	responseBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrReadResponse{Source: err}
	}

	// The node reports failures in the body with a 200; anything else that
	// is not JSON came from something in between.
	if resp.StatusCode/100 != 2 && !gjson.ValidBytes(responseBytes) {
		text := string(responseBytes)
		if len(text) > maxStatusBody {
			text = text[:maxStatusBody]
		}
		return nil, ErrUnexpectedStatus{StatusCode: resp.StatusCode, Body: text}
	}

	return responseBytes, nil
}
