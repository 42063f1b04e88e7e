package client

import "context"

// Transport delivers an encoded request to the node and returns the raw
// reply. Implementations must be safe for concurrent use if the Caller using
// them is shared.
type Transport interface {
	Post(ctx context.Context, body []byte) ([]byte, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, body []byte) ([]byte, error)

func (f TransportFunc) Post(ctx context.Context, body []byte) ([]byte, error) {
	return f(ctx, body)
}
