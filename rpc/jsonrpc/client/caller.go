package client

import (
	"context"
	"time"

	"github.com/nanorpc/nanorpc/internal/rpctrace"
	cmtjson "github.com/nanorpc/nanorpc/libs/json"
	"github.com/nanorpc/nanorpc/libs/log"
	"github.com/nanorpc/nanorpc/rpc/jsonrpc/types"
)

// maxLoggedBody caps how much of a reply is written to debug logs.
const maxLoggedBody = 512

// Caller holds everything needed to invoke actions on a node. It is
// immutable once built, so it is safe for concurrent use whenever its
// Transport is.
type Caller struct {
	transport Transport
	codec     cmtjson.Codec
	logger    log.Logger
	metrics   *Metrics
}

// CallerOption sets an optional parameter on the Caller.
type CallerOption func(*Caller)

// WithLogger sets the logger. Defaults to a nop logger.
func WithLogger(logger log.Logger) CallerOption {
	return func(c *Caller) { c.logger = logger }
}

// WithMetrics sets the metrics. Defaults to NopMetrics.
func WithMetrics(metrics *Metrics) CallerOption {
	return func(c *Caller) { c.metrics = metrics }
}

// WithCodec sets the codec used for requests and replies.
func WithCodec(codec cmtjson.Codec) CallerOption {
	return func(c *Caller) { c.codec = codec }
}

// NewCaller returns a Caller sending requests through transport.
// The function panics if transport is nil.
func NewCaller(transport Transport, opts ...CallerOption) *Caller {
	if transport == nil {
		panic("nil transport")
	}
	c := &Caller{
		transport: transport,
		codec:     cmtjson.Default(),
		logger:    log.NewNopLogger(),
		metrics:   NopMetrics(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Logger returns the caller's logger.
func (c *Caller) Logger() log.Logger {
	return c.logger
}

// Invoke sends req to the node and decodes the reply into a new T.
//
// Errors:
//   - ErrMarshalRequest if req cannot be encoded;
//   - ErrCommunication if the transport fails (never retried);
//   - ErrUnmarshalResponse if the reply is not the expected shape;
//   - ErrProtocol if the reply carries an error member.
//
// Every log line of one call carries the same "trace" id.
// On error the result is always nil.
func Invoke[T any](ctx context.Context, c *Caller, req types.Request) (*T, error) {
	action := req.Action()
	logger := c.logger.With("action", action, "trace", rpctrace.New())
	c.metrics.Requests.With("action", action).Add(1)
	defer func(start time.Time) {
		c.metrics.RequestDuration.With("action", action).Observe(time.Since(start).Seconds())
	}(time.Now())

	body, err := req.Encode(c.codec)
	if err != nil {
		return nil, c.fail(logger, action, errKindEncode, ErrMarshalRequest{Source: err})
	}

	logger.Debug("rpc request", "body", log.NewLazyBody(body, maxLoggedBody))

	reply, err := c.transport.Post(ctx, body)
	if err != nil {
		return nil, c.fail(logger, action, errKindCommunication, ErrCommunication{Source: err})
	}

	logger.Debug("rpc response", "body", log.NewLazyBody(reply, maxLoggedBody))

	var env types.Envelope
	if err := c.codec.Unmarshal(reply, &env); err != nil {
		return nil, c.fail(logger, action, errKindDecode, ErrUnmarshalResponse{Source: err, Description: "envelope"})
	}
	if env.Failed() {
		return nil, c.fail(logger, action, errKindProtocol, ErrProtocol{Message: env.Message()})
	}

	result := new(T)
	if err := c.codec.Unmarshal(reply, result); err != nil {
		return nil, c.fail(logger, action, errKindDecode, ErrUnmarshalResponse{Source: err, Description: action})
	}
	return result, nil
}

func (c *Caller) fail(logger log.Logger, action, kind string, err error) error {
	c.metrics.Errors.With("action", action, "kind", kind).Add(1)
	logger.Error("rpc failed", "kind", kind, "err", err)
	return err
}
