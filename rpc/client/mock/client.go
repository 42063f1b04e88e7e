package mock

/*
package mock returns a Client implementation that
accepts various (mock) implementations of the various methods,
and a node Transport answering actions with canned replies.

This implementation is useful for using in tests, when you don't
need a real node, but want a high-level of control about
the replies you want to mock (eg. error handling),
or if you just want to record the calls to verify in your tests.

For real clients, you probably want the "http" package.
*/

import (
	"reflect"

	"github.com/nanorpc/nanorpc/rpc/client"
)

// Client wraps arbitrary implementations of the various interfaces.
//
// We provide a few choices to mock out each one in this package.
// Nothing hidden here, so no New function, just construct it from
// some parts, and swap them out them during the tests.
type Client struct {
	client.AccountsClient
	client.ConversionClient
	client.ReceiveClient
	client.RepresentativesClient
	client.SendClient
}

var _ client.Client = Client{}

// Call is used by recorders to save a call and response.
// It can also be used to configure mock responses.
type Call struct {
	Name     string
	Args     any
	Response any
	Error    error
}

// GetResponse will generate the appropriate response for us, when
// using the Call struct to configure a Mock handler.
//
// When configuring a response, if only one of Response or Error is
// set then that will always be returned. If both are set, then
// we return Response if the Args match the set args, Error otherwise.
func (c Call) GetResponse(args any) (any, error) {
	// handle the case with no response
	if c.Response == nil {
		if c.Error == nil {
			panic("Misconfigured call, you must set either Response or Error")
		}
		return nil, c.Error
	}
	// response without error
	if c.Error == nil {
		return c.Response, nil
	}
	// have both, we must check args....
	if reflect.DeepEqual(args, c.Args) {
		return c.Response, nil
	}
	return nil, c.Error
}
