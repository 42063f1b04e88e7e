package mock

import (
	"context"
	"fmt"

	cmtjson "github.com/nanorpc/nanorpc/libs/json"
	cmtsync "github.com/nanorpc/nanorpc/libs/sync"
	jsonrpcclient "github.com/nanorpc/nanorpc/rpc/jsonrpc/client"
	"github.com/nanorpc/nanorpc/rpc/jsonrpc/types"
)

// UnknownCommand is the reply of a node to an action it does not serve.
const UnknownCommand = `{"error":"Unknown command"}`

// Node is a Transport answering each action with the Call configured for it.
//
// The Call's Args are compared against the request parameters without
// "action", decoded into a map[string]any (numbers become float64).
// A Response may be a string or []byte holding the raw reply, or any value,
// which is encoded. A Call Error is returned as a transport failure.
//
// Calls may be filled before the node serves requests; afterwards use
// Set, Reply or Fail.
type Node struct {
	mtx   cmtsync.RWMutex
	Calls map[string]Call
}

var _ jsonrpcclient.Transport = (*Node)(nil)

// NewNode returns a node with no actions configured.
func NewNode() *Node {
	return &Node{Calls: make(map[string]Call)}
}

// Set configures the call answering action.
func (n *Node) Set(action string, call Call) *Node {
	call.Name = action
	n.mtx.Lock()
	n.Calls[action] = call
	n.mtx.Unlock()
	return n
}

// Reply configures a raw reply for action.
func (n *Node) Reply(action, reply string) *Node {
	return n.Set(action, Call{Response: reply})
}

// Fail makes every request for action fail with err, as a broken
// connection would.
func (n *Node) Fail(action string, err error) *Node {
	return n.Set(action, Call{Error: err})
}

func (n *Node) Post(_ context.Context, body []byte) ([]byte, error) {
	action, args, err := decodeRequest(body)
	if err != nil {
		return nil, err
	}
	n.mtx.RLock()
	call, ok := n.Calls[action]
	n.mtx.RUnlock()
	if !ok {
		return []byte(UnknownCommand), nil
	}
	res, err := call.GetResponse(args)
	if err != nil {
		return nil, err
	}
	switch r := res.(type) {
	case string:
		return []byte(r), nil
	case []byte:
		return r, nil
	default:
		return cmtjson.Marshal(r)
	}
}

// Recorder can wrap another transport and record all calls made through it.
// Name is the action, Args the parameters and Response the raw reply as a
// string. Calls is safe to read once every Post has returned.
type Recorder struct {
	Transport jsonrpcclient.Transport

	mtx   cmtsync.Mutex
	Calls []Call
}

var _ jsonrpcclient.Transport = (*Recorder)(nil)

func NewRecorder(transport jsonrpcclient.Transport) *Recorder {
	return &Recorder{Transport: transport}
}

func (r *Recorder) addCall(call Call) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.Calls = append(r.Calls, call)
}

func (r *Recorder) Post(ctx context.Context, body []byte) ([]byte, error) {
	reply, err := r.Transport.Post(ctx, body)
	call := Call{Error: err}
	action, args, derr := decodeRequest(body)
	if derr != nil {
		// keep the raw body so the malformed request can be inspected
		call.Args = string(body)
		if call.Error == nil {
			call.Error = derr
		}
	} else {
		call.Name, call.Args = action, args
	}
	if reply != nil {
		call.Response = string(reply)
	}
	r.addCall(call)
	return reply, err
}

func decodeRequest(body []byte) (string, map[string]any, error) {
	var params map[string]any
	if err := cmtjson.Unmarshal(body, &params); err != nil {
		return "", nil, fmt.Errorf("decode request: %w", err)
	}
	action, _ := params[types.ActionKey].(string)
	delete(params, types.ActionKey)
	return action, params, nil
}
