package http

import (
	"context"

	ctypes "github.com/nanorpc/nanorpc/rpc/core/types"
	"github.com/nanorpc/nanorpc/rpc/jsonrpc/types"
)

// Denominations relative to raw: 1 Mrai = 10^30 raw, 1 krai = 10^27 raw,
// 1 rai = 10^24 raw.
const (
	unitMrai = "mrai"
	unitKrai = "krai"
	unitRai  = "rai"
)

func (c *HTTP) convert(ctx context.Context, action, amount string) (string, error) {
	result, err := call[ctypes.ResultAmount](ctx, c, types.Action(action).
		Param("amount", amount))
	if err != nil {
		return "", err
	}
	return result.Amount, nil
}

func (c *HTTP) MraiFromRaw(ctx context.Context, amount string) (string, error) {
	return c.convert(ctx, unitMrai+"_from_raw", amount)
}

func (c *HTTP) MraiToRaw(ctx context.Context, amount string) (string, error) {
	return c.convert(ctx, unitMrai+"_to_raw", amount)
}

func (c *HTTP) KraiFromRaw(ctx context.Context, amount string) (string, error) {
	return c.convert(ctx, unitKrai+"_from_raw", amount)
}

func (c *HTTP) KraiToRaw(ctx context.Context, amount string) (string, error) {
	return c.convert(ctx, unitKrai+"_to_raw", amount)
}

func (c *HTTP) RaiFromRaw(ctx context.Context, amount string) (string, error) {
	return c.convert(ctx, unitRai+"_from_raw", amount)
}

func (c *HTTP) RaiToRaw(ctx context.Context, amount string) (string, error) {
	return c.convert(ctx, unitRai+"_to_raw", amount)
}
