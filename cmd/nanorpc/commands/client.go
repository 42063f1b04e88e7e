package commands

import (
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	cfg "github.com/nanorpc/nanorpc/config"
	"github.com/nanorpc/nanorpc/libs/log"
	"github.com/nanorpc/nanorpc/rpc/client"
	rpchttp "github.com/nanorpc/nanorpc/rpc/client/http"
	jsonrpcclient "github.com/nanorpc/nanorpc/rpc/jsonrpc/client"
)

var (
	metricsOnce sync.Once
	metrics     *jsonrpcclient.Metrics
)

// NewClient builds the node client used by every command. Tests replace it.
var NewClient = func(conf *cfg.Config, logger log.Logger) (client.Client, error) {
	opts := []jsonrpcclient.CallerOption{
		jsonrpcclient.WithLogger(logger.With("module", "rpc")),
	}
	if conf.Instrumentation.Prometheus {
		metricsOnce.Do(func() {
			metrics = jsonrpcclient.PrometheusMetrics(conf.Instrumentation.Namespace)
		})
		opts = append(opts, jsonrpcclient.WithMetrics(metrics))
	}

	c, err := rpchttp.NewWithTimeout(conf.RPC.Address, conf.RPC.Timeout, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create client")
	}
	return c, nil
}

// writeMetrics prints the metric families of namespace in the Prometheus
// text format.
func writeMetrics(w io.Writer, namespace string) error {
	mfs, err := stdprometheus.DefaultGatherer.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range mfs {
		if !strings.HasPrefix(mf.GetName(), namespace+"_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}
