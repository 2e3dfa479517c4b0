package whirlpool

import (
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/krazyTry/orca-go/whirlpool/api"
	"github.com/krazyTry/orca-go/whirlpool/helpers"
	"github.com/krazyTry/orca-go/whirlpool/shared"
)

// Whirlpool reads Orca whirlpool state and computes quotes and yields from it.
// It is safe for concurrent use.
type Whirlpool struct {
	rpcClient  RPCClient
	apiClient  *api.Client
	programID  solana.PublicKey
	commitment rpc.CommitmentType
	logger     *zap.Logger
	metrics    *Metrics

	cluster    shared.Cluster
	apiURL     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewWhirlpool(
	rpcClient RPCClient,
	opts ...Option,
) *Whirlpool {
	o := &Whirlpool{
		programID:  helpers.WhirlpoolProgramID,
		commitment: rpc.CommitmentConfirmed,
		logger:     zap.NewNop(),
		cluster:    shared.ClusterMainnetBeta,
		limiter:    rate.NewLimiter(rate.Inf, 0),
	}
	for _, fn := range opts {
		fn(o)
	}

	o.rpcClient = &instrumentedRPC{next: rpcClient, limiter: o.limiter, metrics: o.metrics}

	apiURL := o.apiURL
	if apiURL == "" {
		apiURL = api.BaseURL(o.cluster)
	}
	apiOpts := []api.Option{api.WithLimiter(o.limiter), api.WithLogger(o.logger)}
	if o.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(o.httpClient))
	}
	if o.metrics != nil {
		apiOpts = append(apiOpts, api.WithObserver(o.metrics))
	}
	o.apiClient = api.NewClient(apiURL, apiOpts...)
	return o
}

type Option func(*Whirlpool)

// WithCluster selects the Orca API of cluster, mainnet-beta by default.
func WithCluster(cluster shared.Cluster) Option {
	return func(w *Whirlpool) {
		w.cluster = cluster
	}
}

func WithProgramID(programID solana.PublicKey) Option {
	return func(w *Whirlpool) {
		w.programID = programID
	}
}

func WithCommitment(commitment rpc.CommitmentType) Option {
	return func(w *Whirlpool) {
		w.commitment = commitment
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(w *Whirlpool) {
		if logger == nil {
			logger = zap.NewNop()
		}
		w.logger = logger
	}
}

// WithRateLimit caps RPC and Orca API requests to rps per second, shared across both.
func WithRateLimit(rps float64, burst int) Option {
	return func(w *Whirlpool) {
		w.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithMetrics registers the client collectors with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(w *Whirlpool) {
		w.metrics = NewMetrics(reg)
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(w *Whirlpool) {
		w.httpClient = httpClient
	}
}

// WithAPIURL overrides the Orca API base URL picked from the cluster.
func WithAPIURL(url string) Option {
	return func(w *Whirlpool) {
		w.apiURL = url
	}
}

// API returns the Orca REST client used for whirlpool listings.
func (w *Whirlpool) API() *api.Client {
	return w.apiClient
}
