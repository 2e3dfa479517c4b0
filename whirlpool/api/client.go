package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/krazyTry/orca-go/whirlpool/shared"
)

const (
	mainnetURL = "https://api.mainnet.orca.so"
	devnetURL  = "https://api.devnet.orca.so"

	whirlpoolListPath = "/v1/whirlpool/list"

	defaultTimeout = 30 * time.Second
)

// BaseURL returns the Orca API endpoint of cluster.
func BaseURL(cluster shared.Cluster) string {
	if cluster == shared.ClusterDevnet {
		return devnetURL
	}
	return mainnetURL
}

// Observer is notified after every API request.
type Observer interface {
	ObserveRequest(method string, err error, elapsed time.Duration)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
	observer   Observer
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLimiter throttles requests; the limiter may be shared with other clients.
func WithLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	}
}

func WithObserver(observer Observer) Option {
	return func(c *Client) {
		c.observer = observer
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		limiter:    rate.NewLimiter(rate.Inf, 0),
		logger:     zap.NewNop(),
	}
	for _, fn := range opts {
		fn(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListWhirlpools fetches every whirlpool known to the Orca API.
func (c *Client) ListWhirlpools(ctx context.Context) (list []Whirlpool, err error) {
	start := time.Now()
	defer func() {
		if c.observer != nil {
			c.observer.ObserveRequest("whirlpoolList", err, time.Since(start))
		}
	}()

	body, err := c.get(ctx, whirlpoolListPath)
	if err != nil {
		return nil, err
	}
	list, err = parseWhirlpoolList(body)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("fetched orca whirlpool list", zap.Int("count", len(list)), zap.Duration("elapsed", time.Since(start)))
	return list, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("orca api %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("orca api %s: read body: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("orca api %s: unexpected status %d: %s", path, resp.StatusCode, truncate(body, 256))
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

// FindWhirlpool returns the listing entry of address.
func FindWhirlpool(list []Whirlpool, address string) (*Whirlpool, error) {
	for i := range list {
		if list[i].Address.String() == address {
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", shared.ErrPoolNotFound, address)
}
