package smartfinance

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
)

// DefaultLookback is the transaction history window fetched for analysis.
// The detectors need at most three calendar months of data.
const DefaultLookback = 90 * 24 * time.Hour

// Client is the top-level entry point: a small facade over the stateless
// analysis functions plus the data and oracle boundaries. It retains no
// mutable state between calls, so one Client may serve concurrent requests
// without coordination.
type Client struct {
	Data      DataService
	Insights  InsightService
	Health    HealthService
	Dashboard DashboardService

	options *ClientOptions
	logger  zerolog.Logger
	now     func() time.Time
}

// ClientOptions configures the client.
type ClientOptions struct {
	// Provider supplies live account and transaction data. When nil, the
	// deterministic sample snapshot is used instead.
	Provider DataProvider

	// Oracle delegates insight generation to an external scorer. When nil,
	// the local engine runs.
	Oracle Oracle

	// Lookback bounds the transaction history fetched for analysis.
	Lookback time.Duration

	// MaxInsights caps the ranked insight feed.
	MaxInsights int

	// Logger for structured logging.
	Logger *zerolog.Logger

	// Clock overrides the reference time, mainly for tests.
	Clock func() time.Time

	// SentryDSN enables Sentry error tracking when set.
	SentryDSN string

	// SentryOptions allows custom Sentry configuration.
	SentryOptions *sentry.ClientOptions
}

// NewClient creates a new SmartFinance client.
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}
		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}
		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}
		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}
		if err := sentry.Init(sentryOpts); err != nil && opts.Logger != nil {
			opts.Logger.Error().Err(err).Msg("failed to initialize Sentry")
		}
	}

	if opts.Lookback <= 0 {
		opts.Lookback = DefaultLookback
	}
	if opts.MaxInsights <= 0 {
		opts.MaxInsights = MaxDashboardInsights
	}

	c := &Client{
		options: opts,
		logger:  zerolog.Nop(),
		now:     time.Now,
	}
	if opts.Logger != nil {
		c.logger = *opts.Logger
	}
	if opts.Clock != nil {
		c.now = opts.Clock
	}

	c.initServices()
	return c, nil
}

// initServices wires the service implementations.
func (c *Client) initServices() {
	c.Data = &dataService{client: c}
	c.Insights = &insightService{client: c}
	c.Health = &healthService{client: c}
	c.Dashboard = &dashboardService{client: c}
}

// Close flushes any pending Sentry events.
func (c *Client) Close() {
	sentry.Flush(2 * time.Second)
}
