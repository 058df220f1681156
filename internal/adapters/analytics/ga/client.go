// Package ga answers report queries with the Google Analytics 4 Data API
package ga

import (
	"context"
	stderrs "errors"
	"net"
	"net/http"
	"strings"
	"time"

	"gadash/internal/core/report"
	perr "gadash/internal/platform/errors"
	"gadash/internal/platform/logger"

	"golang.org/x/sync/semaphore"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	defaultTimeout     = 20 * time.Second
	defaultMaxRetry    = 3
	defaultRetryBase   = 250 * time.Millisecond
	defaultConcurrency = 10
	maxBackoff         = 10 * time.Second
)

// Options configures the Client
type Options struct {
	PropertyID string

	// CredentialsJSON wins over KeyFile; with neither, application default credentials are used
	CredentialsJSON []byte
	KeyFile         string

	// Endpoint and HTTPClient override transport, mostly for tests and egress proxies
	// a custom HTTPClient is used as is, without adding credentials
	Endpoint   string
	HTTPClient *http.Client

	Timeout        time.Duration
	MaxRetries     int
	RetryBase      time.Duration
	MaxConcurrency int
}

// Client is a report.Client over the Data API with bounded concurrency and retries
// for rate limited and transient responses
type Client struct {
	svc      *analyticsdata.Service
	property string
	opts     Options
	sem      *semaphore.Weighted
	log      logger.Logger
	sleep    func(context.Context, time.Duration) error
}

var _ report.Client = (*Client)(nil)

// New builds the process-wide client handle
func New(ctx context.Context, o Options) (*Client, error) {
	o.PropertyID = strings.TrimPrefix(strings.TrimSpace(o.PropertyID), "properties/")
	if o.PropertyID == "" {
		return nil, perr.Newf(perr.ErrorCodeValidation, "ga: property id is required")
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	} else if o.MaxRetries == 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	if o.MaxConcurrency <= 0 {
		o.MaxConcurrency = defaultConcurrency
	}

	var copts []option.ClientOption
	switch {
	case o.HTTPClient != nil:
		copts = append(copts, option.WithHTTPClient(o.HTTPClient))
	case len(o.CredentialsJSON) > 0:
		copts = append(copts, option.WithCredentialsJSON(o.CredentialsJSON))
	case o.KeyFile != "":
		copts = append(copts, option.WithCredentialsFile(o.KeyFile))
	}
	if o.Endpoint != "" {
		copts = append(copts, option.WithEndpoint(o.Endpoint))
	}

	svc, err := analyticsdata.NewService(ctx, copts...)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeBadGateway, "ga: init data api client")
	}

	return &Client{
		svc:      svc,
		property: "properties/" + o.PropertyID,
		opts:     o,
		sem:      semaphore.NewWeighted(int64(o.MaxConcurrency)),
		log:      *logger.Named("ga"),
		sleep:    sleepCtx,
	}, nil
}

// RunReport executes one report, retrying quota and transient failures with backoff
func (c *Client) RunReport(ctx context.Context, req report.Request) ([]report.Row, error) {
	if err := req.Validate(); err != nil {
		return nil, report.NewError(report.KindInvalid, req.Name, err)
	}
	body, err := toAPI(req)
	if err != nil {
		return nil, report.NewError(report.KindInvalid, req.Name, err)
	}

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, report.NewError(report.KindTransient, req.Name, err)
	}
	defer c.sem.Release(1)

	for attempt := 0; ; attempt++ {
		actx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
		resp, err := c.svc.Properties.RunReport(c.property, body).Context(actx).Do()
		cancel()
		if err == nil {
			return fromAPI(req, resp), nil
		}

		kind := classify(err)
		if ctx.Err() != nil || attempt >= c.opts.MaxRetries || (kind != report.KindQuota && kind != report.KindTransient) {
			return nil, report.NewError(kind, req.Name, err)
		}
		wait := c.backoff(attempt)
		c.log.Warn().
			Str("report", req.Name).
			Str("kind", kind.String()).
			Int("attempt", attempt).
			Dur("retry_in", wait).
			Err(err).
			Msg("ga report retrying")
		if serr := c.sleep(ctx, wait); serr != nil {
			return nil, report.NewError(report.KindTransient, req.Name, serr)
		}
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase << uint(attempt)
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}
	return d
}

// classify maps a Data API failure onto a report kind
// the API answers 400 for dimensions or metrics this property does not have
func classify(err error) report.Kind {
	if stderrs.Is(err, context.DeadlineExceeded) || stderrs.Is(err, context.Canceled) {
		return report.KindTransient
	}
	var gerr *googleapi.Error
	if stderrs.As(err, &gerr) {
		return report.KindOf(perr.FromHTTPStatus(gerr.Code, gerr.Message))
	}
	var nerr net.Error
	if stderrs.As(err, &nerr) {
		return report.KindTransient
	}
	return report.KindUnknown
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
