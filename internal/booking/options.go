package booking

import (
	"net/http"
	"strings"
	"time"

	logx "onepaslots/pkg/logx"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

type Option func(*options)

type options struct {
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	log        logx.Logger
}

func newOptions() *options {
	return &options{
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
		log:       logx.Nop(),
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(o *options) {
		if ua = strings.TrimSpace(ua); ua != "" {
			o.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}

func WithLogger(log logx.Logger) Option {
	return func(o *options) {
		if !log.IsZero() {
			o.log = log
		}
	}
}
