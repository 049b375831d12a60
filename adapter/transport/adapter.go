package transport

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Doer sends an HTTP request, *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Adapter struct {
	httpClient Doer
	userAgent  string
	logger     *zap.Logger
}

type Option func(*Adapter)

func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

func WithHttpClient(client Doer) Option {
	return func(a *Adapter) {
		a.httpClient = client
	}
}

func WithUserAgent(userAgent string) Option {
	return func(a *Adapter) {
		a.userAgent = userAgent
	}
}

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "gptzero-go"
)

func New(options ...Option) *Adapter {
	a := &Adapter{
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  defaultUserAgent,
		logger:     zap.NewNop(),
	}

	for _, o := range options {
		o(a)
	}

	a.logger.Sugar().With(
		"user agent", a.userAgent,
	).Info("init transport adapter")

	return a
}
