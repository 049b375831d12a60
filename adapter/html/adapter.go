package html

import (
	"go.uber.org/zap"
)

type Adapter struct {
	stylesheet string
	logger     *zap.Logger
}

type Option func(*Adapter)

func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

// WithStylesheet replaces the CSS embedded in the document head.
func WithStylesheet(css string) Option {
	return func(a *Adapter) {
		a.stylesheet = css
	}
}

const (
	extension         = ".html"
	defaultStylesheet = `body { font-family: "Times New Roman", Times, serif; max-width: 48em; margin: 2em auto; }
.generated { color: red; }`
)

func New(options ...Option) *Adapter {
	a := &Adapter{
		stylesheet: defaultStylesheet,
		logger:     zap.NewNop(),
	}

	for _, o := range options {
		o(a)
	}

	a.logger.Sugar().Info("init html adapter")

	return a
}

func (a *Adapter) Extension() string {
	return extension
}
