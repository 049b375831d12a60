package pdf

import (
	"go.uber.org/zap"
)

type Adapter struct {
	pageSize   string
	fontFamily string
	creator    string
	logger     *zap.Logger
}

type Option func(*Adapter)

func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

// WithPageSize sets the paper size, e.g. "A4" or "Letter".
func WithPageSize(size string) Option {
	return func(a *Adapter) {
		a.pageSize = size
	}
}

// WithFontFamily sets one of the core font families: "Times", "Helvetica" or "Courier".
func WithFontFamily(family string) Option {
	return func(a *Adapter) {
		a.fontFamily = family
	}
}

// WithCreator sets the Creator entry of the document info, written as Latin-1.
func WithCreator(creator string) Option {
	return func(a *Adapter) {
		a.creator = creator
	}
}

const (
	defaultPageSize   = "A4"
	defaultFontFamily = "Times"
	defaultCreator    = "gptzero-go"
	extension         = ".pdf"
)

func New(options ...Option) *Adapter {
	a := &Adapter{
		pageSize:   defaultPageSize,
		fontFamily: defaultFontFamily,
		creator:    defaultCreator,
		logger:     zap.NewNop(),
	}

	for _, o := range options {
		o(a)
	}

	a.logger.Sugar().With(
		"page size", a.pageSize,
		"font family", a.fontFamily,
	).Info("init pdf adapter")

	return a
}

func (a *Adapter) Extension() string {
	return extension
}
