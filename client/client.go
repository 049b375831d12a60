package client

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/a-h/jsonapi"
	"go.uber.org/zap"

	"github.com/RichardKnop/gptzero"
	"github.com/RichardKnop/gptzero/adapter/filestorage"
	"github.com/RichardKnop/gptzero/adapter/pdf"
	"github.com/RichardKnop/gptzero/adapter/transport"
)

const DefaultBaseURL = "https://api.gptzero.me/v2/predict"

type clock func() time.Time

type client struct {
	apiKey    string
	baseURL   string
	transport gptzero.Transport
	renderer  gptzero.Renderer
	storage   gptzero.ReportStorage
	logger    *zap.Logger
	now       clock
}

type Option func(*client)

func WithBaseURL(url string) Option {
	return func(c *client) {
		c.baseURL = url
	}
}

func WithTransport(t gptzero.Transport) Option {
	return func(c *client) {
		c.transport = t
	}
}

func WithRenderer(r gptzero.Renderer) Option {
	return func(c *client) {
		c.renderer = r
	}
}

func WithStorage(s gptzero.ReportStorage) Option {
	return func(c *client) {
		c.storage = s
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *client) {
		c.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *client) {
		c.now = now
	}
}

func newClient(apiKey string, options ...Option) client {
	c := client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		logger:  zap.NewNop(),
		now:     time.Now,
	}

	for _, o := range options {
		o(&c)
	}

	if c.transport == nil {
		c.transport = transport.New(transport.WithLogger(c.logger))
	}
	if c.renderer == nil {
		c.renderer = pdf.New(pdf.WithLogger(c.logger))
	}

	return c
}

func (c *client) endpoint(path string) (string, error) {
	return jsonapi.URL(c.baseURL).Path(path).String()
}

func (c *client) headers(contentType string) gptzero.Headers {
	return gptzero.Headers{
		APIKey:      c.apiKey,
		ContentType: contentType,
		Accept:      gptzero.ContentTypeJSON,
	}
}

// reportStorage lazily falls back to the working directory so that clients
// only calling GetRaw never touch the file system.
func (c *client) reportStorage() (gptzero.ReportStorage, error) {
	if c.storage != nil {
		return c.storage, nil
	}
	return filestorage.New(filestorage.WithLogger(c.logger))
}

type renderedReport struct {
	filename string
	data     *bytes.Buffer
	notes    int
}

// renderReport builds and renders one document prediction in memory.
func (c *client) renderReport(prediction gptzero.DocumentPrediction, filename string) (renderedReport, error) {
	report, err := gptzero.NewReport(prediction)
	if err != nil {
		return renderedReport{}, fmt.Errorf("building report: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := c.renderer.Render(buf, report); err != nil {
		return renderedReport{}, fmt.Errorf("rendering report: %w", err)
	}

	return renderedReport{
		filename: filename,
		data:     buf,
		notes:    len(report.Notes),
	}, nil
}

// writeReports stores already rendered reports, so a bad document never
// leaves the reports of its batch behind.
func (c *client) writeReports(reports ...renderedReport) error {
	storage, err := c.reportStorage()
	if err != nil {
		return fmt.Errorf("opening report storage: %w", err)
	}

	for _, report := range reports {
		if err := storage.Write(report.filename, report.data); err != nil {
			return fmt.Errorf("writing report %s: %w", report.filename, err)
		}

		c.logger.Sugar().With(
			"file", report.filename,
			"notes", report.notes,
		).Info("saved report")
	}

	return nil
}

func (c *client) post(ctx context.Context, req gptzero.Request) (*gptzero.Response, error) {
	var resp *gptzero.Response
	if err := c.transport.Do(ctx, req, &resp); err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, gptzero.ErrEmptyResponse
	}
	return resp, nil
}
