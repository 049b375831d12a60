package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/RichardKnop/gptzero"
)

// TextClient submits a single text to the text prediction endpoint.
type TextClient struct {
	client
}

func NewTextClient(apiKey string, options ...Option) *TextClient {
	return &TextClient{client: newClient(apiKey, options...)}
}

// GetRaw returns the API response for text.
func (c *TextClient) GetRaw(ctx context.Context, text string) (*gptzero.Response, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is empty", gptzero.ErrInvalidInput)
	}

	url, err := c.endpoint("text")
	if err != nil {
		return nil, fmt.Errorf("%w: building url: %w", gptzero.ErrInvalidInput, err)
	}

	c.logger.Sugar().With("url", url, "length", len(text)).Debug("submitting text")

	resp, err := c.post(ctx, gptzero.Request{
		URL:     url,
		Method:  gptzero.MethodPost,
		Headers: c.headers(gptzero.ContentTypeJSON),
		Text:    &gptzero.TextBody{Document: text},
	})
	if err != nil {
		return nil, fmt.Errorf("predicting text: %w", err)
	}

	return resp, nil
}

// GetPDFResult runs GetRaw and writes a report for the first document to
// filename. An empty filename gets a timestamp based default. The raw
// response is returned.
func (c *TextClient) GetPDFResult(ctx context.Context, text, filename string) (*gptzero.Response, error) {
	if filename == "" {
		filename = gptzero.DefaultReportName(c.now(), c.renderer.Extension())
	}

	resp, err := c.GetRaw(ctx, text)
	if err != nil {
		return nil, err
	}

	if len(resp.Documents) == 0 {
		return nil, fmt.Errorf("%w: response has no documents", gptzero.ErrMalformedResponse)
	}

	report, err := c.renderReport(resp.Documents[0], filename)
	if err != nil {
		return nil, err
	}
	if err := c.writeReports(report); err != nil {
		return nil, err
	}

	return resp, nil
}
