package client

import (
	"context"
	"fmt"
	"time"

	"github.com/RichardKnop/gptzero"
)

// FileClient submits files to the file prediction endpoint. The API answers
// with one document prediction per file, in submission order.
type FileClient struct {
	client
}

func NewFileClient(apiKey string, options ...Option) *FileClient {
	return &FileClient{client: newClient(apiKey, options...)}
}

// GetRaw returns the API response for files.
func (c *FileClient) GetRaw(ctx context.Context, files []string) (*gptzero.Response, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files", gptzero.ErrInvalidInput)
	}

	url, err := c.endpoint("files")
	if err != nil {
		return nil, fmt.Errorf("%w: building url: %w", gptzero.ErrInvalidInput, err)
	}

	c.logger.Sugar().With("url", url, "files", files).Debug("submitting files")

	resp, err := c.post(ctx, gptzero.Request{
		URL:     url,
		Method:  gptzero.MethodPost,
		Headers: c.headers(gptzero.ContentTypeMultipart),
		Files:   &gptzero.FileBody{Files: files},
	})
	if err != nil {
		return nil, fmt.Errorf("predicting files: %w", err)
	}

	if len(resp.Documents) != len(files) {
		return nil, fmt.Errorf("%w: got %d documents for %d files", gptzero.ErrMalformedResponse, len(resp.Documents), len(files))
	}

	return resp, nil
}

// GetPDFResult runs GetRaw and writes one report per file. filenames[i]
// names the report of files[i]; missing or empty names get a timestamp based
// default, unique within the call. Every report is rendered before the first
// one is written. The full response is returned.
func (c *FileClient) GetPDFResult(ctx context.Context, files, filenames []string) (*gptzero.Response, error) {
	resp, err := c.GetRaw(ctx, files)
	if err != nil {
		return nil, err
	}

	now := c.now()
	reports := make([]renderedReport, 0, len(files))
	for i := range files {
		filename := ""
		if i < len(filenames) {
			filename = filenames[i]
		}
		if filename == "" {
			filename = gptzero.DefaultReportName(now.Add(time.Duration(i)*time.Millisecond), c.renderer.Extension())
		}

		report, err := c.renderReport(resp.Documents[i], filename)
		if err != nil {
			return nil, fmt.Errorf("file %s: %w", files[i], err)
		}
		reports = append(reports, report)
	}

	if err := c.writeReports(reports...); err != nil {
		return nil, err
	}

	return resp, nil
}
