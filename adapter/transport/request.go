package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/RichardKnop/gptzero"
)

// StatusError is returned for responses with a non-success status code.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request failed: %s", e.Status)
	}
	return fmt.Sprintf("request failed: %s: %s", e.Status, e.Body)
}

func (e *StatusError) Unwrap() error {
	return gptzero.ErrRequestFailed
}

const (
	headerAPIKey    = "X-Api-Key"
	headerRequestID = "X-Request-Id"
	filesField      = "files"
)

// Do sends the request and decodes a successful JSON response into out.
// Failures are logged and returned, never swallowed.
func (a *Adapter) Do(ctx context.Context, req gptzero.Request, out any) error {
	requestID := uuid.Must(uuid.NewV4())
	logger := a.logger.With(
		zap.String("request_id", requestID.String()),
		zap.String("method", string(req.Method)),
		zap.String("url", req.URL),
	)

	respData, err := a.do(ctx, requestID, req)
	if err != nil {
		logger.Error("request failed", zap.Error(err))
		return err
	}

	if len(bytes.TrimSpace(respData)) == 0 {
		logger.Error("empty response body")
		return gptzero.ErrEmptyResponse
	}

	if err := json.Unmarshal(respData, out); err != nil {
		logger.Error("decoding response failed", zap.Error(err))
		return fmt.Errorf("%w: %w", gptzero.ErrMalformedResponse, err)
	}

	logger.Debug("request succeeded", zap.Int("response size", len(respData)))

	return nil
}

func (a *Adapter) do(ctx context.Context, requestID uuid.UUID, req gptzero.Request) ([]byte, error) {
	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	method := req.Method
	if method == "" {
		method = gptzero.MethodPost
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(method), req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %w", gptzero.ErrTransport, err)
	}

	accept := req.Headers.Accept
	if accept == "" {
		accept = gptzero.ContentTypeJSON
	}
	httpReq.Header.Set("Accept", accept)
	httpReq.Header.Set("User-Agent", a.userAgent)
	httpReq.Header.Set(headerRequestID, requestID.String())
	if req.Headers.APIKey != "" {
		httpReq.Header.Set(headerAPIKey, req.Headers.APIKey)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gptzero.ErrTransport, err)
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", gptzero.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(bytes.TrimSpace(respData)),
		}
	}

	return respData, nil
}

func encodeBody(req gptzero.Request) (io.Reader, string, error) {
	switch {
	case req.Text != nil && req.Files != nil:
		return nil, "", fmt.Errorf("%w: request has both a text and a file body", gptzero.ErrInvalidInput)
	case req.Text != nil:
		data, err := json.Marshal(req.Text)
		if err != nil {
			return nil, "", fmt.Errorf("%w: encoding body: %w", gptzero.ErrInvalidInput, err)
		}
		contentType := req.Headers.ContentType
		if contentType == "" {
			contentType = gptzero.ContentTypeJSON
		}
		return bytes.NewReader(data), contentType, nil
	case req.Files != nil:
		return encodeFiles(req.Files.Files)
	default:
		return nil, req.Headers.ContentType, nil
	}
}

// encodeFiles builds a multipart form with one "files" part per path. The
// content type carries the form boundary.
func encodeFiles(paths []string) (io.Reader, string, error) {
	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)

	for _, path := range paths {
		if err := writeFilePart(writer, path); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("%w: closing form: %w", gptzero.ErrInvalidInput, err)
	}

	return buf, writer.FormDataContentType(), nil
}

func writeFilePart(writer *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: file %s does not exist", gptzero.ErrInvalidInput, path)
		}
		return fmt.Errorf("%w: opening %s: %w", gptzero.ErrInvalidInput, path, err)
	}
	defer f.Close()

	part, err := writer.CreateFormFile(filesField, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("%w: creating form file: %w", gptzero.ErrInvalidInput, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("%w: copying %s: %w", gptzero.ErrInvalidInput, path, err)
	}

	return nil
}
