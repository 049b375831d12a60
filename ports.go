package gptzero

import (
	"context"
	"io"
)

// Transport performs one API request and decodes the JSON response into out.
type Transport interface {
	Do(ctx context.Context, req Request, out any) error
}

// Renderer paints a report into a document format.
type Renderer interface {
	Render(w io.Writer, report *Report) error
	Extension() string
}

// ReportStorage persists rendered reports.
type ReportStorage interface {
	Write(filename string, data io.Reader) error
	Exists(filename string) (bool, error)
	Read(filename string) (io.ReadSeekCloser, error)
	Delete(filename string) error
}
