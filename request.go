package gptzero

type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

const (
	ContentTypeJSON      = "application/json"
	ContentTypeMultipart = "multipart/form-data"
)

// Headers enumerates the request headers the API understands.
type Headers struct {
	APIKey      string // sent as X-Api-Key
	ContentType string
	Accept      string
}

// TextBody is sent as {"document": "..."}.
type TextBody struct {
	Document string `json:"document"`
}

// FileBody lists paths of files attached under the repeated "files" form field.
type FileBody struct {
	Files []string
}

// Request describes a single API call. At most one of Text and Files is set.
type Request struct {
	URL     string
	Method  Method
	Headers Headers
	Text    *TextBody
	Files   *FileBody
}
