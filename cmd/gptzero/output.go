package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/RichardKnop/gptzero"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func printResponse(w io.Writer, resp *gptzero.Response, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// readText picks the text to check: the argument, then the file, then stdin.
func readText(arg, path string, stdin io.Reader) (string, error) {
	if arg != "" {
		return arg, nil
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%w: no text given", gptzero.ErrInvalidInput)
	}
	return string(data), nil
}
