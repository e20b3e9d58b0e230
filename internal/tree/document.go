package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	lcerrors "github.com/corn12138/lowcode/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Format selects the document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Document is a persisted page: a title plus the root of its instance tree.
type Document struct {
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	Root    *Node  `json:"root" yaml:"root"`
}

// FormatForPath infers the encoding from a file extension. Anything that is
// not .json is treated as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// LoadDocument reads and decodes a page document from disk.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lcerrors.NewParseError(path, 0, err)
	}
	return DecodeDocument(path, data, FormatForPath(path))
}

// DecodeDocument decodes a page document. name is used only in error messages.
func DecodeDocument(name string, data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, lcerrors.NewParseError(name, jsonLine(data, err), err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, lcerrors.NewParseError(name, extractLine(err), err)
		}
	}

	if doc.Root == nil {
		return nil, lcerrors.NewValidationError("root", "document has no root node", nil)
	}
	return &doc, nil
}

// Encode serializes the document in the requested format.
func (d *Document) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(d, "", "  ")
	case FormatYAML:
		return yaml.Marshal(d)
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}

func jsonLine(data []byte, err error) int {
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return 0
	}
	offset := int(syntaxErr.Offset)
	if offset > len(data) {
		offset = len(data)
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
