package catalog

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/corn12138/lowcode/internal/components"
	"github.com/corn12138/lowcode/internal/schema"
	lcerrors "github.com/corn12138/lowcode/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// File is a catalog declared in YAML. Entries render as plain HTML elements,
// so a file can add new placeable types without code.
type File struct {
	Version    string      `yaml:"version"`
	Components []FileEntry `yaml:"components"`
}

// FileEntry is one declared component. Element picks the HTML tag it renders.
type FileEntry struct {
	Registration `yaml:",inline"`
	Element      ElementSpec `yaml:"element"`
}

// ElementSpec describes the HTML element a file entry renders.
type ElementSpec struct {
	Tag  string `json:"tag" yaml:"tag" validate:"required,alphanum,lowercase"`
	Void bool   `json:"void" yaml:"void"`
}

// LoadFile reads and decodes a YAML catalog file.
func LoadFile(path string) ([]Registration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lcerrors.NewParseError(path, 0, err)
	}
	return Decode(path, data)
}

// Decode parses a YAML catalog into registrations bound to HTMLElement.
// Registrations are returned in file order and are not validated here; the
// store validates them when it is built.
func Decode(name string, data []byte) ([]Registration, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, lcerrors.NewParseError(name, extractLine(err), err)
	}

	out := make([]Registration, 0, len(file.Components))
	for i, entry := range file.Components {
		if err := schema.Validator().Struct(entry.Element); err != nil {
			return nil, schema.ConvertError(fmt.Sprintf("components[%d].element", i), err)
		}

		reg := entry.Registration
		reg.Component = components.NewHTMLElement(entry.Element.Tag, entry.Element.Void)
		if reg.PropSchema.IsZero() {
			reg.PropSchema = schema.Object(nil)
		}
		if reg.DefaultProps == nil {
			reg.DefaultProps = map[string]any{}
		}
		if reg.DefaultStyle == nil {
			reg.DefaultStyle = map[string]any{}
		}
		out = append(out, reg)
	}

	return out, nil
}

func extractLine(err error) int {
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
