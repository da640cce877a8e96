package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.trai.ch/zerr"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SchemaURL identifies the embedded configuration schema.
const SchemaURL = "https://go.trai.ch/wandler/wandler.schema.json"

//go:embed wandler.schema.json
var schemaJSON []byte

var (
	configSchema *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error
	printer      = message.NewPrinter(language.English)
)

// TaskDTO represents a task definition in the configuration.
// The tasks mapping itself is read from the node tree to keep declaration order.
type TaskDTO struct {
	Command     string  `yaml:"command"`
	Description *string `yaml:"description,omitempty"`
}

// compileSchema compiles the embedded schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = zerr.Wrap(err, "unmarshal config schema")
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(SchemaURL, doc); err != nil {
			compileErr = zerr.Wrap(err, "add config schema resource")
			return
		}

		configSchema, err = compiler.Compile(SchemaURL)
		if err != nil {
			compileErr = zerr.Wrap(err, "compile config schema")
		}
	})

	return compileErr
}

// validateTree checks an untyped YAML tree against the configuration schema.
func validateTree(tree any) error {
	if err := compileSchema(); err != nil {
		return err
	}

	normalized, err := normalize(tree)
	if err != nil {
		return err
	}

	// Round-trip through JSON so numbers reach the validator as json.Number.
	data, err := json.Marshal(normalized)
	if err != nil {
		return zerr.Wrap(err, "failed to convert configuration to JSON")
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return zerr.Wrap(err, "failed to convert configuration to JSON")
	}

	if err := configSchema.Validate(inst); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return zerr.New(describeViolations(verr))
		}
		return err
	}
	return nil
}

// describeViolations renders the leaf causes of a schema violation, one per line.
func describeViolations(verr *jsonschema.ValidationError) string {
	var lines []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			lines = append(lines, printer.Sprintf("at '%s': %s",
				"/"+strings.Join(e.InstanceLocation, "/"),
				e.ErrorKind.LocalizedString(printer)))
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(verr)

	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// normalize converts a decoded YAML tree into values encoding/json accepts.
// Mapping keys that are not strings are rendered with their literal text.
func normalize(v any) (any, error) {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(k)] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		return val, nil
	}
}
