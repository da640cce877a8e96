// Package config locates, loads and validates wandler configuration files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.trai.ch/wandler/internal/adapters/shell"
	"go.trai.ch/wandler/internal/core/domain"
	"go.trai.ch/wandler/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const mergeTag = "!!merge"

// Loader implements ports.ConfigLoader for YAML files.
type Loader struct {
	fs     FileSystem
	logger ports.Logger
}

// NewLoader creates a Loader backed by the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		fs:     NewOSFS(),
		logger: logger,
	}
}

// WithFileSystem replaces the filesystem the loader reads from.
func (l *Loader) WithFileSystem(fsys FileSystem) *Loader {
	l.fs = fsys
	return l
}

// Load reads the configuration file at path.
// The content is parsed into a node tree first and only then validated and
// converted, so a failure in either phase yields no Configuration at all.
func (l *Loader) Load(path string) (*domain.Configuration, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, readFailure(path, err)
	}

	root, err := parseDocument(data)
	if err != nil {
		return nil, parseFailure(path, err)
	}

	var tree any
	if root.Kind != 0 {
		if err := root.Decode(&tree); err != nil {
			return nil, parseFailure(path, err)
		}
	}

	if err := validateTree(tree); err != nil {
		return nil, invalidContent(path, err)
	}

	cfg, err := buildConfiguration(root)
	if err != nil {
		return nil, invalidContent(path, err)
	}

	l.logger.Debug(fmt.Sprintf("loaded %d task(s) from %s", cfg.Len(), path))
	return cfg, nil
}

// parseDocument decodes data into a single YAML document node.
// An empty stream yields a zero node.
func parseDocument(data []byte) (*yaml.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return &root, nil
		}
		return nil, err
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return &root, nil
	case err != nil:
		return nil, err
	default:
		return nil, zerr.New("expected a single document in the stream")
	}
}

// buildConfiguration extracts the tasks in declaration order.
// The node tree must already have passed schema validation.
func buildConfiguration(root *yaml.Node) (*domain.Configuration, error) {
	doc := resolve(root)
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = resolve(doc.Content[0])
	}

	tasksNode := lookup(doc, "tasks")
	if tasksNode == nil {
		return nil, zerr.New("missing 'tasks' mapping")
	}

	tasks := make([]domain.Task, 0, len(tasksNode.Content)/2)
	for i := 0; i+1 < len(tasksNode.Content); i += 2 {
		key := resolve(tasksNode.Content[i])
		if key.Tag == mergeTag {
			return nil, zerr.With(zerr.New("merge keys are not supported in 'tasks'"), "line", key.Line)
		}
		name := key.Value

		var dto TaskDTO
		if err := resolve(tasksNode.Content[i+1]).Decode(&dto); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "task '"+name+"'"), "task", name)
		}

		if _, err := shell.Split(dto.Command); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "task '"+name+"'"), "task", name)
		}

		task := domain.Task{Name: name, Command: dto.Command}
		if dto.Description != nil {
			task.Description = *dto.Description
		}
		tasks = append(tasks, task)
	}

	return domain.NewConfiguration(tasks...)
}

// lookup returns the value node of key in a mapping node.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if resolve(mapping.Content[i]).Value == key {
			value := resolve(mapping.Content[i+1])
			if value.Kind != yaml.MappingNode {
				return nil
			}
			return value
		}
	}
	return nil
}

// resolve follows alias nodes to their anchors.
func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func readFailure(path string, err error) error {
	err = zerr.With(zerr.Wrap(err, "error reading file "+path), "path", path)
	return domain.Classify(domain.ErrConfigReadFailed, err)
}

func parseFailure(path string, err error) error {
	err = zerr.With(zerr.Wrap(err, "'"+path+"' is not valid YAML"), "path", path)
	return domain.Classify(domain.ErrConfigParseFailed, err)
}

func invalidContent(path string, err error) error {
	err = zerr.With(zerr.Wrap(err, "'"+path+"' has invalid content"), "path", path)
	return domain.Classify(domain.ErrConfigInvalid, err)
}
