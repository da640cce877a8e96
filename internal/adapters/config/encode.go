package config

import (
	"go.trai.ch/wandler/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Encode renders cfg in the configuration file format, keeping task order.
// Empty descriptions are omitted.
func Encode(cfg *domain.Configuration) ([]byte, error) {
	tasks := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, task := range cfg.Tasks() {
		body := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		body.Content = append(body.Content, scalar("command"), scalar(task.Command))
		if task.Description != "" {
			body.Content = append(body.Content, scalar("description"), scalar(task.Description))
		}
		tasks.Content = append(tasks.Content, scalar(task.Name), body)
	}

	root := &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: []*yaml.Node{scalar("tasks"), tasks},
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode configuration")
	}
	return data, nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
