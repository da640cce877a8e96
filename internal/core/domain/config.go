// Package domain contains the core domain models of the wandler task runner.
package domain

import (
	"go.trai.ch/zerr"
)

// Task represents one runnable unit of a Configuration.
type Task struct {
	// Name is the key the task is declared under.
	Name string
	// Command is the shell command line to execute. It is never empty.
	Command string
	// Description is optional human text. Empty when not declared.
	Description string
}

// Configuration is the validated content of a configuration file.
// It maps task names to tasks and keeps the declaration order for listing.
// A Configuration is immutable once constructed.
type Configuration struct {
	tasks map[string]Task
	order []string
}

// NewConfiguration builds a Configuration from tasks in declaration order.
// It returns an error if two tasks share the same name.
func NewConfiguration(tasks ...Task) (*Configuration, error) {
	c := &Configuration{
		tasks: make(map[string]Task, len(tasks)),
		order: make([]string, 0, len(tasks)),
	}
	for _, t := range tasks {
		if _, exists := c.tasks[t.Name]; exists {
			return nil, zerr.With(zerr.Wrap(ErrTaskAlreadyExists, ""), "task", t.Name)
		}
		c.tasks[t.Name] = t
		c.order = append(c.order, t.Name)
	}
	return c, nil
}

// Task returns the task declared under name. Lookup is exact and case-sensitive.
func (c *Configuration) Task(name string) (Task, bool) {
	t, ok := c.tasks[name]
	return t, ok
}

// Tasks returns all tasks in declaration order.
func (c *Configuration) Tasks() []Task {
	out := make([]Task, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.tasks[name])
	}
	return out
}

// Names returns the task names in declaration order.
func (c *Configuration) Names() []string {
	return append([]string(nil), c.order...)
}

// Len returns the number of tasks.
func (c *Configuration) Len() int {
	return len(c.order)
}
