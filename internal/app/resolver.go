package app

import (
	"go.trai.ch/wandler/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver looks tasks up by exact name.
type Resolver struct{}

// Resolve returns the task declared under name.
// Matching is exact: no case folding and no prefix matching.
func (Resolver) Resolve(cfg *domain.Configuration, name string) (domain.Task, error) {
	task, ok := cfg.Task(name)
	if !ok {
		err := zerr.With(zerr.New("task '"+name+"' not found in the configuration"), "task", name)
		return domain.Task{}, domain.Classify(domain.ErrTaskNotFound, err)
	}
	return task, nil
}
