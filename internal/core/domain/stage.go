package domain

// Stage is a step of the per-invocation pipeline.
// An invocation moves forward through the stages at most once and never retries.
type Stage int

const (
	// StageStart is the initial stage, before any configuration is located.
	StageStart Stage = iota
	// StageLocated means a configuration file path is known.
	StageLocated
	// StageLoaded means the configuration has been parsed and validated.
	StageLoaded
	// StageResolved means the requested task was found.
	StageResolved
	// StageExecuting means the task's process is running.
	StageExecuting
	// StageSucceeded is terminal: the task exited with status zero.
	StageSucceeded
	// StageFailed is terminal: some stage failed.
	StageFailed
)

// String returns the lowercase stage name.
func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageLocated:
		return "located"
	case StageLoaded:
		return "loaded"
	case StageResolved:
		return "resolved"
	case StageExecuting:
		return "executing"
	case StageSucceeded:
		return "succeeded"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no transition leaves s.
func (s Stage) Terminal() bool {
	return s == StageSucceeded || s == StageFailed
}
