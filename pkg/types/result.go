package types

import "time"

// StepResult records the outcome of one provisioning step.
type StepResult struct {
	// Path is the target path relative to the folder being initialized.
	Path string
	// Outcome is the step's terminal state.
	Outcome Outcome
}

// ScaffoldResult is returned by the init operation for display and tests.
type ScaffoldResult struct {
	// Command is the name of the command that produced this result.
	Command string
	// Timestamp is when the command completed.
	Timestamp time.Time
	// Steps lists every provisioning step in execution order.
	Steps []StepResult
	// Message is a human-readable summary.
	Message string
}

// CreatedPaths returns the paths of steps that wrote a new file.
func (r *ScaffoldResult) CreatedPaths() []string {
	var paths []string
	for _, s := range r.Steps {
		if s.Outcome == OutcomeCreated {
			paths = append(paths, s.Path)
		}
	}
	return paths
}

// SkippedPaths returns the paths of steps that left an existing file alone.
func (r *ScaffoldResult) SkippedPaths() []string {
	var paths []string
	for _, s := range r.Steps {
		switch s.Outcome {
		case OutcomeSkipped, OutcomeUnchanged, OutcomePatternMiss:
			paths = append(paths, s.Path)
		}
	}
	return paths
}
