// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Workflow is a static multi-step guide walking through a task with an
// ordered list of commands.
type Workflow struct {
	// Name is the short identifier used on the command line, e.g. "recon".
	Name string `json:"name" yaml:"name"`

	// Title is the human-readable heading.
	Title string `json:"title" yaml:"title"`

	// Description summarizes when to reach for this workflow.
	Description string `json:"description" yaml:"description"`

	// Steps are executed in order.
	Steps []WorkflowStep `json:"steps" yaml:"steps"`
}

// WorkflowStep is one command in a workflow guide.
type WorkflowStep struct {
	// Command is the literal invocation to run.
	Command string `json:"command" yaml:"command"`

	// Purpose explains why this step runs.
	Purpose string `json:"purpose" yaml:"purpose"`

	// LookFor describes what in the output matters.
	LookFor string `json:"look_for,omitempty" yaml:"look_for,omitempty"`

	// Tips holds optional advice for the step.
	Tips string `json:"tips,omitempty" yaml:"tips,omitempty"`
}
