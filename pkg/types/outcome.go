package types

// Outcome is the terminal state of one provisioning step.
type Outcome string

const (
	// OutcomeCreated means the file did not exist and was written.
	OutcomeCreated Outcome = "created"
	// OutcomeSkipped means the file already existed and was left alone.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeUpdated means an existing file was rewritten.
	OutcomeUpdated Outcome = "updated"
	// OutcomeUnchanged means an existing file was inspected and already
	// had the desired content.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomePatternMiss means an existing file did not match the patch
	// pattern and was left as authored.
	OutcomePatternMiss Outcome = "pattern-miss"
)

// Changed reports whether the outcome wrote to the filesystem.
func (o Outcome) Changed() bool {
	return o == OutcomeCreated || o == OutcomeUpdated
}
