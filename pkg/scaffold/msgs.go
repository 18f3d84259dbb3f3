package scaffold

// Console line formats, one outcome line per provisioning step.
const (
	MsgCreated     = "Created %s"
	MsgSkipped     = "Skipped %s (already exists)"
	MsgUpdated     = "Updated %s"
	MsgUnchanged   = "%s is up to date"
	MsgPatternMiss = "%s left as authored (no tool path field found)"

	MsgScriptsPresent = "Skipped %s (script files already present)"
	MsgRegistered     = "Registered %s file association"
	MsgRegisterNoop   = "File association is not needed on this platform"

	MsgSummary = "Initialized %s: %d created, %d skipped"
)
