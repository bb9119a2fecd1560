package core

// ConfigurationError indicates a construction-time problem that is fatal to
// starting a run: duplicate agent names, an empty registry, or a workflow
// referencing an unregistered agent.
type ConfigurationError struct {
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return "groupchat: invalid configuration: " + e.Reason
}

// SelectionError indicates a run-time failure of a selection strategy to
// produce any valid agent name even after applying its fallback. It aborts
// the run in progress.
type SelectionError struct {
	Reason string
}

// Error implements the error interface.
func (e *SelectionError) Error() string {
	return "groupchat: selection failed: " + e.Reason
}
