package core

import "fmt"

// Registry is an immutable, ordered collection of uniquely named agents built
// once per run from a caller-supplied list. Registration order is preserved
// because it is semantically meaningful to selection strategies.
type Registry struct {
	names  []string
	agents map[string]Agent
}

// NewRegistry builds a registry from the given agents. It returns a
// *ConfigurationError when the list is empty, when two agents share a name, or
// when an agent claims the reserved user speaker identifier.
func NewRegistry(agents ...Agent) (*Registry, error) {
	if len(agents) == 0 {
		return nil, &ConfigurationError{Reason: "at least one agent is required"}
	}

	r := &Registry{
		names:  make([]string, 0, len(agents)),
		agents: make(map[string]Agent, len(agents)),
	}

	for _, a := range agents {
		name := a.Name()
		if name == "" || name == UserSpeaker {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("invalid agent name %q", name)}
		}
		if _, exists := r.agents[name]; exists {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("duplicate agent name %q", name)}
		}
		r.names = append(r.names, name)
		r.agents[name] = a
	}

	return r, nil
}

// Get returns the agent registered under name, if any.
func (r *Registry) Get(name string) (Agent, bool) {
	a, ok := r.agents[name]
	return a, ok
}

// Names returns a copy of the registered agent names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Len returns the number of registered agents.
func (r *Registry) Len() int { return len(r.names) }
