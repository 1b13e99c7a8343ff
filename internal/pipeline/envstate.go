package pipeline

// Tracks accumulated stage state during an in-order action walk.
//
// State flows linearly through the action list: SetEnv and Workdir update
// it permanently, affecting all subsequent actions in the same stage. The
// environment keeps declaration order so projections of it (the emitted
// document, the OCI image config) are deterministic.
type envState struct {
	workdir string
	env     []envVar
}

// A single declared environment variable.
type envVar struct {
	key   string
	value string
}

// Creates a new [envState] with no workdir and an empty environment.
func newEnvState() *envState {
	return &envState{}
}

// Persists the state-mutating fields of an action.
//
// SetEnv replaces an existing key in place, preserving first-declaration
// order. Actions without state effects are ignored.
func (s *envState) apply(a Action) {
	switch a := a.(type) {
	case SetEnv:
		for i := range s.env {
			if s.env[i].key == a.Key {
				s.env[i].value = a.Value
				return
			}
		}
		s.env = append(s.env, envVar{key: a.Key, value: a.Value})
	case Workdir:
		s.workdir = a.Path
	}
}

// Formats the accumulated environment as "key=value" strings in
// declaration order.
func (s *envState) environ() []string {
	env := make([]string, 0, len(s.env))
	for _, v := range s.env {
		env = append(env, v.key+"="+v.value)
	}
	return env
}
