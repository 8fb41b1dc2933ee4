package object

func NewEnvironment() *Environment {
	s := make(map[string]Object)
	return &Environment{store: s}
}

// NewEnclosedEnvironment creates a child scope. The child only refers to
// outer; whoever created outer keeps it alive, and closures holding it keep
// it reachable after that.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	enclosedEnv := NewEnvironment()
	enclosedEnv.outer = outer
	return enclosedEnv
}

type Environment struct {
	store map[string]Object
	outer *Environment
}

// Get resolves name in this scope, then outward through the chain.
func (e *Environment) Get(name string) (Object, bool) {
	for env := e; env != nil; env = env.outer {
		if obj, ok := env.store[name]; ok {
			return obj, true
		}
	}
	return nil, false
}

// Set binds name in this scope only, replacing any existing local binding.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}

func (e *Environment) Outer() *Environment {
	return e.outer
}
