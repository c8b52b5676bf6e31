package main

// Env is one scope frame: an ordered set of bindings plus an optional parent.
// Values are immutable, so sharing them between frames is equivalent to
// copying on every get and put.
type Env struct {
	names  []string
	values []Value
	parent *Env
}

func NewEnv() *Env {
	return &Env{}
}

// NewEnclosedEnv returns an empty frame chained to parent.
func NewEnclosedEnv(parent *Env) *Env {
	return &Env{parent: parent}
}

// Get resolves name through the frame chain. A miss at the root yields an
// Error value.
func (e *Env) Get(name string) Value {
	for env := e; env != nil; env = env.parent {
		for i, n := range env.names {
			if n == name {
				return env.values[i]
			}
		}
	}
	return errorf("Unbound symbol '%s'", name)
}

// Put binds name in this frame only, replacing an existing binding.
func (e *Env) Put(name string, val Value) {
	for i, n := range e.names {
		if n == name {
			e.values[i] = val
			return
		}
	}
	e.names = append(e.names, name)
	e.values = append(e.values, val)
}

// PutGlobal binds name in the root frame.
func (e *Env) PutGlobal(name string, val Value) {
	e.Root().Put(name, val)
}

func (e *Env) Root() *Env {
	env := e
	for env.parent != nil {
		env = env.parent
	}
	return env
}

func (e *Env) Parent() *Env {
	return e.parent
}

// Len is the number of bindings in this frame.
func (e *Env) Len() int {
	return len(e.names)
}

// copyFrame duplicates this frame's own bindings; the parent is shared.
func (e *Env) copyFrame() *Env {
	return &Env{
		names:  append([]string(nil), e.names...),
		values: append([]Value(nil), e.values...),
		parent: e.parent,
	}
}
