package evaluator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrAlreadyDeclared is returned by Define for a second declaration of a
// name in the same local scope.
var ErrAlreadyDeclared = errors.New("already declared in this scope")

// NewEnvironment creates a global environment. Globals may be redeclared.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object), global: true}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]Object), outer: outer}
}

// Environment is one scope. Closures share environments by pointer.
// There is a single thread of evaluation, so there is no locking.
type Environment struct {
	store  map[string]Object
	outer  *Environment
	global bool
}

// Get returns the innermost binding of name.
func (e *Environment) Get(name string) (Object, bool) {
	for env := e; env != nil; env = env.outer {
		if obj, ok := env.store[name]; ok {
			return obj, true
		}
	}
	return nil, false
}

// Define binds name in this scope only.
func (e *Environment) Define(name string, val Object) error {
	if _, exists := e.store[name]; exists && !e.global {
		return fmt.Errorf("%w: %s", ErrAlreadyDeclared, name)
	}
	e.store[name] = val
	return nil
}

// Assign rebinds name in the innermost scope that defines it. It never
// creates a binding and reports whether one was found.
func (e *Environment) Assign(name string, val Object) bool {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.store[name]; ok {
			env.store[name] = val
			return true
		}
	}
	return false
}

func (e *Environment) Outer() *Environment { return e.outer }

func (e *Environment) IsGlobal() bool { return e.global }

// Names returns the names bound in this scope, sorted.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for name := range e.store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Depth is the number of scopes from e to the root, counting e.
func (e *Environment) Depth() int {
	depth := 0
	for env := e; env != nil; env = env.outer {
		depth++
	}
	return depth
}

// Pretty dumps the scope chain from e outward, one scope per line group.
func (e *Environment) Pretty() string {
	var sb strings.Builder
	level := 0
	for env := e; env != nil; env = env.outer {
		label := "local"
		if env.global {
			label = "global"
		}
		fmt.Fprintf(&sb, "[%d] %s\n", level, label)
		for _, name := range env.Names() {
			fmt.Fprintf(&sb, "    %s = %s\n", name, Repr(env.store[name]))
		}
		level++
	}
	return sb.String()
}
