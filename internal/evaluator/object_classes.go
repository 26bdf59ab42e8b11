package evaluator

import "github.com/funvibe/golox/internal/config"

// Class holds a method table and an optional superclass. Both are fixed
// once the class declaration has run.
type Class struct {
	Name       string
	Methods    map[string]*Function
	Superclass *Class
}

func (c *Class) Type() ObjectType { return CLASS_OBJ }
func (c *Class) Inspect() string  { return c.Name }

// Arity is the initializer's arity, or zero without one.
func (c *Class) Arity() int {
	if initializer, _ := c.FindMethod(config.InitializerName); initializer != nil {
		return initializer.Arity()
	}
	return 0
}

// FindMethod resolves name along the superclass chain. It returns the
// method and the class that defines it, or nils.
func (c *Class) FindMethod(name string) (*Function, *Class) {
	for class := c; class != nil; class = class.Superclass {
		if method, ok := class.Methods[name]; ok {
			return method, class
		}
	}
	return nil, nil
}

// PropertyKind tags the result of an instance property lookup.
type PropertyKind int

const (
	PropertyNotFound PropertyKind = iota
	PropertyField
	PropertyMethod
)

type Instance struct {
	Class  *Class
	Fields map[string]Object
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Object)}
}

func (i *Instance) Type() ObjectType { return INSTANCE_OBJ }
func (i *Instance) Inspect() string  { return i.Class.Name + " instance" }

// Get looks in the fields first, then binds a method from the class chain.
func (i *Instance) Get(name string) (Object, PropertyKind) {
	if value, ok := i.Fields[name]; ok {
		return value, PropertyField
	}
	if method, defining := i.Class.FindMethod(name); method != nil {
		return bind(method, defining, i), PropertyMethod
	}
	return nil, PropertyNotFound
}

func (i *Instance) Set(name string, value Object) {
	i.Fields[name] = value
}

// bind wraps method for receiver. super is injected relative to the class
// that defines the method, not the receiver's own class.
func bind(method *Function, defining *Class, receiver *Instance) *BoundMethod {
	env := NewEnclosedEnvironment(method.Env)
	env.store[config.ThisName] = receiver
	if defining.Superclass != nil {
		env.store[config.SuperName] = &SuperProxy{Receiver: receiver, Class: defining.Superclass}
	}
	return &BoundMethod{Method: method, Defining: defining, Receiver: receiver, Env: env}
}

// SuperProxy resumes method lookup at Class while keeping the original
// receiver.
type SuperProxy struct {
	Receiver *Instance
	Class    *Class
}

func (sp *SuperProxy) Type() ObjectType { return SUPER_OBJ }
func (sp *SuperProxy) Inspect() string  { return "<super " + sp.Class.Name + ">" }

// Get returns the named method bound to the original receiver, or nil.
func (sp *SuperProxy) Get(name string) *BoundMethod {
	method, defining := sp.Class.FindMethod(name)
	if method == nil {
		return nil
	}
	return bind(method, defining, sp.Receiver)
}
