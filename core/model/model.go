package model

import (
	"fmt"
	"reflect"
)

// Param describes a single method parameter and how its argument is produced.
type Param struct {
	// Name is the parameter name, used as the default lookup key.
	Name string

	// Source selects the binding strategy for this parameter.
	Source Source

	// Key overrides the lookup key. Empty means Name is used.
	Key string

	// Type is the declared parameter type. When nil, the type is taken from
	// the method func's signature; when set, it must match the signature
	// exactly or compilation fails.
	Type reflect.Type
}

// LookupKey returns the effective lookup key for the parameter.
func (p Param) LookupKey() string {
	if p.Key != "" {
		return p.Key
	}
	return p.Name
}

// Method describes one handler method.
type Method struct {
	// Name is the method name, used in endpoint display names.
	Name string

	// Func is the method's func value. Instance methods are method
	// expressions whose first input is the receiver; static methods take no
	// receiver.
	Func any

	// Static marks methods invoked without a handler instance.
	Static bool

	// Route is the routing template the endpoint registers under, in the
	// routing engine's own syntax. Empty means the method is not routable
	// and is skipped during compilation.
	Route string

	// Metadata is carried to the endpoint verbatim. The slice is cloned at
	// compile time so later model mutations do not leak into endpoints.
	Metadata []any

	// Params describe the method's inputs in declaration order, excluding
	// the receiver.
	Params []Param
}

// Handler describes a group of methods sharing a declaring type and an
// optional constructor.
type Handler struct {
	// Type is the declaring type. It may be nil for handlers composed of
	// static functions only.
	Type reflect.Type

	// Constructor optionally builds handler instances. It must be a func
	// returning the receiver type, or the receiver type and an error.
	// Constructor arguments are resolved from the request's service scope.
	// When nil, instance methods use implicit parameterless construction.
	Constructor any

	// Methods are the handler's methods in declaration order.
	Methods []Method
}

// Provider enumerates handler models for compilation.
type Provider interface {
	Models() []Handler
}

// Validate checks the model's structure: funcs are funcs, names are present,
// sources are known. Signature-level checks happen during compilation; both
// fail before any endpoint is produced.
func (h Handler) Validate() error {
	if h.Constructor != nil {
		if t := reflect.TypeOf(h.Constructor); t.Kind() != reflect.Func {
			return fmt.Errorf("%w: got %s", ErrInvalidConstructor, t.Kind())
		}
	}
	for _, m := range h.Methods {
		if m.Name == "" {
			return ErrUnnamedMethod
		}
		if m.Func == nil {
			return fmt.Errorf("%w: method %q", ErrInvalidFunc, m.Name)
		}
		if t := reflect.TypeOf(m.Func); t.Kind() != reflect.Func {
			return fmt.Errorf("%w: method %q is %s", ErrInvalidFunc, m.Name, t.Kind())
		}
		for i, p := range m.Params {
			if p.Name == "" && p.Source != SourceNone && p.Source != SourceBody && p.Source != SourceService {
				return fmt.Errorf("%w: method %q parameter %d", ErrUnnamedParam, m.Name, i)
			}
			if !p.Source.Valid() {
				return fmt.Errorf("%w: method %q parameter %q", ErrUnknownSource, m.Name, p.Name)
			}
		}
	}
	return nil
}
