package dispatch

import (
	"fmt"
	"reflect"
	"runtime"
	"slices"
	"strings"

	"github.com/dmitrymomot/dispatchkit/core/model"
)

// Build compiles a handler model into endpoints, one per routed method.
// Methods without a route are skipped. Any structural or signature defect
// fails the whole build before a single endpoint is produced.
func Build(h model.Handler, opts ...Option) ([]*Endpoint, error) {
	return build(h, newConfig(opts...))
}

// BuildAll compiles every handler the provider enumerates. The options
// are shared across all handlers, so they see one scope, one formatter,
// and one middleware chain.
func BuildAll(p model.Provider, opts ...Option) ([]*Endpoint, error) {
	cfg := newConfig(opts...)

	var endpoints []*Endpoint
	for _, h := range p.Models() {
		eps, err := build(h, cfg)
		if err != nil {
			return nil, err
		}
		endpoints = append(endpoints, eps...)
	}
	return endpoints, nil
}

func build(h model.Handler, cfg *config) ([]*Endpoint, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	endpoints := make([]*Endpoint, 0, len(h.Methods))
	for _, m := range h.Methods {
		if m.Route == "" {
			continue
		}
		ep, err := compileMethod(h, m, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", displayName(h.Type, m), err)
		}
		endpoints = append(endpoints, ep)
	}
	return endpoints, nil
}

// compileMethod inspects one method signature and assembles its pipeline.
func compileMethod(h model.Handler, m model.Method, cfg *config) (*Endpoint, error) {
	fn := reflect.ValueOf(m.Func)
	ft := fn.Type()

	if ft.IsVariadic() {
		return nil, fmt.Errorf("%w: variadic methods are not supported", ErrMismatchedParams)
	}

	plan := &Plan{call: fn, Strategy: StrategyStatic}

	offset := 0
	if !m.Static {
		if ft.NumIn() == 0 {
			return nil, fmt.Errorf("%w: instance method takes no receiver", ErrMismatchedParams)
		}
		offset = 1
		inst, strategy, err := compileInstance(h, ft.In(0))
		if err != nil {
			return nil, err
		}
		plan.instance = inst
		plan.Strategy = strategy
	}

	if got, want := ft.NumIn()-offset, len(m.Params); got != want {
		return nil, fmt.Errorf("%w: func takes %d, model declares %d", ErrMismatchedParams, got, want)
	}

	plan.args = make([]argFunc, len(m.Params))
	for i, p := range m.Params {
		t := ft.In(offset + i)
		if p.Type != nil && p.Type != t {
			return nil, fmt.Errorf("%w: parameter %q declared %s, func takes %s", ErrMismatchedParams, p.Name, p.Type, t)
		}
		bind, needsForm, needsBody, err := compileParam(p, t, cfg)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		plan.args[i] = bind
		plan.NeedsForm = plan.NeedsForm || needsForm
		plan.NeedsBody = plan.NeedsBody || needsBody
	}

	normalize, err := compileNormalize(ft)
	if err != nil {
		return nil, err
	}
	plan.normalize = normalize
	plan.ready = compileReadiness(plan.NeedsForm, plan.NeedsBody, cfg.maxFormMemory)

	name := displayName(h.Type, m)
	cfg.logger.Debug("compiled endpoint",
		"endpoint", name,
		"route", m.Route,
		"strategy", plan.Strategy,
	)

	return &Endpoint{
		Route:    m.Route,
		Name:     name,
		Metadata: slices.Clone(m.Metadata),
		Plan:     plan,
		run:      chain(cfg.middlewares, plan.invoke),
		scope:    cfg.scope,
		onError:  cfg.errorHandler,
		logger:   cfg.logger,
	}, nil
}

// displayName derives the endpoint name from the declaring type and the
// method name. Handlers without a declaring type fall back to the func's
// runtime symbol, trimmed to package.Func form.
func displayName(t reflect.Type, m model.Method) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t != nil && t.Name() != "" {
		return t.Name() + "." + m.Name
	}
	if f := runtime.FuncForPC(reflect.ValueOf(m.Func).Pointer()); f != nil {
		name := strings.TrimSuffix(f.Name(), "-fm")
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		return name
	}
	return m.Name
}
