package scope_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatchkit/core/scope"
)

type greeter interface {
	Greet() string
}

type englishGreeter struct{}

func (englishGreeter) Greet() string { return "hello" }

type counter struct{ n int }

func TestResolveConcrete(t *testing.T) {
	t.Parallel()

	s := scope.New()
	scope.Register(s, &counter{n: 7})

	got, err := scope.Resolve[*counter](s)
	require.NoError(t, err)
	assert.Equal(t, 7, got.n)
}

func TestResolveInterfaceKey(t *testing.T) {
	t.Parallel()

	s := scope.New()
	scope.Register[greeter](s, englishGreeter{})

	got, err := scope.Resolve[greeter](s)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Greet())
}

func TestResolveAssignabilityFallback(t *testing.T) {
	t.Parallel()

	// Registered under the concrete type, requested through the interface.
	s := scope.New()
	scope.Register(s, englishGreeter{})

	got, err := scope.Resolve[greeter](s)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Greet())
}

func TestResolveNotRegistered(t *testing.T) {
	t.Parallel()

	s := scope.New()
	_, err := scope.Resolve[*counter](s)
	require.ErrorIs(t, err, scope.ErrNotRegistered)
}

func TestParentChain(t *testing.T) {
	t.Parallel()

	t.Run("child falls back to parent", func(t *testing.T) {
		t.Parallel()
		root := scope.New()
		scope.Register(root, &counter{n: 1})

		child := root.Child()
		got, err := scope.Resolve[*counter](child)
		require.NoError(t, err)
		assert.Equal(t, 1, got.n)
	})

	t.Run("child shadows parent", func(t *testing.T) {
		t.Parallel()
		root := scope.New()
		scope.Register(root, &counter{n: 1})

		child := root.Child()
		scope.Register(child, &counter{n: 2})

		fromChild, err := scope.Resolve[*counter](child)
		require.NoError(t, err)
		assert.Equal(t, 2, fromChild.n)

		fromRoot, err := scope.Resolve[*counter](root)
		require.NoError(t, err)
		assert.Equal(t, 1, fromRoot.n)
	})

	t.Run("child registrations do not leak upward", func(t *testing.T) {
		t.Parallel()
		root := scope.New()
		child := root.Child()
		scope.Register(child, &counter{n: 3})

		_, err := scope.Resolve[*counter](root)
		require.ErrorIs(t, err, scope.ErrNotRegistered)
	})
}

func TestProvideTransient(t *testing.T) {
	t.Parallel()

	calls := 0
	s := scope.New()
	scope.Provide(s, func() *counter {
		calls++
		return &counter{n: calls}
	})

	first, err := scope.Resolve[*counter](s)
	require.NoError(t, err)
	second, err := scope.Resolve[*counter](s)
	require.NoError(t, err)

	assert.Equal(t, 1, first.n)
	assert.Equal(t, 2, second.n)
	assert.NotSame(t, first, second)
}

func TestRegisterReplaces(t *testing.T) {
	t.Parallel()

	s := scope.New()
	scope.Register(s, &counter{n: 1})
	scope.Register(s, &counter{n: 2})

	got, err := scope.Resolve[*counter](s)
	require.NoError(t, err)
	assert.Equal(t, 2, got.n)
}

func TestResolveType(t *testing.T) {
	t.Parallel()

	s := scope.New()
	scope.Register(s, &counter{n: 5})

	v, err := s.ResolveType(reflect.TypeOf((*counter)(nil)))
	require.NoError(t, err)
	assert.Equal(t, 5, v.(*counter).n)
}

func TestFactoryResolvesOwnDependencies(t *testing.T) {
	t.Parallel()

	s := scope.New()
	scope.Register(s, &counter{n: 10})
	scope.Provide(s, func() greeter {
		c, err := scope.Resolve[*counter](s)
		require.NoError(t, err)
		_ = c
		return englishGreeter{}
	})

	got, err := scope.Resolve[greeter](s)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Greet())
}
