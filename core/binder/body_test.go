package binder_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatchkit/core/binder"
)

type seekCloser struct{ *bytes.Reader }

func (seekCloser) Close() error { return nil }

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestJSONFormatterRead(t *testing.T) {
	t.Parallel()

	t.Run("decodes struct", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"widget","count":3}`))
		ctx := newTestContext(r)

		v, err := binder.JSON().Read(ctx, reflect.TypeFor[payload]())
		require.NoError(t, err)
		assert.Equal(t, payload{Name: "widget", Count: 3}, v)
	})

	t.Run("decodes pointer target", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"widget"}`))
		ctx := newTestContext(r)

		v, err := binder.JSON().Read(ctx, reflect.TypeFor[*payload]())
		require.NoError(t, err)
		p, ok := v.(*payload)
		require.True(t, ok)
		assert.Equal(t, "widget", p.Name)
	})

	t.Run("rewinds seekable body on every read", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Body = seekCloser{bytes.NewReader([]byte(`{"name":"widget","count":3}`))}
		ctx := newTestContext(r)

		first, err := binder.JSON().Read(ctx, reflect.TypeFor[payload]())
		require.NoError(t, err)
		second, err := binder.JSON().Read(ctx, reflect.TypeFor[payload]())
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("invalid json fails the request", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{broken`))
		ctx := newTestContext(r)

		_, err := binder.JSON().Read(ctx, reflect.TypeFor[payload]())
		require.ErrorIs(t, err, binder.ErrFailedToDecodeBody)
	})

	t.Run("empty body fails the request", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		ctx := newTestContext(r)

		_, err := binder.JSON().Read(ctx, reflect.TypeFor[payload]())
		require.ErrorIs(t, err, binder.ErrFailedToDecodeBody)
	})
}
