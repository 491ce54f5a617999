package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatchkit/core/dispatch"
	"github.com/dmitrymomot/dispatchkit/core/model"
)

// endpoint compiles a single-method handler and mounts it on a fresh mux.
func endpoint(t *testing.T, m model.Method, opts ...dispatch.Option) http.Handler {
	t.Helper()

	eps, err := dispatch.Build(model.Handler{Methods: []model.Method{m}}, opts...)
	require.NoError(t, err)
	require.Len(t, eps, 1)

	mux := http.NewServeMux()
	dispatch.Mount(mux, eps)
	return mux
}

// probe is a minimal routed method for middleware tests.
func probe(fn any, params ...model.Param) model.Method {
	return model.Method{
		Name:   "Probe",
		Func:   fn,
		Static: true,
		Route:  "GET /probe",
		Params: append([]model.Param{{Name: "ctx"}}, params...),
	}
}

func get(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
