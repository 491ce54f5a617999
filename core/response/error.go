package response

import (
	"net/http"

	"github.com/dmitrymomot/dispatchkit/core/handler"
)

// Error returns a response action that propagates the given error. Useful
// when a handler wants the endpoint's error handler to decide the outcome.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
