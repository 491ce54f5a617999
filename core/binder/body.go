package binder

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/dmitrymomot/dispatchkit/core/handler"
)

// Formatter deserializes the request body into a value of the requested
// type. It is the injected body-reading capability: the dispatch compiler
// resolves one from the request's service scope, falling back to the
// compile-time default. Exactly one formatter serves a request; there is no
// content negotiation.
//
// A formatter expects the body stream to be ready. The dispatch readiness
// step buffers non-seekable bodies in advance; implementations rewind
// seekable bodies before reading so repeated reads each see the full
// payload.
type Formatter interface {
	Read(ctx handler.Context, t reflect.Type) (any, error)
}

type jsonFormatter struct{}

// JSON returns the default Formatter, decoding the body as JSON into the
// requested type.
func JSON() Formatter { return jsonFormatter{} }

func (jsonFormatter) Read(ctx handler.Context, t reflect.Type) (any, error) {
	body := ctx.Request().Body
	if body == nil {
		return nil, fmt.Errorf("%w: no body", ErrFailedToReadBody)
	}

	if seeker, ok := body.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToReadBody, err)
		}
	}

	target := reflect.New(t)
	if err := json.NewDecoder(body).Decode(target.Interface()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToDecodeBody, err)
	}
	return target.Elem().Interface(), nil
}
