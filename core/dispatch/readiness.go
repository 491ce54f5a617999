package dispatch

import (
	"bytes"
	"io"
	"strings"

	"github.com/dmitrymomot/dispatchkit/core/response"
)

// compileReadiness plans the request preparation step. Form-dependent
// pipelines parse the form up front. Body-dependent pipelines make the
// body rewindable by buffering it once, so several body parameters can
// each decode from offset zero. Bodies that already seek are left alone;
// a form-dependent pipeline never buffers, which keeps body parameters
// on such methods subject to the form parser having drained the body.
func compileReadiness(needsForm, needsBody bool, maxFormMemory int64) readyFunc {
	switch {
	case needsForm:
		return func(ctx *Context) error {
			r := ctx.r
			if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
				if err := r.ParseMultipartForm(maxFormMemory); err != nil {
					return response.ErrBadRequest.WithError(err)
				}
				return nil
			}
			if err := r.ParseForm(); err != nil {
				return response.ErrBadRequest.WithError(err)
			}
			return nil
		}

	case needsBody:
		return func(ctx *Context) error {
			body := ctx.r.Body
			if body == nil {
				return nil
			}
			if _, ok := body.(io.Seeker); ok {
				return nil
			}
			data, err := io.ReadAll(body)
			body.Close()
			if err != nil {
				return response.ErrBadRequest.WithError(err)
			}
			ctx.r.Body = bufferedBody{bytes.NewReader(data)}
			return nil
		}
	}

	return nil
}

// bufferedBody is a fully buffered request body that supports seeking.
type bufferedBody struct {
	*bytes.Reader
}

func (bufferedBody) Close() error { return nil }
