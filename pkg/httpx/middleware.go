package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain wraps h with mw. The first middleware is the outermost, so it sees
// the request first and the response last.
func Chain(h http.Handler, mw ...Middleware) http.Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

// Recoverer turns a panic in a handler into a 500 with a JSON body, and
// logs it.
func Recoverer(body func(r *http.Request) any) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slogx.FromContext(r.Context()).Error("handler panic", "panic", rec)
				WriteJSON(w, http.StatusInternalServerError, body(r))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
