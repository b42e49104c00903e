package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// AuthnMiddleware requires a valid bearer token and stores its claims in
// the request context. Rejections are 401 with a WWW-Authenticate challenge
// and, when body is non-nil, body(r) as JSON.
func AuthnMiddleware(v jwtx.Verifier, body func(r *http.Request) any) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := bearerToken(r)
			if !ok {
				writeBearerError(w, r, "missing bearer token", body)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, r, "token verification failed", body)
				log.Warn("jwt verify failed", "err", err)
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithAuth(ctx, claims)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RFC 6750 error response for bearer auth.
func writeBearerError(w http.ResponseWriter, r *http.Request, desc string, body func(*http.Request) any) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	if body == nil {
		NoCache(w)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	WriteJSON(w, http.StatusUnauthorized, body(r))
}
