package http

import (
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/i18n"
	"github.com/aussiebroadwan/accounts/pkg/authsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

// MeHandler godoc
//
//	@Summary		Current account
//	@Description	Echoes the user name and role carried by a verified account token.
//	@Tags			Accounts
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	authsdk.MeResponse	"user, role"
//	@Failure		401	{object}	authsdk.MessageResponse	"missing or invalid token"
//	@Router			/v1/accounts/me [get].
func MeHandler(catalog *i18n.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := httpx.ClaimsFromContext(r.Context())
		if !ok {
			httpx.WriteJSON(w, http.StatusUnauthorized, unauthorizedBody(catalog)(r))
			return
		}
		httpx.WriteJSON(w, http.StatusOK, authsdk.MeResponse{
			User: claims.UserName,
			Role: claims.Role,
		})
	}
}

// unauthorizedBody renders the localized 401 body shared by the authn
// middleware and MeHandler.
func unauthorizedBody(catalog *i18n.Catalog) func(*http.Request) any {
	return func(r *http.Request) any {
		return authsdk.MessageResponse{Msg: catalog.Localize(r, i18n.Unauthorized)}
	}
}
