package http

import (
	"errors"
	"mime"
	"net/http"

	"github.com/aussiebroadwan/accounts/internal/accounts/i18n"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/validate"
	"github.com/aussiebroadwan/accounts/pkg/authsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

type AccountsHandler struct {
	AccountService *service.AccountService
	Catalog        *i18n.Catalog
}

// HandleSignup godoc
//
//	@Summary		Register an account
//	@Description	Normalizes and validates the form, rejects taken user names, then stores the account and returns its token.
//	@Description	Validation stops at the first failing rule; every rejection is a 422 with a localized msg.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			lang	query		string					false	"Message locale (en, zh-Hans)"
//	@Param			body	body		authsdk.SignupRequest	true	"userName, email, pass, repass"
//	@Success		200		{object}	authsdk.SignupResponse	"msg, user, token"
//	@Failure		400		{object}	authsdk.MessageResponse	"malformed body"
//	@Failure		422		{object}	authsdk.MessageResponse	"validation failure or username exists"
//	@Failure		500		{object}	authsdk.MessageResponse	"could not save user"
//	@Router			/v1/accounts/signup [post].
func (h *AccountsHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req authsdk.SignupRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.AccountService.Signup(r.Context(), validate.SignupInput{
		UserName: req.UserName,
		Email:    req.Email,
		Pass:     req.Pass,
		RePass:   req.RePass,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, authsdk.SignupResponse{
		Msg:   h.Catalog.Localize(r, i18n.RegistrationSucceeded),
		User:  user.UserName,
		Token: user.Token,
	})
}

// HandleSignin godoc
//
//	@Summary		Sign in
//	@Description	Checks the password and returns the token issued at signup. The token is never reissued.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			lang	query		string					false	"Message locale (en, zh-Hans)"
//	@Param			body	body		authsdk.SigninRequest	true	"userName, pass"
//	@Success		200		{object}	authsdk.SigninResponse	"type=true, user, token"
//	@Failure		400		{object}	authsdk.MessageResponse	"malformed body"
//	@Failure		422		{object}	authsdk.MessageResponse	"validation failure, or type=false with login failed or user not found"
//	@Failure		500		{object}	authsdk.MessageResponse	"internal server error"
//	@Router			/v1/accounts/signin [post].
func (h *AccountsHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	var req authsdk.SigninRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.AccountService.Signin(r.Context(), validate.SigninInput{
		UserName: req.UserName,
		Pass:     req.Pass,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, authsdk.SigninResponse{
		Type:  true,
		User:  user.UserName,
		Token: user.Token,
	})
}

// decode reads a JSON body, or a url-encoded form when the request says so.
// Missing fields stay "".
func (h *AccountsHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	var err error
	if isForm(r) {
		err = decodeForm(w, r, dst)
	} else {
		err = httpx.DecodeJSON(w, r, dst)
	}
	if err != nil {
		slogx.FromContext(r.Context()).Debug("rejected request body", "err", err)
		h.writeJSON(w, r, http.StatusBadRequest, authsdk.MessageResponse{
			Msg: h.Catalog.Localize(r, i18n.InvalidRequestBody),
		})
		return false
	}
	return true
}

func isForm(r *http.Request) bool {
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && ct == "application/x-www-form-urlencoded"
}

func decodeForm(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, httpx.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return err
	}
	switch v := dst.(type) {
	case *authsdk.SignupRequest:
		v.UserName = r.PostForm.Get("userName")
		v.Email = r.PostForm.Get("email")
		v.Pass = r.PostForm.Get("pass")
		v.RePass = r.PostForm.Get("repass")
	case *authsdk.SigninRequest:
		v.UserName = r.PostForm.Get("userName")
		v.Pass = r.PostForm.Get("pass")
	default:
		return errors.New("unsupported form target")
	}
	return nil
}

// writeError maps service errors onto status codes and localized messages.
func (h *AccountsHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())
	typeFalse := false

	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		h.reject(w, r, nil, verr.Key)
	case errors.Is(err, service.ErrUserNameTaken):
		h.reject(w, r, nil, i18n.UserNameExists)
	case errors.Is(err, service.ErrUserNotFound):
		h.reject(w, r, &typeFalse, i18n.UserNotFound)
	case errors.Is(err, service.ErrLoginFailed):
		h.reject(w, r, &typeFalse, i18n.LoginFailed)
	case errors.Is(err, service.ErrPersistence):
		log.Error("signup persistence failed", "err", err)
		h.writeJSON(w, r, http.StatusInternalServerError, authsdk.MessageResponse{
			Msg: h.Catalog.Localize(r, i18n.PersistenceFailed),
		})
	default:
		log.Error("account request failed", "err", err)
		h.writeJSON(w, r, http.StatusInternalServerError, authsdk.MessageResponse{
			Msg: h.Catalog.Localize(r, i18n.InternalError),
		})
	}
}

func (h *AccountsHandler) reject(w http.ResponseWriter, r *http.Request, typ *bool, key i18n.Key) {
	h.writeJSON(w, r, http.StatusUnprocessableEntity, authsdk.MessageResponse{
		Type: typ,
		Msg:  h.Catalog.Localize(r, key),
	})
}

func (h *AccountsHandler) writeJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	w.Header().Set("Content-Language", h.Catalog.Resolve(r).String())
	httpx.WriteJSON(w, code, v)
}
