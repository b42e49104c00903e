package authsdk

import "github.com/aussiebroadwan/accounts/pkg/jwtx"

// ============================================================================
// Account Types
// ============================================================================

// SignupRequest is the body of POST /v1/accounts/signup.
type SignupRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Pass     string `json:"pass"`
	RePass   string `json:"repass"`
}

// SignupResponse is returned on successful registration.
type SignupResponse struct {
	Msg   string `json:"msg"`
	User  string `json:"user"`
	Token string `json:"token"`
}

// SigninRequest is the body of POST /v1/accounts/signin.
type SigninRequest struct {
	UserName string `json:"userName"`
	Pass     string `json:"pass"`
}

// SigninResponse is returned on successful signin. Token is the token
// issued at signup.
type SigninResponse struct {
	Type  bool   `json:"type"`
	User  string `json:"user"`
	Token string `json:"token"`
}

// MessageResponse is the body of every rejected request. Type is only
// present on signin failures past validation, where it is false.
type MessageResponse struct {
	Type *bool  `json:"type,omitempty"`
	Msg  string `json:"msg"`
}

// MeResponse echoes the verified claims of the caller's token.
type MeResponse struct {
	User string `json:"user"`
	Role int    `json:"role"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz. Checks is only set by
// /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// ============================================================================
// JWKS Types
// ============================================================================

// JWKSResponse is the public key set served at /.well-known/jwks.json.
type JWKSResponse jwtx.JWKS
