package authsdk

import (
	"context"
	"net/http"
)

// Signup registers a new account and returns its token.
func (c *SDKClient) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	resp, err := c.postJSON(ctx, "/v1/accounts/signup", req)
	if err != nil {
		return nil, err
	}

	var out SignupResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signin checks credentials and returns the token issued at signup.
func (c *SDKClient) Signin(ctx context.Context, req SigninRequest) (*SigninResponse, error) {
	resp, err := c.postJSON(ctx, "/v1/accounts/signin", req)
	if err != nil {
		return nil, err
	}

	var out SigninResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me asks the service to verify token and returns the claims it carries.
func (c *SDKClient) Me(ctx context.Context, token string) (*MeResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/accounts/me", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	if err != nil {
		return nil, err
	}

	var out MeResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
