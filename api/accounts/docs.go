// Package accounts holds the Swagger document for the accounts service.
// It mirrors the godoc annotations on the handlers in internal/accounts/http
// and is regenerated with `swag init -g router.go -d internal/accounts/http -o api/accounts`.
package accounts

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "AussieBroadWAN Team",
            "url": "https://github.com/aussiebroadwan/accounts"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/.well-known/jwks.json": {
            "get": {
                "description": "Returns the public keys that verify account tokens, keyed by kid.",
                "produces": ["application/json"],
                "tags": ["well-known"],
                "summary": "Get JWKS",
                "responses": {
                    "200": {
                        "description": "The JSON Web Key Set",
                        "schema": {"$ref": "#/definitions/authsdk.JWKSResponse"}
                    }
                }
            }
        },
        "/livez": {
            "get": {
                "description": "Always 200 while the process is serving. Reports uptime and build version.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "status, uptime, version",
                        "schema": {"$ref": "#/definitions/authsdk.HealthResponse"}
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Checks the account store and the signing key set. Any failing check degrades the service to 503.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "status, uptime, version, checks",
                        "schema": {"$ref": "#/definitions/authsdk.HealthResponse"}
                    },
                    "503": {
                        "description": "status, uptime, version, checks - service not ready",
                        "schema": {"$ref": "#/definitions/authsdk.HealthResponse"}
                    }
                }
            }
        },
        "/v1/accounts/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Echoes the user name and role carried by a verified account token.",
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "Current account",
                "responses": {
                    "200": {
                        "description": "user, role",
                        "schema": {"$ref": "#/definitions/authsdk.MeResponse"}
                    },
                    "401": {
                        "description": "missing or invalid token",
                        "schema": {"$ref": "#/definitions/authsdk.MessageResponse"}
                    }
                }
            }
        },
        "/v1/accounts/signin": {
            "post": {
                "description": "Checks the password and returns the token issued at signup. The token is never reissued.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "Sign in",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Message locale (en, zh-Hans)",
                        "name": "lang",
                        "in": "query"
                    },
                    {
                        "description": "userName, pass",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/authsdk.SigninRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "type=true, user, token",
                        "schema": {"$ref": "#/definitions/authsdk.SigninResponse"}
                    },
                    "400": {
                        "description": "malformed body",
                        "schema": {"$ref": "#/definitions/authsdk.MessageResponse"}
                    },
                    "422": {
                        "description": "validation failure, or type=false with login failed or user not found",
                        "schema": {"$ref": "#/definitions/authsdk.MessageResponse"}
                    },
                    "500": {
                        "description": "internal server error",
                        "schema": {"$ref": "#/definitions/authsdk.MessageResponse"}
                    }
                }
            }
        },
        "/v1/accounts/signup": {
            "post": {
                "description": "Normalizes and validates the form, rejects taken user names, then stores the account and returns its token.\nValidation stops at the first failing rule; every rejection is a 422 with a localized msg.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "Register an account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Message locale (en, zh-Hans)",
                        "name": "lang",
                        "in": "query"
                    },
                    {
                        "description": "userName, email, pass, repass",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/authsdk.SignupRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "msg, user, token",
                        "schema": {"$ref": "#/definitions/authsdk.SignupResponse"}
                    },
                    "400": {
                        "description": "malformed body",
                        "schema": {"$ref": "#/definitions/authsdk.MessageResponse"}
                    },
                    "422": {
                        "description": "validation failure or username exists",
                        "schema": {"$ref": "#/definitions/authsdk.MessageResponse"}
                    },
                    "500": {
                        "description": "could not save user",
                        "schema": {"$ref": "#/definitions/authsdk.MessageResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "authsdk.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {"type": "string"},
                "signer": {"type": "string"}
            }
        },
        "authsdk.HealthResponse": {
            "type": "object",
            "properties": {
                "checks": {"$ref": "#/definitions/authsdk.HealthChecks"},
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "authsdk.JWKSResponse": {
            "type": "object",
            "properties": {
                "keys": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/jwtx.JWK"}
                }
            }
        },
        "authsdk.MeResponse": {
            "type": "object",
            "properties": {
                "role": {"type": "integer"},
                "user": {"type": "string"}
            }
        },
        "authsdk.MessageResponse": {
            "type": "object",
            "properties": {
                "msg": {"type": "string"},
                "type": {"type": "boolean"}
            }
        },
        "authsdk.SigninRequest": {
            "type": "object",
            "properties": {
                "pass": {"type": "string"},
                "userName": {"type": "string"}
            }
        },
        "authsdk.SigninResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "type": {"type": "boolean"},
                "user": {"type": "string"}
            }
        },
        "authsdk.SignupRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "pass": {"type": "string"},
                "repass": {"type": "string"},
                "userName": {"type": "string"}
            }
        },
        "authsdk.SignupResponse": {
            "type": "object",
            "properties": {
                "msg": {"type": "string"},
                "token": {"type": "string"},
                "user": {"type": "string"}
            }
        },
        "jwtx.JWK": {
            "type": "object",
            "properties": {
                "alg": {"type": "string"},
                "crv": {"type": "string"},
                "e": {"type": "string"},
                "kid": {"type": "string"},
                "kty": {"type": "string"},
                "n": {"type": "string"},
                "use": {"type": "string"},
                "x": {"type": "string"},
                "y": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Account token. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Accounts Service API",
	Description:      "Account registration and sign in. A token is issued once at signup and returned on every successful signin.\n\nTokens are signed JWS (EdDSA by default) and can be verified with the JWKS endpoint.\nMessages are localized from Accept-Language or the lang query parameter (en, zh-Hans).",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
