package transport

import "net/http"

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthBearer uses Bearer token authentication.
	AuthBearer
	// AuthSharedAccess sends a pre-built shared access signature in the
	// Authorization header. Token acquisition and renewal are the
	// caller's responsibility.
	AuthSharedAccess
	// AuthCustom uses a custom request-modifier function.
	AuthCustom
)

// AuthConfig configures request authentication.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Token is the bearer token (AuthBearer) or the full shared access
	// signature string (AuthSharedAccess).
	Token string
	// Apply is a custom function to modify the request (AuthCustom).
	Apply func(*http.Request)
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// SharedAccessAuth creates an auth config sending a shared access
// signature. The token is used verbatim, e.g.
// "SharedAccessSignature sr=...&sig=...&se=...".
func SharedAccessAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthSharedAccess, Token: token}
}

// CustomAuth creates an auth config with a request modifier function.
func CustomAuth(fn func(*http.Request)) *AuthConfig {
	return &AuthConfig{Type: AuthCustom, Apply: fn}
}

// apply applies authentication to an HTTP request.
func (a *AuthConfig) apply(req *http.Request) {
	if a == nil {
		return
	}
	switch a.Type {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+a.Token)
	case AuthSharedAccess:
		req.Header.Set("Authorization", a.Token)
	case AuthCustom:
		if a.Apply != nil {
			a.Apply(req)
		}
	}
}
