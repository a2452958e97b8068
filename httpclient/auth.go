package httpclient

import "net/http"

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthBearer uses Bearer token authentication.
	AuthBearer
	// AuthAPIKey uses API key authentication via a header.
	AuthAPIKey
)

// AuthConfig configures request authentication.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Token is the bearer token (AuthBearer).
	Token string
	// Key is the API key value (AuthAPIKey).
	Key string
	// Name is the header name (AuthAPIKey). Defaults to "X-API-Key".
	Name string
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// APIKeyAuth creates an API key auth config sent via header.
func APIKeyAuth(key, headerName string) *AuthConfig {
	if headerName == "" {
		headerName = "X-API-Key"
	}
	return &AuthConfig{Type: AuthAPIKey, Key: key, Name: headerName}
}

// apply applies authentication to an HTTP request.
func (a *AuthConfig) apply(req *http.Request) {
	if a == nil {
		return
	}
	switch a.Type {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+a.Token)
	case AuthAPIKey:
		name := a.Name
		if name == "" {
			name = "X-API-Key"
		}
		req.Header.Set(name, a.Key)
	}
}
