package maxbot

import (
	"net/http"

	"golang.org/x/oauth2"
)

// Authenticator attaches the access token to an outgoing request.
type Authenticator interface {
	Authenticate(req *http.Request, token string)
}

// QueryAuth puts the token in a query parameter. This is what the Max API
// documents and the default for every client.
type QueryAuth struct {
	// Param defaults to AccessTokenParam.
	Param string
}

func (a QueryAuth) Authenticate(req *http.Request, token string) {
	param := a.Param
	if param == "" {
		param = AccessTokenParam
	}
	q := req.URL.Query()
	q.Set(param, token)
	req.URL.RawQuery = q.Encode()
}

// HeaderAuth sends the token in the Authorization header, keeping it out of
// URLs that may end up in proxy or access logs.
type HeaderAuth struct {
	// TokenType defaults to "Bearer".
	TokenType string
}

func (a HeaderAuth) Authenticate(req *http.Request, token string) {
	tok := &oauth2.Token{AccessToken: token, TokenType: a.TokenType}
	tok.SetAuthHeader(req)
}
