package cli

import "context"

// tokenAuthorizer treats a configured API token as the signed-in capability.
// Identity itself is managed by the external provider that issued the token;
// the client only needs to know whether one is present.
type tokenAuthorizer struct {
	token string
}

func (a tokenAuthorizer) SignedIn(_ context.Context) bool {
	return a.token != ""
}
