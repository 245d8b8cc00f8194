package auth

import (
	"strings"

	"github.com/google/uuid"
)

// Result is the per-request authentication outcome. It is rebuilt on
// every call and never persisted. Unauthenticated is an ordinary,
// representable state: callers that need an owner check against it
// instead of relying on the middleware to reject requests.
type Result struct {
	Authenticated bool
	UserID        uuid.UUID
}

// Resolve turns a raw Authorization header value into a Result. It
// never fails: an absent, malformed or unverifiable credential yields
// an unauthenticated Result and the request continues.
//
// A header without the "Bearer " prefix is treated as a bare token.
// Existing clients send both forms, so the lenient parse stays.
func Resolve(rawHeader string, issuer *Issuer) Result {
	if rawHeader == "" {
		return Result{}
	}

	tokenStr := strings.TrimPrefix(rawHeader, "Bearer ")

	userID, err := issuer.Verify(tokenStr)
	if err != nil {
		return Result{}
	}

	return Result{Authenticated: true, UserID: userID}
}
