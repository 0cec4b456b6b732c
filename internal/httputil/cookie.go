package httputil

import (
	"net/http"
)

// AccessTokenCookie is the cookie web clients send their access token in.
const AccessTokenCookie = "access_token"

// GetAccessTokenFromCookie extracts access token from cookie.
func GetAccessTokenFromCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(AccessTokenCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
