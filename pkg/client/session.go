package client

import (
	"errors"
	"strings"
)

// SessionCookieName is the cookie attribute holding the genoma session id.
const SessionCookieName = "genoma-session-id"

// ErrSessionIDNotFound is returned by New when the cookie has no
// genoma-session-id attribute.
var ErrSessionIDNotFound = errors.New("session id not found in cookie")

// ExtractSessionID looks up the genoma-session-id attribute in a raw Cookie
// header value. The value is everything after the first '=' of the attribute,
// so base64 padding survives. A present attribute with an empty value yields
// ("", true); the bank then rejects the session on the first call.
func ExtractSessionID(cookie string) (string, bool) {
	for _, segment := range strings.Split(cookie, ";") {
		name, value, found := strings.Cut(strings.TrimSpace(segment), "=")
		if !found || strings.TrimSpace(name) != SessionCookieName {
			continue
		}
		return strings.TrimSpace(value), true
	}
	return "", false
}
