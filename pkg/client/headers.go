package client

import "net/http"

// Browser identity the API expects. The frontend is a jQuery app, hence the
// XMLHttpRequest marker.
const (
	UserAgent      = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:66.0) Gecko/20100101 Firefox/66.0"
	Referer        = "https://ib.ing.cz/transactional-cz/"
	Accept         = "application/json, text/javascript, */*; q=0.01"
	AcceptLanguage = "en-US,en;q=0.5"
	AcceptEncoding = "gzip, deflate, br"
	ContentType    = "application/json; charset=utf-8"
	RequestedWith  = "XMLHttpRequest"
)

// SessionHeader is the request header carrying the session identifier.
const SessionHeader = SessionCookieName

// Headers returns the full request header set for a session. Every call
// returns a new header map.
func Headers(cookie, sessionID string) http.Header {
	h := make(http.Header, 9)
	h.Set("User-Agent", UserAgent)
	h.Set("Accept", Accept)
	h.Set("Accept-Language", AcceptLanguage)
	h.Set("Accept-Encoding", AcceptEncoding)
	h.Set("Referer", Referer)
	h.Set("Content-Type", ContentType)
	h.Set("X-Requested-With", RequestedWith)
	h.Set("Cookie", cookie)
	h.Set(SessionHeader, sessionID)
	return h
}
