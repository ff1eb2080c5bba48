package datadome

import "strings"

// CookieName is the name of the DataDome session cookie.
const CookieName = "datadome"

// CookieValue parses "name=value; ..." -> "value".
func CookieValue(setCookie string) string {
	idx := strings.Index(setCookie, ";")
	if idx == -1 {
		idx = len(setCookie)
	}
	nameValue := strings.TrimSpace(setCookie[:idx])
	parts := strings.SplitN(nameValue, "=", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return ""
}

// Value returns the bare datadome cookie value of the response.
func (r *CookieResponse) Value() string {
	return CookieValue(r.Cookie)
}
