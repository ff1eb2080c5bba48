package datadome

// TaskGenerateUserAgent asks for a user agent and client hints matching
// what the service will use for cookie generation.
type TaskGenerateUserAgent struct {
	Pd     ProductType `json:"pd,omitempty"`
	Site   string      `json:"site"`
	Region string      `json:"region"`
}

// TaskGenerateCookie asks for a datadome cookie answering a challenge.
//
// Proxy must be the proxy the caller browses with; cookies are bound to the
// IP they were generated from.
type TaskGenerateCookie struct {
	Site        string        `json:"site"`
	Region      string        `json:"region"`
	ProxyRegion string        `json:"proxyregion"`
	Proxy       string        `json:"proxy"`
	Pd          ProductType   `json:"pd"`
	Data        ChallengeData `json:"data"`
}

// TagsData is the data of a tags task. Only cid is needed.
type TagsData struct {
	Cid string `json:"cid"`
}

// TaskGenerateTags asks for a tags.js (init) cookie.
type TaskGenerateTags struct {
	Site        string   `json:"site"`
	Region      string   `json:"region"`
	ProxyRegion string   `json:"proxyregion"`
	Proxy       string   `json:"proxy"`
	Data        TagsData `json:"data"`
}

// TaskSolve is the part of a cookie task that Detect cannot fill in.
type TaskSolve struct {
	Site        string
	Region      string
	ProxyRegion string
	Proxy       string
}

// UserAgentResponse is returned by GenerateUserAgent.
type UserAgentResponse struct {
	UserAgent          string `json:"UserAgent"`
	SecHeader          string `json:"secHeader"`
	SecFullVersionList string `json:"secFullVersionList"`
	SecPlatform        string `json:"secPlatform"`
	SecArch            string `json:"SecArch"`
}

// CookieResponse is returned by GenerateCookie and GenerateTagsCookie.
// Cookie is a full Set-Cookie style string; see CookieValue.
type CookieResponse struct {
	Cookie    string `json:"cookie"`
	UserAgent string `json:"userAgent"`
}
