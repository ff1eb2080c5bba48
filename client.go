package parallax

import (
	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// Doer sends an HTTP request. tls_client.HttpClient satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultProfile is the TLS profile used for API traffic.
var DefaultProfile = profiles.Chrome_133

// NewHTTPClient builds the tls-client transport used when Config.HTTPClient
// is nil. No cookie jar is attached; the SDK keeps no session state.
func NewHTTPClient(cfg Config) (tls_client.HttpClient, error) {
	cfg = cfg.withDefaults(cfg.APIHost)

	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(max(1, int(cfg.Timeout.Seconds()))),
		tls_client.WithClientProfile(DefaultProfile),
		tls_client.WithRandomTLSExtensionOrder(),
		tls_client.WithNotFollowRedirects(),
	}

	if cfg.ProxyURL != "" {
		options = append(options, tls_client.WithProxyUrl(cfg.ProxyURL))
	}

	return tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
}
