package parallax

import (
	"fmt"
	"net/url"
	"strings"
)

// proxySchemes are the schemes the solving service accepts for task proxies.
var proxySchemes = []string{"http", "https", "socks", "socks5", "socks5h"}

// ValidateProxy checks that p is a scheme://host[:port] proxy address the
// solving service accepts.
func ValidateProxy(p string) error {
	parsed, err := url.Parse(p)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProxy, err)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: %q has no host", ErrInvalidProxy, p)
	}
	for _, scheme := range proxySchemes {
		if parsed.Scheme == scheme {
			return nil
		}
	}
	return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidProxy, parsed.Scheme)
}

// NormalizeProxy converts a proxy line into a URL accepted by ValidateProxy.
// Supported formats:
//   - ip:port:username:password
//   - ip:port (IP authenticated, no credentials)
//   - scheme://[username:password@]ip:port (returned unchanged)
func NormalizeProxy(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("%w: empty proxy", ErrInvalidProxy)
	}

	if strings.Contains(line, "://") {
		if err := ValidateProxy(line); err != nil {
			return "", err
		}
		return line, nil
	}

	parts := strings.Split(line, ":")

	switch len(parts) {
	case 2:
		host, port := parts[0], parts[1]
		return fmt.Sprintf("http://%s:%s", host, port), nil

	case 4:
		host, port, user, pass := parts[0], parts[1], parts[2], parts[3]
		u := url.URL{
			Scheme: "http",
			User:   url.UserPassword(user, pass),
			Host:   host + ":" + port,
		}
		return u.String(), nil

	default:
		return "", fmt.Errorf("%w: unrecognised format %q", ErrInvalidProxy, line)
	}
}
