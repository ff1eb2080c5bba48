// Package perimeterx requests PerimeterX (HUMAN) cookies and hold captcha
// solutions from the solving API.
package perimeterx

import (
	"context"

	parallax "github.com/parallax-solutions/parallax-sdk-go"
)

// TaskGenerateCookies asks for a set of _px cookies for site.
type TaskGenerateCookies struct {
	Site        string `json:"site"`
	ProxyRegion string `json:"proxyregion"`
	Region      string `json:"region"`
	Proxy       string `json:"proxy"`
}

// TaskGenerateHoldCaptcha asks for a hold captcha solution.
//
// Data is the challenge data string returned with a flagged cookie response.
// PowPro is an optional CUDA proof-of-work solver key; without it the
// service solves the proof of work itself, which only works on unflagged
// proxies.
type TaskGenerateHoldCaptcha struct {
	Site        string `json:"site"`
	ProxyRegion string `json:"proxyregion"`
	Region      string `json:"region"`
	Proxy       string `json:"proxy"`
	PowPro      string `json:"POW_PRO,omitempty"`
	Data        string `json:"data"`
}

// CookiesResponse is returned by GenerateCookies.
type CookiesResponse struct {
	Cookie         string `json:"cookie"`
	Vid            string `json:"vid"`
	Cts            string `json:"cts"`
	IsFlagged      bool   `json:"isFlagged"`
	IsMaybeFlagged bool   `json:"isMaybeFlagged"`
	UserAgent      string `json:"UserAgent"`
	Data           string `json:"data"`
}

// HoldCaptchaResponse is returned by GenerateHoldCaptcha.
type HoldCaptchaResponse struct {
	CookiesResponse
	FlaggedPOW bool `json:"flaggedPOW"`
}

type SDK struct {
	client *parallax.Client
}

// New creates a PerimeterX SDK. cfg.APIHost defaults to
// parallax.DefaultPerimeterxAPIHost.
func New(cfg parallax.Config) (*SDK, error) {
	client, err := parallax.NewProductClient(cfg, parallax.DefaultPerimeterxAPIHost)
	if err != nil {
		return nil, err
	}
	return &SDK{client: client}, nil
}

func (s *SDK) Client() *parallax.Client {
	return s.client
}

// GenerateCookies returns PX cookies. When IsFlagged is set, pass Data to
// GenerateHoldCaptcha.
func (s *SDK) GenerateCookies(ctx context.Context, task TaskGenerateCookies) (*CookiesResponse, error) {
	if err := parallax.ValidateProxy(task.Proxy); err != nil {
		return nil, err
	}
	return parallax.Request[CookiesResponse](ctx, s.client, "/gen", task)
}

func (s *SDK) GenerateHoldCaptcha(ctx context.Context, task TaskGenerateHoldCaptcha) (*HoldCaptchaResponse, error) {
	if err := parallax.ValidateProxy(task.Proxy); err != nil {
		return nil, err
	}
	return parallax.Request[HoldCaptchaResponse](ctx, s.client, "/holdcaptcha", task)
}

// NeedsHoldCaptcha reports whether the cookies were flagged and a hold
// captcha must be solved before they are usable.
func (r *CookiesResponse) NeedsHoldCaptcha() bool {
	return r.IsFlagged || r.IsMaybeFlagged
}
