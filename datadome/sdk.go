package datadome

import (
	"context"
	"fmt"

	parallax "github.com/parallax-solutions/parallax-sdk-go"
)

// SDK calls the DataDome endpoints of the solving API and parses block
// responses locally.
type SDK struct {
	client *parallax.Client
}

// New creates a DataDome SDK. cfg.APIHost defaults to
// parallax.DefaultDatadomeAPIHost.
func New(cfg parallax.Config) (*SDK, error) {
	client, err := parallax.NewProductClient(cfg, parallax.DefaultDatadomeAPIHost)
	if err != nil {
		return nil, err
	}
	return &SDK{client: client}, nil
}

// Client returns the underlying API client, e.g. for CheckUsage.
func (s *SDK) Client() *parallax.Client {
	return s.client
}

// GenerateUserAgent returns the user agent and client hints to browse with.
func (s *SDK) GenerateUserAgent(ctx context.Context, task TaskGenerateUserAgent) (*UserAgentResponse, error) {
	return parallax.Request[UserAgentResponse](ctx, s.client, "/useragent", task)
}

// GenerateCookie returns a datadome cookie answering the challenge in task.Data.
func (s *SDK) GenerateCookie(ctx context.Context, task TaskGenerateCookie) (*CookieResponse, error) {
	if err := parallax.ValidateProxy(task.Proxy); err != nil {
		return nil, err
	}
	return parallax.Request[CookieResponse](ctx, s.client, "/gen", task)
}

// GenerateTagsCookie returns a datadome cookie for the tags.js (init) flow.
func (s *SDK) GenerateTagsCookie(ctx context.Context, task TaskGenerateTags) (*CookieResponse, error) {
	if err := parallax.ValidateProxy(task.Proxy); err != nil {
		return nil, err
	}
	payload := struct {
		TaskGenerateTags
		Pd ProductType `json:"pd"`
	}{task, ProductInit}
	return parallax.Request[CookieResponse](ctx, s.client, "/gen", payload)
}

// SolveChallenge detects a challenge in body and requests a cookie for it.
// It returns nil, nil when body is not a challenge.
func (s *SDK) SolveChallenge(ctx context.Context, body, prevCookie string, task TaskSolve) (*CookieResponse, error) {
	detection, err := Detect(body, prevCookie)
	if err != nil {
		return nil, err
	}
	if !detection.Blocked {
		return nil, nil
	}

	resp, err := s.GenerateCookie(ctx, TaskGenerateCookie{
		Site:        task.Site,
		Region:      task.Region,
		ProxyRegion: task.ProxyRegion,
		Proxy:       task.Proxy,
		Pd:          detection.Product,
		Data:        detection.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s cookie: %w", detection.Product, err)
	}
	return resp, nil
}

// ParseChallengeURL is the package-level ParseChallengeURL.
func (s *SDK) ParseChallengeURL(challengeURL, prevCookie string) (ChallengeData, ProductType, error) {
	return ParseChallengeURL(challengeURL, prevCookie)
}

// ParseChallengeJSON is the package-level ParseChallengeJSON.
func (s *SDK) ParseChallengeJSON(body, prevCookie string) (ChallengeData, ProductType, error) {
	return ParseChallengeJSON(body, prevCookie)
}

// ParseChallengeHTML is the package-level ParseChallengeHTML.
func (s *SDK) ParseChallengeHTML(body, prevCookie string) (ChallengeData, ProductType, error) {
	return ParseChallengeHTML(body, prevCookie)
}

// DetectChallengeAndParse is the package-level DetectChallengeAndParse.
func (s *SDK) DetectChallengeAndParse(body, prevCookie string) (bool, *ChallengeData, ProductType, error) {
	return DetectChallengeAndParse(body, prevCookie)
}
