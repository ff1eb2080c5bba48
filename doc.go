// Package parallax is the shared client for the Parallax solving API.
//
// Product SDKs live in subpackages:
//
//	datadome    cookie, user agent and tags generation plus challenge detection
//	perimeterx  cookie and hold captcha generation
//
// A minimal DataDome flow:
//
//	sdk, err := datadome.New(parallax.Config{APIKey: key})
//	if err != nil {
//		return err
//	}
//	blocked, data, pd, err := sdk.DetectChallengeAndParse(body, prevCookie)
//	if err != nil || !blocked {
//		return err
//	}
//	resp, err := sdk.GenerateCookie(ctx, datadome.TaskGenerateCookie{
//		Site: "example", Region: "com", ProxyRegion: "eu", Proxy: proxy,
//		Pd: pd, Data: *data,
//	})
package parallax
