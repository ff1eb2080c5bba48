// Package datadome detects DataDome block responses and requests cookies
// that answer them.
//
// A block response is either an HTML page embedding a `dd={...}` object or a
// JSON body of the form {"url": "https://geo.captcha-delivery.com/..."}.
// Detect tells the two apart, reads the challenge values and reports which
// product (captcha, interstitial or init) the cookie task must name:
//
//	d, err := datadome.Detect(body, currentCookie)
//	switch {
//	case errors.Is(err, datadome.ErrPermanentBlock):
//		// stop using this identity
//	case err != nil:
//		return err
//	case !d.Blocked:
//		// normal page
//	default:
//		resp, err := sdk.GenerateCookie(ctx, datadome.TaskGenerateCookie{
//			Site: site, Region: region, ProxyRegion: proxyRegion, Proxy: proxy,
//			Pd: d.Product, Data: d.Data,
//		})
//	}
//
// Parsing is pure and safe for concurrent use.
package datadome
