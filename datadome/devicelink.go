package datadome

import (
	"errors"
	"fmt"
	"strings"

	hyperdd "github.com/Hyper-Solutions/hyper-sdk-go/v2/datadome"
)

// DeviceCheckLink builds the captcha-delivery URL a browser would load for
// the challenge in body. Use it when the challenge page itself has to be
// fetched, e.g. to hand its HTML to another solver.
//
// pd selects the parser: interstitial pages and captcha (slider) pages embed
// their parameters differently. Init has no device check page. A bv page
// fails with ErrPermanentBlock.
func DeviceCheckLink(body, prevCookie, referer string, pd ProductType) (string, error) {
	if pd != ProductInterstitial && pd != ProductCaptcha {
		return "", fmt.Errorf("%w: no device check link for %q", ErrUnknownChallengeType, pd)
	}
	if _, _, err := ParseChallengeHTML(body, prevCookie); errors.Is(err, ErrPermanentBlock) {
		return "", err
	}

	var (
		link string
		err  error
	)
	if pd == ProductInterstitial {
		link, err = hyperdd.ParseInterstitialDeviceCheckLink(strings.NewReader(body), prevCookie, referer)
	} else {
		link, err = hyperdd.ParseSliderDeviceCheckLink(strings.NewReader(body), prevCookie, referer)
	}
	if err != nil {
		return "", fmt.Errorf("failed to parse device check link: %w", err)
	}

	return link, nil
}
