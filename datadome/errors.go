package datadome

import (
	"errors"
	"fmt"
)

var (
	// ErrUnparsableBody means a block body was recognised but could not be decoded.
	ErrUnparsableBody = errors.New("unparsable DataDome body")

	// ErrNoChallengeValues means ParseChallengeHTML found no dd= object in the page.
	ErrNoChallengeValues = fmt.Errorf("%w: no DataDome values in HTML body", ErrUnparsableBody)

	// ErrUnknownChallengeType means the challenge URL path or the HTML t tag is not a known product.
	ErrUnknownChallengeType = errors.New("unknown DataDome challenge type")

	// ErrPermanentBlock is returned for t=bv pages. The session is banned and
	// retrying the same identity will not help.
	ErrPermanentBlock = errors.New("permanently blocked by DataDome (t=bv)")
)
