package datadome

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ProductType is the DataDome product a challenge belongs to. Its value is
// sent as the pd field of a cookie task.
type ProductType string

const (
	ProductCaptcha      ProductType = "captcha"
	ProductInterstitial ProductType = "interstitial"
	ProductInit         ProductType = "init" // tags.js
)

func (p ProductType) String() string {
	return string(p)
}

// HTML t tags.
const (
	tagBlocked      = "bv"
	tagCaptcha      = "fe"
	tagInterstitial = "it"
)

// ChallengeData holds the values the solving service needs to answer a challenge.
//
// Cid is the datadome cookie the caller already holds. InitialCid is the cid
// the challenge reports about itself. Both are sent, never merged.
type ChallengeData struct {
	Cid        string `json:"cid"`
	E          string `json:"e"`
	S          string `json:"s"`
	B          string `json:"b"`
	InitialCid string `json:"initialCid"`
}

// Detection is the result of Detect. Blocked is false when the body is not a challenge.
type Detection struct {
	Blocked bool
	Product ProductType
	Data    ChallengeData
}

// htmlBlockBody is the dd= object embedded in a block page.
// Only t, b, s, e and cid are read.
type htmlBlockBody struct {
	RT     looseString `json:"rt"`
	Cid    looseString `json:"cid"`
	Hsh    looseString `json:"hsh"`
	T      looseString `json:"t"`
	QP     looseString `json:"qp"`
	S      looseString `json:"s"`
	B      looseString `json:"b"`
	E      looseString `json:"e"`
	Host   looseString `json:"host"`
	Cookie looseString `json:"cookie"`
}

type jsonBlockBody struct {
	URL string `json:"url"`
}

// looseString decodes a JSON string, number or boolean into its textual form.
// Integers keep their digits; other numbers are printed without exponent or
// trailing zeros, as a browser would print them.
type looseString string

func (l *looseString) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*l = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = looseString(s)
	case integerPattern.MatchString(raw):
		*l = looseString(raw)
	default:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			*l = looseString(raw)
			return nil
		}
		*l = looseString(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return nil
}

// ParseChallengeURL reads the product and challenge values from a
// captcha-delivery URL. The product comes from the path prefix; b, e, s and
// initialCid come from the query string.
func ParseChallengeURL(challengeURL, prevCookie string) (ChallengeData, ProductType, error) {
	u, err := url.Parse(challengeURL)
	if err != nil {
		return ChallengeData{}, "", fmt.Errorf("%w: invalid challenge url: %v", ErrUnparsableBody, err)
	}

	var pd ProductType
	switch {
	case strings.HasPrefix(u.Path, "/captcha"):
		pd = ProductCaptcha
	case strings.HasPrefix(u.Path, "/interstitial"):
		pd = ProductInterstitial
	case strings.HasPrefix(u.Path, "/init"):
		pd = ProductInit
	default:
		return ChallengeData{}, "", fmt.Errorf("%w in URL: %q", ErrUnknownChallengeType, u.Path)
	}

	q := u.Query()
	return ChallengeData{
		Cid:        prevCookie,
		B:          queryOr(q, "b", "0"),
		E:          queryOr(q, "e", ""),
		S:          queryOr(q, "s", ""),
		InitialCid: queryOr(q, "initialCid", ""),
	}, pd, nil
}

func queryOr(q url.Values, key, fallback string) string {
	if v := q.Get(key); v != "" {
		return v
	}
	return fallback
}

// ParseChallengeJSON handles the {"url": "..."} body DataDome returns to
// XHR and API requests.
func ParseChallengeJSON(body, prevCookie string) (ChallengeData, ProductType, error) {
	var parsed jsonBlockBody
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return ChallengeData{}, "", fmt.Errorf("%w: %v", ErrUnparsableBody, err)
	}
	if parsed.URL == "" {
		return ChallengeData{}, "", fmt.Errorf("%w: couldn't extract url from response", ErrUnparsableBody)
	}
	return ParseChallengeURL(parsed.URL, prevCookie)
}

// ParseChallengeHTML handles a block page carrying an inline dd={...} object.
func ParseChallengeHTML(body, prevCookie string) (ChallengeData, ProductType, error) {
	literal, ok := findHTMLObject(body)
	if !ok {
		return ChallengeData{}, "", ErrNoChallengeValues
	}

	normalized, err := normalizeObjectLiteral(literal)
	if err != nil {
		return ChallengeData{}, "", err
	}

	var dd htmlBlockBody
	if err := json.Unmarshal([]byte(normalized), &dd); err != nil {
		return ChallengeData{}, "", fmt.Errorf("%w: %v", ErrUnparsableBody, err)
	}

	var pd ProductType
	switch string(dd.T) {
	case tagInterstitial:
		pd = ProductInterstitial
	case tagCaptcha:
		pd = ProductCaptcha
	case tagBlocked:
		return ChallengeData{}, "", ErrPermanentBlock
	default:
		return ChallengeData{}, "", fmt.Errorf("%w in HTML: t=%q", ErrUnknownChallengeType, string(dd.T))
	}
	if dd.Cid == "" {
		return ChallengeData{}, "", fmt.Errorf("%w: dd object has no cid", ErrUnparsableBody)
	}

	return ChallengeData{
		Cid:        prevCookie,
		B:          string(dd.B),
		S:          string(dd.S),
		E:          string(dd.E),
		InitialCid: string(dd.Cid),
	}, pd, nil
}

// Detect reports whether body is a DataDome challenge and, if so, parses it.
//
// An inline dd= object wins over a captcha-delivery URL when a body carries
// both. A body with neither is not an error.
func Detect(body, prevCookie string) (Detection, error) {
	var (
		data ChallengeData
		pd   ProductType
		err  error
	)

	switch {
	case hasHTMLObject(body):
		data, pd, err = ParseChallengeHTML(body, prevCookie)
	case hasBlockURL(body):
		data, pd, err = ParseChallengeJSON(body, prevCookie)
	default:
		return Detection{}, nil
	}
	if err != nil {
		return Detection{}, err
	}

	return Detection{Blocked: true, Product: pd, Data: data}, nil
}

// DetectChallengeAndParse is Detect in tuple form. data is nil and pd is
// empty when blocked is false.
func DetectChallengeAndParse(body, prevCookie string) (blocked bool, data *ChallengeData, pd ProductType, err error) {
	d, err := Detect(body, prevCookie)
	if err != nil || !d.Blocked {
		return false, nil, "", err
	}
	return true, &d.Data, d.Product, nil
}
