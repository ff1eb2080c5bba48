package datadome

import "regexp"

var (
	// blockURLPattern matches the captcha-delivery redirect carried by JSON block responses.
	blockURLPattern = regexp.MustCompile(`geo\.captcha-delivery\.com/(?:interstitial|captcha)`)

	// htmlObjectPattern matches the inline `dd={...}` object of an HTML block page.
	// The object is flat, so [^}]+ never runs past the closing brace.
	htmlObjectPattern = regexp.MustCompile(`dd=\{[^}]+\}`)

	// quotedLiteralPattern matches a double- or single-quoted string literal,
	// escapes included.
	quotedLiteralPattern = regexp.MustCompile(`"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'`)

	// bareKeyPattern matches an unquoted identifier used as a key.
	bareKeyPattern = regexp.MustCompile(`([{,]\s*)([A-Za-z_$][A-Za-z0-9_$]*)\s*:`)

	// integerPattern matches a JSON integer literal.
	integerPattern = regexp.MustCompile(`^-?[0-9]+$`)
)

// htmlObjectPrefix is stripped from a htmlObjectPattern match to get the literal.
const htmlObjectPrefix = "dd="

// findHTMLObject returns the `{...}` literal of the first dd= object in body.
func findHTMLObject(body string) (string, bool) {
	match := htmlObjectPattern.FindString(body)
	if match == "" {
		return "", false
	}
	return match[len(htmlObjectPrefix):], true
}

func hasHTMLObject(body string) bool {
	return htmlObjectPattern.MatchString(body)
}

func hasBlockURL(body string) bool {
	return blockURLPattern.MatchString(body)
}
