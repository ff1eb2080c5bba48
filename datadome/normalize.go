package datadome

import (
	"encoding/json"
	"fmt"
	"strings"
)

// normalizeObjectLiteral rewrites the inline object literal of a block page
// into strict JSON.
//
// It handles the shapes DataDome emits: single-quoted keys, single-quoted
// values and bare identifier keys mixed with ordinary JSON tokens. It is not
// a JavaScript parser; nested objects, comments and trailing commas are left
// alone and make the result fail to parse.
func normalizeObjectLiteral(literal string) (string, error) {
	var b strings.Builder
	last := 0
	for _, loc := range quotedLiteralPattern.FindAllStringIndex(literal, -1) {
		b.WriteString(quoteBareKeys(literal[last:loc[0]]))
		token := literal[loc[0]:loc[1]]
		if token[0] == '\'' {
			token = requote(token[1 : len(token)-1])
		}
		b.WriteString(token)
		last = loc[1]
	}
	b.WriteString(quoteBareKeys(literal[last:]))
	out := b.String()

	if !json.Valid([]byte(out)) {
		return "", fmt.Errorf("%w: inline object is not valid after normalization", ErrUnparsableBody)
	}
	return out, nil
}

// requote turns the body of a single-quoted literal into a double-quoted one.
func requote(s string) string {
	s = strings.ReplaceAll(s, `\'`, `'`)

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

// quoteBareKeys quotes identifier keys in text that holds no string literal.
func quoteBareKeys(s string) string {
	return bareKeyPattern.ReplaceAllString(s, `$1"$2":`)
}
