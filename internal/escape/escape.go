// Package escape implements the entity substitution applied to string
// content. The policy is an explicit value handed to the encoder and
// decoder, never ambient state, so concurrent conversions with different
// policies cannot interfere.
package escape

import "strings"

// Policy selects how reserved XML characters in string content are handled.
type Policy int

const (
	// PolicyIdentity passes text through untouched, for callers whose XML
	// layer performs (or has already undone) entity escaping itself.
	PolicyIdentity Policy = iota
	// PolicySubstitute swaps & and < for their entity references on encode
	// and reverses the substitution on decode.
	PolicySubstitute
)

// ParsePolicy maps a configuration string to a Policy.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "identity":
		return PolicyIdentity, true
	case "substitute":
		return PolicySubstitute, true
	}
	return PolicyIdentity, false
}

// String implements fmt.Stringer.
func (p Policy) String() string {
	if p == PolicySubstitute {
		return "substitute"
	}
	return "identity"
}

// Encode escapes text for embedding in a string node. The ampersand is
// substituted before the angle bracket: the other way round would re-escape
// the ampersands the first pass just produced.
func (p Policy) Encode(s string) string {
	if p != PolicySubstitute {
		return s
	}
	s = strings.ReplaceAll(s, "&", "&amp;")
	return strings.ReplaceAll(s, "<", "&lt;")
}

// Decode reverses Encode, resolving &lt; before &amp; so that a literal
// "&amp;lt;" comes back as "&lt;" rather than "<".
func (p Policy) Decode(s string) string {
	if p != PolicySubstitute {
		return s
	}
	s = strings.ReplaceAll(s, "&lt;", "<")
	return strings.ReplaceAll(s, "&amp;", "&")
}
