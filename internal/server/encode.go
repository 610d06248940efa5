package server

import "strings"

const upperhex = "0123456789ABCDEF"

// shouldEncode reports whether b must be percent-encoded in a substituted
// query. The set is the WHATWG fragment percent-encode set plus '+', '&'
// (interpreted as a GET query separator), and '#' (interpreted as a fragment
// target), along with every non-ASCII byte.
func shouldEncode(b byte) bool {
	if b < 0x20 || b >= 0x7f {
		return true
	}
	switch b {
	case ' ', '"', '<', '>', '`', '+', '&', '#':
		return true
	}
	return false
}

// encodeQuery percent-encodes s for substitution into a destination URL.
func encodeQuery(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if shouldEncode(b) {
			sb.WriteByte('%')
			sb.WriteByte(upperhex[b>>4])
			sb.WriteByte(upperhex[b&0x0f])
		} else {
			sb.WriteByte(b)
		}
	}
	return sb.String()
}
