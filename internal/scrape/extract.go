package scrape

import (
	"encoding/json"
	"strings"
)

// The results page bootstraps its data through an inline script callback.
// dataMarker pins the statement carrying the ds:1 payload; the JSON value
// follows the data: key inside it.
const (
	dataMarker = "AF_initDataCallback({key: 'ds:1'"
	dataKey    = "data:"
)

// ParseError reports that the embedded payload could not be located or
// decoded. It usually means the page structure has changed.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse: " + e.Reason + " (the page structure may have changed)"
}

// ExtractEmbeddedData pulls the ds:1 JSON blob out of raw HTML and decodes
// it. Returns (nil, false) when the marker is absent or the span is not
// valid JSON; the caller decides whether that is fatal.
func ExtractEmbeddedData(html string) (any, bool) {
	start := strings.Index(html, dataMarker)
	if start < 0 {
		return nil, false
	}
	rest := html[start:]

	keyAt := strings.Index(rest, dataKey)
	if keyAt < 0 {
		return nil, false
	}

	span, ok := balancedSpan(rest[keyAt+len(dataKey):])
	if !ok {
		return nil, false
	}

	var root any
	if err := json.Unmarshal([]byte(span), &root); err != nil {
		return nil, false
	}
	return root, true
}

// balancedSpan returns the complete JSON value starting at the first
// bracket of s, found by depth counting. The scan is string-aware: brackets
// inside string values (and escaped quotes) do not affect the depth, which
// a plain substring or regex cut cannot guarantee.
func balancedSpan(s string) (string, bool) {
	start := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '[' || c == '{' {
			start = i
			break
		}
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return "", false
		}
	}
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
