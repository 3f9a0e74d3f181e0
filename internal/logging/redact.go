package logging

import (
	"regexp"
	"strings"
)

// Keys whose values never belong in a log file. Matching is done per
// segment, so "api_key" and "password_length" both trip on their
// sensitive segment while "keyboard" does not.
var sensitiveSegments = map[string]struct{}{
	"secret":     {},
	"password":   {},
	"token":      {},
	"key":        {},
	"auth":       {},
	"credential": {},
}

var segmentSplit = regexp.MustCompile(`[^a-z0-9]+`)

// redactPairs returns a copy of the flattened key-value slice with values
// of sensitive keys replaced by "[REDACTED]". The input is not modified.
func redactPairs(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	out := make([]any, len(pairs))
	copy(out, pairs)
	for i := 0; i+1 < len(out); i += 2 {
		key, ok := out[i].(string)
		if !ok {
			continue
		}
		if sensitiveKey(key) {
			out[i+1] = "[REDACTED]"
		}
	}
	return out
}

func sensitiveKey(key string) bool {
	for _, part := range segmentSplit.Split(strings.ToLower(key), -1) {
		if _, ok := sensitiveSegments[part]; ok {
			return true
		}
	}
	return false
}
