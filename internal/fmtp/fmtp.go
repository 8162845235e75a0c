// Package fmtp implements parsing and matching of fmtp parameter lines.
package fmtp

import (
	"strings"
)

// FMTP holds the parsed parameters of one fmtp line.
type FMTP struct {
	mimeType   string
	parameters map[string]string
}

// Parse parses an fmtp parameter string, e.g. "profile-id=0;max-fr=30".
func Parse(mimeType, line string) *FMTP {
	return &FMTP{
		mimeType:   mimeType,
		parameters: parseParameters(line),
	}
}

// MimeType returns the MimeType associated with the fmtp.
func (f *FMTP) MimeType() string {
	return f.mimeType
}

// Parameter returns a value for the associated key if contained in the
// parsed fmtp string.
func (f *FMTP) Parameter(key string) (string, bool) {
	v, ok := f.parameters[strings.ToLower(key)]

	return v, ok
}

// Superset reports whether every required key is present with an identical
// value. Keys compare case-insensitively, values exactly.
func (f *FMTP) Superset(required map[string]string) bool {
	for k, v := range required {
		value, ok := f.Parameter(k)
		if !ok || value != v {
			return false
		}
	}

	return true
}

func parseParameters(line string) map[string]string {
	parameters := make(map[string]string)

	if strings.TrimSpace(line) == "" {
		return parameters
	}

	for _, p := range strings.Split(line, ";") {
		pp := strings.SplitN(strings.TrimSpace(p), "=", 2)
		key := strings.ToLower(pp[0])
		var value string
		if len(pp) > 1 {
			value = pp[1]
		}
		parameters[key] = value
	}

	return parameters
}
